package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	accessCookieName  = "accessToken"
	refreshCookieName = "refreshToken"
)

// SessionTokens is the token pair carried by an admin session.
type SessionTokens struct {
	AccessToken      string
	AccessExpiresAt  time.Time
	RefreshToken     string
	RefreshExpiresAt time.Time
}

// SessionManager abstracts how admin sessions travel between requests, so the
// cookie transport can be swapped for headers in tests or other clients.
type SessionManager interface {
	Issue(c *fiber.Ctx, tokens SessionTokens)
	Read(c *fiber.Ctx) (accessToken string, ok bool)
	Clear(c *fiber.Ctx)
}

// CookieSessionManager stores both tokens as httpOnly SameSite-Strict cookies.
type CookieSessionManager struct {
	secure bool
}

// NewCookieSessionManager builds the cookie-backed session manager.
func NewCookieSessionManager(secure bool) *CookieSessionManager {
	return &CookieSessionManager{secure: secure}
}

// Issue sets both token cookies with their distinct expirations.
func (m *CookieSessionManager) Issue(c *fiber.Ctx, tokens SessionTokens) {
	c.Cookie(m.cookie(accessCookieName, tokens.AccessToken, tokens.AccessExpiresAt))
	c.Cookie(m.cookie(refreshCookieName, tokens.RefreshToken, tokens.RefreshExpiresAt))
}

// Read returns the access token from the request cookie.
func (m *CookieSessionManager) Read(c *fiber.Ctx) (string, bool) {
	token := c.Cookies(accessCookieName)
	return token, token != ""
}

// Clear expires both cookies.
func (m *CookieSessionManager) Clear(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(m.cookie(accessCookieName, "", expired))
	c.Cookie(m.cookie(refreshCookieName, "", expired))
}

func (m *CookieSessionManager) cookie(name, value string, expires time.Time) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   m.secure,
		SameSite: fiber.CookieSameSiteStrictMode,
		Path:     "/",
	}
}
