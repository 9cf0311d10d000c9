package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

type userLookupFunc func(ctx context.Context, id int64) (*domain.User, error)

func (f userLookupFunc) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return f(ctx, id)
}

func guardApp(t *testing.T, lookup UserLookup) (*fiber.App, *TokenManager) {
	t.Helper()
	tokens := NewTokenManager("guard-secret", 15*time.Minute, time.Hour)
	guard := NewAdminGuard(tokens, NewCookieSessionManager(false), lookup)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		err := c.Next()
		if err != nil {
			c.Status(apperrors.ToDomainError(err).HTTPStatus)
			return c.JSON(fiber.Map{"success": false})
		}
		return nil
	})
	app.Get("/guarded", guard.Handle, func(c *fiber.Ctx) error {
		admin, ok := AdminFromContext(c)
		require.True(t, ok)
		return c.JSON(fiber.Map{"id": admin.ID})
	})
	return app, tokens
}

func requestWithCookie(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})
	}
	return req
}

func TestAdminGuardMissingCookie(t *testing.T) {
	app, _ := guardApp(t, userLookupFunc(func(ctx context.Context, id int64) (*domain.User, error) {
		t.Fatal("lookup must not run without a token")
		return nil, nil
	}))

	resp, err := app.Test(requestWithCookie(""))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGuardInvalidToken(t *testing.T) {
	app, _ := guardApp(t, userLookupFunc(func(ctx context.Context, id int64) (*domain.User, error) {
		t.Fatal("lookup must not run for an invalid token")
		return nil, nil
	}))

	resp, err := app.Test(requestWithCookie("not-a-jwt"))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGuardUnknownUser(t *testing.T) {
	app, tokens := guardApp(t, userLookupFunc(func(ctx context.Context, id int64) (*domain.User, error) {
		return nil, pgx.ErrNoRows
	}))

	token, _, err := tokens.GenerateAccessToken(&domain.User{ID: 9, Role: domain.RoleAdmin})
	require.NoError(t, err)

	resp, err := app.Test(requestWithCookie(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAdminGuardNonAdminForbidden(t *testing.T) {
	app, tokens := guardApp(t, userLookupFunc(func(ctx context.Context, id int64) (*domain.User, error) {
		return &domain.User{ID: id, Role: domain.RoleUser}, nil
	}))

	token, _, err := tokens.GenerateAccessToken(&domain.User{ID: 5, Role: domain.RoleUser})
	require.NoError(t, err)

	resp, err := app.Test(requestWithCookie(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestAdminGuardAdminPasses(t *testing.T) {
	app, tokens := guardApp(t, userLookupFunc(func(ctx context.Context, id int64) (*domain.User, error) {
		return &domain.User{ID: id, Role: domain.RoleAdmin}, nil
	}))

	token, _, err := tokens.GenerateAccessToken(&domain.User{ID: 5, Role: domain.RoleAdmin})
	require.NoError(t, err)

	resp, err := app.Test(requestWithCookie(token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCookieSessionIssueAndClear(t *testing.T) {
	sessions := NewCookieSessionManager(false)
	app := fiber.New()
	app.Post("/login", func(c *fiber.Ctx) error {
		sessions.Issue(c, SessionTokens{
			AccessToken:      "acc",
			AccessExpiresAt:  time.Now().Add(15 * time.Minute),
			RefreshToken:     "ref",
			RefreshExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		})
		return c.SendStatus(http.StatusOK)
	})
	app.Post("/logout", func(c *fiber.Ctx) error {
		sessions.Clear(c)
		return c.SendStatus(http.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/login", nil))
	require.NoError(t, err)
	cookies := resp.Header.Values("Set-Cookie")
	require.Len(t, cookies, 2)
	for _, c := range cookies {
		require.Contains(t, c, "HttpOnly")
		require.Contains(t, c, "SameSite=Strict")
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodPost, "/logout", nil))
	require.NoError(t, err)
	for _, c := range resp.Header.Values("Set-Cookie") {
		require.Contains(t, c, "=;")
	}
}
