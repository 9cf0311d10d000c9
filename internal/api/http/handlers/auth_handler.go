package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/auth"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/service"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/validation"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

// AuthHandler manages signup, login and the admin session endpoints.
type AuthHandler struct {
	service  *service.AuthService
	sessions auth.SessionManager
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, sessions auth.SessionManager) *AuthHandler {
	return &AuthHandler{service: authService, sessions: sessions}
}

// Register POST /users/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	return h.register(c, domain.RoleUser)
}

// RegisterAdmin POST /admin/register.
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	return h.register(c, domain.RoleAdmin)
}

func (h *AuthHandler) register(c *fiber.Ctx, role domain.UserRole) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}
	user, err := h.service.Register(c.Context(), req, role)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(
		dto.OKMessage(service.AuthUserView(user), "account created"))
}

// Login POST /users/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.login(c, false)
}

// AdminLogin POST /users/admin/login.
func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	return h.login(c, true)
}

func (h *AuthHandler) login(c *fiber.Ctx, adminOnly bool) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}
	user, tokens, err := h.service.Login(c.Context(), req, adminOnly)
	if err != nil {
		return err
	}
	// Only the admin back office drives a cookie session; plain clients get
	// the pair in the body and carry it themselves.
	if adminOnly {
		h.sessions.Issue(c, tokens)
	}
	return c.JSON(dto.OKMessage(dto.LoginResult{
		User:         service.AuthUserView(user),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}, "login successful"))
}

// Verify GET /users/admin/verify. The admin guard ran before this handler, so
// reaching it means the session is valid.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	admin, ok := auth.AdminFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("admin session required")
	}
	return c.JSON(dto.OK(service.AuthUserView(admin)))
}

// Logout POST /users/admin/logout. Clears the session cookies; the persisted
// refresh token is left as is.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.sessions.Clear(c)
	return c.JSON(dto.Response{Success: true, Message: "logged out"})
}
