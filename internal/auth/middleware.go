package auth

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

const adminKey = "auth_admin"

// UserLookup loads the authenticated user from persistence.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// AdminGuard authenticates the admin session cookie and enforces the ADMIN
// role before any controller logic runs.
type AdminGuard struct {
	tokens   *TokenManager
	sessions SessionManager
	users    UserLookup
}

// NewAdminGuard constructs the guard middleware.
func NewAdminGuard(tokens *TokenManager, sessions SessionManager, users UserLookup) *AdminGuard {
	return &AdminGuard{tokens: tokens, sessions: sessions, users: users}
}

// Handle short-circuits with Unauthorized/Forbidden before the controller.
func (g *AdminGuard) Handle(c *fiber.Ctx) error {
	token, ok := g.sessions.Read(c)
	if !ok {
		return apperrors.NewUnauthorized("access token not found, please login as admin")
	}

	claims, err := g.tokens.ParseAccessToken(token)
	if err != nil {
		return apperrors.NewUnauthorized("invalid access token")
	}

	user, err := g.users.GetByID(c.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewUnauthorized("user not found")
		}
		return apperrors.MapError(err)
	}

	if user.Role != domain.RoleAdmin {
		return apperrors.NewForbidden("admin privileges required")
	}

	c.Locals(adminKey, user)
	return c.Next()
}

// AdminFromContext retrieves the authenticated admin user.
func AdminFromContext(c *fiber.Ctx) (*domain.User, bool) {
	val := c.Locals(adminKey)
	if val == nil {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}
