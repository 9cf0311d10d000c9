package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/auth"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/config"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

// AuthService handles registration, login and refresh token persistence.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
	logger     *zap.Logger
}

// NewAuthService wires the auth service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, cfg config.AuthConfig, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		tokens:     tokens,
		bcryptCost: cfg.BcryptCost,
		logger:     logger,
	}
}

// Register creates an account with the given role. Duplicate emails conflict.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest, role domain.UserRole) (*domain.User, error) {
	existing, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errorutil.ToDomainError(err).Code != "NOT_FOUND" {
			return nil, errorutil.MapError(err)
		}
	}
	if existing != nil {
		return nil, errorutil.NewConflict("an account with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, errorutil.NewInternalError(err)
	}

	user := &domain.User{
		Email:        req.Email,
		PasswordHash: hash,
		Firstname:    &req.Firstname,
		Role:         role,
	}
	if req.Address != "" {
		user.Address = &req.Address
	}
	if req.CompanyName != "" {
		user.CompanyName = &req.CompanyName
	}
	if req.GSTNumber != "" {
		user.GSTNumber = &req.GSTNumber
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, errorutil.MapError(err)
	}

	s.logger.Info("account registered",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(role)))
	return user, nil
}

// Login verifies credentials, mints the token pair and persists the refresh
// token on the user row. When adminOnly is set a non-admin account is rejected
// before any token is issued.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest, adminOnly bool) (*domain.User, auth.SessionTokens, error) {
	var empty auth.SessionTokens

	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errorutil.ToDomainError(err).Code == "NOT_FOUND" {
			return nil, empty, errorutil.NewUnauthorized("invalid email or password")
		}
		return nil, empty, errorutil.MapError(err)
	}

	if err := auth.ComparePassword(user.PasswordHash, req.Password); err != nil {
		return nil, empty, errorutil.NewUnauthorized("invalid email or password")
	}

	if adminOnly && user.Role != domain.RoleAdmin {
		return nil, empty, errorutil.NewForbidden("admin access required")
	}

	access, accessExp, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return nil, empty, errorutil.NewInternalError(err)
	}
	refresh, refreshExp, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return nil, empty, errorutil.NewInternalError(err)
	}

	if err := s.users.UpdateRefreshToken(ctx, user.ID, &refresh); err != nil {
		return nil, empty, errorutil.MapError(err)
	}

	s.logger.Info("login succeeded",
		zap.Int64("user_id", user.ID),
		zap.String("role", string(user.Role)))

	return user, auth.SessionTokens{
		AccessToken:      access,
		AccessExpiresAt:  accessExp,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// AuthUserView projects the account shape returned by auth endpoints.
func AuthUserView(user *domain.User) dto.AuthUser {
	view := dto.AuthUser{
		ID:          user.ID,
		Email:       user.Email,
		Role:        string(user.Role),
		Address:     user.Address,
		CompanyName: user.CompanyName,
		GSTNumber:   user.GSTNumber,
	}
	if user.Firstname != nil {
		view.Firstname = *user.Firstname
	}
	return view
}
