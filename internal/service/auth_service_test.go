package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/auth"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/config"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

type fakeAuthUserRepo struct {
	repository.UserRepository

	byEmail      map[string]*domain.User
	created      []*domain.User
	refreshSaved map[int64]string
}

func newFakeAuthUserRepo() *fakeAuthUserRepo {
	return &fakeAuthUserRepo{
		byEmail:      map[string]*domain.User{},
		refreshSaved: map[int64]string{},
	}
}

func (f *fakeAuthUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.NewNotFound("user")
}

func (f *fakeAuthUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = int64(len(f.created) + 1)
	f.created = append(f.created, user)
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeAuthUserRepo) UpdateRefreshToken(ctx context.Context, id int64, token *string) error {
	if token != nil {
		f.refreshSaved[id] = *token
	} else {
		delete(f.refreshSaved, id)
	}
	return nil
}

func newAuthService(repo repository.UserRepository) *AuthService {
	cfg := config.AuthConfig{BcryptCost: 4}
	tokens := auth.NewTokenManager("test-secret", 15*time.Minute, 168*time.Hour)
	return NewAuthService(repo, tokens, cfg, zap.NewNop())
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	repo := newFakeAuthUserRepo()
	repo.byEmail["taken@example.com"] = &domain.User{ID: 1, Email: "taken@example.com"}
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "taken@example.com", Password: "secret1", Firstname: "Jo",
	}, domain.RoleUser)

	require.Error(t, err)
	require.Equal(t, 409, apperrors.ToDomainError(err).HTTPStatus)
	require.Empty(t, repo.created)
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "new@example.com", Password: "secret1", Firstname: "Jo",
	}, domain.RoleUser)

	require.NoError(t, err)
	require.NotEqual(t, "secret1", user.PasswordHash)
	require.NoError(t, auth.ComparePassword(user.PasswordHash, "secret1"))
}

func TestRegisterStoresGSTNumber(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "biz@example.com", Password: "secret1", Firstname: "Jo",
		GSTNumber: "27AAAAA0000A1Z5",
	}, domain.RoleUser)

	require.NoError(t, err)
	require.NotNil(t, user.GSTNumber)
	require.Equal(t, "27AAAAA0000A1Z5", *user.GSTNumber)

	view := AuthUserView(user)
	require.NotNil(t, view.GSTNumber)
	require.Equal(t, "27AAAAA0000A1Z5", *view.GSTNumber)
}

func TestLoginWrongPasswordUnauthorized(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "jo@example.com", Password: "secret1", Firstname: "Jo",
	}, domain.RoleUser)
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "jo@example.com", Password: "wrong",
	}, false)
	require.Error(t, err)
	require.Equal(t, 401, apperrors.ToDomainError(err).HTTPStatus)
}

func TestAdminLoginRejectsNonAdmin(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "jo@example.com", Password: "secret1", Firstname: "Jo",
	}, domain.RoleUser)
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), dto.LoginRequest{
		Email: "jo@example.com", Password: "secret1",
	}, true)
	require.Error(t, err)
	require.Equal(t, 403, apperrors.ToDomainError(err).HTTPStatus)
	require.Empty(t, repo.refreshSaved)
}

func TestLoginPersistsRefreshToken(t *testing.T) {
	repo := newFakeAuthUserRepo()
	svc := newAuthService(repo)

	_, err := svc.Register(context.Background(), dto.RegisterRequest{
		Email: "admin@example.com", Password: "secret1", Firstname: "Ad",
	}, domain.RoleAdmin)
	require.NoError(t, err)

	user, tokens, err := svc.Login(context.Background(), dto.LoginRequest{
		Email: "admin@example.com", Password: "secret1",
	}, true)
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)
	require.Equal(t, tokens.RefreshToken, repo.refreshSaved[user.ID])
}
