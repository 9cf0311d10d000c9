package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/auth"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/config"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/service"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

type fakeLoginUserRepo struct {
	repository.UserRepository

	byEmail map[string]*domain.User
}

func (f *fakeLoginUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, apperrors.NewNotFound("user")
}

func (f *fakeLoginUserRepo) UpdateRefreshToken(_ context.Context, _ int64, _ *string) error {
	return nil
}

type loginEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		User         struct {
			Email     string  `json:"email"`
			Role      string  `json:"role"`
			GSTNumber *string `json:"gstNumber"`
		} `json:"user"`
	} `json:"data"`
}

func newLoginApp(t *testing.T) *fiber.App {
	t.Helper()

	hash, err := auth.HashPassword("secret1", 4)
	require.NoError(t, err)

	gst := "27AAAAA0000A1Z5"
	firstname := "Jo"
	repo := &fakeLoginUserRepo{byEmail: map[string]*domain.User{
		"user@example.com": {
			ID: 1, Email: "user@example.com", PasswordHash: hash,
			Firstname: &firstname, Role: domain.RoleUser, GSTNumber: &gst,
		},
		"admin@example.com": {
			ID: 2, Email: "admin@example.com", PasswordHash: hash,
			Firstname: &firstname, Role: domain.RoleAdmin,
		},
	}}

	tokens := auth.NewTokenManager("test-secret", 15*time.Minute, 168*time.Hour)
	svc := service.NewAuthService(repo, tokens, config.AuthConfig{BcryptCost: 4}, zap.NewNop())
	h := NewAuthHandler(svc, auth.NewCookieSessionManager(false))

	app := fiber.New()
	app.Post("/login", h.Login)
	app.Post("/admin/login", h.AdminLogin)
	return app
}

func postLogin(t *testing.T, app *fiber.App, path, email string) *http.Response {
	t.Helper()
	body, err := json.Marshal(map[string]string{"email": email, "password": "secret1"})
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestUserLoginReturnsTokenPairWithoutCookies(t *testing.T) {
	app := newLoginApp(t)

	resp := postLogin(t, app, "/login", "user@example.com")
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env loginEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.True(t, env.Success)
	require.NotEmpty(t, env.Data.AccessToken)
	require.NotEmpty(t, env.Data.RefreshToken)
	require.Equal(t, "user@example.com", env.Data.User.Email)
	require.NotNil(t, env.Data.User.GSTNumber)
	require.Equal(t, "27AAAAA0000A1Z5", *env.Data.User.GSTNumber)

	require.Empty(t, resp.Header.Values("Set-Cookie"))
}

func TestAdminLoginSetsSessionCookiesAndReturnsTokens(t *testing.T) {
	app := newLoginApp(t)

	resp := postLogin(t, app, "/admin/login", "admin@example.com")
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var env loginEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	require.NotEmpty(t, env.Data.AccessToken)
	require.NotEmpty(t, env.Data.RefreshToken)

	cookies := resp.Header.Values("Set-Cookie")
	require.Len(t, cookies, 2)
	joined := strings.Join(cookies, "\n")
	require.Contains(t, joined, "accessToken=")
	require.Contains(t, joined, "refreshToken=")
	require.Contains(t, joined, "HttpOnly")
}
