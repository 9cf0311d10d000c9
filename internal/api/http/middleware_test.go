package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/observability"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

func middlewareApp() *fiber.App {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), time.Second)
	return app
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestErrorMiddlewareValidationEnvelope(t *testing.T) {
	app := middlewareApp()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return apperrors.NewValidationError("invalid payload", map[string]any{"email": "must be a valid email"})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, false, body["success"])
	require.Equal(t, "invalid payload", body["message"])
	errs := body["errors"].(map[string]any)
	require.Equal(t, "must be a valid email", errs["email"])
}

func TestErrorMiddlewareNotFound(t *testing.T) {
	app := middlewareApp()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return apperrors.NewNotFound("partner")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestErrorMiddlewareRecoversPanic(t *testing.T) {
	app := middlewareApp()
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/panic", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, false, body["success"])
}

func TestErrorMiddlewarePassesThroughSuccess(t *testing.T) {
	app := middlewareApp()
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
