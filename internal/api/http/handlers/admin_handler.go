package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/service"
)

// AdminHandler serves the analytics, stats and settings endpoints.
type AdminHandler struct {
	analytics *service.AnalyticsService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(analyticsService *service.AnalyticsService) *AdminHandler {
	return &AdminHandler{analytics: analyticsService}
}

// Analytics GET /admin/analytics.
func (h *AdminHandler) Analytics(c *fiber.Ctx) error {
	out, err := h.analytics.Analytics(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(out))
}

// Stats GET /admin/stats and GET /admin/api/stats. Always answers 200; a
// failed count inside the service becomes zero.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	return c.JSON(dto.OK(h.analytics.Stats(c.Context())))
}

// GetSettings GET /admin/settings. Static payload.
func (h *AdminHandler) GetSettings(c *fiber.Ctx) error {
	return c.JSON(dto.OK(settingsPayload()))
}

// UpdateSettings PUT /admin/settings. Settings are not persisted; the static
// payload is echoed back.
func (h *AdminHandler) UpdateSettings(c *fiber.Ctx) error {
	return c.JSON(dto.OKMessage(settingsPayload(), "settings saved"))
}

func settingsPayload() fiber.Map {
	return fiber.Map{
		"siteName":           "HTWO Cloud Services",
		"contactEmail":       "contact@htwo.example",
		"maintenanceMode":    false,
		"submissionsEnabled": true,
	}
}
