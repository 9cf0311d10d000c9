package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/export"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/service"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/validation"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

// UsersHandler manages the admin account endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// List GET /admin/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	rows, total, err := h.service.List(c.Context(), page, queryPtr(c, "search"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(rows, dto.NewPagination(page, total), total))
}

// Get GET /admin/users/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, recent, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(fiber.Map{"user": user, "recentSubmissions": recent}))
}

// Update PUT /admin/users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}
	user, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKMessage(user, "user updated"))
}

// Delete DELETE /admin/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.Response{Success: true, Message: "user deleted"})
}

// Export GET /admin/export/users.
func (h *UsersHandler) Export(c *fiber.Ctx) error {
	body, err := h.service.ExportCSV(c.Context())
	if err != nil {
		return err
	}
	return sendCSV(c, export.Filename("users", time.Now()), body)
}
