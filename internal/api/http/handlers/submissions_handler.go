package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/domain"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/export"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/service"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/validation"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

// SubmissionsHandler manages the admin submission endpoints and the public
// lead-capture form.
type SubmissionsHandler struct {
	service *service.SubmissionService
}

// NewSubmissionsHandler constructs handler.
func NewSubmissionsHandler(submissionService *service.SubmissionService) *SubmissionsHandler {
	return &SubmissionsHandler{service: submissionService}
}

// CreatePublic POST /submissions.
func (h *SubmissionsHandler) CreatePublic(c *fiber.Ctx) error {
	var req dto.CreateSubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}
	sub, err := h.service.Create(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(sub, "submission received"))
}

// List GET /admin/submissions.
func (h *SubmissionsHandler) List(c *fiber.Ctx) error {
	return h.list(c, nil)
}

// ListDemo GET /admin/submissions/demo.
func (h *SubmissionsHandler) ListDemo(c *fiber.Ctx) error {
	t := domain.SubmissionTypeDemo
	return h.list(c, &t)
}

// ListContact GET /admin/submissions/contact.
func (h *SubmissionsHandler) ListContact(c *fiber.Ctx) error {
	t := domain.SubmissionTypeContact
	return h.list(c, &t)
}

// ListGetInTouch GET /admin/submissions/get-in-touch.
func (h *SubmissionsHandler) ListGetInTouch(c *fiber.Ctx) error {
	t := domain.SubmissionTypeGetInTouch
	return h.list(c, &t)
}

func (h *SubmissionsHandler) list(c *fiber.Ctx, fixed *domain.SubmissionType) error {
	page := parsePage(c)

	subType := fixed
	if subType == nil {
		if v := c.Query("type"); v != "" {
			if !domain.ValidSubmissionType(v) {
				return apperrors.NewValidationError("invalid submission type", map[string]any{"type": v})
			}
			t := domain.SubmissionType(v)
			subType = &t
		}
	}

	var status *domain.SubmissionStatus
	if v := c.Query("status"); v != "" {
		if !domain.ValidSubmissionStatus(v) {
			return apperrors.NewValidationError("invalid submission status", map[string]any{"status": v})
		}
		s := domain.SubmissionStatus(v)
		status = &s
	}

	rows, total, err := h.service.List(c.Context(), page, subType, status, queryPtr(c, "search"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(rows, dto.NewPagination(page, total), total))
}

// Get GET /admin/submission/:id.
func (h *SubmissionsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	sub, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(sub))
}

// UpdateStatus PUT /admin/submission/:id/status.
func (h *SubmissionsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	sub, err := h.service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKMessage(sub, "status updated"))
}

// Delete DELETE /admin/submission/:id.
func (h *SubmissionsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.Response{Success: true, Message: "submission deleted"})
}

// BulkDelete POST /admin/bulk/delete-submissions.
func (h *SubmissionsHandler) BulkDelete(c *fiber.Ctx) error {
	var req dto.BulkIDsRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}
	affected, err := h.service.DeleteMany(c.Context(), req.IDs)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKMessage(fiber.Map{"deleted": affected}, "submissions deleted"))
}

// BulkUpdateStatus POST /admin/bulk/update-status.
func (h *SubmissionsHandler) BulkUpdateStatus(c *fiber.Ctx) error {
	var req dto.BulkStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}
	affected, err := h.service.UpdateStatusMany(c.Context(), req.IDs, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKMessage(fiber.Map{"updated": affected}, "status updated"))
}

// Dashboard GET /admin/dashboard.
func (h *SubmissionsHandler) Dashboard(c *fiber.Ctx) error {
	dash, err := h.service.Dashboard(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(dash))
}

// Export GET /admin/export/submissions.
func (h *SubmissionsHandler) Export(c *fiber.Ctx) error {
	body, err := h.service.ExportCSV(c.Context())
	if err != nil {
		return err
	}
	return sendCSV(c, export.Filename("submissions", time.Now()), body)
}
