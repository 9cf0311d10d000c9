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

// PartnersHandler manages admin partner CRUD and the public listing.
type PartnersHandler struct {
	service *service.PartnerService
}

// NewPartnersHandler constructs handler.
func NewPartnersHandler(partnerService *service.PartnerService) *PartnersHandler {
	return &PartnersHandler{service: partnerService}
}

// logoUpload extracts the optional multipart logo file. A missing file is not
// an error.
func logoUpload(c *fiber.Ctx) (*service.LogoUpload, func(), error) {
	header, err := c.FormFile("logo")
	if err != nil {
		return nil, func() {}, nil
	}
	file, err := header.Open()
	if err != nil {
		return nil, func() {}, apperrors.NewValidationError("unreadable logo file", nil)
	}
	upload := &service.LogoUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}
	return upload, func() { _ = file.Close() }, nil
}

// Create POST /admin/partners (multipart).
func (h *PartnersHandler) Create(c *fiber.Ctx) error {
	var req dto.CreatePartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}

	logo, closeLogo, err := logoUpload(c)
	if err != nil {
		return err
	}
	defer closeLogo()

	partner, err := h.service.Create(c.Context(), req, logo)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(partner, "partner created"))
}

// Update PUT /admin/partners/:id (multipart).
func (h *PartnersHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdatePartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}

	logo, closeLogo, err := logoUpload(c)
	if err != nil {
		return err
	}
	defer closeLogo()

	partner, err := h.service.Update(c.Context(), id, req, logo)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKMessage(partner, "partner updated"))
}

// List GET /admin/partners.
func (h *PartnersHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)

	var status *domain.PartnerStatus
	if v := c.Query("status"); v != "" {
		if !domain.ValidPartnerStatus(v) {
			return apperrors.NewValidationError("invalid partner status", map[string]any{"status": v})
		}
		s := domain.PartnerStatus(v)
		status = &s
	}

	rows, total, err := h.service.List(c.Context(), page, status, queryPtr(c, "search"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(rows, dto.NewPagination(page, total), total))
}

// Get GET /admin/partners/:id.
func (h *PartnersHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	partner, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(partner))
}

// UpdateStatus PUT /admin/partners/:id/status.
func (h *PartnersHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	partner, err := h.service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKMessage(partner, "status updated"))
}

// Delete DELETE /admin/partners/:id.
func (h *PartnersHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.Response{Success: true, Message: "partner deleted"})
}

// BulkDelete POST /admin/partners/bulk/delete.
func (h *PartnersHandler) BulkDelete(c *fiber.Ctx) error {
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
	return c.JSON(dto.OKMessage(fiber.Map{"deleted": affected}, "partners deleted"))
}

// BulkUpdateStatus POST /admin/partners/bulk/update-status.
func (h *PartnersHandler) BulkUpdateStatus(c *fiber.Ctx) error {
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

// Export GET /admin/export/partners.
func (h *PartnersHandler) Export(c *fiber.Ctx) error {
	body, err := h.service.ExportCSV(c.Context())
	if err != nil {
		return err
	}
	return sendCSV(c, export.Filename("partners", time.Now()), body)
}

// ListApproved GET /partners. Public, approved partners only.
func (h *PartnersHandler) ListApproved(c *fiber.Ctx) error {
	rows, err := h.service.ListApproved(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(rows))
}

// GetPublic GET /partners/:id.
func (h *PartnersHandler) GetPublic(c *fiber.Ctx) error {
	return h.Get(c)
}
