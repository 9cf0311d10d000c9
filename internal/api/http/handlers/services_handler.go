package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/repository"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/service"
)

// ServicesHandler manages the admin catalog endpoints and the public catalog
// reads.
type ServicesHandler struct {
	service *service.CatalogService
}

// NewServicesHandler constructs handler.
func NewServicesHandler(catalogService *service.CatalogService) *ServicesHandler {
	return &ServicesHandler{service: catalogService}
}

func serviceFilter(c *fiber.Ctx) repository.ServiceFilter {
	filter := repository.ServiceFilter{
		CategoryName: queryPtr(c, "category"),
		SearchTerm:   queryPtr(c, "search"),
	}
	if v := c.Query("priority"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			filter.Priority = &p
		}
	}
	return filter
}

// List GET /admin/services.
func (h *ServicesHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	rows, total, err := h.service.List(c.Context(), page, serviceFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(rows, dto.NewPagination(page, total), total))
}

// Get GET /admin/services/:id.
func (h *ServicesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	svc, err := h.service.Get(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(svc))
}

// Create POST /admin/services. Catalog entries are seeded out of band.
func (h *ServicesHandler) Create(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{
		Success: false,
		Message: "service creation is not implemented",
	})
}

// Update PUT /admin/services/:id. Catalog entries are seeded out of band.
func (h *ServicesHandler) Update(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotImplemented).JSON(dto.ErrorResponse{
		Success: false,
		Message: "service update is not implemented",
	})
}

// UpdateStatus PUT /admin/services/:id/status.
func (h *ServicesHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return errInvalidPayload()
	}
	svc, err := h.service.UpdateStatus(c.Context(), id, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKMessage(svc, "status updated"))
}

// Delete DELETE /admin/services/:id.
func (h *ServicesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.Response{Success: true, Message: "service deleted"})
}

// ListByCategoryType GET /admin/services/category-type/:id.
func (h *ServicesHandler) ListByCategoryType(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	page := parsePage(c)
	filter := repository.ServiceFilter{CategoryTypeID: &id}
	rows, total, err := h.service.List(c.Context(), page, filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(rows, dto.NewPagination(page, total), total))
}

// ListPublic GET /services. Active entries only.
func (h *ServicesHandler) ListPublic(c *fiber.Ctx) error {
	page := parsePage(c)
	rows, total, err := h.service.ListActive(c.Context(), page, serviceFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(rows, dto.NewPagination(page, total), total))
}

// ListPublicByCategory GET /services/category/:category.
func (h *ServicesHandler) ListPublicByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	page := parsePage(c)
	filter := repository.ServiceFilter{CategoryName: &category}
	rows, total, err := h.service.ListActive(c.Context(), page, filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(rows, dto.NewPagination(page, total), total))
}

// ListPublicByPriority GET /services/priority/:priority.
func (h *ServicesHandler) ListPublicByPriority(c *fiber.Ctx) error {
	priority, err := strconv.Atoi(c.Params("priority"))
	if err != nil {
		return errInvalidPriority(c.Params("priority"))
	}
	page := parsePage(c)
	filter := repository.ServiceFilter{Priority: &priority}
	rows, total, err := h.service.ListActive(c.Context(), page, filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(rows, dto.NewPagination(page, total), total))
}

// ListPublicByCategoryAndPriority GET /services/category/:category/priority/:priority.
func (h *ServicesHandler) ListPublicByCategoryAndPriority(c *fiber.Ctx) error {
	category := c.Params("category")
	priority, err := strconv.Atoi(c.Params("priority"))
	if err != nil {
		return errInvalidPriority(c.Params("priority"))
	}
	page := parsePage(c)
	filter := repository.ServiceFilter{CategoryName: &category, Priority: &priority}
	rows, total, err := h.service.ListActive(c.Context(), page, filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(rows, dto.NewPagination(page, total), total))
}

// ListPublicByCategoryType GET /services/category-type/:id.
func (h *ServicesHandler) ListPublicByCategoryType(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	page := parsePage(c)
	filter := repository.ServiceFilter{CategoryTypeID: &id}
	rows, total, err := h.service.ListActive(c.Context(), page, filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(rows, dto.NewPagination(page, total), total))
}
