package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/service"
	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/validation"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

// CategoriesHandler manages the taxonomy endpoints.
type CategoriesHandler struct {
	service *service.CategoryService
}

// NewCategoriesHandler constructs handler.
func NewCategoriesHandler(categoryService *service.CategoryService) *CategoriesHandler {
	return &CategoriesHandler{service: categoryService}
}

// List GET /admin/categories.
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	page := parsePage(c)
	rows, total, err := h.service.List(c.Context(), page, queryPtr(c, "search"))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(rows, dto.NewPagination(page, total), total))
}

// Create POST /admin/categories.
func (h *CategoriesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}
	category, err := h.service.Create(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(category, "category created"))
}

// Update PUT /admin/categories/:id.
func (h *CategoriesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	category, err := h.service.Update(c.Context(), id, req)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKMessage(category, "category updated"))
}

// Delete DELETE /admin/categories/:id.
func (h *CategoriesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.Response{Success: true, Message: "category deleted"})
}

// ListTypes GET /admin/categories/:categoryId/types.
func (h *CategoriesHandler) ListTypes(c *fiber.Ctx) error {
	categoryID, err := parseID(c, "categoryId")
	if err != nil {
		return err
	}
	category, err := h.service.Get(c.Context(), categoryID)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(category.Types))
}

// CreateType POST /admin/categories/:categoryId/types.
func (h *CategoriesHandler) CreateType(c *fiber.Ctx) error {
	categoryID, err := parseID(c, "categoryId")
	if err != nil {
		return err
	}
	var req dto.CreateCategoryTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	req.CategoryID = categoryID
	if err := validation.ValidateStruct(req); err != nil {
		return err
	}
	ct, err := h.service.CreateType(c.Context(), req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage(ct, "category type created"))
}

// UpdateType PUT /admin/category-types/:id.
func (h *CategoriesHandler) UpdateType(c *fiber.Ctx) error {
	typeID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateCategoryTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	ct, err := h.service.UpdateType(c.Context(), typeID, req)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKMessage(ct, "category type updated"))
}

// DeleteType DELETE /admin/category-types/:id.
func (h *CategoriesHandler) DeleteType(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.service.DeleteType(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.Response{Success: true, Message: "category type deleted"})
}
