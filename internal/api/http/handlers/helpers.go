package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/amarjeet-choudhary666/htwo-freelance-project/internal/api/dto"
	apperrors "github.com/amarjeet-choudhary666/htwo-freelance-project/pkg/util/errorutil"
)

func parsePage(c *fiber.Ctx) dto.PageRequest {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	return dto.NewPageRequest(page, limit)
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.NewValidationError("invalid id", map[string]any{name: c.Params(name)})
	}
	return id, nil
}

func queryPtr(c *fiber.Ctx, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}

func errInvalidPayload() error {
	return apperrors.NewValidationError("invalid payload", nil)
}

func errInvalidPriority(value string) error {
	return apperrors.NewValidationError("invalid priority", map[string]any{"priority": value})
}

func sendCSV(c *fiber.Ctx, filename string, body []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}
