package helper

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 25
	MaxPageSize     = 200
)

type PageParams struct {
	Page     int
	PageSize int
}

// ParsePagination reads page / page_size query params. page_size above the
// hard cap is a client error, not a silent clamp.
func ParsePagination(c *fiber.Ctx) (PageParams, error) {
	p := PageParams{Page: DefaultPage, PageSize: DefaultPageSize}

	if raw := strings.TrimSpace(c.Query("page")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return p, fiber.NewError(fiber.StatusBadRequest, "page must be an integer >= 1")
		}
		p.Page = n
	}

	if raw := strings.TrimSpace(firstNonEmpty(c.Query("page_size"), c.Query("per_page"))); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > MaxPageSize {
			return p, fiber.NewError(fiber.StatusBadRequest, "page_size must be between 1 and 200")
		}
		p.PageSize = n
	}

	return p, nil
}

func (p PageParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
