package helper

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchPageParams(t *testing.T, target string) (PageParams, int) {
	t.Helper()

	app := fiber.New()
	var got PageParams
	app.Get("/items", func(c *fiber.Ctx) error {
		p, err := ParsePagination(c)
		if err != nil {
			return err
		}
		got = p
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	return got, resp.StatusCode
}

func TestParsePaginationDefaults(t *testing.T) {
	p, code := fetchPageParams(t, "/items")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, DefaultPage, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestParsePaginationExplicit(t *testing.T) {
	p, code := fetchPageParams(t, "/items?page=3&page_size=50")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 50, p.PageSize)
	assert.Equal(t, 100, p.Offset())
}

func TestParsePaginationCapIsAnError(t *testing.T) {
	_, code := fetchPageParams(t, "/items?page_size=200")
	assert.Equal(t, fiber.StatusOK, code, "200 is the cap, still legal")

	_, code = fetchPageParams(t, "/items?page_size=201")
	assert.Equal(t, fiber.StatusBadRequest, code, "above the cap is a client error, not a clamp")

	_, code = fetchPageParams(t, "/items?page=0")
	assert.Equal(t, fiber.StatusBadRequest, code)

	_, code = fetchPageParams(t, "/items?page_size=abc")
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestParsePaginationPerPageAlias(t *testing.T) {
	p, code := fetchPageParams(t, "/items?per_page=10")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, 10, p.PageSize)
}
