// internals/helpers/auth/claims.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Accessors over the locals stored by the auth middleware.

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("user_id not found in token")
	}
	return uuid.Parse(raw)
}

func GetRoleFromToken(c *fiber.Ctx) (string, error) {
	role, ok := c.Locals("userRole").(string)
	if !ok || role == "" {
		return "", errors.New("role not found in token")
	}
	return role, nil
}

// GetCampusIDFromToken returns uuid.Nil without error for global roles that
// carry no tenant scope.
func GetCampusIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("campus_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(raw)
}
