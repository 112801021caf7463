package auth

import (
	"github.com/gofiber/fiber/v2"

	"playgroupku_backend/internals/constants"
)

// OnlyRoles membatasi akses berdasarkan claim role
func OnlyRoles(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Akses ditolak")
	}
}

func IsAdmin(c *fiber.Ctx) bool {
	role, _ := c.Locals("role").(string)
	return role == constants.RoleAdmin
}

func IsCaregiver(c *fiber.Ctx) bool {
	role, _ := c.Locals("role").(string)
	return role == constants.RoleCaregiver
}
