// file: internals/features/program/blocks/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "playgroupku_backend/internals/features/program/blocks/controller"
)

// BlockAdminRoutes mendaftarkan route ADMIN (CRUD penuh)
func BlockAdminRoutes(admin fiber.Router, db *gorm.DB) {
	blocks := ctl.New(db, validator.New())

	grp := admin.Group("/blocks")
	grp.Post("/", blocks.Create)
	grp.Get("/", blocks.List)
	grp.Get("/:id", blocks.GetByID)
	grp.Patch("/:id", blocks.Patch)
	grp.Delete("/:id", blocks.Delete)
}
