// file: internals/features/program/exclusion_dates/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "playgroupku_backend/internals/features/program/exclusion_dates/controller"
)

// ExclusionDateAdminRoutes mendaftarkan route ADMIN untuk daftar libur global
func ExclusionDateAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ex := ctl.New(db, validator.New())

	grp := admin.Group("/exclusion-dates")
	grp.Post("/", ex.Create)
	grp.Get("/", ex.List) // ?year=
	grp.Patch("/:id", ex.Patch)
	grp.Delete("/:id", ex.Delete)
}
