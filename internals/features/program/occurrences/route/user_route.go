// file: internals/features/program/occurrences/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "playgroupku_backend/internals/features/program/occurrences/controller"
)

// OccurrenceUserRoutes — caregiver login bisa lihat jadwal occurrence
func OccurrenceUserRoutes(user fiber.Router, db *gorm.DB) {
	oc := ctl.New(db, validator.New())

	grp := user.Group("/occurrences")
	grp.Get("/", oc.List)
	grp.Get("/:id", oc.GetByID)
}
