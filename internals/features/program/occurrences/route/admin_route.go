// file: internals/features/program/occurrences/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "playgroupku_backend/internals/features/program/occurrences/controller"
)

// OccurrenceAdminRoutes mendaftarkan route ADMIN untuk occurrence
func OccurrenceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	oc := ctl.New(db, validator.New())

	// Generate dari pola mingguan session
	admin.Post("/sessions/:id/generate-occurrences", oc.Generate)

	grp := admin.Group("/occurrences")
	grp.Post("/one-off", oc.CreateOneOff)
	grp.Get("/", oc.List) // ?session_id= &from= &to= &include_canceled=false
	grp.Get("/:id", oc.GetByID)
	grp.Post("/:id/cancel", oc.Cancel)
	grp.Post("/:id/reinstate", oc.Reinstate)
}
