// file: internals/features/enrollment/signups/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "playgroupku_backend/internals/features/enrollment/signups/controller"
)

// SignupAdminRoutes mendaftarkan route ADMIN untuk pendaftaran
func SignupAdminRoutes(admin fiber.Router, db *gorm.DB) {
	sc := ctl.New(db, validator.New())

	admin.Get("/sessions/:id/signups", sc.ListBySession)
	admin.Get("/sessions/:id/signups/summary", sc.Summary)

	grp := admin.Group("/signups")
	grp.Get("/:id", sc.GetByID)
	grp.Patch("/:id/status", sc.ChangeStatus)
}
