// file: internals/features/enrollment/attendance/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "playgroupku_backend/internals/features/enrollment/attendance/controller"
)

// AttendanceAdminRoutes mendaftarkan route ADMIN untuk roster & mark kehadiran
func AttendanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ac := ctl.New(db, validator.New())

	admin.Get("/occurrences/:id/roster", ac.GetRoster) // ?status=all
	admin.Post("/occurrences/:id/attendance", ac.Mark)
}
