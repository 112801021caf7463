// file: internals/features/enrollment/signups/route/user_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "playgroupku_backend/internals/features/enrollment/signups/controller"
)

// SignupUserRoutes — caregiver login mendaftarkan anak ke session
func SignupUserRoutes(user fiber.Router, db *gorm.DB) {
	sc := ctl.New(db, validator.New())

	grp := user.Group("/signups")
	grp.Post("/", sc.Create)
	grp.Get("/:id", sc.GetByID)
}
