// file: internals/features/program/sessions/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "playgroupku_backend/internals/features/program/sessions/controller"
)

// SessionAdminRoutes mendaftarkan route ADMIN untuk session mingguan
func SessionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	sc := ctl.New(db, validator.New())

	grp := admin.Group("/sessions")
	grp.Post("/", sc.Create)
	grp.Get("/", sc.List) // ?year= &include_archived=true
	grp.Get("/:id", sc.GetByID)
	grp.Patch("/:id", sc.Patch)
	grp.Delete("/:id", sc.Delete) // ?force=true kalau sudah ada occurrence
}
