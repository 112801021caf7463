// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"playgroupku_backend/internals/caches"
	"playgroupku_backend/internals/constants"
	"playgroupku_backend/internals/middlewares"
	"playgroupku_backend/internals/middlewares/auth"
	"playgroupku_backend/internals/route/details"
)

// SetupRoutes mendaftarkan seluruh route aplikasi:
//   - /api/public : tanpa login (katalog session)
//   - /api/u      : wajib login (caregiver & admin)
//   - /api/a      : wajib login + role admin
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	cache := caches.NewRedisClient() // boleh nil kalau Redis tidak tersedia

	api := app.Group("/api", middlewares.DBMiddleware(db))

	public := api.Group("/public")
	user := api.Group("/u", auth.AuthMiddleware())
	admin := api.Group("/a", auth.AuthMiddleware(), auth.OnlyRoles(constants.RoleAdmin))

	details.ProgramRoutes(public, user, admin, db, cache)
	details.EnrollmentRoutes(user, admin, db)
}
