// file: internals/features/enrollment/broadcasts/route/admin_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "playgroupku_backend/internals/features/enrollment/broadcasts/controller"
	"playgroupku_backend/internals/middlewares"
)

// BroadcastAdminRoutes — broadcast ke wali satu session, dibatasi rate limiter
func BroadcastAdminRoutes(admin fiber.Router, db *gorm.DB) {
	bc := ctl.New(db, validator.New())

	admin.Post("/sessions/:id/broadcast", middlewares.BroadcastRateLimiter(), bc.Send)
}
