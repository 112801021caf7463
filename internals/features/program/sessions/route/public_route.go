// file: internals/features/program/sessions/route/public_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	ctl "playgroupku_backend/internals/features/program/sessions/controller"
)

// SessionPublicRoutes mendaftarkan route PUBLIC (tanpa login) untuk katalog session
func SessionPublicRoutes(public fiber.Router, db *gorm.DB, cache *redis.Client) {
	pc := ctl.NewPublic(db, cache)

	grp := public.Group("/sessions")
	grp.Get("/", pc.ListPublic) // ?year=
}
