// file: internals/route/details/program_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	blockRoute "playgroupku_backend/internals/features/program/blocks/route"
	exclusionRoute "playgroupku_backend/internals/features/program/exclusion_dates/route"
	occurrenceRoute "playgroupku_backend/internals/features/program/occurrences/route"
	sessionRoute "playgroupku_backend/internals/features/program/sessions/route"
)

// ProgramRoutes — kalender program: block, libur, session, occurrence
func ProgramRoutes(public, user, admin fiber.Router, db *gorm.DB, cache *redis.Client) {
	// Public: katalog session (cached)
	sessionRoute.SessionPublicRoutes(public, db, cache)

	// User login: lihat jadwal occurrence
	occurrenceRoute.OccurrenceUserRoutes(user, db)

	// Admin: kelola kalender + generate occurrence
	blockRoute.BlockAdminRoutes(admin, db)
	exclusionRoute.ExclusionDateAdminRoutes(admin, db)
	sessionRoute.SessionAdminRoutes(admin, db)
	occurrenceRoute.OccurrenceAdminRoutes(admin, db)
}
