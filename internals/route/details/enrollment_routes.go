// file: internals/route/details/enrollment_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "playgroupku_backend/internals/features/enrollment/attendance/route"
	broadcastRoute "playgroupku_backend/internals/features/enrollment/broadcasts/route"
	signupRoute "playgroupku_backend/internals/features/enrollment/signups/route"
)

// EnrollmentRoutes — pendaftaran, roster kehadiran, broadcast wali
func EnrollmentRoutes(user, admin fiber.Router, db *gorm.DB) {
	// User login: daftar & cek signup sendiri
	signupRoute.SignupUserRoutes(user, db)

	// Admin: kelola status, roster, broadcast
	signupRoute.SignupAdminRoutes(admin, db)
	attendanceRoute.AttendanceAdminRoutes(admin, db)
	broadcastRoute.BroadcastAdminRoutes(admin, db)
}
