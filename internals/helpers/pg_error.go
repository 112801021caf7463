package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

/* ===============================
   PG error mapping (SQLState)
=================================*/

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// MapPGError memetakan error Postgres ke (status, pesan).
// 23505 = unique_violation, 23503 = foreign_key_violation, 23P01 = exclusion_violation
func MapPGError(err error) (int, string) {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23P01":
			return http.StatusConflict, "Bentrok data (exclusion violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}

// IsUniqueViolation: true kalau err adalah unique_violation (23505).
func IsUniqueViolation(err error) bool {
	var pgErr pgSQLErr
	return errors.As(err, &pgErr) && pgErr.SQLState() == "23505"
}
