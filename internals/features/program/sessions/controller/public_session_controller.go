// file: internals/features/program/sessions/controller/public_session_controller.go
package controller

import (
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	d "playgroupku_backend/internals/features/program/sessions/dto"
	m "playgroupku_backend/internals/features/program/sessions/model"
	helper "playgroupku_backend/internals/helpers"
)

/* =========================
   Public (read-only, cached)
   ========================= */

const publicSessionCacheTTL = 60 * time.Second

type PublicSessionController struct {
	DB    *gorm.DB
	Cache *redis.Client // boleh nil → langsung ke DB
}

func NewPublic(db *gorm.DB, cache *redis.Client) *PublicSessionController {
	return &PublicSessionController{DB: db, Cache: cache}
}

func publicSessionCacheKey(year string) string {
	if year == "" {
		year = "all"
	}
	return "public:sessions:" + year
}

// ListPublic mengembalikan session aktif (tidak diarsip) untuk katalog publik.
// Hasil dicache di Redis 60 detik; kalau Redis mati, fallback ke DB.
func (ctl *PublicSessionController) ListPublic(c *fiber.Ctx) error {
	year := strings.TrimSpace(c.Query("year"))
	key := publicSessionCacheKey(year)

	if ctl.Cache != nil {
		if raw, err := ctl.Cache.Get(c.Context(), key).Bytes(); err == nil {
			var cached []d.SessionResponse
			if er := json.Unmarshal(raw, &cached); er == nil {
				return helper.JsonOK(c, "Sessions", cached)
			}
		}
	}

	q := ctl.DB.WithContext(c.Context()).
		Model(&m.SessionModel{}).
		Where("session_is_archived = FALSE")
	if year != "" {
		q = q.Where("session_year = ?", year)
	}

	var rows []m.SessionModel
	if err := q.Order("session_day_of_week ASC NULLS LAST, session_start_time ASC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.SessionResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, d.FromModel(row, nil))
	}

	if ctl.Cache != nil {
		if raw, err := json.Marshal(out); err == nil {
			if er := ctl.Cache.Set(c.Context(), key, raw, publicSessionCacheTTL).Err(); er != nil {
				log.Printf("[Session.ListPublic] cache set gagal: %v", er)
			}
		}
	}
	return helper.JsonOK(c, "Sessions", out)
}
