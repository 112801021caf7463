// file: internals/features/enrollment/broadcasts/controller/broadcast_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "playgroupku_backend/internals/features/enrollment/broadcasts/dto"
	signupModel "playgroupku_backend/internals/features/enrollment/signups/model"
	sessModel "playgroupku_backend/internals/features/program/sessions/model"
	helper "playgroupku_backend/internals/helpers"
	"playgroupku_backend/internals/queue"
)

/* =========================
   Controller & Constructor
   ========================= */

type BroadcastController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *BroadcastController {
	return &BroadcastController{DB: db, Validate: v}
}

/* =========================
   Send (fire-and-forget)
   ========================= */

// Send: POST /sessions/:id/broadcast — bangun target set dari signup session
// (filter status), lalu publish ke queue. Kegagalan publisher tidak
// menggagalkan request; hanya dilaporkan lewat flag sent=false.
func (ctl *BroadcastController) Send(c *fiber.Ctx) error {
	sessionIDStr := strings.TrimSpace(c.Params("id"))
	sessionID, err := uuid.Parse(sessionIDStr)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid session id")
	}

	var req d.SendBroadcastRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var sess sessModel.SessionModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("session_id = ?", sessionID).
		Take(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Session tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	statuses := req.Statuses
	if len(statuses) == 0 {
		statuses = []string{string(signupModel.SignupStatusConfirmed)}
	}

	var targets []signupModel.SignupModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("signup_session_id = ? AND signup_status IN ?", sessionID, statuses).
		Order("signup_created_at ASC").
		Find(&targets).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	if len(targets) == 0 {
		return helper.JsonOK(c, "Tidak ada penerima", d.SendBroadcastResponse{Queued: 0, Sent: true})
	}

	now := time.Now().UTC().Format(time.RFC3339)
	msgs := make([]queue.BroadcastMessage, 0, len(targets))
	for _, t := range targets {
		phone := ""
		if t.SignupGuardianPhone != nil {
			phone = *t.SignupGuardianPhone
		}
		msgs = append(msgs, queue.BroadcastMessage{
			SignupID:      t.SignupID.String(),
			SessionID:     sessionID.String(),
			GuardianName:  t.SignupGuardianName,
			GuardianEmail: t.SignupGuardianEmail,
			GuardianPhone: phone,
			Subject:       req.Subject,
			Body:          fmt.Sprintf("[%s] %s", sess.SessionName, req.Body),
			QueuedAt:      now,
		})
	}

	sent := true
	if err := queue.PublishBroadcast(c.Context(), msgs); err != nil {
		log.Printf("⚠️ [Broadcast.Send] publish gagal session=%s: %v", sessionID, err)
		sent = false
	}

	return helper.JsonOK(c, "Broadcast queued", d.SendBroadcastResponse{Queued: len(msgs), Sent: sent})
}
