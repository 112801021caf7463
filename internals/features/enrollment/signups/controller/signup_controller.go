// file: internals/features/enrollment/signups/controller/signup_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	d "playgroupku_backend/internals/features/enrollment/signups/dto"
	m "playgroupku_backend/internals/features/enrollment/signups/model"
	svc "playgroupku_backend/internals/features/enrollment/signups/service"
	sessModel "playgroupku_backend/internals/features/program/sessions/model"
	helper "playgroupku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type SignupController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SignupController {
	return &SignupController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Create (placement awal)
   ========================= */

// Create mendaftarkan anak ke session. Status awal dihitung dari
// kapasitas vs jumlah confirmed saat ini (lihat service.DecideInitialStatus).
func (ctl *SignupController) Create(c *fiber.Ctx) error {
	var req d.CreateSignupRequest
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
		Where("session_id = ?", req.SignupSessionID).
		Take(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Session tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	if sess.SessionIsArchived {
		return helper.JsonError(c, http.StatusUnprocessableEntity, "Session sudah diarsip")
	}

	var confirmedCount int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m.SignupModel{}).
		Where("signup_session_id = ? AND signup_status = ?", sess.SessionID, m.SignupStatusConfirmed).
		Count(&confirmedCount).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	model := req.ToModel()
	model.SignupStatus = svc.DecideInitialStatus(sess.SessionCapacity, sess.SessionWaitlistEnabled, confirmedCount)

	if err := ctl.DB.WithContext(c.Context()).Create(&model).Error; err != nil {
		log.Printf("[Signup.Create] DB.Create error: %v", err)
		return helper.WritePGError(c, err)
	}

	log.Printf("✅ [Signup.Create] session=%s child=%s status=%s", sess.SessionID, model.SignupChildID, model.SignupStatus)
	return helper.JsonCreated(c, "Signup created", d.FromModel(model))
}

/* =========================
   ChangeStatus (admin override)
   ========================= */

// ChangeStatus menerima status target apa pun tanpa validasi kapasitas ulang —
// kapasitas advisory, admin yang memutuskan. Over-capacity hanya dicatat di log.
func (ctl *SignupController) ChangeStatus(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid signup id")
	}

	var req d.ChangeSignupStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	target := m.SignupStatus(req.SignupStatus)
	if !target.Valid() {
		return helper.JsonError(c, http.StatusBadRequest, "signup_status invalid")
	}

	var model m.SignupModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("signup_id = ?", id).
		Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Signup tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	model.SignupStatus = target
	if err := ctl.DB.WithContext(c.Context()).Save(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	if target == m.SignupStatusConfirmed {
		ctl.warnIfOverCapacity(c, model.SignupSessionID)
	}
	return helper.JsonUpdated(c, "Signup status updated", d.FromModel(model))
}

func (ctl *SignupController) warnIfOverCapacity(c *fiber.Ctx, sessionID uuid.UUID) {
	var sess sessModel.SessionModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("session_id = ?", sessionID).
		Take(&sess).Error; err != nil || sess.SessionCapacity == nil {
		return
	}
	var confirmed int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m.SignupModel{}).
		Where("signup_session_id = ? AND signup_status = ?", sessionID, m.SignupStatusConfirmed).
		Count(&confirmed).Error; err != nil {
		return
	}
	if confirmed > int64(*sess.SessionCapacity) {
		log.Printf("⚠️ [Signup.ChangeStatus] session=%s confirmed=%d melebihi kapasitas=%d", sessionID, confirmed, *sess.SessionCapacity)
	}
}

/* =========================
   Reads
   ========================= */

// ListBySession mengembalikan signup satu session terpartisi per status
func (ctl *SignupController) ListBySession(c *fiber.Ctx) error {
	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid session id")
	}

	var rows []m.SignupModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("signup_session_id = ?", sessionID).
		Order("signup_created_at ASC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	parts := svc.PartitionByStatus(rows)
	resp := d.PartitionedSignupsResponse{
		SignupSessionID: sessionID,
		Pending:         d.FromModels(parts[m.SignupStatusPending]),
		Confirmed:       d.FromModels(parts[m.SignupStatusConfirmed]),
		Waitlisted:      d.FromModels(parts[m.SignupStatusWaitlisted]),
		Withdrawn:       d.FromModels(parts[m.SignupStatusWithdrawn]),
	}
	return helper.JsonOK(c, "Signups", resp)
}

// Summary — agregat per status via array_agg (untuk export cepat)
func (ctl *SignupController) Summary(c *fiber.Ctx) error {
	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid session id")
	}

	type aggRow struct {
		SignupStatus string         `gorm:"column:signup_status"`
		ChildNames   pq.StringArray `gorm:"column:child_names;type:text[]"`
	}
	var aggs []aggRow
	if err := ctl.DB.WithContext(c.Context()).
		Model(&m.SignupModel{}).
		Select("signup_status, array_agg(signup_child_name ORDER BY signup_created_at) AS child_names").
		Where("signup_session_id = ?", sessionID).
		Group("signup_status").
		Scan(&aggs).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.SignupStatusSummary, 0, len(aggs))
	for _, a := range aggs {
		out = append(out, d.SignupStatusSummary{
			SignupStatus: a.SignupStatus,
			Count:        len(a.ChildNames),
			ChildNames:   a.ChildNames,
		})
	}
	return helper.JsonOK(c, "Signup summary", out)
}

func (ctl *SignupController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid signup id")
	}
	var model m.SignupModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("signup_id = ?", id).
		Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Signup tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Signup", d.FromModel(model))
}
