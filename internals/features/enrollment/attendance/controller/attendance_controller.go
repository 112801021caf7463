// file: internals/features/enrollment/attendance/controller/attendance_controller.go
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
	"gorm.io/gorm"

	d "playgroupku_backend/internals/features/enrollment/attendance/dto"
	m "playgroupku_backend/internals/features/enrollment/attendance/model"
	svc "playgroupku_backend/internals/features/enrollment/attendance/service"
	helper "playgroupku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Roll     *svc.RollBuilderService
}

func New(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{
		DB:       db,
		Validate: v,
		Roll:     svc.NewRollBuilder(db),
	}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Roster
   ========================= */

// GetRoster: GET /occurrences/:id/roster (?status=all untuk semua signup)
func (ctl *AttendanceController) GetRoster(c *fiber.Ctx) error {
	occurrenceID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid occurrence id")
	}

	roster, err := ctl.Roll.BuildRoster(c.Context(), occurrenceID, strings.TrimSpace(c.Query("status")))
	if err != nil {
		if errors.Is(err, svc.ErrOccurrenceNotFound) {
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		}
		log.Printf("[Attendance.GetRoster] error: %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Roster", roster)
}

/* =========================
   Mark (upsert)
   ========================= */

// Mark: POST /occurrences/:id/attendance — idempoten terhadap keberadaan,
// status & marked_at selalu mengikuti mark terakhir. Occurrence batal
// menolak mark baru kecuali ?force=true (koreksi retroaktif).
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	occurrenceID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid occurrence id")
	}

	var req d.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	status := m.AttendanceStatus(req.AttendanceStatus)
	if !status.Valid() {
		return helper.JsonError(c, http.StatusBadRequest, "attendance_status invalid")
	}

	allowCanceled := strings.TrimSpace(c.Query("force")) == "true"
	rec, err := ctl.Roll.Mark(c.Context(), occurrenceID, req.AttendanceSignupID, status, allowCanceled)
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrOccurrenceNotFound), errors.Is(err, svc.ErrSignupNotFound):
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, svc.ErrSignupWrongSession), errors.Is(err, svc.ErrOccurrenceCanceled):
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("[Attendance.Mark] error: %v", err)
			return helper.WritePGError(c, err)
		}
	}
	return helper.JsonOK(c, "Attendance marked", d.FromModel(rec))
}
