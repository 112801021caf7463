// file: internals/features/program/occurrences/controller/occurrence_controller.go
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

	d "playgroupku_backend/internals/features/program/occurrences/dto"
	m "playgroupku_backend/internals/features/program/occurrences/model"
	svc "playgroupku_backend/internals/features/program/occurrences/service"
	helper "playgroupku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type OccurrenceController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Generator *svc.GeneratorService
}

func New(db *gorm.DB, v *validator.Validate) *OccurrenceController {
	return &OccurrenceController{
		DB:        db,
		Validate:  v,
		Generator: svc.NewGenerator(db),
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
   Generate (idempoten)
   ========================= */

// Generate membuat occurrence untuk semua tanggal kandidat session.
// POST /sessions/:id/generate-occurrences
func (ctl *OccurrenceController) Generate(c *fiber.Ctx) error {
	sessionID, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid session id")
	}

	res, err := ctl.Generator.GenerateForSession(c.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrSessionNotFound):
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, svc.ErrSessionArchived), errors.Is(err, svc.ErrSessionNoWeekday):
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("[Occurrence.Generate] error: %v", err)
			return helper.WritePGError(c, err)
		}
	}

	log.Printf("✅ [Occurrence.Generate] session=%s created=%d skipped=%d", sessionID, res.Created, res.Skipped)
	return helper.JsonOK(c, "Occurrences generated", res)
}

/* =========================
   One-off
   ========================= */

// CreateOneOff membuat satu occurrence lepas (untuk session special / tanggal tambahan)
func (ctl *OccurrenceController) CreateOneOff(c *fiber.Ctx) error {
	var req d.CreateOneOffRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	date, err := time.Parse("2006-01-02", req.OccurrenceDate)
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "occurrence_date harus YYYY-MM-DD")
	}

	occ, err := ctl.Generator.CreateOneOff(c.Context(), req.OccurrenceSessionID, date)
	if err != nil {
		switch {
		case errors.Is(err, svc.ErrSessionNotFound):
			return helper.JsonError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, svc.ErrSessionArchived):
			return helper.JsonError(c, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, svc.ErrOccurrenceExists):
			return helper.JsonError(c, http.StatusConflict, err.Error())
		default:
			return helper.WritePGError(c, err)
		}
	}
	return helper.JsonCreated(c, "Occurrence created", d.FromModel(occ))
}

/* =========================
   Lifecycle: cancel / reinstate
   ========================= */

func (ctl *OccurrenceController) loadOccurrence(c *fiber.Ctx) (*m.OccurrenceModel, error) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return nil, helper.JsonError(c, http.StatusBadRequest, "invalid occurrence id")
	}
	var occ m.OccurrenceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("occurrence_id = ?", id).
		Take(&occ).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, http.StatusNotFound, "Occurrence tidak ditemukan")
		}
		return nil, helper.WritePGError(c, err)
	}
	return &occ, nil
}

// Cancel membatalkan occurrence (boleh juga untuk tanggal lampau).
// Dipanggil dua kali = tetap cancelled, reason terakhir yang disimpan.
func (ctl *OccurrenceController) Cancel(c *fiber.Ctx) error {
	occ, ferr := ctl.loadOccurrence(c)
	if occ == nil {
		return ferr
	}

	// body boleh kosong (reason opsional)
	var req d.CancelOccurrenceRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	occ.Cancel(req.OccurrenceCancellationReason)
	if err := ctl.DB.WithContext(c.Context()).Save(occ).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Occurrence cancelled", d.FromModel(*occ))
}

// Reinstate mengaktifkan kembali occurrence dan menghapus reason
func (ctl *OccurrenceController) Reinstate(c *fiber.Ctx) error {
	occ, ferr := ctl.loadOccurrence(c)
	if occ == nil {
		return ferr
	}

	occ.Reinstate()
	if err := ctl.DB.WithContext(c.Context()).Save(occ).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Occurrence reinstated", d.FromModel(*occ))
}

/* =========================
   List & Detail
   ========================= */

// List occurrence, filter: ?session_id= &from= &to= &include_canceled=false
func (ctl *OccurrenceController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&m.OccurrenceModel{})

	if sidStr := strings.TrimSpace(c.Query("session_id")); sidStr != "" {
		sid, er := uuid.Parse(sidStr)
		if er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "session_id invalid")
		}
		q = q.Where("occurrence_session_id = ?", sid)
	}
	if from := strings.TrimSpace(c.Query("from")); from != "" {
		if _, er := time.Parse("2006-01-02", from); er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "from harus YYYY-MM-DD")
		}
		q = q.Where("occurrence_date >= ?", from)
	}
	if to := strings.TrimSpace(c.Query("to")); to != "" {
		if _, er := time.Parse("2006-01-02", to); er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "to harus YYYY-MM-DD")
		}
		q = q.Where("occurrence_date <= ?", to)
	}
	if strings.TrimSpace(c.Query("include_canceled")) == "false" {
		q = q.Where("occurrence_is_canceled = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.ResolvePaging(c, 50, 200)
	var rows []m.OccurrenceModel
	if err := q.Order("occurrence_date ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "Occurrences", d.FromModels(rows),
		helper.BuildPagination(total, p.Page, p.PerPage, len(rows)))
}

func (ctl *OccurrenceController) GetByID(c *fiber.Ctx) error {
	occ, ferr := ctl.loadOccurrence(c)
	if occ == nil {
		return ferr
	}
	return helper.JsonOK(c, "Occurrence", d.FromModel(*occ))
}
