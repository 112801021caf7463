// file: internals/features/program/sessions/controller/session_controller.go
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

	occModel "playgroupku_backend/internals/features/program/occurrences/model"
	d "playgroupku_backend/internals/features/program/sessions/dto"
	m "playgroupku_backend/internals/features/program/sessions/model"
	helper "playgroupku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type SessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *SessionController {
	return &SessionController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

func (ctl *SessionController) loadBlockIDs(c *fiber.Ctx, sessionID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := ctl.DB.WithContext(c.Context()).
		Model(&m.SessionBlockModel{}).
		Where("session_block_session_id = ?", sessionID).
		Pluck("session_block_block_id", &ids).Error
	return ids, err
}

/* =========================
   Create
   ========================= */

func (ctl *SessionController) Create(c *fiber.Ctx) error {
	var req d.CreateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Session.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			log.Printf("[Session.Create] Validation error: %v", err)
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	model := req.ToModel()

	// TX: session + relasi block
	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.Create(&model).Error; er != nil {
			log.Printf("[Session.Create] DB.Create(session) error: %v", er)
			return er
		}
		if len(req.BlockIDs) > 0 {
			links := make([]m.SessionBlockModel, 0, len(req.BlockIDs))
			for _, bid := range req.BlockIDs {
				links = append(links, m.SessionBlockModel{
					SessionBlockSessionID: model.SessionID,
					SessionBlockBlockID:   bid,
				})
			}
			if er := tx.Create(&links).Error; er != nil {
				log.Printf("[Session.Create] DB.Create(session_blocks) error: %v", er)
				return er
			}
		}
		return nil
	}); err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Session created", d.FromModel(model, req.BlockIDs))
}

/* =========================
   Patch (Partial)
   ========================= */

func (ctl *SessionController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid session id")
	}

	var req d.UpdateSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var model m.SessionModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("session_id = ?", id).
		Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Session tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if req.SessionName != nil {
		model.SessionName = *req.SessionName
	}
	if req.SessionDayOfWeek != nil {
		model.SessionDayOfWeek = req.SessionDayOfWeek
	}
	if req.SessionStartTime != nil {
		model.SessionStartTime = *req.SessionStartTime
	}
	if req.SessionEndTime != nil {
		model.SessionEndTime = *req.SessionEndTime
	}
	if req.SessionCapacity != nil {
		model.SessionCapacity = req.SessionCapacity
	}
	if req.SessionWaitlistEnabled != nil {
		model.SessionWaitlistEnabled = *req.SessionWaitlistEnabled
	}
	if req.SessionIsArchived != nil {
		model.SessionIsArchived = *req.SessionIsArchived
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.Save(&model).Error; er != nil {
			return er
		}
		// Ganti relasi block kalau dikirim (replace penuh)
		if req.BlockIDs != nil {
			if er := tx.Where("session_block_session_id = ?", model.SessionID).
				Delete(&m.SessionBlockModel{}).Error; er != nil {
				return er
			}
			if len(*req.BlockIDs) > 0 {
				links := make([]m.SessionBlockModel, 0, len(*req.BlockIDs))
				for _, bid := range *req.BlockIDs {
					links = append(links, m.SessionBlockModel{
						SessionBlockSessionID: model.SessionID,
						SessionBlockBlockID:   bid,
					})
				}
				if er := tx.Create(&links).Error; er != nil {
					return er
				}
			}
		}
		return nil
	}); err != nil {
		log.Printf("[Session.Patch] tx error: %v", err)
		return helper.WritePGError(c, err)
	}

	blockIDs, _ := ctl.loadBlockIDs(c, model.SessionID)
	return helper.JsonUpdated(c, "Session updated", d.FromModel(model, blockIDs))
}

/* =========================
   List & Detail (admin)
   ========================= */

func (ctl *SessionController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&m.SessionModel{})

	if yearStr := strings.TrimSpace(c.Query("year")); yearStr != "" {
		q = q.Where("session_year = ?", yearStr)
	}
	if strings.TrimSpace(c.Query("include_archived")) != "true" {
		q = q.Where("session_is_archived = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	var rows []m.SessionModel
	if err := q.Order("session_day_of_week ASC NULLS LAST, session_start_time ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	out := make([]d.SessionResponse, 0, len(rows))
	for _, row := range rows {
		blockIDs, _ := ctl.loadBlockIDs(c, row.SessionID)
		out = append(out, d.FromModel(row, blockIDs))
	}
	return helper.JsonList(c, "Sessions", out,
		helper.BuildPagination(total, p.Page, p.PerPage, len(rows)))
}

func (ctl *SessionController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid session id")
	}
	var model m.SessionModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("session_id = ?", id).
		Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Session tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	blockIDs, _ := ctl.loadBlockIDs(c, model.SessionID)
	return helper.JsonOK(c, "Session", d.FromModel(model, blockIDs))
}

/* =========================
   Delete — destructive, guarded
   ========================= */

// Delete menghapus session. Kalau sudah punya occurrence, wajib ?force=true
// (jalur normal = arsip via Patch session_is_archived).
func (ctl *SessionController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid session id")
	}

	var occCount int64
	if err := ctl.DB.WithContext(c.Context()).
		Model(&occModel.OccurrenceModel{}).
		Where("occurrence_session_id = ?", id).
		Count(&occCount).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	if occCount > 0 && strings.TrimSpace(c.Query("force")) != "true" {
		return helper.JsonError(c, http.StatusConflict,
			fmt.Sprintf("Session punya %d occurrence. Gunakan arsip, atau ?force=true untuk hapus permanen.", occCount))
	}

	if err := ctl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if er := tx.Where("occurrence_session_id = ?", id).
			Delete(&occModel.OccurrenceModel{}).Error; er != nil {
			return er
		}
		if er := tx.Where("session_block_session_id = ?", id).
			Delete(&m.SessionBlockModel{}).Error; er != nil {
			return er
		}
		res := tx.Where("session_id = ?", id).Delete(&m.SessionModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Session tidak ditemukan")
		}
		log.Printf("[Session.Delete] tx error: %v", err)
		return helper.WritePGError(c, err)
	}

	return helper.JsonDeleted(c, "Session deleted", fiber.Map{"session_id": id, "occurrences_deleted": occCount})
}
