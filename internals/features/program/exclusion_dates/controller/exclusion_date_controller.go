// file: internals/features/program/exclusion_dates/controller/exclusion_date_controller.go
package controller

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "playgroupku_backend/internals/features/program/exclusion_dates/dto"
	m "playgroupku_backend/internals/features/program/exclusion_dates/model"
	helper "playgroupku_backend/internals/helpers"
)

type ExclusionDateController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ExclusionDateController {
	return &ExclusionDateController{DB: db, Validate: v}
}

/* =========================
   Create
   ========================= */

func (ctl *ExclusionDateController) Create(c *fiber.Ctx) error {
	var req d.CreateExclusionDateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	model, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&model).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, http.StatusConflict, "Tanggal sudah terdaftar sebagai exclusion date")
		}
		log.Printf("[ExclusionDate.Create] DB.Create error: %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Exclusion date created", d.FromModel(model))
}

/* =========================
   Patch (reason only)
   ========================= */

func (ctl *ExclusionDateController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid exclusion date id")
	}

	var req d.UpdateExclusionDateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var model m.ExclusionDateModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("exclusion_date_id = ?", id).
		Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Exclusion date tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	model.ExclusionDateReason = req.ExclusionDateReason
	if err := ctl.DB.WithContext(c.Context()).Save(&model).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Exclusion date updated", d.FromModel(model))
}

/* =========================
   List per tahun
   ========================= */

func (ctl *ExclusionDateController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&m.ExclusionDateModel{})

	if yearStr := strings.TrimSpace(c.Query("year")); yearStr != "" {
		year, er := strconv.Atoi(yearStr)
		if er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "year invalid")
		}
		q = q.Where("exclusion_date_year = ?", year)
	}

	var rows []m.ExclusionDateModel
	if err := q.Order("exclusion_date_date ASC").Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Exclusion dates", d.FromModels(rows))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *ExclusionDateController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid exclusion date id")
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("exclusion_date_id = ?", id).
		Delete(&m.ExclusionDateModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Exclusion date tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Exclusion date deleted", fiber.Map{"exclusion_date_id": id})
}
