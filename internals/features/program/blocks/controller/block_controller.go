// file: internals/features/program/blocks/controller/block_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "playgroupku_backend/internals/features/program/blocks/dto"
	m "playgroupku_backend/internals/features/program/blocks/model"
	helper "playgroupku_backend/internals/helpers"
)

/* =========================
   Controller & Constructor
   ========================= */

type BlockController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *BlockController {
	return &BlockController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fmt.Errorf("%s is required", name)
	}
	return uuid.Parse(idStr)
}

/* =========================
   Create
   ========================= */

func (ctl *BlockController) Create(c *fiber.Ctx) error {
	var req d.CreateBlockRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("[Block.Create] BodyParser error: %v", err)
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			log.Printf("[Block.Create] Validation error: %v", err)
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	model, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.WithContext(c.Context()).Create(&model).Error; err != nil {
		log.Printf("[Block.Create] DB.Create error: %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Block created", d.FromModel(model))
}

/* =========================
   Patch (Partial)
   ========================= */

func (ctl *BlockController) Patch(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid block id")
	}

	var req d.UpdateBlockRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, err.Error())
	}
	if ctl.Validate != nil {
		if err := ctl.Validate.Struct(req); err != nil {
			return helper.JsonError(c, http.StatusBadRequest, err.Error())
		}
	}

	var model m.BlockModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("block_id = ?", id).
		Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Block tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	if req.BlockStartDate != nil {
		start, er := d.ParseDate(*req.BlockStartDate)
		if er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "block_start_date invalid")
		}
		model.BlockStartDate = start
	}
	if req.BlockEndDate != nil {
		end, er := d.ParseDate(*req.BlockEndDate)
		if er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "block_end_date invalid")
		}
		model.BlockEndDate = end
	}
	if model.BlockEndDate.Before(model.BlockStartDate) {
		return helper.JsonError(c, http.StatusBadRequest, "block_end_date sebelum block_start_date")
	}
	if req.BlockTimezone != nil {
		model.BlockTimezone = strings.TrimSpace(*req.BlockTimezone)
	}

	if err := ctl.DB.WithContext(c.Context()).Save(&model).Error; err != nil {
		log.Printf("[Block.Patch] DB.Save error: %v", err)
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Block updated", d.FromModel(model))
}

/* =========================
   List & Detail
   ========================= */

func (ctl *BlockController) List(c *fiber.Ctx) error {
	q := ctl.DB.WithContext(c.Context()).Model(&m.BlockModel{})

	if yearStr := strings.TrimSpace(c.Query("year")); yearStr != "" {
		year, er := strconv.Atoi(yearStr)
		if er != nil {
			return helper.JsonError(c, http.StatusBadRequest, "year invalid")
		}
		q = q.Where("block_year = ?", year)
	}
	if bt := strings.TrimSpace(c.Query("type")); bt != "" {
		if !m.BlockTypeEnum(bt).Valid() {
			return helper.JsonError(c, http.StatusBadRequest, "type invalid")
		}
		q = q.Where("block_type = ?", bt)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.ResolvePaging(c, 20, 100)
	var rows []m.BlockModel
	if err := q.Order("block_year ASC, block_start_date ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	return helper.JsonList(c, "Blocks", d.FromModels(rows),
		helper.BuildPagination(total, p.Page, p.PerPage, len(rows)))
}

func (ctl *BlockController) GetByID(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid block id")
	}
	var model m.BlockModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("block_id = ?", id).
		Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Block tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "Block", d.FromModel(model))
}

/* =========================
   Delete (soft)
   ========================= */

func (ctl *BlockController) Delete(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "invalid block id")
	}
	res := ctl.DB.WithContext(c.Context()).
		Where("block_id = ?", id).
		Delete(&m.BlockModel{})
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Block tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Block deleted", fiber.Map{"block_id": id})
}
