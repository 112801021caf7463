package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	m "playgroupku_backend/internals/features/program/blocks/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON)
type CreateBlockRequest struct {
	BlockYear      int    `json:"block_year" validate:"required,min=2000,max=2100"`
	BlockType      string `json:"block_type" validate:"required,oneof=term_1 term_2 term_3 term_4 special"`
	BlockStartDate string `json:"block_start_date" validate:"required,datetime=2006-01-02"`
	BlockEndDate   string `json:"block_end_date" validate:"required,datetime=2006-01-02"`
	BlockTimezone  string `json:"block_timezone" validate:"omitempty,max=64"`
}

// Update (partial JSON) — identitas (year/type) immutable, hanya bounds & tz
type UpdateBlockRequest struct {
	BlockStartDate *string `json:"block_start_date" validate:"omitempty,datetime=2006-01-02"`
	BlockEndDate   *string `json:"block_end_date" validate:"omitempty,datetime=2006-01-02"`
	BlockTimezone  *string `json:"block_timezone" validate:"omitempty,max=64"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type BlockResponse struct {
	BlockID        uuid.UUID `json:"block_id"`
	BlockYear      int       `json:"block_year"`
	BlockType      string    `json:"block_type"`
	BlockStartDate string    `json:"block_start_date"`
	BlockEndDate   string    `json:"block_end_date"`
	BlockTimezone  string    `json:"block_timezone,omitempty"`
	BlockCreatedAt time.Time `json:"block_created_at"`
	BlockUpdatedAt time.Time `json:"block_updated_at"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func ParseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

// ToModel memvalidasi rentang tanggal (end >= start) lalu membangun model.
func (r CreateBlockRequest) ToModel() (m.BlockModel, error) {
	start, err := ParseDate(r.BlockStartDate)
	if err != nil {
		return m.BlockModel{}, fmt.Errorf("block_start_date invalid: %w", err)
	}
	end, err := ParseDate(r.BlockEndDate)
	if err != nil {
		return m.BlockModel{}, fmt.Errorf("block_end_date invalid: %w", err)
	}
	if end.Before(start) {
		return m.BlockModel{}, fmt.Errorf("block_end_date (%s) sebelum block_start_date (%s)", r.BlockEndDate, r.BlockStartDate)
	}
	return m.BlockModel{
		BlockYear:      r.BlockYear,
		BlockType:      m.BlockTypeEnum(r.BlockType),
		BlockStartDate: start,
		BlockEndDate:   end,
		BlockTimezone:  r.BlockTimezone,
	}, nil
}

func FromModel(mdl m.BlockModel) BlockResponse {
	return BlockResponse{
		BlockID:        mdl.BlockID,
		BlockYear:      mdl.BlockYear,
		BlockType:      string(mdl.BlockType),
		BlockStartDate: mdl.BlockStartDate.Format("2006-01-02"),
		BlockEndDate:   mdl.BlockEndDate.Format("2006-01-02"),
		BlockTimezone:  mdl.BlockTimezone,
		BlockCreatedAt: mdl.BlockCreatedAt,
		BlockUpdatedAt: mdl.BlockUpdatedAt,
	}
}

func FromModels(mdls []m.BlockModel) []BlockResponse {
	out := make([]BlockResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, FromModel(mdl))
	}
	return out
}
