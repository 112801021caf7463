package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	m "playgroupku_backend/internals/features/program/exclusion_dates/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateExclusionDateRequest struct {
	ExclusionDateDate   string  `json:"exclusion_date_date" validate:"required,datetime=2006-01-02"`
	ExclusionDateReason *string `json:"exclusion_date_reason" validate:"omitempty,max=200"`
}

type UpdateExclusionDateRequest struct {
	ExclusionDateReason *string `json:"exclusion_date_reason" validate:"omitempty,max=200"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type ExclusionDateResponse struct {
	ExclusionDateID     uuid.UUID `json:"exclusion_date_id"`
	ExclusionDateYear   int       `json:"exclusion_date_year"`
	ExclusionDateDate   string    `json:"exclusion_date_date"`
	ExclusionDateReason *string   `json:"exclusion_date_reason,omitempty"`
	ExclusionDateCreatedAt time.Time `json:"exclusion_date_created_at"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

// ToModel: year diturunkan dari tanggal supaya tidak bisa tidak konsisten.
func (r CreateExclusionDateRequest) ToModel() (m.ExclusionDateModel, error) {
	date, err := time.Parse("2006-01-02", r.ExclusionDateDate)
	if err != nil {
		return m.ExclusionDateModel{}, fmt.Errorf("exclusion_date_date invalid: %w", err)
	}
	return m.ExclusionDateModel{
		ExclusionDateYear:   date.Year(),
		ExclusionDateDate:   date,
		ExclusionDateReason: r.ExclusionDateReason,
	}, nil
}

func FromModel(mdl m.ExclusionDateModel) ExclusionDateResponse {
	return ExclusionDateResponse{
		ExclusionDateID:        mdl.ExclusionDateID,
		ExclusionDateYear:      mdl.ExclusionDateYear,
		ExclusionDateDate:      mdl.ExclusionDateDate.Format("2006-01-02"),
		ExclusionDateReason:    mdl.ExclusionDateReason,
		ExclusionDateCreatedAt: mdl.ExclusionDateCreatedAt,
	}
}

func FromModels(mdls []m.ExclusionDateModel) []ExclusionDateResponse {
	out := make([]ExclusionDateResponse, 0, len(mdls))
	for _, mdl := range mdls {
		out = append(out, FromModel(mdl))
	}
	return out
}
