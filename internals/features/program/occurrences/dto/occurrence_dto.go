package dto

import (
	"time"

	"github.com/google/uuid"

	m "playgroupku_backend/internals/features/program/occurrences/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CancelOccurrenceRequest struct {
	OccurrenceCancellationReason *string `json:"occurrence_cancellation_reason" validate:"omitempty,max=500"`
}

type CreateOneOffRequest struct {
	OccurrenceSessionID uuid.UUID `json:"occurrence_session_id" validate:"required"`
	OccurrenceDate      string    `json:"occurrence_date" validate:"required,datetime=2006-01-02"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type OccurrenceResponse struct {
	OccurrenceID                 uuid.UUID      `json:"occurrence_id"`
	OccurrenceSessionID          uuid.UUID      `json:"occurrence_session_id"`
	OccurrenceDate               string         `json:"occurrence_date"`
	OccurrenceStartAt            time.Time      `json:"occurrence_start_at"`
	OccurrenceEndAt              time.Time      `json:"occurrence_end_at"`
	OccurrenceIsCanceled         bool           `json:"occurrence_is_canceled"`
	OccurrenceCancellationReason *string        `json:"occurrence_cancellation_reason,omitempty"`
	OccurrenceSourceSnapshot     map[string]any `json:"occurrence_source_snapshot,omitempty"`
	OccurrenceCreatedAt          time.Time      `json:"occurrence_created_at"`
	OccurrenceUpdatedAt          time.Time      `json:"occurrence_updated_at"`
}

func FromModel(mdl m.OccurrenceModel) OccurrenceResponse {
	return OccurrenceResponse{
		OccurrenceID:                 mdl.OccurrenceID,
		OccurrenceSessionID:          mdl.OccurrenceSessionID,
		OccurrenceDate:               mdl.OccurrenceDate.Format("2006-01-02"),
		OccurrenceStartAt:            mdl.OccurrenceStartAt,
		OccurrenceEndAt:              mdl.OccurrenceEndAt,
		OccurrenceIsCanceled:         mdl.OccurrenceIsCanceled,
		OccurrenceCancellationReason: mdl.OccurrenceCancellationReason,
		OccurrenceSourceSnapshot:     mdl.OccurrenceSourceSnapshot,
		OccurrenceCreatedAt:          mdl.OccurrenceCreatedAt,
		OccurrenceUpdatedAt:          mdl.OccurrenceUpdatedAt,
	}
}

func FromModels(rows []m.OccurrenceModel) []OccurrenceResponse {
	out := make([]OccurrenceResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
