package dto

import (
	"time"

	"github.com/google/uuid"

	m "playgroupku_backend/internals/features/program/sessions/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

// Create (JSON)
type CreateSessionRequest struct {
	SessionName            string      `json:"session_name" validate:"required,max=160"`
	SessionDayOfWeek       *int        `json:"session_day_of_week" validate:"omitempty,min=0,max=6"`
	SessionStartTime       string      `json:"session_start_time" validate:"required"`
	SessionEndTime         string      `json:"session_end_time" validate:"required"`
	SessionCapacity        *int        `json:"session_capacity" validate:"omitempty,min=1"`
	SessionWaitlistEnabled bool        `json:"session_waitlist_enabled"`
	SessionYear            int         `json:"session_year" validate:"required,min=2000,max=2100"`
	BlockIDs               []uuid.UUID `json:"block_ids" validate:"omitempty"`
}

// Update (partial JSON) — pointer-based
type UpdateSessionRequest struct {
	SessionName            *string      `json:"session_name" validate:"omitempty,max=160"`
	SessionDayOfWeek       *int         `json:"session_day_of_week" validate:"omitempty,min=0,max=6"`
	SessionStartTime       *string      `json:"session_start_time" validate:"omitempty"`
	SessionEndTime         *string      `json:"session_end_time" validate:"omitempty"`
	SessionCapacity        *int         `json:"session_capacity" validate:"omitempty,min=1"`
	SessionWaitlistEnabled *bool        `json:"session_waitlist_enabled"`
	SessionIsArchived      *bool        `json:"session_is_archived"`
	BlockIDs               *[]uuid.UUID `json:"block_ids" validate:"omitempty"`
}

/* =========================================================
 * RESPONSE
 * ========================================================= */

type SessionResponse struct {
	SessionID              uuid.UUID   `json:"session_id"`
	SessionName            string      `json:"session_name"`
	SessionDayOfWeek       *int        `json:"session_day_of_week,omitempty"`
	SessionStartTime       string      `json:"session_start_time"`
	SessionEndTime         string      `json:"session_end_time"`
	SessionCapacity        *int        `json:"session_capacity,omitempty"`
	SessionWaitlistEnabled bool        `json:"session_waitlist_enabled"`
	SessionYear            int         `json:"session_year"`
	SessionIsArchived      bool        `json:"session_is_archived"`
	BlockIDs               []uuid.UUID `json:"block_ids"`
	SessionCreatedAt       time.Time   `json:"session_created_at"`
	SessionUpdatedAt       time.Time   `json:"session_updated_at"`
}

/* =========================================================
 * HELPERS
 * ========================================================= */

func (r CreateSessionRequest) ToModel() m.SessionModel {
	return m.SessionModel{
		SessionName:            r.SessionName,
		SessionDayOfWeek:       r.SessionDayOfWeek,
		SessionStartTime:       r.SessionStartTime,
		SessionEndTime:         r.SessionEndTime,
		SessionCapacity:        r.SessionCapacity,
		SessionWaitlistEnabled: r.SessionWaitlistEnabled,
		SessionYear:            r.SessionYear,
	}
}

func FromModel(mdl m.SessionModel, blockIDs []uuid.UUID) SessionResponse {
	if blockIDs == nil {
		blockIDs = []uuid.UUID{}
	}
	return SessionResponse{
		SessionID:              mdl.SessionID,
		SessionName:            mdl.SessionName,
		SessionDayOfWeek:       mdl.SessionDayOfWeek,
		SessionStartTime:       mdl.SessionStartTime,
		SessionEndTime:         mdl.SessionEndTime,
		SessionCapacity:        mdl.SessionCapacity,
		SessionWaitlistEnabled: mdl.SessionWaitlistEnabled,
		SessionYear:            mdl.SessionYear,
		SessionIsArchived:      mdl.SessionIsArchived,
		BlockIDs:               blockIDs,
		SessionCreatedAt:       mdl.SessionCreatedAt,
		SessionUpdatedAt:       mdl.SessionUpdatedAt,
	}
}
