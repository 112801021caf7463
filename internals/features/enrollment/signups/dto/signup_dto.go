package dto

import (
	"time"

	"github.com/google/uuid"

	m "playgroupku_backend/internals/features/enrollment/signups/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type CreateSignupRequest struct {
	SignupSessionID     uuid.UUID `json:"signup_session_id" validate:"required"`
	SignupChildID       uuid.UUID `json:"signup_child_id" validate:"required"`
	SignupChildName     string    `json:"signup_child_name" validate:"required,max=160"`
	SignupGuardianName  string    `json:"signup_guardian_name" validate:"required,max=160"`
	SignupGuardianEmail string    `json:"signup_guardian_email" validate:"required,email,max=255"`
	SignupGuardianPhone *string   `json:"signup_guardian_phone" validate:"omitempty,max=32"`
}

type ChangeSignupStatusRequest struct {
	SignupStatus string `json:"signup_status" validate:"required,oneof=pending confirmed waitlisted withdrawn"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type SignupResponse struct {
	SignupID            uuid.UUID      `json:"signup_id"`
	SignupSessionID     uuid.UUID      `json:"signup_session_id"`
	SignupChildID       uuid.UUID      `json:"signup_child_id"`
	SignupChildName     string         `json:"signup_child_name"`
	SignupGuardianName  string         `json:"signup_guardian_name"`
	SignupGuardianEmail string         `json:"signup_guardian_email"`
	SignupGuardianPhone *string        `json:"signup_guardian_phone,omitempty"`
	SignupStatus        m.SignupStatus `json:"signup_status"`
	SignupCreatedAt     time.Time      `json:"signup_created_at"`
	SignupUpdatedAt     time.Time      `json:"signup_updated_at"`
}

// PartitionedSignupsResponse — hasil read per status (roster/export)
type PartitionedSignupsResponse struct {
	SignupSessionID uuid.UUID        `json:"signup_session_id"`
	Pending         []SignupResponse `json:"pending"`
	Confirmed       []SignupResponse `json:"confirmed"`
	Waitlisted      []SignupResponse `json:"waitlisted"`
	Withdrawn       []SignupResponse `json:"withdrawn"`
}

// SignupStatusSummary — agregat nama anak per status (dari array_agg)
type SignupStatusSummary struct {
	SignupStatus string   `json:"signup_status"`
	Count        int      `json:"count"`
	ChildNames   []string `json:"child_names"`
}

func (r CreateSignupRequest) ToModel() m.SignupModel {
	return m.SignupModel{
		SignupSessionID:     r.SignupSessionID,
		SignupChildID:       r.SignupChildID,
		SignupChildName:     r.SignupChildName,
		SignupGuardianName:  r.SignupGuardianName,
		SignupGuardianEmail: r.SignupGuardianEmail,
		SignupGuardianPhone: r.SignupGuardianPhone,
	}
}

func FromModel(mdl m.SignupModel) SignupResponse {
	return SignupResponse{
		SignupID:            mdl.SignupID,
		SignupSessionID:     mdl.SignupSessionID,
		SignupChildID:       mdl.SignupChildID,
		SignupChildName:     mdl.SignupChildName,
		SignupGuardianName:  mdl.SignupGuardianName,
		SignupGuardianEmail: mdl.SignupGuardianEmail,
		SignupGuardianPhone: mdl.SignupGuardianPhone,
		SignupStatus:        mdl.SignupStatus,
		SignupCreatedAt:     mdl.SignupCreatedAt,
		SignupUpdatedAt:     mdl.SignupUpdatedAt,
	}
}

func FromModels(rows []m.SignupModel) []SignupResponse {
	out := make([]SignupResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
