package dto

import (
	"time"

	"github.com/google/uuid"

	m "playgroupku_backend/internals/features/enrollment/attendance/model"
)

/* =========================================================
 * REQUESTS
 * ========================================================= */

type MarkAttendanceRequest struct {
	AttendanceSignupID uuid.UUID `json:"attendance_signup_id" validate:"required"`
	AttendanceStatus   string    `json:"attendance_status" validate:"required,oneof=present absent excused"`
}

/* =========================================================
 * RESPONSES
 * ========================================================= */

type AttendanceResponse struct {
	AttendanceID           uuid.UUID          `json:"attendance_id"`
	AttendanceSignupID     uuid.UUID          `json:"attendance_signup_id"`
	AttendanceOccurrenceID uuid.UUID          `json:"attendance_occurrence_id"`
	AttendanceStatus       m.AttendanceStatus `json:"attendance_status"`
	AttendanceMarkedAt     time.Time          `json:"attendance_marked_at"`
}

// RosterRow — satu baris roster: identitas anak/wali + status mark (kalau ada)
type RosterRow struct {
	SignupID            uuid.UUID           `json:"signup_id"`
	ChildID             uuid.UUID           `json:"child_id"`
	ChildName           string              `json:"child_name"`
	GuardianName        string              `json:"guardian_name"`
	GuardianEmail       string              `json:"guardian_email"`
	GuardianPhone       *string             `json:"guardian_phone,omitempty"`
	SignupStatus        string              `json:"signup_status"`
	AttendanceStatus    *m.AttendanceStatus `json:"attendance_status,omitempty"`
	AttendanceMarkedAt  *time.Time          `json:"attendance_marked_at,omitempty"`
}

// RosterResponse — roster satu occurrence. Occurrence batal tetap bisa dibaca,
// flag occurrence_is_canceled dipakai UI untuk menonaktifkan aksi mark.
type RosterResponse struct {
	OccurrenceID         uuid.UUID   `json:"occurrence_id"`
	OccurrenceSessionID  uuid.UUID   `json:"occurrence_session_id"`
	OccurrenceDate       string      `json:"occurrence_date"`
	OccurrenceIsCanceled bool        `json:"occurrence_is_canceled"`
	Rows                 []RosterRow `json:"rows"`
}

func FromModel(mdl m.AttendanceRecordModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:           mdl.AttendanceID,
		AttendanceSignupID:     mdl.AttendanceSignupID,
		AttendanceOccurrenceID: mdl.AttendanceOccurrenceID,
		AttendanceStatus:       mdl.AttendanceStatus,
		AttendanceMarkedAt:     mdl.AttendanceMarkedAt,
	}
}
