// file: internals/features/enrollment/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enum: AttendanceStatus
   Satu kosakata kanonik: present | absent | excused
========================= */

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusExcused AttendanceStatus = "excused"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusExcused:
		return true
	}
	return false
}

/* =========================
   Model: AttendanceRecordModel
   Maksimal satu record per (signup, occurrence) — mark ulang = upsert
========================= */

type AttendanceRecordModel struct {
	// PK
	AttendanceID uuid.UUID `gorm:"type:uuid;primaryKey;column:attendance_id" json:"attendance_id"`

	AttendanceSignupID     uuid.UUID `gorm:"type:uuid;not null;column:attendance_signup_id;uniqueIndex:uq_attendance_signup_occurrence" json:"attendance_signup_id"`
	AttendanceOccurrenceID uuid.UUID `gorm:"type:uuid;not null;column:attendance_occurrence_id;index;uniqueIndex:uq_attendance_signup_occurrence" json:"attendance_occurrence_id"`

	AttendanceStatus   AttendanceStatus `gorm:"column:attendance_status;type:varchar(20);not null" json:"attendance_status"`
	AttendanceMarkedAt time.Time        `gorm:"column:attendance_marked_at;type:timestamptz;not null" json:"attendance_marked_at"`

	// Audit
	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;type:timestamptz;not null;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;type:timestamptz;not null;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }

func (a *AttendanceRecordModel) BeforeCreate(tx *gorm.DB) error {
	if a.AttendanceID == uuid.Nil {
		a.AttendanceID = uuid.New()
	}
	return nil
}
