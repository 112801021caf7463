// file: internals/features/enrollment/signups/model/signup_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enum: SignupStatus
========================= */

type SignupStatus string

const (
	SignupStatusPending    SignupStatus = "pending"
	SignupStatusConfirmed  SignupStatus = "confirmed"
	SignupStatusWaitlisted SignupStatus = "waitlisted"
	SignupStatusWithdrawn  SignupStatus = "withdrawn"
)

func (s SignupStatus) Valid() bool {
	switch s {
	case SignupStatusPending, SignupStatusConfirmed, SignupStatusWaitlisted, SignupStatusWithdrawn:
		return true
	}
	return false
}

/* =========================
   Model: SignupModel
========================= */

type SignupModel struct {
	// PK
	SignupID uuid.UUID `gorm:"type:uuid;primaryKey;column:signup_id" json:"signup_id"`

	SignupSessionID uuid.UUID `gorm:"type:uuid;not null;column:signup_session_id;index" json:"signup_session_id"`

	// Identitas anak dikelola eksternal; di sini cukup id + nama tampilan
	SignupChildID   uuid.UUID `gorm:"type:uuid;not null;column:signup_child_id;index" json:"signup_child_id"`
	SignupChildName string    `gorm:"column:signup_child_name;type:varchar(160);not null" json:"signup_child_name"`

	// Kontak wali untuk roster & broadcast
	SignupGuardianName  string  `gorm:"column:signup_guardian_name;type:varchar(160);not null" json:"signup_guardian_name"`
	SignupGuardianEmail string  `gorm:"column:signup_guardian_email;type:varchar(255);not null" json:"signup_guardian_email"`
	SignupGuardianPhone *string `gorm:"column:signup_guardian_phone;type:varchar(32)" json:"signup_guardian_phone,omitempty"`

	SignupStatus SignupStatus `gorm:"column:signup_status;type:varchar(20);not null;default:'pending';index" json:"signup_status"`

	// Audit
	SignupCreatedAt time.Time      `gorm:"column:signup_created_at;type:timestamptz;not null;autoCreateTime" json:"signup_created_at"`
	SignupUpdatedAt time.Time      `gorm:"column:signup_updated_at;type:timestamptz;not null;autoUpdateTime" json:"signup_updated_at"`
	SignupDeletedAt gorm.DeletedAt `gorm:"column:signup_deleted_at;index" json:"signup_deleted_at,omitempty"`
}

func (SignupModel) TableName() string { return "signups" }

func (s *SignupModel) BeforeCreate(tx *gorm.DB) error {
	if s.SignupID == uuid.Nil {
		s.SignupID = uuid.New()
	}
	return nil
}
