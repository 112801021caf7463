// file: internals/features/program/sessions/model/session_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Model: SessionModel
========================= */

type SessionModel struct {
	// PK
	SessionID uuid.UUID `gorm:"type:uuid;primaryKey;column:session_id" json:"session_id"`

	SessionName string `gorm:"column:session_name;type:varchar(160);not null" json:"session_name"`

	// Pola mingguan: 0=Minggu .. 6=Sabtu. NULL = session "special"/one-off
	// (tidak ikut generate berulang, lihat occurrence one-off path).
	SessionDayOfWeek *int `gorm:"column:session_day_of_week" json:"session_day_of_week,omitempty"`

	// Jam mulai/selesai "HH:MM" atau "HH:MM:SS"
	SessionStartTime string `gorm:"column:session_start_time;type:time;not null" json:"session_start_time"`
	SessionEndTime   string `gorm:"column:session_end_time;type:time;not null" json:"session_end_time"`

	// Kapasitas: NULL = tanpa batas
	SessionCapacity        *int `gorm:"column:session_capacity" json:"session_capacity,omitempty"`
	SessionWaitlistEnabled bool `gorm:"column:session_waitlist_enabled;not null;default:false" json:"session_waitlist_enabled"`

	SessionYear       int  `gorm:"column:session_year;not null;index" json:"session_year"`
	SessionIsArchived bool `gorm:"column:session_is_archived;not null;default:false" json:"session_is_archived"`

	// Audit
	SessionCreatedAt time.Time      `gorm:"column:session_created_at;type:timestamptz;not null;autoCreateTime" json:"session_created_at"`
	SessionUpdatedAt time.Time      `gorm:"column:session_updated_at;type:timestamptz;not null;autoUpdateTime" json:"session_updated_at"`
	SessionDeletedAt gorm.DeletedAt `gorm:"column:session_deleted_at;index" json:"session_deleted_at,omitempty"`
}

func (SessionModel) TableName() string { return "sessions" }

func (s *SessionModel) BeforeCreate(tx *gorm.DB) error {
	if s.SessionID == uuid.Nil {
		s.SessionID = uuid.New()
	}
	return nil
}

/* =========================
   Join: session ↔ block
========================= */

type SessionBlockModel struct {
	SessionBlockSessionID uuid.UUID `gorm:"type:uuid;not null;column:session_block_session_id;uniqueIndex:uq_session_blocks_pair;primaryKey" json:"session_block_session_id"`
	SessionBlockBlockID   uuid.UUID `gorm:"type:uuid;not null;column:session_block_block_id;uniqueIndex:uq_session_blocks_pair;primaryKey" json:"session_block_block_id"`

	SessionBlockCreatedAt time.Time `gorm:"column:session_block_created_at;type:timestamptz;not null;autoCreateTime" json:"session_block_created_at"`
}

func (SessionBlockModel) TableName() string { return "session_blocks" }
