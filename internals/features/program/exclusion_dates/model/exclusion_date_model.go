// internals/features/program/exclusion_dates/model/exclusion_date_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExclusionDateModel adalah daftar libur/penutupan global per tahun.
// Berlaku untuk SEMUA session di tahun tsb, bukan per-session.
type ExclusionDateModel struct {
	ExclusionDateID uuid.UUID `gorm:"type:uuid;primaryKey;column:exclusion_date_id" json:"exclusion_date_id"`

	ExclusionDateYear int       `gorm:"column:exclusion_date_year;not null;index" json:"exclusion_date_year"`
	ExclusionDateDate time.Time `gorm:"column:exclusion_date_date;type:date;not null;uniqueIndex:uq_exclusion_dates_date" json:"exclusion_date_date"`

	ExclusionDateReason *string `gorm:"column:exclusion_date_reason;type:text" json:"exclusion_date_reason,omitempty"`

	ExclusionDateCreatedAt time.Time      `gorm:"column:exclusion_date_created_at;type:timestamptz;not null;autoCreateTime" json:"exclusion_date_created_at"`
	ExclusionDateUpdatedAt time.Time      `gorm:"column:exclusion_date_updated_at;type:timestamptz;not null;autoUpdateTime" json:"exclusion_date_updated_at"`
	ExclusionDateDeletedAt gorm.DeletedAt `gorm:"column:exclusion_date_deleted_at;index" json:"exclusion_date_deleted_at,omitempty"`
}

func (ExclusionDateModel) TableName() string { return "exclusion_dates" }

func (e *ExclusionDateModel) BeforeCreate(tx *gorm.DB) error {
	if e.ExclusionDateID == uuid.Nil {
		e.ExclusionDateID = uuid.New()
	}
	return nil
}
