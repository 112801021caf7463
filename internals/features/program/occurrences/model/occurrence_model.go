// file: internals/features/program/occurrences/model/occurrence_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================
   Model: OccurrenceModel
========================= */

type OccurrenceModel struct {
	// PK
	OccurrenceID uuid.UUID `gorm:"type:uuid;primaryKey;column:occurrence_id" json:"occurrence_id"`

	OccurrenceSessionID uuid.UUID `gorm:"type:uuid;not null;column:occurrence_session_id;index;uniqueIndex:uq_occurrences_session_date" json:"occurrence_session_id"`

	// Tanggal kalender (date-only) — satu occurrence per (session, tanggal)
	OccurrenceDate time.Time `gorm:"column:occurrence_date;type:date;not null;uniqueIndex:uq_occurrences_session_date" json:"occurrence_date"`

	// Timestamp penuh (UTC) hasil kombinasi tanggal + jam session + timezone block
	OccurrenceStartAt time.Time `gorm:"column:occurrence_start_at;type:timestamptz;not null" json:"occurrence_start_at"`
	OccurrenceEndAt   time.Time `gorm:"column:occurrence_end_at;type:timestamptz;not null" json:"occurrence_end_at"`

	// Lifecycle: active ⇄ cancelled
	OccurrenceIsCanceled         bool    `gorm:"column:occurrence_is_canceled;not null;default:false" json:"occurrence_is_canceled"`
	OccurrenceCancellationReason *string `gorm:"column:occurrence_cancellation_reason;type:text" json:"occurrence_cancellation_reason,omitempty"`

	// Snapshot data session saat generate (nama, jam, timezone) — occurrence tidak
	// ikut berubah kalau session diedit belakangan.
	OccurrenceSourceSnapshot datatypes.JSONMap `gorm:"column:occurrence_source_snapshot;type:jsonb" json:"occurrence_source_snapshot,omitempty"`

	// Audit
	OccurrenceCreatedAt time.Time      `gorm:"column:occurrence_created_at;type:timestamptz;not null;autoCreateTime" json:"occurrence_created_at"`
	OccurrenceUpdatedAt time.Time      `gorm:"column:occurrence_updated_at;type:timestamptz;not null;autoUpdateTime" json:"occurrence_updated_at"`
	OccurrenceDeletedAt gorm.DeletedAt `gorm:"column:occurrence_deleted_at;index" json:"occurrence_deleted_at,omitempty"`
}

func (OccurrenceModel) TableName() string { return "occurrences" }

func (o *OccurrenceModel) BeforeCreate(tx *gorm.DB) error {
	if o.OccurrenceID == uuid.Nil {
		o.OccurrenceID = uuid.New()
	}
	return nil
}

/* =========================
   Lifecycle helpers
========================= */

// Cancel menandai occurrence batal. Dipanggil ulang = overwrite reason terakhir.
// Timestamp occurrence tidak disentuh.
func (o *OccurrenceModel) Cancel(reason *string) {
	o.OccurrenceIsCanceled = true
	o.OccurrenceCancellationReason = reason
}

// Reinstate mengembalikan occurrence ke active dan menghapus reason.
func (o *OccurrenceModel) Reinstate() {
	o.OccurrenceIsCanceled = false
	o.OccurrenceCancellationReason = nil
}
