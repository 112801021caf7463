package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enum
========================= */

// BlockTypeEnum merepresentasikan enum block_type_enum di Postgres.
type BlockTypeEnum string

const (
	BlockTerm1   BlockTypeEnum = "term_1"
	BlockTerm2   BlockTypeEnum = "term_2"
	BlockTerm3   BlockTypeEnum = "term_3"
	BlockTerm4   BlockTypeEnum = "term_4"
	BlockSpecial BlockTypeEnum = "special"
)

func (t BlockTypeEnum) Valid() bool {
	switch t {
	case BlockTerm1, BlockTerm2, BlockTerm3, BlockTerm4, BlockSpecial:
		return true
	}
	return false
}

/* =========================
   Model: BlockModel
========================= */

type BlockModel struct {
	// PK
	BlockID uuid.UUID `gorm:"type:uuid;primaryKey;column:block_id" json:"block_id"`

	BlockYear int           `gorm:"column:block_year;not null;index" json:"block_year"`
	BlockType BlockTypeEnum `gorm:"type:block_type_enum;not null;column:block_type" json:"block_type"`

	// Rentang tanggal inklusif
	BlockStartDate time.Time `gorm:"column:block_start_date;type:date;not null" json:"block_start_date"`
	BlockEndDate   time.Time `gorm:"column:block_end_date;type:date;not null" json:"block_end_date"`

	// Timezone IANA; kosong = pakai default regional
	BlockTimezone string `gorm:"column:block_timezone;type:varchar(64);not null;default:''" json:"block_timezone"`

	// Audit
	BlockCreatedAt time.Time      `gorm:"column:block_created_at;type:timestamptz;not null;autoCreateTime" json:"block_created_at"`
	BlockUpdatedAt time.Time      `gorm:"column:block_updated_at;type:timestamptz;not null;autoUpdateTime" json:"block_updated_at"`
	BlockDeletedAt gorm.DeletedAt `gorm:"column:block_deleted_at;index" json:"block_deleted_at,omitempty"`
}

func (BlockModel) TableName() string { return "blocks" }

func (b *BlockModel) BeforeCreate(tx *gorm.DB) error {
	if b.BlockID == uuid.Nil {
		b.BlockID = uuid.New()
	}
	return nil
}
