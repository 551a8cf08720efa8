package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PAC = Pimpinan Anak Cabang (unit organisasi tingkat kecamatan)
type PacModel struct {
	PacID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"pac_id"`
	PacName      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"pac_name"`
	PacSlug      string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"pac_slug"`
	PacVillage   int            `gorm:"type:integer" json:"pac_village"`
	PacAddress   string         `gorm:"type:text" json:"pac_address"`
	PacCreatedBy uuid.UUID      `gorm:"type:uuid;not null" json:"pac_created_by"`
	PacCreatedAt time.Time      `gorm:"autoCreateTime" json:"pac_created_at"`
	PacUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"pac_updated_at"`
	PacDeletedAt gorm.DeletedAt `gorm:"column:pac_deleted_at" json:"pac_deleted_at,omitempty"`
}

func (PacModel) TableName() string {
	return "pacs"
}
