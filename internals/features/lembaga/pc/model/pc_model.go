package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PC = Pimpinan Cabang; membawahi beberapa PAC lewat pc_pac_list.
type PacItem struct {
	PacID string `json:"pacId"`
}

type PcModel struct {
	PcID        uuid.UUID                       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"pc_id"`
	PcName      string                          `gorm:"type:varchar(100);uniqueIndex;not null" json:"pc_name"`
	PcSlug      string                          `gorm:"type:varchar(100);uniqueIndex;not null" json:"pc_slug"`
	PcRegion    int                             `gorm:"type:integer" json:"pc_region"`
	PcAddress   string                          `gorm:"type:text" json:"pc_address"`
	PcPacList   datatypes.JSONSlice[PacItem]    `gorm:"type:jsonb;default:'[]'" json:"pc_pac_list"`
	PcCreatedBy uuid.UUID                       `gorm:"type:uuid;not null" json:"pc_created_by"`
	PcCreatedAt time.Time                       `gorm:"autoCreateTime" json:"pc_created_at"`
	PcUpdatedAt time.Time                       `gorm:"autoUpdateTime" json:"pc_updated_at"`
	PcDeletedAt gorm.DeletedAt                  `gorm:"column:pc_deleted_at" json:"pc_deleted_at,omitempty"`
}

func (PcModel) TableName() string {
	return "pcs"
}
