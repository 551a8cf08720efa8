package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParentModel struct {
	ParentID        uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"parent_id"`
	ParentName      string         `gorm:"type:varchar(100);not null" json:"parent_name"`
	ParentNoTelp    string         `gorm:"type:varchar(30);not null" json:"parent_no_telp"`
	ParentPoss      string         `gorm:"type:varchar(100);not null" json:"parent_poss"`
	ParentRegion    int            `gorm:"type:integer" json:"parent_region"`
	ParentAddress   string         `gorm:"type:text" json:"parent_address"`
	ParentCreatedBy uuid.UUID      `gorm:"type:uuid;not null" json:"parent_created_by"`
	ParentCreatedAt time.Time      `gorm:"autoCreateTime" json:"parent_created_at"`
	ParentUpdatedAt time.Time      `gorm:"autoUpdateTime" json:"parent_updated_at"`
	ParentDeletedAt gorm.DeletedAt `gorm:"column:parent_deleted_at" json:"parent_deleted_at,omitempty"`
}

func (ParentModel) TableName() string {
	return "parents"
}
