package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ViolationModel struct {
	ViolationID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"violation_id"`
	ViolationName        string         `gorm:"type:varchar(100);not null" json:"violation_name"`
	ViolationDescription string         `gorm:"type:text;not null" json:"violation_description"`
	ViolationJudgeBy     uuid.UUID      `gorm:"type:uuid;not null" json:"violation_judge_by"`
	ViolationPoint       string         `gorm:"type:varchar(10);not null" json:"violation_point"`
	ViolationCreatedBy   uuid.UUID      `gorm:"type:uuid;not null" json:"violation_created_by"`
	ViolationCreatedAt   time.Time      `gorm:"autoCreateTime" json:"violation_created_at"`
	ViolationUpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"violation_updated_at"`
	ViolationDeletedAt   gorm.DeletedAt `gorm:"column:violation_deleted_at" json:"violation_deleted_at,omitempty"`
}

func (ViolationModel) TableName() string {
	return "violations"
}
