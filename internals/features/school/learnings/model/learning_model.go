package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LearningModel struct {
	LearningID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"learning_id"`
	LearningName        string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"learning_name"`
	LearningTeacherID   uuid.UUID      `gorm:"type:uuid;not null" json:"learning_teacher_id"`
	LearningDescription string         `gorm:"type:text;not null" json:"learning_description"`
	LearningCreatedBy   uuid.UUID      `gorm:"type:uuid;not null" json:"learning_created_by"`
	LearningCreatedAt   time.Time      `gorm:"autoCreateTime" json:"learning_created_at"`
	LearningUpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"learning_updated_at"`
	LearningDeletedAt   gorm.DeletedAt `gorm:"column:learning_deleted_at" json:"learning_deleted_at,omitempty"`
}

func (LearningModel) TableName() string {
	return "learnings"
}
