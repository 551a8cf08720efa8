package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassModel struct {
	ClassID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"class_id"`
	ClassName       string         `gorm:"type:varchar(100);not null" json:"class_name"`
	ClassTeacherID  uuid.UUID      `gorm:"type:uuid;not null" json:"class_teacher_id"`
	ClassLearningID uuid.UUID      `gorm:"type:uuid;not null" json:"class_learning_id"`
	ClassSlug       string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"class_slug"`
	ClassCreatedBy  uuid.UUID      `gorm:"type:uuid;not null" json:"class_created_by"`
	ClassCreatedAt  time.Time      `gorm:"autoCreateTime" json:"class_created_at"`
	ClassUpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"class_updated_at"`
	ClassDeletedAt  gorm.DeletedAt `gorm:"column:class_deleted_at" json:"class_deleted_at,omitempty"`
}

func (ClassModel) TableName() string {
	return "classes"
}
