package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	TeacherName       string         `gorm:"type:varchar(100);not null" json:"teacher_name"`
	TeacherPicture    string         `gorm:"type:text;default:'user.jpg'" json:"teacher_picture"`
	TeacherStartDate  string         `gorm:"type:varchar(30);not null" json:"teacher_start_date"`
	TeacherEndDate    string         `gorm:"type:varchar(30);default:'-'" json:"teacher_end_date"`
	TeacherNoTelp     string         `gorm:"type:varchar(30);not null" json:"teacher_no_telp"`
	TeacherBidang     string         `gorm:"type:varchar(100);not null" json:"teacher_bidang"`
	TeacherPendidikan string         `gorm:"type:varchar(100);not null" json:"teacher_pendidikan"`
	TeacherSlug       string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"teacher_slug"`
	TeacherCreatedBy  uuid.UUID      `gorm:"type:uuid;not null" json:"teacher_created_by"`
	TeacherCreatedAt  time.Time      `gorm:"autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt  gorm.DeletedAt `gorm:"column:teacher_deleted_at" json:"teacher_deleted_at,omitempty"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
