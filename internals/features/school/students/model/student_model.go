package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Gender siswa (ikut istilah formulir pendaftaran)
const (
	GenderMale   = "Laki-laki"
	GenderFemale = "Perempuan"
)

type StudentModel struct {
	StudentID         uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentFullName   string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"student_full_name"`
	StudentPicture    string         `gorm:"type:text;default:'user.jpg'" json:"student_picture"`
	StudentNoTelp     string         `gorm:"type:varchar(30);not null" json:"student_no_telp"`
	StudentParentName string         `gorm:"type:varchar(100);not null" json:"student_parent_name"`
	StudentClassID    uuid.UUID      `gorm:"type:uuid;not null" json:"student_class_id"`
	StudentGender     string         `gorm:"type:varchar(20);not null" json:"student_gender"`
	StudentBirthDate  string         `gorm:"type:varchar(30);not null" json:"student_birth_date"`
	StudentRegion     int            `gorm:"type:integer" json:"student_region"`
	StudentAddress    string         `gorm:"type:text" json:"student_address"`
	StudentCreatedBy  uuid.UUID      `gorm:"type:uuid;not null" json:"student_created_by"`
	StudentCreatedAt  time.Time      `gorm:"autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt  time.Time      `gorm:"autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt  gorm.DeletedAt `gorm:"column:student_deleted_at" json:"student_deleted_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}
