package dto

import (
	"github.com/google/uuid"

	"pengajianku_backend/internals/features/school/students/model"
)

type StudentCreateRequest struct {
	StudentFullName   string    `json:"student_full_name" validate:"required,max=100"`
	StudentPicture    string    `json:"student_picture"`
	StudentNoTelp     string    `json:"student_no_telp" validate:"required,max=30"`
	StudentParentName string    `json:"student_parent_name" validate:"required,max=100"`
	StudentClassID    uuid.UUID `json:"student_class_id" validate:"required"`
	StudentGender     string    `json:"student_gender" validate:"required,oneof=Laki-laki Perempuan"`
	StudentBirthDate  string    `json:"student_birth_date" validate:"required"`
	StudentRegion     int       `json:"student_region"`
	StudentAddress    string    `json:"student_address"`
}

type StudentUpdateRequest struct {
	StudentFullName   *string    `json:"student_full_name" validate:"omitempty,max=100"`
	StudentPicture    *string    `json:"student_picture"`
	StudentNoTelp     *string    `json:"student_no_telp" validate:"omitempty,max=30"`
	StudentParentName *string    `json:"student_parent_name" validate:"omitempty,max=100"`
	StudentClassID    *uuid.UUID `json:"student_class_id"`
	StudentGender     *string    `json:"student_gender" validate:"omitempty,oneof=Laki-laki Perempuan"`
	StudentBirthDate  *string    `json:"student_birth_date"`
	StudentRegion     *int       `json:"student_region"`
	StudentAddress    *string    `json:"student_address"`
}

func (r *StudentUpdateRequest) ApplyTo(m *model.StudentModel) {
	if r.StudentFullName != nil {
		m.StudentFullName = *r.StudentFullName
	}
	if r.StudentPicture != nil {
		m.StudentPicture = *r.StudentPicture
	}
	if r.StudentNoTelp != nil {
		m.StudentNoTelp = *r.StudentNoTelp
	}
	if r.StudentParentName != nil {
		m.StudentParentName = *r.StudentParentName
	}
	if r.StudentClassID != nil {
		m.StudentClassID = *r.StudentClassID
	}
	if r.StudentGender != nil {
		m.StudentGender = *r.StudentGender
	}
	if r.StudentBirthDate != nil {
		m.StudentBirthDate = *r.StudentBirthDate
	}
	if r.StudentRegion != nil {
		m.StudentRegion = *r.StudentRegion
	}
	if r.StudentAddress != nil {
		m.StudentAddress = *r.StudentAddress
	}
}
