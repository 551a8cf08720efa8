package dto

import (
	"github.com/google/uuid"

	"pengajianku_backend/internals/features/school/classes/model"
)

type ClassCreateRequest struct {
	ClassName       string    `json:"class_name" validate:"required,max=100"`
	ClassTeacherID  uuid.UUID `json:"class_teacher_id" validate:"required"`
	ClassLearningID uuid.UUID `json:"class_learning_id" validate:"required"`
}

type ClassUpdateRequest struct {
	ClassName       *string    `json:"class_name" validate:"omitempty,max=100"`
	ClassTeacherID  *uuid.UUID `json:"class_teacher_id"`
	ClassLearningID *uuid.UUID `json:"class_learning_id"`
}

func (r *ClassUpdateRequest) ApplyTo(m *model.ClassModel) {
	if r.ClassName != nil {
		m.ClassName = *r.ClassName
	}
	if r.ClassTeacherID != nil {
		m.ClassTeacherID = *r.ClassTeacherID
	}
	if r.ClassLearningID != nil {
		m.ClassLearningID = *r.ClassLearningID
	}
}
