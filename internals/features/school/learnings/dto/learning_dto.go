package dto

import (
	"github.com/google/uuid"

	"pengajianku_backend/internals/features/school/learnings/model"
)

type LearningCreateRequest struct {
	LearningName        string    `json:"learning_name" validate:"required,max=100"`
	LearningTeacherID   uuid.UUID `json:"learning_teacher_id" validate:"required"`
	LearningDescription string    `json:"learning_description" validate:"required"`
}

type LearningUpdateRequest struct {
	LearningName        *string    `json:"learning_name" validate:"omitempty,max=100"`
	LearningTeacherID   *uuid.UUID `json:"learning_teacher_id"`
	LearningDescription *string    `json:"learning_description"`
}

func (r *LearningUpdateRequest) ApplyTo(m *model.LearningModel) {
	if r.LearningName != nil {
		m.LearningName = *r.LearningName
	}
	if r.LearningTeacherID != nil {
		m.LearningTeacherID = *r.LearningTeacherID
	}
	if r.LearningDescription != nil {
		m.LearningDescription = *r.LearningDescription
	}
}
