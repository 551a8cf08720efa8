package dto

import (
	"github.com/google/uuid"

	"pengajianku_backend/internals/features/school/violations/model"
)

type ViolationCreateRequest struct {
	ViolationName        string    `json:"violation_name" validate:"required,max=100"`
	ViolationDescription string    `json:"violation_description" validate:"required"`
	ViolationJudgeBy     uuid.UUID `json:"violation_judge_by" validate:"required"`
	ViolationPoint       string    `json:"violation_point" validate:"required,max=10"`
}

type ViolationUpdateRequest struct {
	ViolationName        *string    `json:"violation_name" validate:"omitempty,max=100"`
	ViolationDescription *string    `json:"violation_description"`
	ViolationJudgeBy     *uuid.UUID `json:"violation_judge_by"`
	ViolationPoint       *string    `json:"violation_point" validate:"omitempty,max=10"`
}

func (r *ViolationUpdateRequest) ApplyTo(m *model.ViolationModel) {
	if r.ViolationName != nil {
		m.ViolationName = *r.ViolationName
	}
	if r.ViolationDescription != nil {
		m.ViolationDescription = *r.ViolationDescription
	}
	if r.ViolationJudgeBy != nil {
		m.ViolationJudgeBy = *r.ViolationJudgeBy
	}
	if r.ViolationPoint != nil {
		m.ViolationPoint = *r.ViolationPoint
	}
}
