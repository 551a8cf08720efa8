package dto

import "pengajianku_backend/internals/features/school/parents/model"

type ParentCreateRequest struct {
	ParentName    string `json:"parent_name" validate:"required,max=100"`
	ParentNoTelp  string `json:"parent_no_telp" validate:"required,max=30"`
	ParentPoss    string `json:"parent_poss" validate:"required,max=100"`
	ParentRegion  int    `json:"parent_region"`
	ParentAddress string `json:"parent_address"`
}

type ParentUpdateRequest struct {
	ParentName    *string `json:"parent_name" validate:"omitempty,max=100"`
	ParentNoTelp  *string `json:"parent_no_telp" validate:"omitempty,max=30"`
	ParentPoss    *string `json:"parent_poss" validate:"omitempty,max=100"`
	ParentRegion  *int    `json:"parent_region"`
	ParentAddress *string `json:"parent_address"`
}

func (r *ParentUpdateRequest) ApplyTo(m *model.ParentModel) {
	if r.ParentName != nil {
		m.ParentName = *r.ParentName
	}
	if r.ParentNoTelp != nil {
		m.ParentNoTelp = *r.ParentNoTelp
	}
	if r.ParentPoss != nil {
		m.ParentPoss = *r.ParentPoss
	}
	if r.ParentRegion != nil {
		m.ParentRegion = *r.ParentRegion
	}
	if r.ParentAddress != nil {
		m.ParentAddress = *r.ParentAddress
	}
}
