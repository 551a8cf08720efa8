package dto

import "pengajianku_backend/internals/features/lembaga/pac/model"

type PacCreateRequest struct {
	PacName    string `json:"pac_name" validate:"required,max=100"`
	PacVillage int    `json:"pac_village"`
	PacAddress string `json:"pac_address"`
}

type PacUpdateRequest struct {
	PacName    *string `json:"pac_name" validate:"omitempty,max=100"`
	PacVillage *int    `json:"pac_village"`
	PacAddress *string `json:"pac_address"`
}

func (r *PacUpdateRequest) ApplyTo(m *model.PacModel) {
	if r.PacName != nil {
		m.PacName = *r.PacName
	}
	if r.PacVillage != nil {
		m.PacVillage = *r.PacVillage
	}
	if r.PacAddress != nil {
		m.PacAddress = *r.PacAddress
	}
}
