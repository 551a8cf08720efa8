package dto

import "pengajianku_backend/internals/features/lembaga/pc/model"

type PcCreateRequest struct {
	PcName    string `json:"pc_name" validate:"required,max=100"`
	PcRegion  int    `json:"pc_region"`
	PcAddress string `json:"pc_address"`
}

type PcUpdateRequest struct {
	PcName    *string `json:"pc_name" validate:"omitempty,max=100"`
	PcRegion  *int    `json:"pc_region"`
	PcAddress *string `json:"pc_address"`
}

// PacItemRequest untuk upsert/remove anggota pac_list.
type PacItemRequest struct {
	PacID string `json:"pacId" validate:"required,uuid"`
}

func (r *PcUpdateRequest) ApplyTo(m *model.PcModel) {
	if r.PcName != nil {
		m.PcName = *r.PcName
	}
	if r.PcRegion != nil {
		m.PcRegion = *r.PcRegion
	}
	if r.PcAddress != nil {
		m.PcAddress = *r.PcAddress
	}
}
