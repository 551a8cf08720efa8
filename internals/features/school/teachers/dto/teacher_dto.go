// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import "pengajianku_backend/internals/features/school/teachers/model"

/* =========================================================
   REQUEST DTO — CREATE / UPDATE (writable fields only)
========================================================= */

type TeacherCreateRequest struct {
	TeacherName       string `json:"teacher_name" validate:"required,max=100"`
	TeacherPicture    string `json:"teacher_picture"`
	TeacherStartDate  string `json:"teacher_start_date" validate:"required"`
	TeacherEndDate    string `json:"teacher_end_date"`
	TeacherNoTelp     string `json:"teacher_no_telp" validate:"required,max=30"`
	TeacherBidang     string `json:"teacher_bidang" validate:"required,max=100"`
	TeacherPendidikan string `json:"teacher_pendidikan" validate:"required,max=100"`
}

type TeacherUpdateRequest struct {
	TeacherName       *string `json:"teacher_name" validate:"omitempty,max=100"`
	TeacherPicture    *string `json:"teacher_picture"`
	TeacherStartDate  *string `json:"teacher_start_date"`
	TeacherEndDate    *string `json:"teacher_end_date"`
	TeacherNoTelp     *string `json:"teacher_no_telp" validate:"omitempty,max=30"`
	TeacherBidang     *string `json:"teacher_bidang" validate:"omitempty,max=100"`
	TeacherPendidikan *string `json:"teacher_pendidikan" validate:"omitempty,max=100"`
}

// ApplyTo salin field yang terisi saja (partial update).
func (r *TeacherUpdateRequest) ApplyTo(m *model.TeacherModel) {
	if r.TeacherName != nil {
		m.TeacherName = *r.TeacherName
	}
	if r.TeacherPicture != nil {
		m.TeacherPicture = *r.TeacherPicture
	}
	if r.TeacherStartDate != nil {
		m.TeacherStartDate = *r.TeacherStartDate
	}
	if r.TeacherEndDate != nil {
		m.TeacherEndDate = *r.TeacherEndDate
	}
	if r.TeacherNoTelp != nil {
		m.TeacherNoTelp = *r.TeacherNoTelp
	}
	if r.TeacherBidang != nil {
		m.TeacherBidang = *r.TeacherBidang
	}
	if r.TeacherPendidikan != nil {
		m.TeacherPendidikan = *r.TeacherPendidikan
	}
}
