package dto

type AttendanceCreateRequest struct {
	AttendanceStudentID string `json:"attendance_student_id" validate:"required,uuid"`
	AttendanceClassID   string `json:"attendance_class_id" validate:"required,uuid"`
}

// EntryUpsertRequest dipakai PUT /:id/entries. Tanggal wajib, status harus
// salah satu tag absensi; description boleh kosong (diisi default).
type EntryUpsertRequest struct {
	Date        string `json:"date" validate:"required"`
	Status      string `json:"status" validate:"required,oneof=hadir izin absen"`
	Description string `json:"description"`
}

type EntryRemoveRequest struct {
	Date string `json:"date"`
}
