package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status absensi (tag tetap, dipakai juga oleh encoder rekap)
const (
	StatusPresent = "hadir"
	StatusExcused = "izin"
	StatusAbsent  = "absen"

	// Keterangan default kalau entry dikirim tanpa description
	DefaultEntryDescription = "Pengajian Umum"
)

// AttendanceEntry adalah satu elemen di array attendance_entries.
// date disimpan dalam format YYYY-MM-DD; maksimal satu entry per tanggal
// per record (dijaga oleh upsert satu-statement di controller).
type AttendanceEntry struct {
	Date        string `json:"date"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

type AttendanceModel struct {
	AttendanceID        uuid.UUID                             `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`
	AttendanceStudentID uuid.UUID                             `gorm:"type:uuid;not null;uniqueIndex:idx_attendances_student_class" json:"attendance_student_id"`
	AttendanceClassID   uuid.UUID                             `gorm:"type:uuid;not null;uniqueIndex:idx_attendances_student_class" json:"attendance_class_id"`
	AttendanceEntries   datatypes.JSONSlice[AttendanceEntry]  `gorm:"type:jsonb;default:'[]'" json:"attendance_entries"`
	AttendanceCreatedBy uuid.UUID                             `gorm:"type:uuid;not null" json:"attendance_created_by"`
	AttendanceCreatedAt time.Time                             `gorm:"autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time                             `gorm:"autoUpdateTime" json:"attendance_updated_at"`
	AttendanceDeletedAt gorm.DeletedAt                        `gorm:"column:attendance_deleted_at" json:"attendance_deleted_at,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendances"
}
