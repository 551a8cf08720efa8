package service

import (
	"strconv"
	"strings"
	"time"
	"unicode"

	"pengajianku_backend/internals/features/school/attendances/model"
)

// GridCell satu sel kalender: kode status hasil encode + keterangan.
type GridCell struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

// GridRow satu baris rekap per record, kunci dates = hari (1..daysInMonth).
type GridRow struct {
	Name  string              `json:"name"`
	Dates map[string]GridCell `json:"dates"`
}

type RecapResponse struct {
	DaysInMonth int       `json:"daysInMonth"`
	Attendance  []GridRow `json:"attendance"`
}

// RecordRow input builder: nama tampilan + entry mentah dari satu record.
type RecordRow struct {
	Name    string
	Entries []model.AttendanceEntry
}

// EncodeStatus memetakan tag status ke kode satu huruf kapital
// (hadir→H, izin→I, absen→A); kosong tetap kosong.
func EncodeStatus(status string) string {
	r := []rune(status)
	if len(r) == 0 {
		return ""
	}
	return string(unicode.ToUpper(r[0]))
}

// DaysInMonth jumlah hari di bulan target (month 1-12), termasuk tahun kabisat.
// time.Date menormalkan hari 0 bulan berikutnya jadi hari terakhir bulan ini.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// ParseEntryDate menerima YYYY-MM-DD atau RFC3339 dan mengembalikan
// tanggal ternormalisasi (jam dibuang).
func ParseEntryDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		t = t.Local()
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), true
	}
	return time.Time{}, false
}

// BuildRecapGrid materialisasi entry sparse jadi grid kalender padat:
// satu baris per record, tiap baris tepat daysInMonth sel. Entry di luar
// interval [awal bulan, awal bulan berikutnya) diabaikan. Kalau ada dua
// entry untuk tanggal yang sama (harusnya tidak, upsert menjaga itu),
// entry terakhir dalam urutan simpan yang menang.
func BuildRecapGrid(rows []RecordRow, year, month int) RecapResponse {
	days := DaysInMonth(year, month)
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	out := make([]GridRow, 0, len(rows))
	for _, row := range rows {
		dates := make(map[string]GridCell, days)
		for d := 1; d <= days; d++ {
			dates[strconv.Itoa(d)] = GridCell{}
		}

		for _, entry := range row.Entries {
			t, ok := ParseEntryDate(entry.Date)
			if !ok {
				continue
			}
			if t.Before(start) || !t.Before(end) {
				continue
			}
			dates[strconv.Itoa(t.Day())] = GridCell{
				Status:      EncodeStatus(entry.Status),
				Description: entry.Description,
			}
		}

		out = append(out, GridRow{Name: row.Name, Dates: dates})
	}

	return RecapResponse{DaysInMonth: days, Attendance: out}
}

var monthNames = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName nama bulan dalam bahasa Indonesia (month 1-12).
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}
