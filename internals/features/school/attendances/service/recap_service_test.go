package service

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pengajianku_backend/internals/features/school/attendances/model"
)

func TestEncodeStatus(t *testing.T) {
	assert.Equal(t, "H", EncodeStatus(model.StatusPresent))
	assert.Equal(t, "I", EncodeStatus(model.StatusExcused))
	assert.Equal(t, "A", EncodeStatus(model.StatusAbsent))
	assert.Equal(t, "", EncodeStatus(""))
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year, month, want int
	}{
		{2024, 2, 29},
		{2023, 2, 28},
		{2025, 4, 30},
		{2025, 1, 31},
		{2025, 12, 31},
		{2000, 2, 29},
		{1900, 2, 28},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysInMonth(tt.year, tt.month),
			"daysInMonth(%d, %d)", tt.year, tt.month)
	}
}

func TestBuildRecapGridDenseRows(t *testing.T) {
	rows := []RecordRow{
		{Name: "Ahmad", Entries: nil},
		{Name: "Budi", Entries: []model.AttendanceEntry{}},
	}

	recap := BuildRecapGrid(rows, 2024, 2)

	require.Equal(t, 29, recap.DaysInMonth)
	require.Len(t, recap.Attendance, 2)
	for _, row := range recap.Attendance {
		assert.Len(t, row.Dates, 29)
		for d := 1; d <= 29; d++ {
			cell, ok := row.Dates[strconv.Itoa(d)]
			require.True(t, ok, "hari %d harus ada", d)
			assert.Equal(t, GridCell{}, cell)
		}
	}
}

func TestBuildRecapGridJanuari(t *testing.T) {
	rows := []RecordRow{{
		Name: "Ahmad",
		Entries: []model.AttendanceEntry{
			{Date: "2025-01-05", Status: "hadir", Description: "Pengajian Umum"},
			{Date: "2025-01-20", Status: "izin", Description: "Sakit"},
		},
	}}

	recap := BuildRecapGrid(rows, 2025, 1)

	require.Equal(t, 31, recap.DaysInMonth)
	require.Len(t, recap.Attendance, 1)

	row := recap.Attendance[0]
	assert.Equal(t, "Ahmad", row.Name)
	assert.Equal(t, GridCell{Status: "H", Description: "Pengajian Umum"}, row.Dates["5"])
	assert.Equal(t, GridCell{Status: "I", Description: "Sakit"}, row.Dates["20"])

	empty := 0
	for d := 1; d <= 31; d++ {
		if row.Dates[strconv.Itoa(d)] == (GridCell{}) {
			empty++
		}
	}
	assert.Equal(t, 29, empty)
}

func TestBuildRecapGridHalfOpenInterval(t *testing.T) {
	rows := []RecordRow{{
		Name: "Ahmad",
		Entries: []model.AttendanceEntry{
			{Date: "2024-12-31", Status: "hadir"},
			{Date: "2025-01-01", Status: "hadir"},
			{Date: "2025-01-31", Status: "izin"},
			{Date: "2025-02-01", Status: "absen"},
			{Date: "bukan-tanggal", Status: "hadir"},
		},
	}}

	recap := BuildRecapGrid(rows, 2025, 1)

	row := recap.Attendance[0]
	assert.Equal(t, "H", row.Dates["1"].Status)
	assert.Equal(t, "I", row.Dates["31"].Status)

	filled := 0
	for _, cell := range row.Dates {
		if cell.Status != "" {
			filled++
		}
	}
	assert.Equal(t, 2, filled, "entry di luar interval harus diabaikan")
}

func TestBuildRecapGridLastEntryWins(t *testing.T) {
	rows := []RecordRow{{
		Name: "Ahmad",
		Entries: []model.AttendanceEntry{
			{Date: "2025-01-05", Status: "hadir"},
			{Date: "2025-01-05", Status: "absen", Description: "susulan"},
		},
	}}

	recap := BuildRecapGrid(rows, 2025, 1)

	assert.Equal(t, GridCell{Status: "A", Description: "susulan"},
		recap.Attendance[0].Dates["5"])
}

func TestParseEntryDate(t *testing.T) {
	d, ok := ParseEntryDate("2025-01-05")
	require.True(t, ok)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, 5, d.Day())

	_, ok = ParseEntryDate("")
	assert.False(t, ok)
	_, ok = ParseEntryDate("05-01-2025")
	assert.False(t, ok)
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Januari", MonthName(1))
	assert.Equal(t, "Agustus", MonthName(8))
	assert.Equal(t, "Desember", MonthName(12))
	assert.Equal(t, "", MonthName(0))
	assert.Equal(t, "", MonthName(13))
}
