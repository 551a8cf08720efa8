package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pengajianku_backend/internals/features/school/attendances/model"
)

func TestBuildRecapWorkbook(t *testing.T) {
	rows := []RecordRow{
		{
			Name: "Ahmad",
			Entries: []model.AttendanceEntry{
				{Date: "2025-01-05", Status: "hadir", Description: "Pengajian Umum"},
			},
		},
		{
			Name: "Budi",
			Entries: []model.AttendanceEntry{
				{Date: "2025-01-05", Status: "izin", Description: "Sakit"},
			},
		},
	}
	recap := BuildRecapGrid(rows, 2025, 1)

	book, err := BuildRecapWorkbook(recap, 1)
	require.NoError(t, err)
	defer book.Close()

	get := func(cell string) string {
		v, err := book.GetCellValue(exportSheet, cell)
		require.NoError(t, err)
		return v
	}

	// header: label nama + judul bulan + nomor hari
	assert.Equal(t, "Nama", get("A1"))
	assert.Equal(t, "Januari", get("B1"))
	assert.Equal(t, "1", get("B2"))
	assert.Equal(t, "31", get("AF2"))

	// satu baris data per record, kode di kolom harinya
	assert.Equal(t, "Ahmad", get("A3"))
	assert.Equal(t, "H", get("F3"))
	assert.Equal(t, "Budi", get("A4"))
	assert.Equal(t, "I", get("F4"))
	assert.Equal(t, "", get("G3"))

	// baris keterangan: hanya dari record pertama
	assert.Equal(t, "Keterangan", get("A5"))
	assert.Equal(t, "Pengajian Umum", get("F5"))
	assert.Equal(t, "", get("G5"))

	merged, err := book.GetMergeCells(exportSheet)
	require.NoError(t, err)
	refs := make([]string, 0, len(merged))
	for _, m := range merged {
		refs = append(refs, m.GetStartAxis()+":"+m.GetEndAxis())
	}
	assert.Contains(t, refs, "A1:A2")
	assert.Contains(t, refs, "B1:AF1")
}
