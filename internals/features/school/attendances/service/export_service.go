package service

import (
	"strconv"

	"github.com/xuri/excelize/v2"
)

const exportSheet = "Sheet1"

func thinBorders() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
}

// BuildRecapWorkbook menyusun workbook rekap bulanan:
// baris 1 judul nama bulan (merge melintasi semua kolom hari), baris 2 nomor
// hari, kolom A merge 2 baris untuk label nama, satu baris data per record,
// lalu satu baris keterangan di bawah (teks diputar vertikal). Keterangan
// diambil dari record PERTAMA saja, mengikuti perilaku rekap yang sudah ada.
func BuildRecapWorkbook(recap RecapResponse, month int) (*excelize.File, error) {
	f := excelize.NewFile()

	lastCol := recap.DaysInMonth + 1 // kolom A untuk nama, hari mulai kolom B
	headerEnd, err := excelize.CoordinatesToCellName(lastCol, 1)
	if err != nil {
		return nil, err
	}

	f.SetCellValue(exportSheet, "A1", "Nama")
	if err := f.MergeCell(exportSheet, "A1", "A2"); err != nil {
		return nil, err
	}
	f.SetCellValue(exportSheet, "B1", MonthName(month))
	if err := f.MergeCell(exportSheet, "B1", headerEnd); err != nil {
		return nil, err
	}
	for d := 1; d <= recap.DaysInMonth; d++ {
		cell, err := excelize.CoordinatesToCellName(d+1, 2)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(exportSheet, cell, d)
	}

	row := 3
	for _, r := range recap.Attendance {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return nil, err
		}
		f.SetCellValue(exportSheet, cell, r.Name)
		for d := 1; d <= recap.DaysInMonth; d++ {
			cell, err := excelize.CoordinatesToCellName(d+1, row)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(exportSheet, cell, r.Dates[strconv.Itoa(d)].Status)
		}
		row++
	}

	remarksRow := row
	f.SetCellValue(exportSheet, "A"+strconv.Itoa(remarksRow), "Keterangan")
	if len(recap.Attendance) > 0 {
		first := recap.Attendance[0]
		for d := 1; d <= recap.DaysInMonth; d++ {
			cell, err := excelize.CoordinatesToCellName(d+1, remarksRow)
			if err != nil {
				return nil, err
			}
			f.SetCellValue(exportSheet, cell, first.Dates[strconv.Itoa(d)].Description)
		}
	}

	if err := f.SetRowHeight(exportSheet, remarksRow, 90); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(exportSheet, "A", "A", 24); err != nil {
		return nil, err
	}

	centered, err := f.NewStyle(&excelize.Style{
		Border:    thinBorders(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	rotated, err := f.NewStyle(&excelize.Style{
		Border: thinBorders(),
		Alignment: &excelize.Alignment{
			Horizontal:   "center",
			Vertical:     "center",
			TextRotation: 90,
			WrapText:     true,
		},
	})
	if err != nil {
		return nil, err
	}

	lastCell, err := excelize.CoordinatesToCellName(lastCol, remarksRow)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(exportSheet, "A1", lastCell, centered); err != nil {
		return nil, err
	}
	remarksStart, err := excelize.CoordinatesToCellName(2, remarksRow)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(exportSheet, remarksStart, lastCell, rotated); err != nil {
		return nil, err
	}

	return f, nil
}
