package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const excelSheetName = "Maliyet"

// GenerateExcel creates a one-sheet workbook from the given ReportData and
// returns the file contents as a byte slice.
func GenerateExcel(data ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, excelSheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	sheet := excelSheetName

	columns := []string{"A", "B", "C", "D", "E"}
	lastCol := columns[len(columns)-1]

	widths := []float64{28, 12, 10, 16, 18}
	for i, c := range columns {
		if err := f.SetColWidth(sheet, c, c, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", c, err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16, Color: "#3F51B5"},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#1E1E1E"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// 4 = "#,##0.00"
	rowStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
		NumFmt: 4,
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 12},
		NumFmt: 4,
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Header Rows (1-4) ───────────────────────────────────────────────

	header := []struct {
		cell  string
		value string
		style int
	}{
		{"1", data.Title, titleStyle},
		{"2", data.Customer, subtitleStyle},
		{"3", fmt.Sprintf("Toplam Arazi Uzunluğu: %s Metre", data.LengthLabel), subtitleStyle},
		{"4", fmt.Sprintf("Referans: %s  Tarih: %s", data.Reference, data.CreatedDate), subtitleStyle},
	}
	for _, h := range header {
		if err := f.MergeCell(sheet, "A"+h.cell, lastCol+h.cell); err != nil {
			return nil, fmt.Errorf("merge header row %s: %w", h.cell, err)
		}
		f.SetCellValue(sheet, "A"+h.cell, sanitizeExcelCell(h.value))
		f.SetCellStyle(sheet, "A"+h.cell, lastCol+h.cell, h.style)
	}

	// ── Row 6: Column Headers ───────────────────────────────────────────

	headers := []string{"Malzeme", "Miktar", "Birim", "Birim Fiyat", "Tutar"}
	for i, h := range headers {
		f.SetCellValue(sheet, columns[i]+"6", h)
	}
	f.SetCellStyle(sheet, "A6", lastCol+"6", headerStyle)

	// ── Data Rows (starting row 7) ──────────────────────────────────────

	rowNum := 7
	for _, r := range data.Rows {
		rs := fmt.Sprintf("%d", rowNum)
		f.SetCellValue(sheet, "A"+rs, sanitizeExcelCell(r.Title))
		f.SetCellValue(sheet, "B"+rs, r.Quantity)
		f.SetCellValue(sheet, "C"+rs, sanitizeExcelCell(r.Unit))
		f.SetCellValue(sheet, "D"+rs, r.UnitPrice)
		f.SetCellValue(sheet, "E"+rs, r.TotalCost)
		f.SetCellStyle(sheet, "A"+rs, lastCol+rs, rowStyle)
		rowNum++
	}

	// ── Grand Total ─────────────────────────────────────────────────────

	rowNum++
	rs := fmt.Sprintf("%d", rowNum)
	f.SetCellValue(sheet, "D"+rs, "Genel Toplam:")
	f.SetCellValue(sheet, "E"+rs, data.GrandTotal)
	f.SetCellStyle(sheet, "D"+rs, "E"+rs, totalStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
