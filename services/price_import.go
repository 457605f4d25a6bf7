package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportError represents a single rejected row of a price list.
type ImportError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult is returned after parsing a price list file.
type ImportResult struct {
	TotalRows int
	Prices    PriceTable
	Errors    []ImportError
}

// ImportPrices reads a two-column price list (item id, unit price) with a
// header row. name selects the format by extension: .xlsx via excelize,
// anything else as CSV. Rows with a blank price are skipped silently, rows
// with an unknown item or a malformed price are reported and skipped, and a
// later row for the same item wins.
func ImportPrices(name string, r io.Reader) (ImportResult, error) {
	var rows [][]string
	var err error
	if strings.EqualFold(filepath.Ext(name), ".xlsx") {
		rows, err = parsePriceExcel(r)
	} else {
		rows, err = parsePriceCSV(r)
	}
	if err != nil {
		return ImportResult{}, err
	}

	res := ImportResult{
		TotalRows: len(rows),
		Prices:    PriceTable{},
	}
	for i, row := range rows {
		rowNum := i + 2 // 1-based, after the header

		if len(row) == 0 {
			continue
		}
		id := strings.ToLower(strings.TrimSpace(row[0]))
		var price string
		if len(row) > 1 {
			price = NormalizeEdit(strings.TrimSpace(row[1]))
		}

		if id == "" && price == "" {
			continue
		}
		if !IsKnownItem(id) {
			res.Errors = append(res.Errors, ImportError{Row: rowNum, Field: "item", Message: fmt.Sprintf("unknown item %q", id)})
			continue
		}
		if price == "" {
			continue
		}
		if err := ValidateEdit(price); err != nil {
			res.Errors = append(res.Errors, ImportError{Row: rowNum, Field: "price", Message: err.Error()})
			continue
		}
		res.Prices[id] = price
	}
	return res, nil
}

// parsePriceCSV reads a CSV price list and returns the data rows.
func parsePriceCSV(file io.Reader) ([][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return allRows[1:], nil
}

// parsePriceExcel reads the first sheet of an xlsx price list and returns the data rows.
func parsePriceExcel(file io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("file must contain a header row and at least one data row")
	}
	return rows[1:], nil
}

// GeneratePriceTemplate returns an xlsx price list with every item id and the
// current prices, ready to be filled in and imported back.
func GeneratePriceTemplate(prices PriceTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "item")
	f.SetCellValue(sheet, "B1", "price")
	for i, id := range ItemIDs() {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+row, id)
		f.SetCellValue(sheet, "B"+row, prices[id])
	}
	if err := f.SetColWidth(sheet, "A", "B", 14); err != nil {
		return nil, fmt.Errorf("set col width: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}
