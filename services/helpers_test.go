package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

// openWorkbook parses generated xlsx bytes, failing the test if they are not
// a valid workbook. The file is closed on cleanup.
func openWorkbook(t *testing.T, b []byte) *excelize.File {
	t.Helper()

	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}
