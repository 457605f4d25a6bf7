package services

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBrand is the footer line printed on every report.
const DefaultBrand = "Vahit Keskin Fence Calculator"

// ReportRow represents a single priced row in the exported report.
type ReportRow struct {
	ID        string
	Title     string
	Quantity  float64
	Unit      string
	UnitPrice float64 // TotalCost / Quantity, 0 when Quantity is 0
	TotalCost float64
}

// ReportData holds all data needed for export.
type ReportData struct {
	Title       string
	Customer    string // formatted customer title
	Reference   string
	Brand       string
	CreatedDate string
	LengthLabel string     // total length as entered
	Items       []LineItem // full breakdown, used by the text report
	Rows        []ReportRow
	GrandTotal  float64
}

// BuildReportData prepares result for rendering. Rows with a total cost of
// exactly zero are dropped.
func BuildReportData(result Result, customerName, length, brand string, now time.Time) ReportData {
	if strings.TrimSpace(brand) == "" {
		brand = DefaultBrand
	}

	rows := make([]ReportRow, 0, len(result.Items))
	for _, it := range result.Items {
		if it.TotalCost == 0 {
			continue
		}
		rows = append(rows, ReportRow{
			ID:        it.ID,
			Title:     it.Title,
			Quantity:  it.Quantity,
			Unit:      it.Unit,
			UnitPrice: CalcUnitPrice(it.TotalCost, it.Quantity),
			TotalCost: it.TotalCost,
		})
	}

	items := make([]LineItem, len(result.Items))
	copy(items, result.Items)

	return ReportData{
		Title:       "ÇİT MALİYET RAPORU",
		Customer:    FormatCustomerTitle(customerName),
		Reference:   NewReference(),
		Brand:       brand,
		CreatedDate: now.Format("02.01.2006"),
		LengthLabel: length,
		Items:       items,
		Rows:        rows,
		GrandTotal:  result.GrandTotal,
	}
}

// NewReference returns a short, upper-case report reference like "FC-1A2B3C4D".
func NewReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "FC-" + strings.ToUpper(id[:8])
}
