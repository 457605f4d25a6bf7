package handlers

import (
	"testing"
	"time"

	"github.com/rs/zerolog"

	"fencecalc/services"
)

// newPricedCalculator returns a calculator with each price applied as an edit.
func newPricedCalculator(t *testing.T, prices services.PriceTable) *Calculator {
	t.Helper()

	c := NewCalculator(zerolog.Nop())
	for id, v := range prices {
		if !c.SetPrice(id, v) {
			t.Fatalf("SetPrice(%q, %q) rejected", id, v)
		}
	}
	return c
}

// newTestExporter returns an exporter writing into a temp dir without delay.
func newTestExporter(t *testing.T) *Exporter {
	t.Helper()

	return &Exporter{
		OutputDir: t.TempDir(),
		Brand:     services.DefaultBrand,
		Logger:    zerolog.Nop(),
		Now: func() time.Time {
			return time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)
		},
	}
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}
