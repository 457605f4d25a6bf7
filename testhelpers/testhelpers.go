// Package testhelpers provides fixtures and assertions shared by the
// fencecalc package tests.
package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fencecalc/services"
)

// SamplePrices is a realistic price table used across tests. With the default
// inputs it produces a grand total of 33440.
func SamplePrices() services.PriceTable {
	return services.PriceTable{
		services.ItemPole:        "150",
		services.ItemStrut:       "120",
		services.ItemMeshRolls:   "900",
		services.ItemBarbedWire:  "450",
		services.ItemTensionWire: "60",
		services.ItemTieWire:     "65",
	}
}

// SampleGrandTotal is the grand total for DefaultInput priced with SamplePrices.
const SampleGrandTotal = 33440.0

// FindItem returns the line item with the given id, failing the test if absent.
func FindItem(t *testing.T, r services.Result, id string) services.LineItem {
	t.Helper()

	it, ok := r.Item(id)
	if !ok {
		t.Fatalf("line item %q not found in %d items", id, len(r.Items))
	}
	return it
}

// WriteFile writes content under a fresh temp dir and returns the path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// AssertContains checks that body contains all specified fragments.
func AssertContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected output to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

// AssertNotContains checks that body contains none of the specified fragments.
func AssertNotContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if strings.Contains(body, frag) {
			t.Errorf("expected output NOT to contain %q\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
