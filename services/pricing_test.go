package services

import "testing"

func TestCalcLineTotal(t *testing.T) {
	tests := []struct {
		name      string
		qty       float64
		unitPrice float64
		expect    float64
	}{
		{"basic multiplication", 86, 150, 12900},
		{"zero qty", 0, 100, 0},
		{"zero price", 5, 0, 0},
		{"decimal price", 46, 12.5, 575},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalcLineTotal(tt.qty, tt.unitPrice)
			if got != tt.expect {
				t.Errorf("CalcLineTotal(%v, %v) = %v, want %v", tt.qty, tt.unitPrice, got, tt.expect)
			}
		})
	}
}

func TestCalcGrandTotal(t *testing.T) {
	tests := []struct {
		name   string
		items  []LineItem
		expect float64
	}{
		{"nil", nil, 0},
		{"empty", []LineItem{}, 0},
		{"single", []LineItem{{TotalCost: 250}}, 250},
		{"several", []LineItem{{TotalCost: 100}, {TotalCost: 0}, {TotalCost: 40.5}}, 140.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalcGrandTotal(tt.items); got != tt.expect {
				t.Errorf("CalcGrandTotal() = %v, want %v", got, tt.expect)
			}
		})
	}
}

func TestCalcUnitPrice(t *testing.T) {
	tests := []struct {
		name   string
		total  float64
		qty    float64
		expect float64
	}{
		{"divides", 12900, 86, 150},
		{"zero qty guarded", 500, 0, 0},
		{"zero total", 0, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalcUnitPrice(tt.total, tt.qty); got != tt.expect {
				t.Errorf("CalcUnitPrice(%v, %v) = %v, want %v", tt.total, tt.qty, got, tt.expect)
			}
		})
	}
}
