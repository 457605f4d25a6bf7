// Package services provides the fence estimate calculation and report
// rendering functions.
package services

// CalcLineTotal returns the cost of a line item.
func CalcLineTotal(qty, unitPrice float64) float64 {
	return qty * unitPrice
}

// CalcGrandTotal sums the total cost of every line item.
func CalcGrandTotal(items []LineItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.TotalCost
	}
	return sum
}

// CalcUnitPrice derives a per-unit price from a line total. A zero quantity
// yields 0.
func CalcUnitPrice(totalCost, qty float64) float64 {
	if qty == 0 {
		return 0
	}
	return totalCost / qty
}
