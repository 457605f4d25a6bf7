package services

import (
	"math"

	"github.com/dustin/go-humanize"
)

// Turkish number layout: "." groups thousands, "," separates decimals.
const (
	moneyPattern = "#.###,##"
	wholePattern = "#.###,"
)

// FormatTRY formats an amount in Turkish lira notation, e.g. "1.234,56 ₺".
func FormatTRY(amount float64) string {
	return FormatMoney(amount) + " ₺"
}

// FormatMoney formats an amount with two decimals and Turkish grouping.
func FormatMoney(amount float64) string {
	return humanize.FormatFloat(moneyPattern, amount)
}

// FormatQuantity returns a string representation of the quantity value.
// Whole numbers get thousand grouping and no decimals; fractional values get 2 decimal places.
func FormatQuantity(qty float64) string {
	if qty == math.Trunc(qty) {
		return humanize.FormatFloat(wholePattern, qty)
	}
	return humanize.FormatFloat(moneyPattern, qty)
}
