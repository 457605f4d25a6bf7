// Package handlers holds the stateful calculator session and the report
// export runner that sit between a caller (the CLI) and the pure services.
package handlers

import (
	"github.com/rs/zerolog"

	"fencecalc/services"
)

// Calculator owns the current inputs and price table and keeps the latest
// estimate in sync with them. Every accepted edit recomputes synchronously.
type Calculator struct {
	input  services.Input
	prices services.PriceTable
	result services.Result
	logger zerolog.Logger
}

// NewCalculator returns a calculator initialized with the default inputs and
// an empty price table.
func NewCalculator(logger zerolog.Logger) *Calculator {
	c := &Calculator{logger: logger}
	c.Reset()
	return c
}

// Reset restores the default inputs and clears all prices.
func (c *Calculator) Reset() {
	c.input = services.DefaultInput()
	c.prices = services.PriceTable{}
	c.recalculate()
}

// SetField applies an edit to one input field. The edit is rejected, leaving
// state and result untouched, when the field is unknown or the value is not
// digits with at most one decimal separator.
func (c *Calculator) SetField(f services.Field, value string) bool {
	value = services.NormalizeEdit(value)
	if !services.IsValidEdit(value) {
		c.logger.Debug().Str("field", string(f)).Str("value", value).Msg("edit rejected")
		return false
	}
	next, ok := c.input.With(f, value)
	if !ok {
		c.logger.Debug().Str("field", string(f)).Msg("unknown field")
		return false
	}
	c.input = next
	c.recalculate()
	return true
}

// SetPrice applies an edit to the unit price of one item, with the same
// rejection rules as SetField.
func (c *Calculator) SetPrice(id, value string) bool {
	value = services.NormalizeEdit(value)
	if !services.IsKnownItem(id) || !services.IsValidEdit(value) {
		c.logger.Debug().Str("item", id).Str("value", value).Msg("price edit rejected")
		return false
	}
	c.prices = c.prices.With(id, value)
	c.recalculate()
	return true
}

// Input returns the current edit strings.
func (c *Calculator) Input() services.Input {
	return c.input
}

// Field returns the current edit string of f.
func (c *Calculator) Field(f services.Field) string {
	v, _ := c.input.Get(f)
	return v
}

// Prices returns a copy of the current price table.
func (c *Calculator) Prices() services.PriceTable {
	out := make(services.PriceTable, len(c.prices))
	for k, v := range c.prices {
		out[k] = v
	}
	return out
}

// PriceString returns the price as entered for id, "" when unset.
func (c *Calculator) PriceString(id string) string {
	return c.prices[id]
}

// Result returns the estimate for the current state.
func (c *Calculator) Result() services.Result {
	items := make([]services.LineItem, len(c.result.Items))
	copy(items, c.result.Items)
	return services.Result{Items: items, GrandTotal: c.result.GrandTotal}
}

func (c *Calculator) recalculate() {
	c.result = services.Estimate(c.input, c.prices, c.logger)
}
