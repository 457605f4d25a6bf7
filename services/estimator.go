package services

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rs/zerolog"
)

// tensionWireDivisor converts fence length (m) to tension wire weight (kg).
const tensionWireDivisor = 6.66

// LineItem is one row of the cost breakdown.
type LineItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Unit        string  `json:"unit"`
	UnitPrice   float64 `json:"unit_price"`
	TotalCost   float64 `json:"total_cost"`
}

// Result is the full output of one estimate.
type Result struct {
	Items      []LineItem `json:"items"`
	GrandTotal float64    `json:"grand_total"`
}

// Item returns the line item with the given id.
func (r Result) Item(id string) (LineItem, bool) {
	for _, it := range r.Items {
		if it.ID == id {
			return it, true
		}
	}
	return LineItem{}, false
}

// Estimate computes the material breakdown for in, pricing each item from
// prices. Every quantity is rounded up before it feeds a later formula. Each
// step is traced at debug level on logger.
func Estimate(in Input, prices PriceTable, logger zerolog.Logger) Result {
	p := in.Parse()

	if p.Length == 0 || p.Spacing <= 0 || p.Height == 0 {
		return Result{Items: []LineItem{}}
	}

	trace := func(label string, raw float64) float64 {
		rounded := math.Ceil(raw)
		logger.Debug().
			Str("step", label).
			Float64("raw", raw).
			Float64("rounded", rounded).
			Msg("estimate step")
		return rounded
	}

	poles := trace("poles", p.Length/p.Spacing)
	struts := trace("struts", ratio(poles, p.StrutInterval)*p.StrutCount)
	meshRolls := trace("mesh_rolls", ratio(p.Length, p.MeshRollLength))

	weightPerSqm := ratio(p.WireThickness*p.WireThickness*p.WeightConstant, p.MeshEye)
	rollArea := p.MeshRollLength * p.Height
	rollWeight := trace("mesh_roll_weight", weightPerSqm*rollArea)

	barbedRolls := trace("barbed_rolls", ratio(p.BarbedRows*p.Length, p.BarbedRollLength))
	tension := trace("tension_wire", p.Length/tensionWireDivisor)
	tie := trace("tie_wire", tension/3.0)

	items := []LineItem{
		newLineItem(ItemPole, "Direk",
			fmt.Sprintf("Her %s m'de bir", formatParam(p.Spacing)),
			poles, "Adet", prices),
		newLineItem(ItemStrut, "Payanda",
			fmt.Sprintf("Her %s direkte %s adet", formatParam(p.StrutInterval), formatParam(p.StrutCount)),
			struts, "Adet", prices),
		newLineItem(ItemMeshRolls, "Kafes Tel (Toplam)",
			fmt.Sprintf("%s m'lik top (%s m Yükseklik)", formatParam(p.MeshRollLength), formatParam(p.Height)),
			meshRolls, "Top", prices),
		newLineItem(ItemMeshWeight, "1 Top Tel Ağırlığı",
			fmt.Sprintf("1 Rulo (%s m) ağırlığıdır.", formatParam(p.MeshRollLength)),
			rollWeight, "Kg", prices),
		newLineItem(ItemBarbedWire, "Dikenli Tel",
			fmt.Sprintf("%d Sıra (%s m/top)", int(p.BarbedRows), formatParam(p.BarbedRollLength)),
			barbedRolls, "Top", prices),
		newLineItem(ItemTensionWire, "Gergi Teli", "Uzunluk / 6.66", tension, "Kg", prices),
		newLineItem(ItemTieWire, "Bağlama Teli", "Gergi Telinin 1/3'ü", tie, "Kg", prices),
	}

	return Result{
		Items:      items,
		GrandTotal: CalcGrandTotal(items),
	}
}

func newLineItem(id, title, desc string, qty float64, unit string, prices PriceTable) LineItem {
	unitPrice := prices.Price(id)
	return LineItem{
		ID:          id,
		Title:       title,
		Description: desc,
		Quantity:    qty,
		Unit:        unit,
		UnitPrice:   unitPrice,
		TotalCost:   CalcLineTotal(qty, unitPrice),
	}
}

// ratio divides a by b, treating a non-positive divisor as "nothing needed".
func ratio(a, b float64) float64 {
	if b <= 0 {
		return 0
	}
	return a / b
}

// formatParam renders a parameter without trailing zeros ("15", "3.5").
func formatParam(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
