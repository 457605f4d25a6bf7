package services

// Item identifiers. These are stable keys, not display strings.
const (
	ItemPole        = "direk"
	ItemStrut       = "payanda"
	ItemMeshRolls   = "kafes_top"
	ItemMeshWeight  = "kafes_kg"
	ItemBarbedWire  = "diken"
	ItemTensionWire = "gergi"
	ItemTieWire     = "baglama"
)

var itemIDs = []string{
	ItemPole,
	ItemStrut,
	ItemMeshRolls,
	ItemMeshWeight,
	ItemBarbedWire,
	ItemTensionWire,
	ItemTieWire,
}

// ItemIDs returns the item identifiers in breakdown order.
func ItemIDs() []string {
	out := make([]string, len(itemIDs))
	copy(out, itemIDs)
	return out
}

// IsKnownItem reports whether id is one of the fixed item identifiers.
func IsKnownItem(id string) bool {
	for _, known := range itemIDs {
		if known == id {
			return true
		}
	}
	return false
}

// PriceTable maps an item identifier to the unit price as entered.
type PriceTable map[string]string

// Price returns the parsed unit price for id, 0 when absent or unparseable.
func (p PriceTable) Price(id string) float64 {
	return parseDecimal(p[id], 0)
}

// With returns a copy of p with id set to value.
func (p PriceTable) With(id, value string) PriceTable {
	out := make(PriceTable, len(p)+1)
	for k, v := range p {
		out[k] = v
	}
	out[id] = value
	return out
}
