package services

import (
	"fmt"
	"strings"
)

const textRule = "========================="

// GenerateText renders the plain-text share report. The mesh roll weight row
// is informational and left out; amounts are printed only when non-zero.
func GenerateText(data ReportData) string {
	var b strings.Builder

	b.WriteString("🏗️ " + data.Title + "\n")
	b.WriteString(textRule + "\n")
	if data.Customer != "" {
		b.WriteString(data.Customer + "\n")
	}
	fmt.Fprintf(&b, "Arazi Uzunluğu: %s m\n\n", data.LengthLabel)

	b.WriteString("📋 MALZEME LİSTESİ:\n")
	for _, it := range data.Items {
		if it.ID == ItemMeshWeight {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s %s\n", it.Title, FormatQuantity(it.Quantity), it.Unit)
		if it.TotalCost > 0 {
			fmt.Fprintf(&b, "  Tutar: %s\n", FormatTRY(it.TotalCost))
		}
	}

	b.WriteString("\n" + textRule + "\n")
	fmt.Fprintf(&b, "💰 GENEL TOPLAM: %s\n", FormatTRY(data.GrandTotal))
	b.WriteString(textRule + "\n")
	fmt.Fprintf(&b, "%s ile hesaplandı.", data.Brand)

	return b.String()
}
