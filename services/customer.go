package services

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	customerTitleSuffix = " - Tel Çit Hesaplama"
	anonymousCustomer   = "İsimsiz Müşteri"
)

// FormatCustomerTitle builds the report title for a customer name. A single
// word is title cased; for several words the last one (the surname) is upper
// cased and the rest title cased. Casing follows Turkish rules (i -> İ).
func FormatCustomerTitle(name string) string {
	words := strings.Fields(name)
	if len(words) == 0 {
		return anonymousCustomer + customerTitleSuffix
	}

	title := cases.Title(language.Turkish)
	upper := cases.Upper(language.Turkish)

	last := len(words) - 1
	for i, w := range words {
		if i == last && last > 0 {
			words[i] = upper.String(w)
			continue
		}
		words[i] = title.String(w)
	}
	return strings.Join(words, " ") + customerTitleSuffix
}

// CustomerSalutation returns the name part of a formatted customer title.
func CustomerSalutation(title string) string {
	name, _, _ := strings.Cut(title, " -")
	return name
}
