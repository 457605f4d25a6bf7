package services

import "testing"

func TestFormatCustomerTitle(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"blank", "", "İsimsiz Müşteri - Tel Çit Hesaplama"},
		{"whitespace only", "   ", "İsimsiz Müşteri - Tel Çit Hesaplama"},
		{"single word", "ahmet", "Ahmet - Tel Çit Hesaplama"},
		{"single upper word", "MEHMET", "Mehmet - Tel Çit Hesaplama"},
		{"name and surname", "ahmet yılmaz", "Ahmet YILMAZ - Tel Çit Hesaplama"},
		{"turkish dotted i", "  ismail   demir ", "İsmail DEMİR - Tel Çit Hesaplama"},
		{"three words", "ali veli can", "Ali Veli CAN - Tel Çit Hesaplama"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCustomerTitle(tt.input)
			if got != tt.want {
				t.Errorf("FormatCustomerTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCustomerSalutation(t *testing.T) {
	got := CustomerSalutation(FormatCustomerTitle("ahmet yılmaz"))
	if got != "Ahmet YILMAZ" {
		t.Errorf("CustomerSalutation() = %q, want %q", got, "Ahmet YILMAZ")
	}
}
