package services

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/rs/zerolog"
	"golang.org/x/text/encoding/unicode"
)

func init() {
	// Keep pdfcpu from writing a config dir during tests.
	model.ConfigPath = "disable"
}

// pdfPageText returns the strings drawn on page 1, one per line. Text set in
// the embedded UTF-8 font is stored as UTF-16BE literals.
func pdfPageText(t *testing.T, pdf []byte) string {
	t.Helper()

	ctx, err := api.ReadContext(bytes.NewReader(pdf), model.NewDefaultConfiguration())
	if err != nil {
		t.Fatalf("ReadContext() error = %v", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		t.Fatalf("ValidateContext() error = %v", err)
	}
	page, _, _, err := ctx.PageDict(1, false)
	if err != nil {
		t.Fatalf("PageDict(1) error = %v", err)
	}
	content, err := ctx.PageContent(page)
	if err != nil {
		t.Fatalf("PageContent() error = %v", err)
	}

	dec := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewDecoder()
	var lines []string
	for _, lit := range stringLiterals(content) {
		s, err := dec.String(lit)
		if err != nil {
			t.Fatalf("decode %q: %v", lit, err)
		}
		lines = append(lines, s)
	}
	return strings.Join(lines, "\n")
}

// stringLiterals collects the (...) string operands of a content stream.
func stringLiterals(content []byte) []string {
	var out []string
	for i := 0; i < len(content); i++ {
		if content[i] != '(' {
			continue
		}
		var lit []byte
		for i++; i < len(content) && content[i] != ')'; i++ {
			c := content[i]
			if c == '\\' && i+1 < len(content) {
				i++
				switch content[i] {
				case 'r':
					c = '\r'
				case 'n':
					c = '\n'
				case 't':
					c = '\t'
				default:
					c = content[i]
				}
			}
			lit = append(lit, c)
		}
		out = append(out, string(lit))
	}
	return out
}

func TestGeneratePDF_PricedReport(t *testing.T) {
	data := BuildReportData(pricedResult(), "ahmet yılmaz", "300", "", time.Now())

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
	// PDF files start with %PDF
	if len(result) > 4 && string(result[:5]) != "%PDF-" {
		t.Errorf("result does not start with PDF header, got %q", string(result[:5]))
	}

	pages, err := api.PageCount(bytes.NewReader(result), nil)
	if err != nil {
		t.Fatalf("PageCount() error = %v", err)
	}
	if pages != 1 {
		t.Errorf("PageCount() = %d, want 1", pages)
	}
}

func TestGeneratePDF_TurkishText(t *testing.T) {
	prices := PriceTable{ItemPole: "150", ItemTieWire: "65"}
	result := Estimate(DefaultInput(), prices, zerolog.Nop())
	data := BuildReportData(result, "ayşe yılmaz", "300", "", time.Now())

	raw, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	got := pdfPageText(t, raw)

	wantFragments := []string{
		"ÇİT MALİYET RAPORU",
		"Ayşe YILMAZ - Tel Çit Hesaplama",
		"Sayın Ayşe YILMAZ",
		"Toplam Arazi Uzunluğu:",
		"MİKTAR",
		"Bağlama Teli",
		"GENEL TOPLAM MALİYET",
		"13.940,00 TL",
	}
	for _, frag := range wantFragments {
		if !strings.Contains(got, frag) {
			t.Errorf("PDF text missing %q\n---\n%s", frag, got)
		}
	}
}

func TestGeneratePDF_EmptyItems(t *testing.T) {
	data := BuildReportData(Result{}, "", "0", "", time.Now())

	result, err := GeneratePDF(data)
	if err != nil {
		t.Fatalf("GeneratePDF() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GeneratePDF() returned empty bytes")
	}
}

func TestReportFonts(t *testing.T) {
	fonts, err := reportFonts()
	if err != nil {
		t.Fatalf("reportFonts() error = %v", err)
	}
	if len(fonts) != 2 {
		t.Fatalf("len(fonts) = %d, want 2", len(fonts))
	}
	for _, f := range fonts {
		if f.Family != reportFontFamily || len(f.Bytes) == 0 {
			t.Errorf("font %q/%q has %d bytes", f.Family, f.Style, len(f.Bytes))
		}
	}
}

func TestPdfMoney(t *testing.T) {
	if got := pdfMoney(12900); got != "12.900,00 TL" {
		t.Errorf("pdfMoney(12900) = %q", got)
	}
}
