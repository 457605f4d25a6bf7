package services

import (
	_ "embed"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/core/entity"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/johnfercher/maroto/v2/pkg/repository"
)

// The core PDF fonts are cp1252 only and lose ı, İ, ş, Ş, ğ and Ğ, so the
// report embeds a UTF-8 font and uses it as the default family.
const reportFontFamily = "dejavu"

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	reportFontRegular []byte

	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	reportFontBold []byte
)

var (
	brandColor = &props.Color{Red: 63, Green: 81, Blue: 181}
	darkColor  = &props.Color{Red: 30, Green: 30, Blue: 30}
	white      = &props.Color{Red: 255, Green: 255, Blue: 255}
	grey       = &props.Color{Red: 90, Green: 90, Blue: 90}
)

// GeneratePDF creates a single-page A4 cost report using maroto/v2.
// It returns the raw PDF bytes or an error.
func GeneratePDF(data ReportData) ([]byte, error) {
	fonts, err := reportFonts()
	if err != nil {
		return nil, fmt.Errorf("load report fonts: %w", err)
	}

	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithCustomFonts(fonts).
		WithDefaultFont(&props.Font{Family: reportFontFamily}).
		Build()

	m := maroto.New(cfg)

	addReportHeader(m, data)
	addLengthCard(m, data)
	addItemsHeader(m)
	for _, r := range data.Rows {
		addItemRow(m, r)
	}
	addGrandTotal(m, data)
	addReportFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

// addReportHeader adds the coloured title band, customer title, reference and date.
func addReportHeader(m core.Maroto, data ReportData) {
	band := &props.Cell{BackgroundColor: brandColor}

	m.AddRows(
		row.New(14).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: white,
					Top:   3,
					Left:  4,
				}),
			).WithStyle(band),
		),
		row.New(8).Add(
			col.New(12).Add(
				text.New(data.Brand, props.Text{
					Size:  10,
					Align: align.Left,
					Color: white,
					Left:  4,
				}),
			).WithStyle(band),
		),
	)

	m.AddRows(row.New(6))

	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(data.Customer, props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
				}),
			),
		),
		row.New(6).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Referans: %s", data.Reference), props.Text{
					Size:  9,
					Align: align.Left,
					Color: grey,
				}),
			),
			col.New(6).Add(
				text.New(fmt.Sprintf("Tarih: %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: grey,
				}),
			),
		),
	)

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Sayın %s, arazi için hesaplanan malzeme listesi aşağıdadır.", CustomerSalutation(data.Customer)), props.Text{
					Size:  9,
					Align: align.Left,
					Top:   2,
				}),
			),
		),
	)

	m.AddRows(row.New(4))
}

// addLengthCard shows the total land length.
func addLengthCard(m core.Maroto, data ReportData) {
	card := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 242, Blue: 250}}

	m.AddRows(
		row.New(12).Add(
			col.New(5).Add(
				text.New("Toplam Arazi Uzunluğu:", props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Left,
					Top:   3,
					Left:  4,
				}),
			).WithStyle(card),
			col.New(7).Add(
				text.New(fmt.Sprintf("%s Metre", data.LengthLabel), props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: brandColor,
					Top:   2,
				}),
			).WithStyle(card),
		),
	)

	m.AddRows(row.New(6))
}

// addItemsHeader adds the column header row for the materials table.
func addItemsHeader(m core.Maroto) {
	headerText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: grey,
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left

	m.AddRows(
		row.New(8).Add(
			col.New(5).Add(text.New("MALZEME", headerTextLeft)),
			col.New(2).Add(text.New("MİKTAR", headerText)),
			col.New(2).Add(text.New("BİRİM FİYAT", headerText)),
			col.New(3).Add(text.New("TUTAR", headerText)),
		),
	)
}

// addItemRow adds a single priced line to the materials table.
func addItemRow(m core.Maroto, r ReportRow) {
	base := props.Text{Size: 10, Align: align.Right}
	left := base
	left.Align = align.Left

	m.AddRows(
		row.New(9).Add(
			col.New(5).Add(text.New(r.Title, left)),
			col.New(2).Add(text.New(fmt.Sprintf("%s %s", FormatQuantity(r.Quantity), r.Unit), base)),
			col.New(2).Add(text.New(pdfMoney(r.UnitPrice), base)),
			col.New(3).Add(text.New(pdfMoney(r.TotalCost), base)),
		),
	)
}

// addGrandTotal adds the dark summary band.
func addGrandTotal(m core.Maroto, data ReportData) {
	m.AddRows(row.New(6))

	band := &props.Cell{BackgroundColor: darkColor}
	m.AddRows(
		row.New(16).Add(
			col.New(7).Add(
				text.New("GENEL TOPLAM MALİYET", props.Text{
					Size:  12,
					Style: fontstyle.Bold,
					Align: align.Left,
					Color: white,
					Top:   5,
					Left:  4,
				}),
			).WithStyle(band),
			col.New(5).Add(
				text.New(pdfMoney(data.GrandTotal), props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Right,
					Color: white,
					Top:   4,
					Right: 4,
				}),
			).WithStyle(band),
		),
	)
}

// addReportFooter adds the generated-date line at the bottom.
func addReportFooter(m core.Maroto, data ReportData) {
	m.AddRows(row.New(6))
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(
				text.New(
					fmt.Sprintf("%s ile hesaplandı. %s", data.Brand, data.CreatedDate),
					props.Text{
						Size:  7,
						Align: align.Left,
						Color: &props.Color{Red: 140, Green: 140, Blue: 140},
					},
				),
			),
		),
	)
}

func reportFonts() ([]*entity.CustomFont, error) {
	return repository.New().
		AddUTF8FontFromBytes(reportFontFamily, fontstyle.Normal, reportFontRegular).
		AddUTF8FontFromBytes(reportFontFamily, fontstyle.Bold, reportFontBold).
		Load()
}

// pdfMoney prints "TL" since the embedded font has no lira sign.
func pdfMoney(amount float64) string {
	return FormatMoney(amount) + " TL"
}
