package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"fencecalc/services"
)

func newEstimateCmd(st *rootState) *cobra.Command {
	var (
		in     inputFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Print the material and cost breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, _, err := in.build(cmd, st.logger)
			if err != nil {
				return err
			}
			r := calc.Result()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(r)
			}
			writeTable(cmd.OutOrStdout(), r)
			return nil
		},
	}

	addInputFlags(cmd.Flags(), &in)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

var tableHeaders = []string{"MALZEME", "MİKTAR", "BİRİM FİYAT", "TUTAR", "AÇIKLAMA"}

// writeTable prints r as an aligned table. Widths are measured in terminal
// cells so Turkish letters and the lira sign line up.
func writeTable(w io.Writer, r services.Result) {
	if len(r.Items) == 0 {
		fmt.Fprintln(w, "No results: length, height and spacing must be greater than zero.")
		return
	}

	rows := make([][]string, 0, len(r.Items))
	for _, it := range r.Items {
		rows = append(rows, []string{
			it.Title,
			services.FormatQuantity(it.Quantity) + " " + it.Unit,
			services.FormatMoney(it.UnitPrice),
			services.FormatMoney(it.TotalCost),
			it.Description,
		})
	}

	widths := make([]int, len(tableHeaders))
	for i, h := range tableHeaders {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	total := 0
	for _, wd := range widths {
		total += wd
	}
	rule := strings.Repeat("-", total+2*(len(widths)-1))

	writeRow(w, tableHeaders, widths)
	fmt.Fprintln(w, rule)
	for _, row := range rows {
		writeRow(w, row, widths)
	}
	fmt.Fprintln(w, rule)

	color.New(color.FgGreen, color.Bold).Fprintf(w, "GENEL TOPLAM: %s\n", services.FormatTRY(r.GrandTotal))
}

// writeRow left-aligns the first and last columns and right-aligns the
// numeric ones in between.
func writeRow(w io.Writer, cells []string, widths []int) {
	out := make([]string, len(cells))
	last := len(cells) - 1
	for i, c := range cells {
		switch i {
		case 0:
			out[i] = runewidth.FillRight(c, widths[i])
		case last:
			out[i] = c
		default:
			out[i] = runewidth.FillLeft(c, widths[i])
		}
	}
	fmt.Fprintln(w, strings.Join(out, "  "))
}
