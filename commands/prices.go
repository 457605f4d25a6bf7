package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"fencecalc/services"
)

const priceTemplateName = "fiyat_listesi.xlsx"

func newPricesCmd(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Price list helpers",
	}
	cmd.AddCommand(newPriceTemplateCmd(st))
	return cmd
}

func newPriceTemplateCmd(st *rootState) *cobra.Command {
	var (
		in  inputFlags
		out string
	)

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write an xlsx price list to fill in and pass back with --prices-file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			calc, _, err := in.build(cmd, st.logger)
			if err != nil {
				return err
			}

			raw, err := services.GeneratePriceTemplate(calc.Prices())
			if err != nil {
				return err
			}

			path := out
			if path == "" {
				path = filepath.Join(st.cfg.OutputDir, priceTemplateName)
			}
			if err := os.WriteFile(path, raw, 0o644); err != nil {
				return fmt.Errorf("write price template: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Price template written: %s\n", path)
			return nil
		},
	}

	addInputFlags(cmd.Flags(), &in)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default FENCE_OUTPUT_DIR/"+priceTemplateName+")")
	return cmd
}
