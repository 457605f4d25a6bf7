package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"fencecalc/handlers"
)

func newExportCmd(st *rootState) *cobra.Command {
	var (
		in       inputFlags
		format   string
		customer string
		outDir   string
		noDelay  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the cost report as PDF, Excel or text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := handlers.ParseFormat(format)
			if err != nil {
				return err
			}

			calc, jobCustomer, err := in.build(cmd, st.logger)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("customer") {
				customer = jobCustomer
			}

			x := handlers.NewExporter(st.cfg, st.logger)
			if outDir != "" {
				x.OutputDir = outDir
			}
			if noDelay {
				x.Delay = 0
			}
			if x.Delay > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Preparing report...")
			}

			path, err := x.Export(cmd.Context(), calc, f, customer)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Report written: %s\n", path)
			return nil
		},
	}

	addInputFlags(cmd.Flags(), &in)
	cmd.Flags().StringVarP(&format, "format", "f", "pdf", "report format: pdf, xlsx or text")
	cmd.Flags().StringVarP(&customer, "customer", "c", "", "customer name shown on the report")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default FENCE_OUTPUT_DIR)")
	cmd.Flags().BoolVar(&noDelay, "no-delay", false, "skip the report preparation delay")
	return cmd
}
