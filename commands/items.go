package commands

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"fencecalc/handlers"
	"fencecalc/services"
)

func newItemsCmd(st *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "items",
		Short: "List the priced item identifiers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := handlers.NewCalculator(st.logger).Result()
			w := cmd.OutOrStdout()
			for _, id := range services.ItemIDs() {
				it, ok := r.Item(id)
				if !ok {
					continue
				}
				fmt.Fprintf(w, "%s  %s  %s\n",
					runewidth.FillRight(id, 10),
					runewidth.FillRight(it.Title, 20),
					it.Unit)
			}
			return nil
		},
	}
}

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "List the input parameters and their defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, def := range services.FieldSpecs() {
				fmt.Fprintf(w, "--%s  %s  %s\n",
					runewidth.FillRight(string(def.Field), 16),
					runewidth.FillRight(def.Default, 6),
					def.Label)
			}
			return nil
		},
	}
}
