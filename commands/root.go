// Package commands implements the fencecalc command line.
package commands

import (
	"context"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"fencecalc/config"
)

type rootState struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// NewRootCmd builds the fencecalc command tree. Config is loaded before any
// subcommand runs.
func NewRootCmd() *cobra.Command {
	st := &rootState{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:           "fencecalc",
		Short:         "Wire fence material and cost calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			st.cfg = cfg
			st.logger = newLogger(cmd.ErrOrStderr(), cfg.Level())
			return nil
		},
	}

	root.AddCommand(
		newEstimateCmd(st),
		newExportCmd(st),
		newItemsCmd(st),
		newParamsCmd(),
		newPricesCmd(st),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(root.ErrOrStderr(), "error:", err)
		return 1
	}
	return 0
}

func newLogger(w io.Writer, lvl zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
