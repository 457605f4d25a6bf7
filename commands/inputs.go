package commands

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fencecalc/config"
	"fencecalc/handlers"
	"fencecalc/services"
)

// inputFlags are the calculator inputs shared by every command that
// produces an estimate.
type inputFlags struct {
	prices     []string
	jobPath    string
	pricesFile string
}

func addInputFlags(fs *pflag.FlagSet, in *inputFlags) {
	for _, def := range services.FieldSpecs() {
		fs.String(string(def.Field), def.Default, def.Label)
	}
	fs.StringArrayVar(&in.prices, "price", nil, "unit price as item=value, repeatable (e.g. --price direk=150)")
	fs.StringVar(&in.jobPath, "job", "", "YAML job file with customer, params and prices")
	fs.StringVar(&in.pricesFile, "prices-file", "", "CSV or xlsx price list with item,price columns")
}

// build applies the job file, the price list and finally the flags to a new
// calculator, in that order. Rejected edits are reported as warnings and
// skipped. It returns the calculator and the customer named by the job file.
func (in *inputFlags) build(cmd *cobra.Command, logger zerolog.Logger) (*handlers.Calculator, string, error) {
	calc := handlers.NewCalculator(logger)
	warn := func(format string, args ...any) {
		color.New(color.FgYellow).Fprintf(cmd.ErrOrStderr(), "warning: "+format+"\n", args...)
	}

	var customer string
	if in.jobPath != "" {
		job, err := config.LoadJob(in.jobPath)
		if err != nil {
			return nil, "", err
		}
		customer = job.Customer
		for _, k := range slices.Sorted(maps.Keys(job.Params)) {
			if !calc.SetField(services.Field(k), job.Params[k]) {
				warn("%s: ignoring param %s=%q", in.jobPath, k, job.Params[k])
			}
		}
		applyPrices(calc, job.Prices, in.jobPath, warn)
	}

	if in.pricesFile != "" {
		f, err := os.Open(in.pricesFile)
		if err != nil {
			return nil, "", fmt.Errorf("open price list: %w", err)
		}
		res, err := services.ImportPrices(in.pricesFile, f)
		f.Close()
		if err != nil {
			return nil, "", fmt.Errorf("import price list: %w", err)
		}
		for _, e := range res.Errors {
			warn("%s row %d (%s): %s", in.pricesFile, e.Row, e.Field, e.Message)
		}
		applyPrices(calc, res.Prices, in.pricesFile, warn)
	}

	fs := cmd.Flags()
	for _, def := range services.FieldSpecs() {
		name := string(def.Field)
		if !fs.Changed(name) {
			continue
		}
		v, _ := fs.GetString(name)
		if !calc.SetField(def.Field, v) {
			warn("ignoring --%s=%q", name, v)
		}
	}

	for _, kv := range in.prices {
		id, v, ok := strings.Cut(kv, "=")
		if !ok || !calc.SetPrice(strings.ToLower(strings.TrimSpace(id)), strings.TrimSpace(v)) {
			warn("ignoring --price %q", kv)
		}
	}

	return calc, customer, nil
}

func applyPrices(calc *handlers.Calculator, prices map[string]string, source string, warn func(string, ...any)) {
	for _, id := range slices.Sorted(maps.Keys(prices)) {
		if !calc.SetPrice(id, prices[id]) {
			warn("%s: ignoring price %s=%q", source, id, prices[id])
		}
	}
}
