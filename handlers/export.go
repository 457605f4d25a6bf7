package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"fencecalc/config"
	"fencecalc/services"
)

// Format selects the report renderer.
type Format string

const (
	FormatPDF   Format = "pdf"
	FormatExcel Format = "xlsx"
	FormatText  Format = "text"
)

const reportBaseName = "Cit_Maliyet_Teklifi"

// ParseFormat maps a user-supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf", "":
		return FormatPDF, nil
	case "xlsx", "excel":
		return FormatExcel, nil
	case "text", "txt":
		return FormatText, nil
	}
	return "", fmt.Errorf("unknown report format %q", s)
}

// Ext returns the file extension for the format.
func (f Format) Ext() string {
	if f == FormatText {
		return ".txt"
	}
	return "." + string(f)
}

// Exporter renders reports from a calculator and writes them to disk.
type Exporter struct {
	OutputDir string
	Delay     time.Duration
	Brand     string
	Logger    zerolog.Logger
	Now       func() time.Time
}

// NewExporter builds an Exporter from config.
func NewExporter(cfg *config.Config, logger zerolog.Logger) *Exporter {
	return &Exporter{
		OutputDir: cfg.OutputDir,
		Delay:     cfg.ReportDelay,
		Brand:     cfg.Brand,
		Logger:    logger,
		Now:       time.Now,
	}
}

// Render waits for the configured delay, then renders the current estimate of
// calc in the requested format. It returns the report bytes and a suggested
// file name.
func (x *Exporter) Render(ctx context.Context, calc *Calculator, format Format, customer string) ([]byte, string, error) {
	if err := x.wait(ctx); err != nil {
		return nil, "", fmt.Errorf("report cancelled: %w", err)
	}

	now := time.Now
	if x.Now != nil {
		now = x.Now
	}
	data := services.BuildReportData(calc.Result(), customer, calc.Field(services.FieldLength), x.Brand, now())

	var (
		out []byte
		err error
	)
	switch format {
	case FormatPDF:
		out, err = services.GeneratePDF(data)
	case FormatExcel:
		out, err = services.GenerateExcel(data)
	case FormatText:
		out = []byte(services.GenerateText(data))
	default:
		err = fmt.Errorf("unknown report format %q", format)
	}
	if err != nil {
		x.Logger.Error().Err(err).Str("format", string(format)).Msg("report generation failed")
		return nil, "", err
	}

	return out, reportFilename(customer, format), nil
}

// Export renders the report and writes it into OutputDir, returning the
// written path.
func (x *Exporter) Export(ctx context.Context, calc *Calculator, format Format, customer string) (string, error) {
	out, name, err := x.Render(ctx, calc, format, customer)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(x.OutputDir, 0o755); err != nil {
		x.Logger.Error().Err(err).Str("dir", x.OutputDir).Msg("create output dir")
		return "", fmt.Errorf("create output dir: %w", err)
	}
	path := filepath.Join(x.OutputDir, name)
	if err := os.WriteFile(path, out, 0o644); err != nil {
		x.Logger.Error().Err(err).Str("path", path).Msg("write report")
		return "", fmt.Errorf("write report: %w", err)
	}

	x.Logger.Info().Str("path", path).Str("format", string(format)).Int("bytes", len(out)).Msg("report written")
	return path, nil
}

func (x *Exporter) wait(ctx context.Context) error {
	if x.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(x.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// reportFilename returns the report file name, with the customer appended
// when one is given.
func reportFilename(customer string, format Format) string {
	name := reportBaseName
	if c := sanitizeFilename(strings.TrimSpace(customer)); c != "" {
		name += "_" + c
	}
	return name + format.Ext()
}

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}
