package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/phishreport/phishreport/internal/config"
	"github.com/phishreport/phishreport/internal/logging"
	"github.com/phishreport/phishreport/internal/parser"
	"github.com/phishreport/phishreport/internal/report"
)

// Inputs are the three files a report is built from.
type Inputs struct {
	LogFile     string
	InputFile   string
	TargetsFile string
}

// Check verifies each input is an existing regular file, in argument order.
func (in Inputs) Check() error {
	files := []struct{ kind, path string }{
		{"Log", in.LogFile},
		{"Input", in.InputFile},
		{"Targets", in.TargetsFile},
	}
	for _, f := range files {
		info, err := os.Stat(f.path)
		if err != nil || !info.Mode().IsRegular() {
			return NewMissingFileError(f.kind, f.path)
		}
	}
	return nil
}

func runReport(in Inputs, stdout, stderr io.Writer) error {
	if err := in.Check(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logging.New(cfg.Log, stderr)

	events, captureStats, err := parser.ParseCaptureLog(in.LogFile)
	if err != nil {
		return fmt.Errorf("parsing capture log: %w", err)
	}
	log.Info().
		Str("file", in.LogFile).
		Int("lines", captureStats.Lines).
		Int("skipped", captureStats.Skipped).
		Int("captures", captureStats.Accepted).
		Msg("parsed capture log")

	targets, err := parser.ParseTargets(in.TargetsFile)
	if err != nil {
		return fmt.Errorf("parsing targets: %w", err)
	}
	log.Info().Str("file", in.TargetsFile).Int("targets", targets.Len()).Msg("parsed targets")

	format := parser.IdentityFormatFor(in.InputFile)
	if format == parser.FormatUnsupported {
		log.Warn().Str("file", in.InputFile).Msg("unsupported identity file type, continuing without identities")
	}
	identities, err := parser.ParseIdentities(in.InputFile)
	if err != nil {
		return fmt.Errorf("parsing identities: %w", err)
	}
	log.Info().
		Str("file", in.InputFile).
		Stringer("format", format).
		Int("identities", identities.Len()).
		Msg("parsed identities")

	rows, mergeStats := parser.MergeReportWithStats(events, targets, identities)
	log.Info().
		Int("rows", len(rows)).
		Int("backfilled", mergeStats.Backfilled).
		Int("no_attempt", mergeStats.Synthesized).
		Msg("merged report")

	outPath := cfg.Report.OutputPath
	if err := report.WriteXLSX(outPath, rows, report.Options{SheetName: cfg.Report.SheetName}); err != nil {
		return err
	}
	if info, err := os.Stat(outPath); err == nil {
		log.Info().Str("file", outPath).Str("size", humanize.Bytes(uint64(info.Size()))).Msg("wrote report")
	}

	fmt.Fprintf(stdout, "Conversion completed. Output saved to '%s'.\n", outPath)

	if cfg.Report.Summary {
		if err := report.RenderSummary(stderr, report.Summarize(rows)); err != nil {
			log.Warn().Err(err).Msg("failed to print summary")
		}
	}
	return nil
}
