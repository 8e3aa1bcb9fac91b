package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/0x5844/chessvalidator/image"
	"github.com/0x5844/chessvalidator/internal/config"
	"github.com/0x5844/chessvalidator/validate"
)

var conflictColor = color.RGBA{R: 220, G: 50, B: 47, A: 255}

func newValidateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [inputs...]",
		Short: "Validate placement records and print the report",
		Long: `Validates every record of the given inputs against the standard
starting position. Inputs are read concurrently and validated in argument
order, so a multi-file run gives the same report as the concatenated file.

Examples:
  chessvalidator validate pieces.txt
  chessvalidator validate white.txt black.txt --format yaml -o report.yaml
  chessvalidator validate --per-source -o reports/ a.txt b.txt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			applyValidateFlags(cmd, a.cfg, args)
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			return runValidate(cmd, a)
		},
	}

	f := cmd.Flags()
	f.StringP("output", "o", "", "report file, or directory with --per-source (default stdout)")
	f.String("format", config.FormatText, "report format: text or yaml")
	f.String("svg", "", "write an SVG image of the claimed board to this path")
	f.Bool("per-source", false, "validate each input as its own dataset")
	f.Int("workers", 4, "maximum inputs read or validated at once")
	f.Bool("keep-first-claimant", false, "keep the first claimant of a contested square")
	f.Bool("keep-blank-lines", false, "treat blank lines as malformed records")
	return cmd
}

// applyValidateFlags overlays explicitly set flags on the loaded config.
func applyValidateFlags(cmd *cobra.Command, cfg *config.Config, args []string) {
	f := cmd.Flags()
	if len(args) > 0 {
		cfg.Inputs = args
	}
	if f.Changed("output") {
		cfg.Output, _ = f.GetString("output")
	}
	if f.Changed("format") {
		cfg.Format, _ = f.GetString("format")
	}
	if f.Changed("svg") {
		cfg.SVG, _ = f.GetString("svg")
	}
	if f.Changed("per-source") {
		cfg.PerSource, _ = f.GetBool("per-source")
	}
	if f.Changed("workers") {
		cfg.Workers, _ = f.GetInt("workers")
	}
	if f.Changed("keep-first-claimant") {
		cfg.KeepFirstClaimant, _ = f.GetBool("keep-first-claimant")
	}
	if f.Changed("keep-blank-lines") {
		keep, _ := f.GetBool("keep-blank-lines")
		cfg.SkipBlankLines = !keep
	}
	cfg.Format = strings.ToLower(cfg.Format)
}

func runValidate(cmd *cobra.Command, a *app) error {
	cfg := a.cfg
	ctx := cmd.Context()

	sources := make([]validate.Source, 0, len(cfg.Inputs))
	for _, in := range cfg.Inputs {
		if in == config.StdinInput {
			sources = append(sources, validate.ReaderSource("stdin", cmd.InOrStdin()))
			continue
		}
		sources = append(sources, validate.FileSource(in))
	}
	opts := []validate.Option{
		validate.WithLogger(a.logger),
		validate.WithWorkers(cfg.Workers),
		validate.KeepFirstClaimant(cfg.KeepFirstClaimant),
		validate.SkipBlankLines(cfg.SkipBlankLines),
	}

	if cfg.PerSource {
		results, err := validate.RunAll(ctx, sources, opts...)
		if err != nil {
			return err
		}
		return writeResults(cmd.OutOrStdout(), cfg, results)
	}

	report, err := validate.Run(ctx, sources, opts...)
	if err != nil {
		return err
	}
	if err := writeReportTo(cmd.OutOrStdout(), cfg.Output, cfg.Format, report); err != nil {
		return err
	}
	if cfg.SVG != "" {
		if err := writeSVG(cfg.SVG, report); err != nil {
			return err
		}
		a.logger.Debug("board image written", zap.String("path", cfg.SVG))
	}
	return nil
}

// writeResults writes one report per dataset. With an output directory
// each report goes to a file named after its source, suffixed "-2", "-3"
// and so on when base names repeat; otherwise reports are written to
// stdout under a header line.
func writeResults(stdout io.Writer, cfg *config.Config, results []validate.Result) error {
	if cfg.Output == "" || cfg.Output == "-" {
		for i, res := range results {
			if i > 0 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "== %s ==\n", res.Source)
			if err := encodeReport(stdout, cfg.Format, res.Report); err != nil {
				return err
			}
		}
		return nil
	}
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	names := reportNames(results, cfg.Format)
	for i, res := range results {
		path := filepath.Join(cfg.Output, names[i])
		if err := writeReportTo(stdout, path, cfg.Format, res.Report); err != nil {
			return err
		}
	}
	return nil
}

// reportNames returns one distinct file name per result, in result order.
func reportNames(results []validate.Result, format string) []string {
	ext := ".txt"
	if format == config.FormatYAML {
		ext = ".yaml"
	}
	taken := make(map[string]bool, len(results))
	names := make([]string, len(results))
	for i, res := range results {
		base := filepath.Base(res.Source)
		base = strings.TrimSuffix(base, filepath.Ext(base))
		name := base + ext
		for n := 2; taken[name]; n++ {
			name = fmt.Sprintf("%s-%d%s", base, n, ext)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}

func writeReportTo(stdout io.Writer, path, format string, r *validate.Report) (err error) {
	if path == "" || path == "-" {
		return encodeReport(stdout, format, r)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer closeFile(f, &err)
	return encodeReport(f, format, r)
}

func encodeReport(w io.Writer, format string, r *validate.Report) error {
	if format == config.FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report: %w", err)
		}
		return enc.Close()
	}
	_, err := r.WriteTo(w)
	return err
}

func writeSVG(path string, r *validate.Report) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create image: %w", err)
	}
	defer closeFile(f, &err)
	return image.SVG(f, r.Board(),
		image.MarkSquares(conflictColor, r.Conflicts()),
		image.Title("run "+r.RunID()),
	)
}
