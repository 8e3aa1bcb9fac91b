package validate

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrNoInput is returned when a run is started without any source.
var ErrNoInput = errors.New("validate: no input sources")

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Source is a named input of records, one record per line.
type Source struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// FileSource returns a Source reading the file at path.
func FileSource(path string) Source {
	return Source{
		Name: path,
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

// ReaderSource returns a Source reading r. The source can be read once.
func ReaderSource(name string, r io.Reader) Source {
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(r), nil },
	}
}

// StringSource returns a Source holding the given lines.
func StringSource(name string, lines ...string) Source {
	text := strings.Join(lines, "\n")
	return Source{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(text)), nil },
	}
}

// ReadLines returns the lines of r without line terminators. Blank lines
// are dropped when skipBlank is set.
func ReadLines(ctx context.Context, r io.Reader, skipBlank bool) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := scanner.Text()
		if skipBlank && strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

func readSource(ctx context.Context, src Source, skipBlank bool) ([]string, error) {
	rc, err := src.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", src.Name, err)
	}
	defer rc.Close()
	lines, err := ReadLines(ctx, rc, skipBlank)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", src.Name, err)
	}
	return lines, nil
}

// Run validates all sources as one dataset. Sources are read concurrently,
// up to the worker limit, and their lines are then validated in source
// order followed by line order.
func Run(ctx context.Context, sources []Source, opts ...Option) (*Report, error) {
	if len(sources) == 0 {
		return nil, ErrNoInput
	}
	o := resolveOptions(opts)

	lines := make([][]string, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, src := range sources {
		g.Go(func() error {
			ls, err := readSource(gctx, src, o.skipBlankLines)
			if err != nil {
				return err
			}
			lines[i] = ls
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	v := New(opts...)
	for _, ls := range lines {
		for _, line := range ls {
			v.Consume(line)
		}
	}
	report := v.Finalize()
	fields := []zap.Field{
		zap.String("run", report.RunID()),
		zap.Int("sources", len(sources)),
		zap.Int("records", report.Records()),
		zap.Int("violations", len(report.violations)),
	}
	if conflicts := report.Conflicts(); !conflicts.IsEmpty() {
		fields = append(fields, zap.Stringers("conflicts", conflicts.Scan()))
	}
	o.logger.Info("dataset validated", fields...)
	return report, nil
}

// Result pairs a source with the report of its own dataset.
type Result struct {
	Source string
	Report *Report
}

// RunAll validates every source as an independent dataset. Datasets run in
// parallel up to the worker limit and share no state; results keep the
// order of sources.
//
// Every dataset gets its own run ID. With WithRunID the IDs are the given
// one suffixed with the 1-based source position ("batch-1", "batch-2");
// otherwise each dataset gets a random UUID.
func RunAll(ctx context.Context, sources []Source, opts ...Option) ([]Result, error) {
	if len(sources) == 0 {
		return nil, ErrNoInput
	}
	o := resolveOptions(opts)

	results := make([]Result, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, src := range sources {
		// each dataset reads a single source, so the inner run needs no extra workers
		inner := append(slices.Clone(opts), WithWorkers(1), WithRunID(datasetRunID(o.runID, i)))
		g.Go(func() error {
			report, err := Run(gctx, []Source{src}, inner...)
			if err != nil {
				return err
			}
			results[i] = Result{Source: src.Name, Report: report}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// datasetRunID derives the run ID of the i-th dataset of a RunAll call. An
// empty base leaves the ID to New.
func datasetRunID(base string, i int) string {
	if base == "" {
		return ""
	}
	return fmt.Sprintf("%s-%d", base, i+1)
}
