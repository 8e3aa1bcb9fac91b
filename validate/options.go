package validate

import (
	"go.uber.org/zap"
)

// Option configures a Validator and the pipeline functions.
type Option func(*options)

type options struct {
	logger            *zap.Logger
	runID             string
	keepFirstClaimant bool
	skipBlankLines    bool
	workers           int
}

func defaultOptions() options {
	return options{
		logger:         zap.NewNop(),
		skipBlankLines: true,
		workers:        1,
	}
}

func resolveOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithLogger sets the logger. Rejected records are logged at debug level
// and run summaries at info level.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRunID sets the run identifier carried by reports. A random UUID is
// used when unset.
func WithRunID(id string) Option {
	return func(o *options) { o.runID = id }
}

// KeepFirstClaimant keeps the first claimant of a square when a later
// record conflicts with it. By default the later record takes over the
// square, so subsequent conflicts name it instead.
func KeepFirstClaimant(keep bool) Option {
	return func(o *options) { o.keepFirstClaimant = keep }
}

// SkipBlankLines controls whether the pipeline drops empty input lines
// before parsing. Enabled by default; when disabled a blank line is a
// MalformedRecord.
func SkipBlankLines(skip bool) Option {
	return func(o *options) { o.skipBlankLines = skip }
}

// WithWorkers bounds how many sources or datasets the pipeline handles at
// once. Values below one mean one.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}
