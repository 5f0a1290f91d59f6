package service

import (
	"errors"
	"fmt"
	"io"
	"log"

	"fitness-tracker/internal/config"
	"fitness-tracker/internal/observability"
	"fitness-tracker/internal/training"
)

// ErrWrite is returned when a summary line could not be written to the output
var ErrWrite = errors.New("writing summary")

// Processor turns workout packages into summary lines, one per package
type Processor struct {
	out     io.Writer
	logger  *log.Logger
	metrics *observability.Metrics
}

// Option configures a Processor
type Option func(*Processor)

// WithLogger sets the logger used for per-record failures
func WithLogger(logger *log.Logger) Option {
	return func(p *Processor) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithMetrics sets the counters updated for every record
func WithMetrics(metrics *observability.Metrics) Option {
	return func(p *Processor) {
		p.metrics = metrics
	}
}

// NewProcessor creates a processor writing summary lines to out
func NewProcessor(out io.Writer, opts ...Option) *Processor {
	p := &Processor{
		out:    out,
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// RecordError identifies the package that failed and why
type RecordError struct {
	Index int
	Code  string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (%s): %v", e.Index, e.Code, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Summary reports how a batch of packages went
type Summary struct {
	Processed int
	Failed    int
	Failures  []*RecordError
}

// Err joins all record failures, or returns nil when every record succeeded
func (s Summary) Err() error {
	if len(s.Failures) == 0 {
		return nil
	}
	errs := make([]error, len(s.Failures))
	for i, f := range s.Failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}

// Process summarises packages in order. A failing package is logged and
// recorded in the summary; the remaining packages are still processed.
func (p *Processor) Process(packages []config.Package) Summary {
	var summary Summary

	for i, pkg := range packages {
		name, err := p.processOne(pkg)
		if err != nil {
			recErr := &RecordError{Index: i, Code: pkg.Type, Err: err}
			summary.Failed++
			summary.Failures = append(summary.Failures, recErr)
			p.metrics.RecordFailed(reason(err))
			p.logger.Printf("skipping %v", recErr)
			continue
		}

		summary.Processed++
		p.metrics.RecordProcessed(name)
	}

	return summary
}

func (p *Processor) processOne(pkg config.Package) (string, error) {
	workout, err := training.ReadPackage(pkg.Type, pkg.Data)
	if err != nil {
		return "", err
	}

	info, err := training.ShowTrainingInfo(workout)
	if err != nil {
		return "", err
	}

	if _, err := fmt.Fprintln(p.out, info.Message()); err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return workout.Name(), nil
}

// reason maps an error to a short label for metrics
func reason(err error) string {
	switch {
	case errors.Is(err, training.ErrUnknownWorkoutType):
		return "unknown_type"
	case errors.Is(err, training.ErrArityMismatch):
		return "arity_mismatch"
	case errors.Is(err, training.ErrDivideByZero):
		return "divide_by_zero"
	case errors.Is(err, training.ErrNotImplemented):
		return "not_implemented"
	case errors.Is(err, ErrWrite):
		return "write"
	default:
		return "other"
	}
}
