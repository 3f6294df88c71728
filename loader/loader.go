// Package loader reads logic programs from files and lowers their clauses.
//
// Programs are independent of each other, so many files may be loaded
// concurrently with LoadFiles or Stream.
package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/brunokim/lam/lam"
	"github.com/brunokim/lam/logic"
	"github.com/brunokim/lam/parser"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"
)

// Program is the result of loading a single source.
type Program struct {
	Name      string
	Clauses   []logic.Clause
	Records   []lam.Record
	Remaining string
}

// TrailingInputError is returned in strict mode when a source has input left
// after its last clause.
type TrailingInputError struct {
	Name      string
	Remaining string
}

func (err *TrailingInputError) Error() string {
	return fmt.Sprintf("%s: unparsed input after last clause: %q", err.Name, err.Remaining)
}

// Normalization is a Unicode normalization applied to text before parsing.
type Normalization int

const (
	NoNormalization Normalization = iota
	NFC
	NFKC
)

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the logger. The default discards all logs.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// WithLowerer sets the clause lowering strategy. The default is lam.HeadLowerer.
func WithLowerer(lowerer lam.Lowerer) Option {
	return func(l *Loader) { l.lowerer = lowerer }
}

// WithStrict makes trailing input after the last clause an error.
func WithStrict(strict bool) Option {
	return func(l *Loader) { l.strict = strict }
}

// WithWorkers sets the maximum number of files loaded concurrently.
func WithWorkers(n int) Option {
	return func(l *Loader) { l.workers = n }
}

// WithNormalization sets the normalization form. The default is NFC.
func WithNormalization(form Normalization) Option {
	return func(l *Loader) { l.norm = form }
}

// Loader parses and lowers programs. It is safe for concurrent use.
type Loader struct {
	logger  *zap.Logger
	lowerer lam.Lowerer
	strict  bool
	workers int
	norm    Normalization
}

// New returns a loader configured with opts.
func New(opts ...Option) *Loader {
	l := &Loader{
		logger:  zap.NewNop(),
		lowerer: lam.HeadLowerer,
		workers: 1,
		norm:    NFC,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.workers < 1 {
		l.workers = 1
	}
	return l
}

func (l *Loader) normalize(text string) string {
	switch l.norm {
	case NFC:
		return norm.NFC.String(text)
	case NFKC:
		return norm.NFKC.String(text)
	default:
		return text
	}
}

// LoadString parses and lowers text, identified by name in errors and logs.
func (l *Loader) LoadString(name, text string) (*Program, error) {
	log := l.logger.With(zap.String("name", name))
	res, err := parser.ParseProgram(l.normalize(text))
	if err != nil {
		log.Debug("parse failed", zap.Error(err))
		return nil, errors.Wrapf(err, "parse %s", name)
	}
	if res.Remaining != "" {
		if l.strict {
			return nil, &TrailingInputError{Name: name, Remaining: res.Remaining}
		}
		log.Warn("unparsed input after last clause", zap.Int("bytes", len(res.Remaining)))
	}
	records := lam.LowerAll(l.lowerer, res.Clauses)
	log.Debug("loaded program", zap.Int("clauses", len(res.Clauses)))
	return &Program{
		Name:      name,
		Clauses:   res.Clauses,
		Records:   records,
		Remaining: res.Remaining,
	}, nil
}

// LoadReader reads all of r and loads it as a program.
func (l *Loader) LoadReader(name string, r io.Reader) (*Program, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return l.LoadString(name, string(bs))
}

// LoadFile reads the file at path and loads it as a program.
func (l *Loader) LoadFile(path string) (*Program, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return l.LoadString(path, string(bs))
}

// ---- concurrent loading

// Result is the outcome of loading the file at paths[Index].
type Result struct {
	Index   int
	Path    string
	Program *Program
	Err     error
}

// Stream loads paths on a pool of workers, sending results as they complete.
// The channel is closed when all files are loaded or ctx is done; files not yet
// started when ctx is done are skipped.
func (l *Loader) Stream(ctx context.Context, paths []string) <-chan Result {
	jobs := make(chan int)
	results := make(chan Result)
	go func() {
		defer close(jobs)
		for i := range paths {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()
	var wg sync.WaitGroup
	n := l.workers
	if n > len(paths) {
		n = len(paths)
	}
	for w := 0; w < n; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				prog, err := l.LoadFile(paths[i])
				select {
				case results <- Result{Index: i, Path: paths[i], Program: prog, Err: err}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	return results
}

// LoadFiles loads all paths concurrently, returning programs in input order.
//
// A failed file leaves a nil program in its position, and its error is
// aggregated in a *multierror.Error, also in input order.
func (l *Loader) LoadFiles(ctx context.Context, paths []string) ([]*Program, error) {
	programs := make([]*Program, len(paths))
	errs := make([]error, len(paths))
	for r := range l.Stream(ctx, paths) {
		programs[r.Index], errs[r.Index] = r.Program, r.Err
	}
	var result *multierror.Error
	for _, err := range errs {
		if err != nil {
			result = multierror.Append(result, err)
		}
	}
	if err := ctx.Err(); err != nil {
		result = multierror.Append(result, err)
	}
	return programs, result.ErrorOrNil()
}
