// Package param declares and validates startup configuration parameters.
package param

import (
	"errors"
	"log/slog"
)

// Source supplies raw parameter values.
//
// Lookup distinguishes an absent key (ok == false) from a key set to the
// empty string.
type Source interface {
	Lookup(key string) (value string, ok bool)
}

// MapSource is an in-memory Source.
type MapSource map[string]string

// Lookup implements Source.
func (m MapSource) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Values holds the validated parameter values of a successful load.
// Optional parameters that were not supplied are absent.
type Values map[string]string

// Lookup returns the value for key and whether it was supplied.
func (v Values) Lookup(key string) (string, bool) {
	s, ok := v[key]
	return s, ok
}

// Get returns the value for key, or "" if it was not supplied.
func (v Values) Get(key string) string {
	return v[key]
}

// Outcome classifies the result of checking a single parameter.
type Outcome int

const (
	// OutcomeValid means the value was present and passed every validator.
	OutcomeValid Outcome = iota
	// OutcomeUnset means an optional parameter was not supplied.
	OutcomeUnset
	// OutcomeMissing means a required parameter was not supplied.
	OutcomeMissing
	// OutcomeInvalid means a validator rejected the value.
	OutcomeInvalid
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeValid:
		return "valid"
	case OutcomeUnset:
		return "unset"
	case OutcomeMissing:
		return "missing"
	case OutcomeInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Observer is notified of each parameter outcome.
type Observer interface {
	ObserveParameter(key string, outcome Outcome)
}

// Result is the outcome of checking one parameter.
type Result struct {
	Key     string
	Outcome Outcome
	Err     error
}

type processor struct {
	observer   Observer
	logger     *slog.Logger
	collectAll bool
}

// Option configures Process and Check.
type Option func(*processor)

// WithObserver reports each parameter outcome to o.
func WithObserver(o Observer) Option {
	return func(p *processor) {
		p.observer = o
	}
}

// WithLogger sets the logger. Values are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(p *processor) {
		p.logger = logger
	}
}

// WithCollectAll makes Process check every parameter and return all
// failures joined, instead of stopping at the first one.
func WithCollectAll() Option {
	return func(p *processor) {
		p.collectAll = true
	}
}

func newProcessor(opts []Option) *processor {
	p := &processor{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process resolves every spec against src and runs its validators.
//
// A required parameter that is absent yields a *ParameterError and none of
// its validators run. A present value, including "", runs through the
// validators in order; the first failure yields a *ValidationError.
// By default the first error aborts processing; see WithCollectAll.
// Values is nil whenever an error is returned.
func Process(specs []Spec, src Source, opts ...Option) (Values, error) {
	p := newProcessor(opts)

	values := make(Values, len(specs))
	var errs []error
	for _, spec := range specs {
		res, value := p.check(spec, src)
		switch res.Outcome {
		case OutcomeValid:
			values[spec.Key] = value
		case OutcomeMissing, OutcomeInvalid:
			if !p.collectAll {
				return nil, res.Err
			}
			errs = append(errs, res.Err)
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return values, nil
}

// Check resolves every spec and returns one Result per spec, in order,
// without stopping at failures.
func Check(specs []Spec, src Source, opts ...Option) []Result {
	p := newProcessor(opts)

	results := make([]Result, 0, len(specs))
	for _, spec := range specs {
		res, _ := p.check(spec, src)
		results = append(results, res)
	}
	return results
}

func (p *processor) check(spec Spec, src Source) (Result, string) {
	res := Result{Key: spec.Key}

	value, ok := src.Lookup(spec.Key)
	switch {
	case !ok && spec.Required:
		res.Outcome = OutcomeMissing
		res.Err = &ParameterError{Key: spec.Key}
	case !ok:
		res.Outcome = OutcomeUnset
	default:
		if err := spec.Validate(value); err != nil {
			res.Outcome = OutcomeInvalid
			res.Err = asValidationError(spec.Key, err)
		}
	}

	if res.Err != nil {
		p.logger.Debug("configuration parameter rejected",
			"parameter", spec.Key,
			"outcome", res.Outcome.String(),
			"error", res.Err,
		)
	} else {
		p.logger.Debug("configuration parameter accepted",
			"parameter", spec.Key,
			"outcome", res.Outcome.String(),
		)
	}
	if p.observer != nil {
		p.observer.ObserveParameter(spec.Key, res.Outcome)
	}
	return res, value
}

// asValidationError ensures validator failures surface as *ValidationError.
func asValidationError(key string, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return err
	}
	return &ValidationError{Key: key, Message: err.Error(), Cause: err}
}
