package job

import (
	"math"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/seqint"
	"github.com/katalvlaran/seqint/expression"
)

// Status of an evaluated job.
type Status string

// Status values.
const (
	StatusDone  Status = "done"  // evaluated, nothing to compare against
	StatusPass  Status = "pass"  // |value - expected| <= tolerance
	StatusMiss  Status = "miss"  // outside tolerance
	StatusError Status = "error" // evaluation failed
)

// Report is the outcome of one job.
type Report struct {
	Name       string        `yaml:"name" json:"name"`
	Dimensions int           `yaml:"dimensions" json:"dimensions"`
	Value      float64       `yaml:"value" json:"value"`
	Expected   *float64      `yaml:"expected,omitempty" json:"expected,omitempty"`
	Tolerance  float64       `yaml:"tolerance,omitempty" json:"tolerance,omitempty"`
	Status     Status        `yaml:"status" json:"status"`
	Error      string        `yaml:"error,omitempty" json:"error,omitempty"`
	Duration   time.Duration `yaml:"duration" json:"duration"`
}

// Failed reports whether the job errored or missed its tolerance.
func (r Report) Failed() bool { return r.Status == StatusError || r.Status == StatusMiss }

// Runner evaluates jobs sequentially and logs each outcome.
type Runner struct {
	logger      zerolog.Logger
	defaultStep float64
}

// NewRunner returns a Runner that uses defaultStep for dimensions without a
// step of their own.
func NewRunner(logger zerolog.Logger, defaultStep float64) *Runner {
	return &Runner{logger: logger, defaultStep: defaultStep}
}

// RunAll evaluates jobs in order. It never stops early; failures are
// recorded in the reports.
func (r *Runner) RunAll(jobs []Job) []Report {
	reports := make([]Report, 0, len(jobs))
	for _, j := range jobs {
		reports = append(reports, r.Run(j))
	}
	return reports
}

// Run evaluates a single job.
func (r *Runner) Run(j Job) Report {
	rep := Report{
		Name:       j.label(),
		Dimensions: j.Dimensions(),
		Expected:   j.Expected,
		Tolerance:  j.Tolerance,
	}

	start := time.Now()
	value, err := r.evaluate(j)
	rep.Duration = time.Since(start)

	if err != nil {
		rep.Status = StatusError
		rep.Error = err.Error()
		r.logger.Error().
			Err(err).
			Str("name", rep.Name).
			Int("dimensions", rep.Dimensions).
			Dur("duration", rep.Duration).
			Msg("integral failed")
		return rep
	}

	rep.Value = value
	switch {
	case j.Expected == nil:
		rep.Status = StatusDone
	case math.Abs(value-*j.Expected) <= j.Tolerance:
		rep.Status = StatusPass
	default:
		rep.Status = StatusMiss
	}

	event := r.logger.Info()
	if rep.Status == StatusMiss {
		event = r.logger.Warn().Float64("expected", *j.Expected).Float64("tolerance", j.Tolerance)
	}
	event.
		Str("name", rep.Name).
		Int("dimensions", rep.Dimensions).
		Float64("value", value).
		Str("status", string(rep.Status)).
		Dur("duration", rep.Duration).
		Msg("integral evaluated")

	return rep
}

func (r *Runner) evaluate(j Job) (float64, error) {
	if err := j.Validate(); err != nil {
		return 0, err
	}

	a, err := constant(j.X.From)
	if err != nil {
		return 0, errors.Wrap(err, "x from")
	}
	b, err := constant(j.X.To)
	if err != nil {
		return 0, errors.Wrap(err, "x to")
	}
	h := r.step(j.X)

	switch j.Dimensions() {
	case 1:
		return seqint.SingleIntegralExpr(j.Integrand, a, b, h)
	case 2:
		return seqint.DoubleIntegralExpr(j.Integrand, a, b, h, j.Y.From, j.Y.To, r.step(*j.Y))
	default:
		return seqint.TripleIntegralExpr(j.Integrand, a, b, h,
			j.Y.From, j.Y.To, r.step(*j.Y),
			j.Z.From, j.Z.To, r.step(*j.Z))
	}
}

func (r *Runner) step(d Dimension) float64 {
	if d.Step > 0 {
		return d.Step
	}
	return r.defaultStep
}

// constant evaluates a limit of the outermost variable.
func constant(source string) (float64, error) {
	e, err := expression.Parse(source, 0)
	if err != nil {
		return 0, err
	}
	return e.Eval(expression.Variables{})
}
