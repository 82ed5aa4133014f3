// Package job loads batches of integrals from YAML files and evaluates them.
//
// A job file looks like:
//
//	jobs:
//	  - name: quarter ball
//	    integrand: "1"
//	    x: {from: "-1", to: "1", step: 0.01}
//	    y: {from: "0", to: "max(sqrt(1 - x^2))"}
//	    z: {from: "0", to: "max(sqrt(1 - x^2 - y^2))"}
//	    expected: 1.0471975511965976
//	    tolerance: 0.02
//
// x limits are constant expressions ("pi/2" is fine), y limits may use x and
// z limits may use x and y. A dimension without a step uses the runner's
// default step.
package job

import (
	"bytes"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// ErrInvalidJob is returned for structurally invalid job definitions.
var ErrInvalidJob = errors.New("job: invalid definition")

// File is the top-level document of a job file.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Job is one integral to evaluate.
type Job struct {
	Name      string     `yaml:"name"`
	Integrand string     `yaml:"integrand"`
	X         Dimension  `yaml:"x"`
	Y         *Dimension `yaml:"y,omitempty"`
	Z         *Dimension `yaml:"z,omitempty"`
	Expected  *float64   `yaml:"expected,omitempty"`
	Tolerance float64    `yaml:"tolerance,omitempty"`
}

// Dimension holds the limits and half step of one integration variable.
type Dimension struct {
	From string  `yaml:"from"`
	To   string  `yaml:"to"`
	Step float64 `yaml:"step,omitempty"`
}

// Dimensions returns 1, 2 or 3.
func (j Job) Dimensions() int {
	switch {
	case j.Z != nil:
		return 3
	case j.Y != nil:
		return 2
	default:
		return 1
	}
}

// Validate checks the structure of j. Expression syntax is checked when the
// job runs.
func (j Job) Validate() error {
	if strings.TrimSpace(j.Integrand) == "" {
		return errors.Wrapf(ErrInvalidJob, "%s: integrand is empty", j.label())
	}
	if j.Z != nil && j.Y == nil {
		return errors.Wrapf(ErrInvalidJob, "%s: z given without y", j.label())
	}
	for _, d := range []struct {
		axis string
		dim  *Dimension
	}{{"x", &j.X}, {"y", j.Y}, {"z", j.Z}} {
		if d.dim == nil {
			continue
		}
		if strings.TrimSpace(d.dim.From) == "" || strings.TrimSpace(d.dim.To) == "" {
			return errors.Wrapf(ErrInvalidJob, "%s: %s limits must both be set", j.label(), d.axis)
		}
		if d.dim.Step < 0 || math.IsNaN(d.dim.Step) || math.IsInf(d.dim.Step, 0) {
			return errors.Wrapf(ErrInvalidJob, "%s: %s step %v", j.label(), d.axis, d.dim.Step)
		}
	}
	if j.Tolerance < 0 || math.IsNaN(j.Tolerance) {
		return errors.Wrapf(ErrInvalidJob, "%s: tolerance %v", j.label(), j.Tolerance)
	}
	return nil
}

func (j Job) label() string {
	if j.Name != "" {
		return j.Name
	}
	return j.Integrand
}

// Parse decodes a job file from r and validates every job. Unnamed jobs are
// named "job-<n>" (1-based).
func Parse(r io.Reader) ([]Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.Wrap(ErrInvalidJob, "empty job file")
		}
		return nil, errors.Mark(errors.Wrap(err, "decode jobs"), ErrInvalidJob)
	}
	if len(f.Jobs) == 0 {
		return nil, errors.Wrap(ErrInvalidJob, "no jobs")
	}

	for i := range f.Jobs {
		if f.Jobs[i].Name == "" {
			f.Jobs[i].Name = "job-" + strconv.Itoa(i+1)
		}
		if err := f.Jobs[i].Validate(); err != nil {
			return nil, err
		}
	}
	return f.Jobs, nil
}

// Load reads and parses the job file at path.
func Load(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	jobs, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return jobs, nil
}
