package job

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seqint/internal/config"
)

// WriteReports renders reports to w in the requested format.
func WriteReports(w io.Writer, format config.OutputFormat, reports []Report) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(reports), "encode json")
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		return errors.Wrap(enc.Close(), "encode yaml")
	default:
		return writeText(w, reports)
	}
}

// writeText prints one aligned row per report.
func writeText(w io.Writer, reports []Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range reports {
		var line string
		switch {
		case r.Status == StatusError:
			line = fmt.Sprintf("%s\t%dD\terror\t%s", r.Name, r.Dimensions, r.Error)
		case r.Expected != nil:
			line = fmt.Sprintf("%s\t%dD\t%.10g\t%s (expected %.10g ± %g)",
				r.Name, r.Dimensions, r.Value, r.Status, *r.Expected, r.Tolerance)
		default:
			line = fmt.Sprintf("%s\t%dD\t%.10g", r.Name, r.Dimensions, r.Value)
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return errors.Wrap(err, "write report")
		}
	}
	return errors.Wrap(tw.Flush(), "flush reports")
}
