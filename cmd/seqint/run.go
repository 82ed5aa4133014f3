package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqint/internal/job"
)

func runCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE...",
		Short: "Evaluate every integral listed in YAML job files",
		Long: `Evaluate every integral listed in YAML job files.

Jobs run in file order. A report line is printed for each job; the command
exits non-zero if any job fails to evaluate or misses its tolerance.

Example file:

  jobs:
    - name: quarter ball
      integrand: "1"
      x: {from: "-1", to: "1", step: 0.01}
      y: {from: "0", to: "max(sqrt(1 - x^2))"}
      z: {from: "0", to: "max(sqrt(1 - x^2 - y^2))"}
      expected: 1.0471975511965976
      tolerance: 0.02`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var jobs []job.Job
			for _, path := range args {
				loaded, err := job.Load(path)
				if err != nil {
					return err
				}
				a.logger.Debug().Str("file", path).Int("jobs", len(loaded)).Msg("job file loaded")
				jobs = append(jobs, loaded...)
			}
			return a.execute(cmd, jobs)
		},
	}
}
