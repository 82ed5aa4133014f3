package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqint/internal/job"
)

// dimensionFlags binds --<axis>-from, --<axis>-to and --<axis>-step.
type dimensionFlags struct {
	axis string
	dim  job.Dimension
}

func (d *dimensionFlags) register(cmd *cobra.Command, fromUsage, toUsage string) {
	cmd.Flags().StringVar(&d.dim.From, d.axis+"-from", "", fromUsage)
	cmd.Flags().StringVar(&d.dim.To, d.axis+"-to", "", toUsage)
	cmd.Flags().Float64Var(&d.dim.Step, d.axis+"-step", 0, "half step for "+d.axis+" (default: --step)")
	_ = cmd.MarkFlagRequired(d.axis + "-from")
	_ = cmd.MarkFlagRequired(d.axis + "-to")
}

// checkFlags adds optional --expected and --tolerance to cmd.
type checkFlags struct {
	expected  float64
	tolerance float64
}

func (c *checkFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&c.expected, "expected", 0, "expected value; the command fails if the result is further than --tolerance away")
	cmd.Flags().Float64Var(&c.tolerance, "tolerance", 1e-2, "allowed distance from --expected")
}

func (c *checkFlags) apply(cmd *cobra.Command, j *job.Job) {
	if cmd.Flags().Changed("expected") {
		expected := c.expected
		j.Expected = &expected
		j.Tolerance = c.tolerance
	}
}

func singleCmd(a *app) *cobra.Command {
	x := &dimensionFlags{axis: "x"}
	check := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "single EXPRESSION",
		Short: "Evaluate ∫ f(x) dx",
		Example: `  seqint single "max(sqrt(1 - x^2))" --x-from -1 --x-to 1 --x-step 0.05
  seqint single "sin(x)" --x-from 0 --x-to pi`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j := job.Job{Name: args[0], Integrand: args[0], X: x.dim}
			check.apply(cmd, &j)
			return a.execute(cmd, []job.Job{j})
		},
	}
	x.register(cmd, "lower x limit (constant expression)", "upper x limit (constant expression)")
	check.register(cmd)

	return cmd
}

func doubleCmd(a *app) *cobra.Command {
	x := &dimensionFlags{axis: "x"}
	y := &dimensionFlags{axis: "y"}
	check := &checkFlags{}

	cmd := &cobra.Command{
		Use:     "double EXPRESSION",
		Short:   "Evaluate ∫∫ f(x, y) dy dx",
		Example: `  seqint double "1" --x-from -1 --x-to 1 --y-from 0 --y-to "max(sqrt(1 - x^2))" --step 0.005`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yd := y.dim
			j := job.Job{Name: args[0], Integrand: args[0], X: x.dim, Y: &yd}
			check.apply(cmd, &j)
			return a.execute(cmd, []job.Job{j})
		},
	}
	x.register(cmd, "lower x limit (constant expression)", "upper x limit (constant expression)")
	y.register(cmd, "lower y limit (expression in x)", "upper y limit (expression in x)")
	check.register(cmd)

	return cmd
}

func tripleCmd(a *app) *cobra.Command {
	x := &dimensionFlags{axis: "x"}
	y := &dimensionFlags{axis: "y"}
	z := &dimensionFlags{axis: "z"}
	check := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "triple EXPRESSION",
		Short: "Evaluate ∫∫∫ f(x, y, z) dz dy dx",
		Example: `  seqint triple "x^2 + y^2 + z^2" --x-from 1 --x-to -1 \
    --y-from x --y-to "x / 2" --z-from "x^2 + y" --z-to 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			yd, zd := y.dim, z.dim
			j := job.Job{Name: args[0], Integrand: args[0], X: x.dim, Y: &yd, Z: &zd}
			check.apply(cmd, &j)
			return a.execute(cmd, []job.Job{j})
		},
	}
	x.register(cmd, "lower x limit (constant expression)", "upper x limit (constant expression)")
	y.register(cmd, "lower y limit (expression in x)", "upper y limit (expression in x)")
	z.register(cmd, "lower z limit (expression in x, y)", "upper z limit (expression in x, y)")
	check.register(cmd)

	return cmd
}
