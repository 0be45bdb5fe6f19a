package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ferex/internal/pension"
)

// CalcOptions holds flags for the calc command.
type CalcOptions struct {
	*RootOptions
	Years     float64
	HighThree float64
	Age       int
}

// NewCalcCommand creates the calc command.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CalcOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a FERS annual benefit",
		Long: `Calculate the FERS basic annual benefit.

The multiplier is 1.1% at age 62 or later with at least 20 years of
service, otherwise 1.0%. Inputs are taken as given; no range validation
is performed.

Example:
  ferex calc --years 25 --high-three 95000 --age 62
  ferex calc --years 19.5 --high-three 88000 --age 57 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return calcPension(opts, cmd)
		},
	}

	cmd.Flags().Float64Var(&opts.Years, "years", 0, "years of creditable service (required)")
	cmd.Flags().Float64Var(&opts.HighThree, "high-three", 0, "high-three average salary (required)")
	cmd.Flags().IntVar(&opts.Age, "age", 0, "age at retirement (required)")
	_ = cmd.MarkFlagRequired("years")
	_ = cmd.MarkFlagRequired("high-three")
	_ = cmd.MarkFlagRequired("age")

	return cmd
}

func calcPension(opts *CalcOptions, cmd *cobra.Command) error {
	res := pension.Calculate(pension.Input{
		ServiceYears:     opts.Years,
		HighThreeAverage: opts.HighThree,
		AgeAtRetirement:  opts.Age,
	})

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.SuccessJSON(res)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Multiplier:       %.1f%%\n", res.Multiplier*100)
	fmt.Fprintf(cmd.OutOrStdout(), "Annual benefit:   $%.2f\n", res.AnnualBenefit)
	fmt.Fprintf(cmd.OutOrStdout(), "Monthly benefit:  $%.2f\n", res.MonthlyBenefit)
	return nil
}
