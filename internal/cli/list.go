package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved scenarios",
		Long: `List all saved scenarios, most recently updated first.

An empty store prints an empty listing, not an error.

Example:
  ferex list
  ferex list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listScenarios(opts, cmd)
		},
	}

	return cmd
}

func listScenarios(opts *ListOptions, cmd *cobra.Command) error {
	st, cfg, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()
	setupLogging(opts.RootOptions, cfg)

	scenarios, err := st.ListScenarios(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "failed to list scenarios", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.SuccessJSON(scenarios)
	}

	if len(scenarios) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No scenarios saved.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tUPDATED")
	for _, sc := range scenarios {
		fmt.Fprintf(w, "%s\t%s\t%s\n", sc.ID, sc.Name, sc.UpdatedAt)
	}
	return w.Flush()
}
