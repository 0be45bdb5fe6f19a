package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DeleteOptions holds flags for the delete command.
type DeleteOptions struct {
	*RootOptions
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DeleteOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved scenario",
		Long: `Delete a saved scenario by id.

Deleting an id that does not exist succeeds silently - delete is
idempotent by contract.

Example:
  ferex delete sc-1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return deleteScenario(opts, args[0], cmd)
		},
	}

	return cmd
}

func deleteScenario(opts *DeleteOptions, id string, cmd *cobra.Command) error {
	st, cfg, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()
	setupLogging(opts.RootOptions, cfg)

	if err := st.DeleteScenario(cmd.Context(), id); err != nil {
		return WrapExitError(ExitFailure, "failed to delete scenario", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.SuccessJSON(map[string]string{"deleted": id})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Deleted scenario %s\n", id)
	return nil
}
