package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ferex/internal/store"
)

// GetOptions holds flags for the get command.
type GetOptions struct {
	*RootOptions
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GetOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one saved scenario",
		Long: `Show a single saved scenario by id, including its raw payload.

Example:
  ferex get sc-1
  ferex get sc-1 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return getScenario(opts, args[0], cmd)
		},
	}

	return cmd
}

func getScenario(opts *GetOptions, id string, cmd *cobra.Command) error {
	st, cfg, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()
	setupLogging(opts.RootOptions, cfg)

	sc, err := st.GetScenario(cmd.Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			return NewExitError(ExitFailure, fmt.Sprintf("scenario not found: %s", id))
		}
		return WrapExitError(ExitFailure, "failed to read scenario", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.SuccessJSON(sc)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ID:         %s\n", sc.ID)
	fmt.Fprintf(cmd.OutOrStdout(), "Name:       %s\n", sc.Name)
	fmt.Fprintf(cmd.OutOrStdout(), "Created:    %s\n", sc.CreatedAt)
	fmt.Fprintf(cmd.OutOrStdout(), "Updated:    %s\n", sc.UpdatedAt)
	fmt.Fprintf(cmd.OutOrStdout(), "Data:       %s\n", sc.Data)
	return nil
}
