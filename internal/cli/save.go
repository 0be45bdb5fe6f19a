package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/ferex/internal/scenario"
	"github.com/roach88/ferex/internal/store"
)

// SaveOptions holds flags for the save command.
type SaveOptions struct {
	*RootOptions
	ID   string
	Name string
	Data string

	// Clock and IDs allow overriding stamping for tests.
	// If nil, the system clock and UUIDv7 generation are used.
	Clock scenario.Clock
	IDs   scenario.IDGenerator
}

// NewSaveCommand creates the save command.
func NewSaveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SaveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save a retirement scenario",
		Long: `Save a retirement scenario to the local store.

Saving reuses upsert semantics: a fresh --id inserts a new scenario, an
existing --id fully replaces it. When --id is omitted a UUIDv7 is
generated. The --data payload is stored verbatim; ferex does not parse it.

Example:
  ferex save --name "Retire at 62" --data '{"serviceYears":25,"highThree":95000}'
  ferex save --id sc-1 --name "Updated plan" --data '{}'`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return saveScenario(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ID, "id", "", "scenario id (generated when omitted)")
	cmd.Flags().StringVar(&opts.Name, "name", "", "scenario name (required)")
	cmd.Flags().StringVar(&opts.Data, "data", "{}", "opaque scenario payload")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func saveScenario(opts *SaveOptions, cmd *cobra.Command) error {
	clock := opts.Clock
	if clock == nil {
		clock = scenario.SystemClock{}
	}
	ids := opts.IDs
	if ids == nil {
		ids = scenario.UUIDv7Generator{}
	}

	st, cfg, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()
	setupLogging(opts.RootOptions, cfg)

	now := clock.Now()
	sc := scenario.Scenario{
		ID:        opts.ID,
		Name:      opts.Name,
		Data:      opts.Data,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if sc.ID == "" {
		sc.ID = ids.Generate()
	}

	// A reused id keeps its original created_at. Only a confirmed
	// missing row falls through to the fresh stamp; an actual read
	// failure must surface, not silently reset the timestamp.
	existing, err := st.GetScenario(cmd.Context(), sc.ID)
	switch {
	case err == nil:
		sc.CreatedAt = existing.CreatedAt
	case store.IsNotFound(err):
		// fresh id, keep the new stamp
	default:
		return WrapExitError(ExitFailure, "failed to check existing scenario", err)
	}

	if err := st.SaveScenario(cmd.Context(), sc); err != nil {
		return WrapExitError(ExitFailure, "failed to save scenario", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.SuccessJSON(sc)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved scenario %s (%s)\n", sc.ID, sc.Name)
	return nil
}
