package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/roach88/ferex/internal/scenario"
)

// ScenarioBundle is the YAML document format used by import and export.
// It round-trips every persisted field, timestamps included, so a bundle
// restored on another machine lists in the same order.
type ScenarioBundle struct {
	Scenarios []scenario.Scenario `yaml:"scenarios"`
}

// ImportOptions holds flags for the import command.
type ImportOptions struct {
	*RootOptions
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ImportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import scenarios from a YAML bundle",
		Long: `Import scenarios from a YAML bundle written by export.

Each scenario upserts by id: bundles can be re-imported safely, and an
import over existing ids replaces those scenarios.

Example:
  ferex import backup.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return importScenarios(opts, args[0], cmd)
		},
	}

	return cmd
}

func importScenarios(opts *ImportOptions, path string, cmd *cobra.Command) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read bundle", err)
	}

	var bundle ScenarioBundle
	if err := yaml.Unmarshal(raw, &bundle); err != nil {
		return WrapExitError(ExitCommandError, "failed to parse bundle", err)
	}

	// Validate everything before writing anything.
	for i, sc := range bundle.Scenarios {
		if err := sc.Validate(); err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("bundle entry %d invalid", i), err)
		}
	}

	st, cfg, err := openStore(opts.RootOptions)
	if err != nil {
		return err
	}
	defer st.Close()
	setupLogging(opts.RootOptions, cfg)

	for _, sc := range bundle.Scenarios {
		if err := st.SaveScenario(cmd.Context(), sc); err != nil {
			return WrapExitError(ExitFailure, fmt.Sprintf("failed to import scenario %s", sc.ID), err)
		}
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.SuccessJSON(map[string]int{"imported": len(bundle.Scenarios)})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d scenario(s)\n", len(bundle.Scenarios))
	return nil
}

// ExportOptions holds flags for the export command.
type ExportOptions struct {
	*RootOptions
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExportOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export all scenarios to a YAML bundle",
		Long: `Export every saved scenario to a YAML bundle.

Example:
  ferex export backup.yaml`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return exportScenarios(opts, args[0], cmd)
		},
	}

	return cmd
}

func exportScenarios(opts *ExportOptions, path string, cmd *cobra.Command) error {
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

	raw, err := yaml.Marshal(ScenarioBundle{Scenarios: scenarios})
	if err != nil {
		return WrapExitError(ExitFailure, "failed to encode bundle", err)
	}

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return WrapExitError(ExitFailure, "failed to write bundle", err)
	}

	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return out.SuccessJSON(map[string]int{"exported": len(scenarios)})
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d scenario(s) to %s\n", len(scenarios), path)
	return nil
}
