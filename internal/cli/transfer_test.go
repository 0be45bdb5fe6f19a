package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/ferex/internal/scenario"
	"github.com/roach88/ferex/internal/store"
)

func TestImportBundle(t *testing.T) {
	dataDir := t.TempDir()
	bundlePath := filepath.Join(t.TempDir(), "bundle.yaml")

	bundle := ScenarioBundle{Scenarios: []scenario.Scenario{
		{ID: "sc-1", Name: "one", Data: "{}", CreatedAt: "2024-01-01", UpdatedAt: "2024-01-01"},
		{ID: "sc-2", Name: "two", Data: `{"x":2}`, CreatedAt: "2024-02-01", UpdatedAt: "2024-02-01"},
	}}
	raw, err := yaml.Marshal(bundle)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(bundlePath, raw, 0o644))

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text", DataDir: dataDir}
	importCmd := NewImportCommand(rootOpts)
	importCmd.SetOut(buf)
	importCmd.SetArgs([]string{bundlePath})
	require.NoError(t, importCmd.Execute())
	assert.Contains(t, buf.String(), "Imported 2 scenario(s)")

	st, err := store.Open(dataDir)
	require.NoError(t, err)
	defer st.Close()
	count, err := st.CountScenarios(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestImportReimportIsIdempotent(t *testing.T) {
	dataDir := t.TempDir()
	bundlePath := filepath.Join(t.TempDir(), "bundle.yaml")

	raw, err := yaml.Marshal(ScenarioBundle{Scenarios: []scenario.Scenario{
		{ID: "sc-1", Name: "one", Data: "{}", CreatedAt: "2024-01-01", UpdatedAt: "2024-01-01"},
	}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(bundlePath, raw, 0o644))

	rootOpts := &RootOptions{Format: "text", DataDir: dataDir}
	for i := 0; i < 2; i++ {
		importCmd := NewImportCommand(rootOpts)
		importCmd.SetOut(&bytes.Buffer{})
		importCmd.SetArgs([]string{bundlePath})
		require.NoError(t, importCmd.Execute(), "import %d", i)
	}

	st, err := store.Open(dataDir)
	require.NoError(t, err)
	defer st.Close()
	count, err := st.CountScenarios(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestImportInvalidEntryWritesNothing(t *testing.T) {
	dataDir := t.TempDir()
	bundlePath := filepath.Join(t.TempDir(), "bundle.yaml")

	// Second entry is missing its name; the whole bundle is rejected.
	raw, err := yaml.Marshal(ScenarioBundle{Scenarios: []scenario.Scenario{
		{ID: "sc-1", Name: "valid", Data: "{}", CreatedAt: "2024-01-01", UpdatedAt: "2024-01-01"},
		{ID: "sc-2", Data: "{}", CreatedAt: "2024-01-01", UpdatedAt: "2024-01-01"},
	}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(bundlePath, raw, 0o644))

	rootOpts := &RootOptions{Format: "text", DataDir: dataDir}
	importCmd := NewImportCommand(rootOpts)
	importCmd.SetOut(&bytes.Buffer{})
	importCmd.SetArgs([]string{bundlePath})

	err = importCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bundle entry 1 invalid")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	st, err := store.Open(dataDir)
	require.NoError(t, err)
	defer st.Close()
	count, err := st.CountScenarios(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestImportMissingFile(t *testing.T) {
	rootOpts := &RootOptions{Format: "text", DataDir: t.TempDir()}
	importCmd := NewImportCommand(rootOpts)
	importCmd.SetOut(&bytes.Buffer{})
	importCmd.SetArgs([]string{"/nonexistent/bundle.yaml"})

	err := importCmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestExportRoundTrip(t *testing.T) {
	dataDir := t.TempDir()
	seedStore(t, dataDir,
		scenario.Scenario{ID: "sc-1", Name: "one", Data: "{}", CreatedAt: "2024-01-01", UpdatedAt: "2024-01-01"},
		scenario.Scenario{ID: "sc-2", Name: "two", Data: "{}", CreatedAt: "2024-02-01", UpdatedAt: "2024-02-01"},
	)

	bundlePath := filepath.Join(t.TempDir(), "out.yaml")
	rootOpts := &RootOptions{Format: "text", DataDir: dataDir}
	exportCmd := NewExportCommand(rootOpts)
	exportCmd.SetOut(&bytes.Buffer{})
	exportCmd.SetArgs([]string{bundlePath})
	require.NoError(t, exportCmd.Execute())

	raw, err := os.ReadFile(bundlePath)
	require.NoError(t, err)

	var bundle ScenarioBundle
	require.NoError(t, yaml.Unmarshal(raw, &bundle))
	require.Len(t, bundle.Scenarios, 2)

	// Export preserves list order (updated_at descending).
	assert.Equal(t, "sc-2", bundle.Scenarios[0].ID)
	assert.Equal(t, "sc-1", bundle.Scenarios[1].ID)
}

func TestExportEmptyStore(t *testing.T) {
	bundlePath := filepath.Join(t.TempDir(), "out.yaml")
	rootOpts := &RootOptions{Format: "text", DataDir: t.TempDir()}

	buf := &bytes.Buffer{}
	exportCmd := NewExportCommand(rootOpts)
	exportCmd.SetOut(buf)
	exportCmd.SetArgs([]string{bundlePath})
	require.NoError(t, exportCmd.Execute())
	assert.Contains(t, buf.String(), "Exported 0 scenario(s)")
}
