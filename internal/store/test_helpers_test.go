package store

import (
	"testing"

	"github.com/roach88/ferex/internal/scenario"
)

// createTestStore creates a store backed by a temporary data directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestScenario creates a scenario with the given id and stamp.
// CreatedAt and UpdatedAt share the stamp; name and data derive from id.
func createTestScenario(id, stamp string) scenario.Scenario {
	return scenario.Scenario{
		ID:        id,
		Name:      "scenario " + id,
		Data:      `{"serviceYears":25,"highThree":95000}`,
		CreatedAt: stamp,
		UpdatedAt: stamp,
	}
}
