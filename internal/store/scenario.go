package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/roach88/ferex/internal/scenario"
)

// SaveScenario inserts or replaces a scenario as a single atomic statement.
//
// Upsert semantics: an unseen id inserts a new row; an existing id
// overwrites all non-key columns, including created_at - the store keeps
// whatever the caller passes and preserves nothing. Using one statement
// leaves no read-modify-write window between concurrent writers to the
// same id.
//
// The data payload is stored verbatim; the store neither parses nor
// validates it.
func (s *Store) SaveScenario(ctx context.Context, sc scenario.Scenario) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO scenarios (id, name, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			data = excluded.data,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at
	`,
		sc.ID,
		sc.Name,
		sc.Data,
		sc.CreatedAt,
		sc.UpdatedAt,
	)
	if err != nil {
		return writeError("save scenario", err)
	}

	return nil
}

// ListScenarios returns all scenarios ordered by updated_at descending
// (most recently touched first). Ties on equal stamps break arbitrarily.
//
// Returns an empty slice (not nil) when the store holds no scenarios.
func (s *Store) ListScenarios(ctx context.Context) ([]scenario.Scenario, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, data, created_at, updated_at
		FROM scenarios
		ORDER BY updated_at DESC
	`)
	if err != nil {
		return nil, readError("list scenarios", err)
	}
	defer rows.Close()

	var scenarios []scenario.Scenario
	for rows.Next() {
		var sc scenario.Scenario
		if err := rows.Scan(&sc.ID, &sc.Name, &sc.Data, &sc.CreatedAt, &sc.UpdatedAt); err != nil {
			return nil, readError("scan scenario", err)
		}
		scenarios = append(scenarios, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("iterate scenarios", err)
	}

	// Return empty slice instead of nil
	if scenarios == nil {
		scenarios = []scenario.Scenario{}
	}

	return scenarios, nil
}

// GetScenario retrieves a single scenario by id.
// Returns a StorageError wrapping sql.ErrNoRows when the id is absent;
// use errors.Is(err, sql.ErrNoRows) to distinguish not-found from I/O
// failure.
func (s *Store) GetScenario(ctx context.Context, id string) (scenario.Scenario, error) {
	var sc scenario.Scenario
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, data, created_at, updated_at
		FROM scenarios
		WHERE id = ?
	`, id).Scan(&sc.ID, &sc.Name, &sc.Data, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		return scenario.Scenario{}, readError("get scenario", err)
	}
	return sc, nil
}

// DeleteScenario removes at most one scenario matching id.
// Deleting an id that does not exist is a successful no-op.
func (s *Store) DeleteScenario(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = ?`, id)
	if err != nil {
		return writeError("delete scenario", err)
	}
	return nil
}

// CountScenarios returns the number of stored scenarios.
func (s *Store) CountScenarios(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scenarios`).Scan(&count)
	if err != nil {
		return 0, readError("count scenarios", err)
	}
	return count, nil
}

// IsNotFound reports whether err is a read error caused by an absent row.
func IsNotFound(err error) bool {
	return IsReadError(err) && errors.Is(err, sql.ErrNoRows)
}
