// Package store provides SQLite-backed durable storage for saved
// retirement scenarios.
//
// The store owns a single scenarios table keyed by a caller-supplied
// opaque id:
//   - Save: single-statement upsert (no read-modify-write window)
//   - List: ordered by updated_at descending, empty slice when empty
//   - Get: single-row read by id
//   - Delete: idempotent, absent ids are a successful no-op
//
// Timestamps are caller-supplied RFC 3339 UTC strings; the store never
// generates them and sorts updated_at lexically.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Failures are StorageError values coded STORAGE_INIT (fatal, during
// Open), STORAGE_READ, or STORAGE_WRITE (local to one call, never
// retried here). At the process boundary they render as plain strings.
package store
