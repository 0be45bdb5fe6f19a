package scenario

import "fmt"

// Scenario is a saved retirement scenario as the store persists it.
//
// The Data field is an opaque serialized payload. The store and both shells
// pass it through untouched; only the front end knows its internal structure.
//
// Timestamps are caller-supplied strings in RFC 3339 UTC so that string
// comparison matches chronological order. The store sorts on UpdatedAt
// lexically and never generates stamps itself.
type Scenario struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Data      string `json:"data" yaml:"data"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
	UpdatedAt string `json:"updated_at" yaml:"updated_at"`
}

// Validate checks that all fields required for persistence are present.
//
// An empty ID is allowed: it is an unusual but valid key, and the store
// persists it like any other. The shells normally generate an ID before a
// scenario ever reaches this check.
func (s Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario %q: name is required", s.ID)
	}
	if s.CreatedAt == "" {
		return fmt.Errorf("scenario %q: created_at is required", s.ID)
	}
	if s.UpdatedAt == "" {
		return fmt.Errorf("scenario %q: updated_at is required", s.ID)
	}
	return nil
}
