package scenario

import (
	"strings"
	"testing"
)

func TestValidate_CompleteScenario(t *testing.T) {
	sc := Scenario{
		ID:        "sc-1",
		Name:      "Retire at 62",
		Data:      `{"serviceYears":25}`,
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-01-01T00:00:00Z",
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("Validate() failed for complete scenario: %v", err)
	}
}

func TestValidate_EmptyIDAllowed(t *testing.T) {
	// An empty id is an unusual but valid key; only the other fields
	// are required.
	sc := Scenario{
		Name:      "unnamed key",
		Data:      "{}",
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-01-01T00:00:00Z",
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("Validate() should allow empty id: %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		sc      Scenario
		wantSub string
	}{
		{
			name:    "missing name",
			sc:      Scenario{ID: "x", CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z"},
			wantSub: "name is required",
		},
		{
			name:    "missing created_at",
			sc:      Scenario{ID: "x", Name: "n", UpdatedAt: "2024-01-01T00:00:00Z"},
			wantSub: "created_at is required",
		},
		{
			name:    "missing updated_at",
			sc:      Scenario{ID: "x", Name: "n", CreatedAt: "2024-01-01T00:00:00Z"},
			wantSub: "updated_at is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sc.Validate()
			if err == nil {
				t.Fatal("Validate() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("Validate() = %q, want substring %q", err, tt.wantSub)
			}
		})
	}
}

func TestValidate_EmptyDataAllowed(t *testing.T) {
	// The data payload is opaque; an empty string is a legal payload.
	sc := Scenario{
		ID:        "sc-empty",
		Name:      "empty payload",
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-01-01T00:00:00Z",
	}
	if err := sc.Validate(); err != nil {
		t.Errorf("Validate() should allow empty data: %v", err)
	}
}
