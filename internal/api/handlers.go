package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roach88/ferex/internal/pension"
	"github.com/roach88/ferex/internal/scenario"
	"github.com/roach88/ferex/internal/store"
)

// handleHealth reports liveness. The desktop shell polls it once at
// startup to confirm the core is wired before enabling the UI.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleSaveScenario upserts a scenario.
//
// Missing id, created_at, or updated_at are stamped here - the store
// itself never generates either. A request that names an existing id
// fully replaces that row.
func (s *Server) handleSaveScenario(w http.ResponseWriter, r *http.Request) {
	var sc scenario.Scenario
	if err := json.NewDecoder(r.Body).Decode(&sc); err != nil {
		renderError(w, http.StatusBadRequest, "invalid scenario body: "+err.Error())
		return
	}

	now := s.clock.Now()
	if sc.ID == "" {
		sc.ID = s.ids.Generate()
	}
	if sc.CreatedAt == "" {
		sc.CreatedAt = now
	}
	if sc.UpdatedAt == "" {
		sc.UpdatedAt = now
	}

	if err := sc.Validate(); err != nil {
		renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.store.SaveScenario(r.Context(), sc); err != nil {
		s.log.Error("save scenario failed", "id", sc.ID, "error", err)
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	renderJSON(w, http.StatusOK, sc)
}

// handleListScenarios returns every scenario, most recently updated
// first. An empty store yields an empty array, not an error.
func (s *Server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	scenarios, err := s.store.ListScenarios(r.Context())
	if err != nil {
		s.log.Error("list scenarios failed", "error", err)
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	renderJSON(w, http.StatusOK, scenarios)
}

// handleGetScenario returns a single scenario by id.
func (s *Server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	sc, err := s.store.GetScenario(r.Context(), id)
	if err != nil {
		if store.IsNotFound(err) {
			renderError(w, http.StatusNotFound, "scenario not found: "+id)
			return
		}
		s.log.Error("get scenario failed", "id", id, "error", err)
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	renderJSON(w, http.StatusOK, sc)
}

// handleDeleteScenario removes a scenario. Unknown ids succeed: delete
// is idempotent by contract.
func (s *Server) handleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := s.store.DeleteScenario(r.Context(), id); err != nil {
		s.log.Error("delete scenario failed", "id", id, "error", err)
		renderError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleCalculatePension runs the FERS calculation. Infallible for
// numeric input; the error channel exists for interface uniformity and
// only fires on a malformed body.
func (s *Server) handleCalculatePension(w http.ResponseWriter, r *http.Request) {
	var in pension.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		renderError(w, http.StatusBadRequest, "invalid calculation body: "+err.Error())
		return
	}

	renderJSON(w, http.StatusOK, pension.Calculate(in))
}
