package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/profile-builder/internal/stepper"
	"github.com/jonathan/profile-builder/internal/types"
)

// wizardState is the stepper view the UI renders: active step, per-step error
// badges, and which steps are reachable right now.
type wizardState struct {
	Current   int      `json:"current"`
	Sections  []string `json:"sections"`
	Badges    []int    `json:"badges"`
	Reachable []bool   `json:"reachable"`
	EditMode  bool     `json:"editMode"`
}

// handleWizardState reports the live stepper state. Everything is recomputed
// against the current profile on each call.
func (s *Server) handleWizardState(w http.ResponseWriter, r *http.Request) {
	p := s.store.Profile()

	s.mu.Lock()
	state := wizardState{
		Current:  s.stepper.Current(),
		Badges:   s.stepper.Badges(p),
		EditMode: s.store.EditMode(r.Context()),
	}
	state.Sections = make([]string, s.stepper.Len())
	state.Reachable = make([]bool, s.stepper.Len())
	for i := 0; i < s.stepper.Len(); i++ {
		state.Sections[i] = s.stepper.Section(i)
		state.Reachable[i] = i <= s.stepper.Current() || s.stepper.CanNavigate(p, i)
	}
	s.mu.Unlock()

	s.jsonResponse(w, http.StatusOK, state)
}

// handleNavigate moves the wizard to the requested step, applying the
// earlier-steps-clean gating rule against the live profile.
func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req types.NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	p := s.store.Profile()

	s.mu.Lock()
	err := s.stepper.Go(p, *req.Step)
	current := s.stepper.Current()
	s.mu.Unlock()

	if err != nil {
		var ne *stepper.NavigationError
		if errors.As(err, &ne) {
			s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
				"error":      ne.Message,
				"target":     ne.Target,
				"blockedBy":  ne.BlockedBy,
				"section":    ne.Section,
				"errorCount": ne.ErrorCount,
			})
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]int{"current": current})
}

// handleGetTour returns an onboarding tour's recorded status.
func (s *Server) handleGetTour(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	status := s.store.TourStatus(r.Context(), name)
	s.jsonResponse(w, http.StatusOK, map[string]string{"tour": name, "status": status})
}

// handleSetTour records an onboarding tour's outcome.
func (s *Server) handleSetTour(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	var req types.TourStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Tour = name
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.store.SetTourStatus(r.Context(), name, req.Status)
	s.jsonResponse(w, http.StatusOK, map[string]string{"tour": name, "status": req.Status})
}
