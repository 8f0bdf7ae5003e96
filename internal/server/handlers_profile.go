package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/jonathan/profile-builder/internal/client"
	"github.com/jonathan/profile-builder/internal/codec"
	"github.com/jonathan/profile-builder/internal/completion"
	"github.com/jonathan/profile-builder/internal/identity"
	"github.com/jonathan/profile-builder/internal/normalize"
	"github.com/jonathan/profile-builder/internal/schemas"
	"github.com/jonathan/profile-builder/internal/types"
	"github.com/jonathan/profile-builder/internal/validation"
)

// handleGetProfile returns the current canonical profile.
func (s *Server) handleGetProfile(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Profile())
}

// handleGetRecord returns the denormalized submission document, as it would
// be sent to the backend.
func (s *Server) handleGetRecord(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, codec.DenormalizeProfile(s.store.Profile()))
}

// handleGetSection returns one section in its editable form. List sections
// always come back with at least one entry, substituting the empty template
// when the stored list is empty; the substitution is display-only.
func (s *Server) handleGetSection(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	p := s.store.Profile()
	switch name {
	case types.SectionBasicInfo:
		s.jsonResponse(w, http.StatusOK, p.BasicInfo)
	case types.SectionEducation:
		forms := make([]codec.EducationForm, 0, len(p.Education))
		for _, e := range p.Education {
			forms = append(forms, codec.NormalizeEducation(e))
		}
		s.jsonResponse(w, http.StatusOK, codec.EditableList(forms, codec.EducationForm{}))
	case types.SectionWorkExperience:
		forms := make([]codec.WorkExperienceForm, 0, len(p.WorkExperience))
		for _, e := range p.WorkExperience {
			forms = append(forms, codec.NormalizeWorkExperience(e))
		}
		s.jsonResponse(w, http.StatusOK, codec.EditableList(forms, codec.WorkExperienceForm{}))
	case types.SectionSkills:
		s.jsonResponse(w, http.StatusOK, p.Skills)
	case "primarySkills":
		s.jsonResponse(w, http.StatusOK, p.PrimarySkills)
	case "basicSkills":
		s.jsonResponse(w, http.StatusOK, p.BasicSkills)
	case types.SectionProjects:
		forms := make([]codec.ProjectForm, 0, len(p.Projects))
		for _, e := range p.Projects {
			forms = append(forms, codec.NormalizeProject(e))
		}
		s.jsonResponse(w, http.StatusOK, codec.EditableList(forms, codec.ProjectForm{}))
	case types.SectionAchievements:
		forms := make([]codec.AchievementForm, 0, len(p.Achievements))
		for _, e := range p.Achievements {
			forms = append(forms, codec.NormalizeAchievement(e))
		}
		s.jsonResponse(w, http.StatusOK, codec.EditableList(forms, codec.AchievementForm{}))
	case types.SectionCertification:
		forms := make([]codec.CertificationForm, 0, len(p.Certification))
		for _, e := range p.Certification {
			forms = append(forms, codec.NormalizeCertification(e))
		}
		s.jsonResponse(w, http.StatusOK, codec.EditableList(forms, codec.CertificationForm{}))
	case types.SectionPreference:
		s.jsonResponse(w, http.StatusOK, p.Preference)
	case types.SectionOtherDetails:
		s.jsonResponse(w, http.StatusOK, p.OtherDetails)
	case types.SectionReviewAgree:
		s.jsonResponse(w, http.StatusOK, p.ReviewAgree)
	default:
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("unknown section %q", name))
	}
}

// handleUpdateSection replaces one section with the request body.
func (s *Server) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	value, err := decodeSection(name, body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.UpdateSection(r.Context(), name, value); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Profile())
}

// decodeSection unmarshals a section body into the section's canonical type.
func decodeSection(name string, body []byte) (any, error) {
	unmarshal := func(v any) (any, error) {
		if err := json.Unmarshal(body, v); err != nil {
			return nil, fmt.Errorf("invalid %s payload: %w", name, err)
		}
		return deref(v), nil
	}
	switch name {
	case types.SectionBasicInfo:
		return unmarshal(&types.BasicInfo{})
	case types.SectionEducation:
		return unmarshal(&[]types.Education{})
	case types.SectionWorkExperience:
		return unmarshal(&[]types.WorkExperience{})
	case types.SectionSkills, "primarySkills", "basicSkills":
		return unmarshal(&[]string{})
	case types.SectionProjects:
		return unmarshal(&[]types.Project{})
	case types.SectionAchievements:
		return unmarshal(&[]types.Achievement{})
	case types.SectionCertification:
		return unmarshal(&[]types.Certification{})
	case types.SectionPreference:
		return unmarshal(&types.Preference{})
	case types.SectionOtherDetails:
		return unmarshal(&types.OtherDetails{})
	case types.SectionReviewAgree:
		return unmarshal(&types.ReviewAgree{})
	default:
		return nil, fmt.Errorf("unknown section %q", name)
	}
}

// deref unwraps the pointer decodeSection unmarshaled into.
func deref(v any) any {
	switch t := v.(type) {
	case *types.BasicInfo:
		return *t
	case *[]types.Education:
		return *t
	case *[]types.WorkExperience:
		return *t
	case *[]string:
		return *t
	case *[]types.Project:
		return *t
	case *[]types.Achievement:
		return *t
	case *[]types.Certification:
		return *t
	case *types.Preference:
		return *t
	case *types.OtherDetails:
		return *t
	case *types.ReviewAgree:
		return *t
	default:
		return v
	}
}

// handleRemoveEntry removes one entry from a list section. Removing the last
// remaining entry is a no-op: the section keeps at least one editable entry.
func (s *Server) handleRemoveEntry(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	var req types.RemoveEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	p := s.store.Profile()
	idx := *req.Index
	var (
		value   any
		changed bool
		length  int
	)
	switch name {
	case types.SectionEducation:
		list, ok := codec.RemoveEntry(p.Education, idx)
		value, changed, length = list, ok, len(list)
	case types.SectionWorkExperience:
		list, ok := codec.RemoveEntry(p.WorkExperience, idx)
		value, changed, length = list, ok, len(list)
	case types.SectionProjects:
		list, ok := codec.RemoveEntry(p.Projects, idx)
		value, changed, length = list, ok, len(list)
	case types.SectionAchievements:
		list, ok := codec.RemoveEntry(p.Achievements, idx)
		value, changed, length = list, ok, len(list)
	case types.SectionCertification:
		list, ok := codec.RemoveEntry(p.Certification, idx)
		value, changed, length = list, ok, len(list)
	default:
		s.errorResponse(w, http.StatusBadRequest, fmt.Sprintf("section %q is not a list section", name))
		return
	}

	if changed {
		if err := s.store.UpdateSection(r.Context(), name, value); err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"removed": changed, "length": length})
}

// handleUpload accepts a raw profile document and loads it through the
// normalizer, replacing the whole profile.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	doc, err := normalize.ParseDocument(body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.store.Load(r.Context(), doc)
	s.jsonResponse(w, http.StatusOK, s.store.Profile())
}

// handleFetch pulls the saved profile for the caller's identity from the
// backend and loads it, putting the wizard into edit mode.
func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	if s.backend == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no backend configured")
		return
	}

	token := bearerToken(r)
	id := identity.Resolve(token, s.store.Profile())
	if id == "" {
		s.errorResponse(w, http.StatusBadRequest, "no identity available")
		return
	}

	doc, err := s.backend.FetchProfile(r.Context(), id)
	if err != nil {
		var fe *client.FetchError
		if errors.As(err, &fe) && fe.NotFound {
			s.errorResponse(w, http.StatusNotFound, err.Error())
			return
		}
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.store.Load(r.Context(), doc)
	s.store.SetEditMode(r.Context(), true)
	s.jsonResponse(w, http.StatusOK, s.store.Profile())
}

// handleSubmit sends the finished profile to the backend. Submission is
// refused while any step still has errors; schema findings are advisory and
// reported as warnings.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if s.backend == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "no backend configured")
		return
	}

	p := s.store.Profile()
	counts := make(map[string]int, len(types.SectionOrder))
	total := 0
	for _, section := range types.SectionOrder {
		n := validation.StepErrorCount(p, section)
		counts[section] = n
		total += n
	}
	if total > 0 {
		s.jsonResponse(w, http.StatusUnprocessableEntity, map[string]any{
			"error":  "profile has validation errors",
			"counts": counts,
		})
		return
	}

	record, err := json.Marshal(codec.DenormalizeProfile(p))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to encode profile")
		return
	}
	warnings, err := schemas.CheckSubmission(record)
	if err != nil {
		log.Printf("[submit] schema check unavailable: %v", err)
	}
	if len(warnings) > 0 {
		log.Printf("[submit] schema warnings: %s", schemas.FormatWarnings(warnings))
	}
	if warnings == nil {
		// Keep the response shape stable: an array, never null.
		warnings = []schemas.FieldError{}
	}

	editMode := s.store.EditMode(r.Context())
	if editMode {
		err = s.backend.UpdateProfile(r.Context(), p)
	} else {
		err = s.backend.SaveProfile(r.Context(), p)
	}
	if err != nil {
		// Single attempt; the caller shows the message and re-enables submit.
		s.errorResponse(w, http.StatusBadGateway, err.Error())
		return
	}

	s.store.ClearEditMode(r.Context())
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":   "submitted",
		"updated":  editMode,
		"warnings": warnings,
	})
}

// handleValidation returns the full per-step validation report.
func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	p := s.store.Profile()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"basicInfo":      validation.ValidateBasicInfo(p),
		"education":      validation.ValidateEducation(p),
		"workExperience": validation.ValidateWorkExperience(p),
		"skills":         validation.ValidateSkills(p),
		"projects":       validation.ValidateProjects(p),
		"achievements":   validation.ValidateAchievements(p),
		"certification":  validation.ValidateCertification(p),
		"preference":     validation.ValidatePreference(p),
		"otherDetails":   validation.ValidateOtherDetails(p),
		"reviewAgree":    validation.ValidateReviewAgree(p),
	})
}

// handleCompletion returns the completion score.
func (s *Server) handleCompletion(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]int{"completion": completion.Score(s.store.Profile())})
}

// bearerToken extracts the bearer token from the Authorization header, or "".
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
