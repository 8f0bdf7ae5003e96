package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profile-builder/internal/config"
	"github.com/jonathan/profile-builder/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := New(config.Config{Port: 0})
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UpdateSectionAndGetProfile(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	info := types.BasicInfo{Name: "Ada", Email: "ada@example.com", Phone: "555"}
	rec := doJSON(t, h, http.MethodPut, "/profile/sections/basicInfo", info)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p types.Profile
	decodeBody(t, rec, &p)
	assert.Equal(t, info, p.BasicInfo)
	assert.Equal(t, "Ada", p.Name)
}

func TestServer_UpdateSectionRejectsUnknownSection(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodPut, "/profile/sections/bogus", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_UpdateSectionRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodPut, "/profile/sections/basicInfo", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_NavigateBlockedByEarlierErrors(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/wizard/navigate", map[string]int{"step": 1})

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, types.SectionBasicInfo, body["section"])
	assert.Equal(t, float64(0), body["blockedBy"])
	assert.Equal(t, float64(3), body["errorCount"])
}

func TestServer_NavigateForwardAfterFixingErrors(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	info := types.BasicInfo{Name: "Ada", Email: "ada@example.com", Phone: "555"}
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPut, "/profile/sections/basicInfo", info).Code)

	rec := doJSON(t, h, http.MethodPost, "/wizard/navigate", map[string]int{"step": 1})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]int
	decodeBody(t, rec, &body)
	assert.Equal(t, 1, body["current"])
}

func TestServer_NavigateBackwardAlwaysAllowed(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	rec := doJSON(t, h, http.MethodPost, "/wizard/navigate", map[string]int{"step": 0})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_NavigateRequiresStep(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/wizard/navigate", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_WizardState(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/wizard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var state wizardState
	decodeBody(t, rec, &state)
	assert.Equal(t, 0, state.Current)
	require.Len(t, state.Sections, len(types.SectionOrder))
	assert.Equal(t, types.SectionBasicInfo, state.Sections[0])
	assert.True(t, state.Reachable[0])
	assert.False(t, state.Reachable[1], "empty profile blocks everything past step 0")
	assert.Equal(t, 3, state.Badges[0])
	assert.False(t, state.EditMode)
}

func TestServer_GetSectionSubstitutesEmptyTemplate(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/profile/sections/education", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var forms []map[string]any
	decodeBody(t, rec, &forms)
	require.Len(t, forms, 1, "an empty list section shows one blank template entry")
	assert.Equal(t, "", forms[0]["degree"])
}

func TestServer_GetSectionWorkExperienceForm(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	we := []types.WorkExperience{{
		JobTitle:         "Engineer",
		Company:          "Acme",
		StartDate:        "2019",
		EndDate:          "2021",
		Responsibilities: []string{"Built things", "Shipped things"},
	}}
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPut, "/profile/sections/workExperience", we).Code)

	rec := doJSON(t, h, http.MethodGet, "/profile/sections/workExperience", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var forms []map[string]any
	decodeBody(t, rec, &forms)
	require.Len(t, forms, 1)
	assert.Equal(t, "2019-01-01", forms[0]["startDate"])
	assert.Equal(t, "2021-12-31", forms[0]["endDate"])
	assert.Equal(t, "Built things\nShipped things", forms[0]["description"])
}

func TestServer_GetSectionUnknown(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/profile/sections/bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_RemoveEntryNoOpOnLastEntry(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	edu := []types.Education{{Degree: "BSc"}}
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPut, "/profile/sections/education", edu).Code)

	rec := doJSON(t, h, http.MethodPost, "/profile/sections/education/remove-entry", map[string]int{"index": 0})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, false, body["removed"])
	assert.Equal(t, float64(1), body["length"])
}

func TestServer_RemoveEntry(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	edu := []types.Education{{Degree: "BSc"}, {Degree: "MSc"}}
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPut, "/profile/sections/education", edu).Code)

	rec := doJSON(t, h, http.MethodPost, "/profile/sections/education/remove-entry", map[string]int{"index": 0})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	decodeBody(t, rec, &body)
	assert.Equal(t, true, body["removed"])
	assert.Equal(t, float64(1), body["length"])

	var p types.Profile
	decodeBody(t, doJSON(t, h, http.MethodGet, "/profile", nil), &p)
	require.Len(t, p.Education, 1)
	assert.Equal(t, "MSc", p.Education[0].Degree)
}

func TestServer_RemoveEntryRejectsNonListSection(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/profile/sections/basicInfo/remove-entry", map[string]int{"index": 0})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Upload(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	raw := map[string]any{"name": "Ada", "skills": []string{"Go"}}
	rec := doJSON(t, h, http.MethodPost, "/profile/upload", raw)
	require.Equal(t, http.StatusOK, rec.Code)

	var p types.Profile
	decodeBody(t, rec, &p)
	assert.Equal(t, "Ada", p.BasicInfo.Name)
	assert.Equal(t, []string{"Go"}, p.PrimarySkills)
}

func TestServer_SubmitRefusedWithValidationErrors(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Error("backend must not be called while the profile has errors")
	}))
	defer backend.Close()

	s, err := New(config.Config{Port: 0, BackendURL: backend.URL})
	require.NoError(t, err)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/profile/submit", nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Counts map[string]int `json:"counts"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, 3, body.Counts[types.SectionBasicInfo])
}

func TestServer_SubmitSendsCompleteProfile(t *testing.T) {
	var gotMethod string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer backend.Close()

	s, err := New(config.Config{Port: 0, BackendURL: backend.URL})
	require.NoError(t, err)
	h := s.Handler()

	no := false
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPut, "/profile/sections/basicInfo",
		types.BasicInfo{Name: "Ada", Email: "ada@example.com", Phone: "555"}).Code)
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPut, "/profile/sections/education",
		[]types.Education{{Degree: "BSc"}}).Code)
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPut, "/profile/sections/primarySkills",
		[]string{"Go"}).Code)
	require.Equal(t, http.StatusOK, doJSON(t, h, http.MethodPut, "/profile/sections/reviewAgree",
		types.ReviewAgree{Agreed: true, HasDisability: &no}).Code)

	rec := doJSON(t, h, http.MethodPost, "/profile/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, http.MethodPost, gotMethod, "a first submission creates, not updates")

	var body map[string]any
	decodeBody(t, rec, &body)
	warnings, ok := body["warnings"].([]any)
	require.True(t, ok, "a clean submission reports an empty warnings array, not null")
	assert.Empty(t, warnings)
}

func TestServer_SubmitWithoutBackend(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodPost, "/profile/submit", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestServer_Tours(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler()

	rec := doJSON(t, h, http.MethodGet, "/tours/profile", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "", body["status"])

	rec = doJSON(t, h, http.MethodPut, "/tours/profile", map[string]string{"status": "done"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/tours/profile", nil)
	decodeBody(t, rec, &body)
	assert.Equal(t, "done", body["status"])
}

func TestServer_CompletionEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/profile/completion", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]int
	decodeBody(t, rec, &body)
	assert.Equal(t, 0, body["completion"])
}

func TestServer_ValidationEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s.Handler(), http.MethodGet, "/profile/validation", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	decodeBody(t, rec, &body)
	assert.Contains(t, body, "basicInfo")
	assert.Contains(t, body, "reviewAgree")
}

func TestServer_CORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/profile", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
