package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/profile-builder/internal/types"
)

func TestFetchProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/profiles/by-identity", r.URL.Path)
		assert.Equal(t, "ada@example.com", r.URL.Query().Get("identity"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"Ada","skills":["Go"]}`))
	}))
	defer srv.Close()

	doc, err := New(srv.URL).FetchProfile(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", doc["name"])
}

func TestFetchProfile_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchProfile(context.Background(), "nobody@example.com")

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.True(t, fe.NotFound)
	assert.Equal(t, "nobody@example.com", fe.Identity)
}

func TestFetchProfile_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchProfile(context.Background(), "ada@example.com")

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	assert.False(t, fe.NotFound)
}

func TestFetchProfile_NonObjectBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`[1,2,3]`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).FetchProfile(context.Background(), "ada@example.com")
	assert.Error(t, err)
}

func TestSaveProfile_SendsDenormalizedRecord(t *testing.T) {
	var gotMethod, gotSubmissionID string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotSubmissionID = r.Header.Get("X-Submission-ID")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	p := types.EmptyProfile()
	p.BasicInfo = types.BasicInfo{Name: "Ada", Email: "ada@example.com", Phone: "555"}
	p.WorkExperience = []types.WorkExperience{{
		JobTitle:  "Engineer",
		Company:   "Acme",
		StartDate: "2019",
	}}

	require.NoError(t, New(srv.URL).SaveProfile(context.Background(), p))

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.NotEmpty(t, gotSubmissionID)

	we, ok := gotBody["workExperience"].([]any)
	require.True(t, ok)
	require.Len(t, we, 1)
	entry := we[0].(map[string]any)
	assert.Equal(t, "2019", entry["startDate"])
	assert.Nil(t, entry["endDate"], "empty optionals go out as null")
}

func TestUpdateProfile_UsesPut(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
	}))
	defer srv.Close()

	require.NoError(t, New(srv.URL).UpdateProfile(context.Background(), types.EmptyProfile()))
	assert.Equal(t, http.MethodPut, gotMethod)
}

func TestSubmit_SuccessStatusWithGarbageBodyIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("profile saved, thanks!"))
	}))
	defer srv.Close()

	assert.NoError(t, New(srv.URL).SaveProfile(context.Background(), types.EmptyProfile()))
}

func TestSubmit_NonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	err := New(srv.URL).SaveProfile(context.Background(), types.EmptyProfile())

	var se *SubmissionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
}
