// Package client performs the profile builder's two backend calls: fetching a
// previously saved profile by identity, and submitting the finished profile.
// Both are single-attempt request/response calls with no retry or backoff;
// the wizard displays a failure and re-enables the form.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/profile-builder/internal/codec"
	"github.com/jonathan/profile-builder/internal/normalize"
	"github.com/jonathan/profile-builder/internal/types"
)

// Client talks to the profile backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New returns a client for the given backend base URL.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ack is the backend's acknowledgement body. Its shape is advisory only; see
// the leniency note in submit.
type ack struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// FetchProfile retrieves the raw profile document saved for an identity. The
// result goes straight to the normalizer, so no shape guarantees are needed
// here beyond being a JSON object.
func (c *Client) FetchProfile(ctx context.Context, id string) (normalize.Document, error) {
	u := fmt.Sprintf("%s/profiles/by-identity?identity=%s", c.baseURL, url.QueryEscape(id))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build fetch request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Identity: id, Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &FetchError{Identity: id, Message: "no saved profile", NotFound: true}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Identity: id, Message: fmt.Sprintf("backend returned status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Identity: id, Message: "failed to read response", Cause: err}
	}
	doc, err := normalize.ParseDocument(body)
	if err != nil {
		return nil, &FetchError{Identity: id, Message: "response is not a profile document", Cause: err}
	}
	return doc, nil
}

// SaveProfile creates the profile on the backend.
func (c *Client) SaveProfile(ctx context.Context, p types.Profile) error {
	return c.submit(ctx, http.MethodPost, p)
}

// UpdateProfile updates an existing profile on the backend (edit mode).
func (c *Client) UpdateProfile(ctx context.Context, p types.Profile) error {
	return c.submit(ctx, http.MethodPut, p)
}

func (c *Client) submit(ctx context.Context, method string, p types.Profile) error {
	record := codec.DenormalizeProfile(p)
	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/profiles", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Submission-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &SubmissionError{Message: "request failed", Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &SubmissionError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("backend returned status %d: %s", resp.StatusCode, snippet),
		}
	}

	// A success status with a body that does not parse as the expected
	// acknowledgement is still a success. Some backend versions answer with
	// plain text here.
	var a ack
	if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
		log.Printf("[client] ignoring unreadable acknowledgement body: %v", err)
	}
	return nil
}
