package client

import "fmt"

// FetchError reports a failed profile fetch. NotFound distinguishes "nothing
// saved yet" from transport and backend failures.
type FetchError struct {
	Identity string
	Message  string
	NotFound bool
	Cause    error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch profile for %s: %s: %v", e.Identity, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch profile for %s: %s", e.Identity, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// SubmissionError reports a failed save or update. The wizard shows the
// message and re-enables the submit control; there is no automatic retry.
type SubmissionError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *SubmissionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("submit profile: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("submit profile: %s", e.Message)
}

func (e *SubmissionError) Unwrap() error {
	return e.Cause
}
