// Package store holds the profile store: the single source of truth for the
// canonical profile, its durable record layer, and the cross-context bus.
package store

import "fmt"

// StorageError reports a failure in the durable record layer. The store logs
// these and keeps the in-memory profile authoritative for the session.
type StorageError struct {
	Message string
	Cause   error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("storage error: %s", e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// SectionError reports a section write with a value of the wrong type for the
// named section.
type SectionError struct {
	Section string
	Message string
}

func (e *SectionError) Error() string {
	return fmt.Sprintf("section %q: %s", e.Section, e.Message)
}
