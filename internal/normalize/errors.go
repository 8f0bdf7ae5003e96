package normalize

import "fmt"

// DocumentError reports a raw payload that could not be parsed as a JSON
// object at all. Shape problems inside a parsed document are never errors;
// they are resolved by defaulting.
type DocumentError struct {
	Message string
	Cause   error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("document error: %s", e.Message)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}
