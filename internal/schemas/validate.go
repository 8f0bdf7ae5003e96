// Package schemas provides the advisory JSON Schema check run against the
// submission document before it leaves for the backend. Violations are
// reported as warnings, never as blocking errors: the backend contract is
// lenient and the wizard's own validators are the gate.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var profileSchema string

// FieldError is a single schema violation at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// SchemaLoadError reports a schema that could not be loaded or parsed; this
// is a programming error, not a document problem.
type SchemaLoadError struct {
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema: %s", e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// CheckSubmission validates a serialized submission document against the
// profile schema and returns the violations as warnings.
func CheckSubmission(document []byte) ([]FieldError, error) {
	return validate(profileSchema, string(document))
}

// validate runs schema content against document content and collects field
// errors.
func validate(schemaContent, jsonContent string) ([]FieldError, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaContent)
	documentLoader := gojsonschema.NewStringLoader(jsonContent)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &SchemaLoadError{Message: "schema validation failed during load", Cause: err}
	}
	if result.Valid() {
		return nil, nil
	}

	warnings := make([]FieldError, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		warnings = append(warnings, FieldError{Field: field, Message: desc.Description()})
	}
	return warnings, nil
}

// FormatWarnings renders schema warnings for log output.
func FormatWarnings(warnings []FieldError) string {
	var sb strings.Builder
	for i, w := range warnings {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(fmt.Sprintf("%s: %s", w.Field, w.Message))
	}
	return sb.String()
}
