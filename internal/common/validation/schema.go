// Package validation checks worker job payloads against JSON Schemas.
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

type Result struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Validate checks a JSON document against a JSON Schema. A schema that does
// not compile is reported as an error, not as an invalid document.
func Validate(schemaJSON, documentJSON string) (*Result, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewStringLoader(documentJSON)

	res, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed to run: %w", err)
	}

	out := &Result{Valid: res.Valid()}
	for _, e := range res.Errors() {
		out.Errors = append(out.Errors, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return out, nil
}

// ValidateBytes is Validate for raw payload bytes, e.g. job.Variables.
func ValidateBytes(schemaJSON string, document []byte) (*Result, error) {
	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(document)

	res, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed to run: %w", err)
	}

	out := &Result{Valid: res.Valid()}
	for _, e := range res.Errors() {
		out.Errors = append(out.Errors, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return out, nil
}

// ErrorString joins all validation errors into one message.
func (r *Result) ErrorString() string {
	return strings.Join(r.Errors, "; ")
}
