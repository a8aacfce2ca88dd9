package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const filterSchema = `{
	"type": "object",
	"properties": {
		"interest":   {"type": "string"},
		"skills":     {"type": "string"},
		"salary":     {"type": "string", "enum": ["", "high", "medium", "flexible"]},
		"difficulty": {"type": "string"}
	},
	"additionalProperties": true
}`

func TestValidate_AcceptsConformingPayload(t *testing.T) {
	res, err := Validate(filterSchema, `{"interest": "tech", "salary": "high"}`)
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Empty(t, res.Errors)
}

func TestValidate_RejectsWrongTypes(t *testing.T) {
	res, err := Validate(filterSchema, `{"interest": 42}`)
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.NotEmpty(t, res.ErrorString())
}

func TestValidate_RejectsEnumViolation(t *testing.T) {
	res, err := Validate(filterSchema, `{"salary": "astronomical"}`)
	require.NoError(t, err)
	assert.False(t, res.Valid)
}

func TestValidateBytes_BrokenDocumentIsAnError(t *testing.T) {
	_, err := ValidateBytes(filterSchema, []byte(`{"interest": `))
	assert.Error(t, err)
}
