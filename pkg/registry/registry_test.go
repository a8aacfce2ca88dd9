package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRegistryJSON = `{
	"version": "1.0.0",
	"lastUpdated": "2026-08-01",
	"activities": [
		{
			"id": "rank-career-suggestions",
			"displayName": "Rank Career Suggestions",
			"category": "guidance",
			"taskType": "rank-career-suggestions",
			"implementationStatus": "implemented",
			"inputSchema": {
				"type": "object",
				"properties": {
					"interest": {"type": "string"}
				},
				"additionalProperties": true
			},
			"errorCodes": ["INVALID_FILTER_FORMAT"],
			"timeout": "30s",
			"retries": 3
		},
		{
			"id": "score-career-quiz",
			"displayName": "Score Career Quiz",
			"category": "guidance",
			"taskType": "score-career-quiz",
			"implementationStatus": "implemented",
			"errorCodes": ["INVALID_QUIZ_ANSWERS"],
			"timeout": "30s",
			"retries": 3
		}
	]
}`

func writeTestRegistry(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "activity-registry.json")
	if err := os.WriteFile(path, []byte(testRegistryJSON), 0o644); err != nil {
		t.Fatalf("failed to write registry fixture: %v", err)
	}
	return path
}

func TestLoadRegistry(t *testing.T) {
	reg, err := LoadRegistry(writeTestRegistry(t))
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", reg.Version)
	assert.Len(t, reg.Activities, 2)
}

func TestLoadRegistry_MissingFile(t *testing.T) {
	_, err := LoadRegistry(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestFindByTaskType(t *testing.T) {
	reg, err := LoadRegistry(writeTestRegistry(t))
	require.NoError(t, err)

	activity := reg.FindByTaskType("rank-career-suggestions")
	require.NotNil(t, activity)
	assert.Equal(t, "Rank Career Suggestions", activity.DisplayName)

	assert.Nil(t, reg.FindByTaskType("does-not-exist"))
}

func TestValidateInput(t *testing.T) {
	reg, err := LoadRegistry(writeTestRegistry(t))
	require.NoError(t, err)

	t.Run("conforming payload", func(t *testing.T) {
		res, err := reg.ValidateInput("rank-career-suggestions", []byte(`{"interest": "tech"}`))
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("schema violation", func(t *testing.T) {
		res, err := reg.ValidateInput("rank-career-suggestions", []byte(`{"interest": 42}`))
		require.NoError(t, err)
		assert.False(t, res.Valid)
	})

	t.Run("activity without schema accepts everything", func(t *testing.T) {
		res, err := reg.ValidateInput("score-career-quiz", []byte(`{"anything": true}`))
		require.NoError(t, err)
		assert.True(t, res.Valid)
	})

	t.Run("unknown task type", func(t *testing.T) {
		_, err := reg.ValidateInput("does-not-exist", []byte(`{}`))
		assert.Error(t, err)
	})
}
