// internal/workers/guidance/rank-suggestions/handler_test.go
package ranksuggestions

import (
	"context"
	"testing"
	"time"

	"career-guidance-workers/internal/common/errors"
	"career-guidance-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *Config {
	return &Config{
		Timeout: 30 * time.Second,
	}
}

// Create a test logger that implements your logger.Logger interface
type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Debug(msg string, fields map[string]interface{}) {
	tl.t.Logf("DEBUG: %s %v", msg, fields)
}

func (tl *testLogger) Info(msg string, fields map[string]interface{}) {
	tl.t.Logf("INFO: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return tl // Simple implementation for testing
}

func (tl *testLogger) WithError(err error) logger.Logger {
	return tl.WithFields(map[string]interface{}{"error": err})
}

func (t *testLogger) With(fields map[string]interface{}) logger.Logger {
	return t
}

func newTestLogger(t *testing.T) logger.Logger {
	return &testLogger{t: t}
}

func TestHandler_Execute_MedicalInterestRanksFirst(t *testing.T) {
	handler := NewHandler(createTestConfig(), newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		SessionID: "sess-1",
		Interest:  "Medical",
		Skills:    "medical",
	})
	require.NoError(t, err)

	require.Equal(t, 2, output.Count)
	keys := []string{output.Suggestions[0].Key, output.Suggestions[1].Key}
	assert.Contains(t, keys, "biology")
	assert.Contains(t, keys, "healthcare")
	// interest (+5) and skills (+4) both hit, scaled to a percentage
	assert.Equal(t, 90, output.Suggestions[0].MatchScore)
	assert.NotEmpty(t, output.Suggestions[0].TopColleges)
	assert.NotEmpty(t, output.Suggestions[0].EntranceExam)
	assert.NotEmpty(t, output.Suggestions[0].EntrySalary)
	// biology and healthcare share a category group, so each lists the other
	assert.Len(t, output.Suggestions[0].RelatedCareers, 1)
}

func TestHandler_Execute_NoFiltersReturnsNeutralTopFive(t *testing.T) {
	handler := NewHandler(createTestConfig(), newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{SessionID: "sess-2"})
	require.NoError(t, err)

	require.Equal(t, 5, output.Count)
	for _, s := range output.Suggestions {
		assert.Equal(t, 50, s.MatchScore)
	}
}

func TestHandler_Execute_UnknownTokensFallBack(t *testing.T) {
	handler := NewHandler(createTestConfig(), newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		Interest: "astronomy",
		Skills:   "whittling",
	})
	require.NoError(t, err)

	assert.Equal(t, 5, output.Count)
	assert.Equal(t, 50, output.Suggestions[0].MatchScore)
}

func TestHandler_ValidatePayload(t *testing.T) {
	handler := NewHandler(createTestConfig(), newTestLogger(t))

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{
			name:    "conforming filters",
			payload: `{"interest": "tech", "skills": "coding"}`,
			wantErr: false,
		},
		{
			name:    "extra process variables tolerated",
			payload: `{"interest": "tech", "processStartedAt": 1234}`,
			wantErr: false,
		},
		{
			name:    "numeric filter rejected",
			payload: `{"interest": 42}`,
			wantErr: true,
		},
		{
			name:    "broken json rejected",
			payload: `{"interest": `,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := handler.validatePayload([]byte(tt.payload))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestHandler_Handle_NumericFilterReturnsTypedError(t *testing.T) {
	handler := NewHandler(createTestConfig(), newTestLogger(t))

	err := handler.Handle(nil, entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:       7,
		Variables: `{"interest": 42}`,
	}})
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok, "expected a StandardError, got %T", err)
	assert.Equal(t, errors.ErrCodeInvalidFilterFormat, stdErr.Code)
	assert.False(t, stdErr.Retryable)
}
