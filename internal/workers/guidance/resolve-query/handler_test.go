// internal/workers/guidance/resolve-query/handler_test.go
package resolvequery

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"career-guidance-workers/internal/common/errors"
	"career-guidance-workers/internal/common/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestConfig() *Config {
	return &Config{
		CacheTTL: time.Minute,
		Timeout:  30 * time.Second,
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

func TestHandler_Execute_ExactMatchIsCached(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	handler := NewHandler(createTestConfig(), client, newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		SessionID: "sess-1",
		Message:   "How should I prepare for UPSC?",
		Language:  "en",
	})
	require.NoError(t, err)

	assert.Equal(t, "exact", output.MatchType)
	assert.Equal(t, "upsc", output.MatchedKey)
	assert.Equal(t, "exam", output.Category)
	assert.Equal(t, "en", output.Language)
	assert.Contains(t, output.Response, "Union Public Service Commission")
	assert.False(t, output.Cached)

	cacheKey := answerCacheKey("en", "how should i prepare for upsc?")
	assert.True(t, mr.Exists(cacheKey))
	assert.Equal(t, time.Minute, mr.TTL(cacheKey))
}

func TestHandler_Execute_CacheHitSkipsResolver(t *testing.T) {
	client, mock := redismock.NewClientMock()
	handler := NewHandler(createTestConfig(), client, newTestLogger(t))

	seeded, err := json.Marshal(&Output{
		Response:   "cached answer",
		Language:   "en",
		MatchedKey: "upsc",
		MatchType:  "exact",
	})
	require.NoError(t, err)

	cacheKey := answerCacheKey("en", "upsc syllabus")
	mock.ExpectGet(cacheKey).SetVal(string(seeded))

	output, err := handler.Execute(context.Background(), &Input{
		Message:  "UPSC Syllabus",
		Language: "en",
	})
	require.NoError(t, err)

	assert.True(t, output.Cached)
	assert.Equal(t, "cached answer", output.Response)
	assert.Equal(t, "upsc", output.MatchedKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_UnmatchedQueryFallsBackToDefault(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	handler := NewHandler(createTestConfig(), client, newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		Message:  "qqq zzz xyzzy",
		Language: "mr",
	})
	require.NoError(t, err)

	assert.Equal(t, "default", output.MatchType)
	assert.Equal(t, "mr", output.Language)
	assert.Empty(t, output.MatchedKey)
	assert.NotEmpty(t, output.Response)
}

func TestHandler_Execute_NilRedisStillResolves(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		Message:  "mpsc exam pattern",
		Language: "en",
	})
	require.NoError(t, err)

	assert.Equal(t, "exact", output.MatchType)
	assert.Equal(t, "mpsc", output.MatchedKey)
}

func TestAnswerCacheKey_IsStableAndBounded(t *testing.T) {
	a := answerCacheKey("en", "what after 12th science?")
	b := answerCacheKey("en", "what after 12th science?")
	c := answerCacheKey("hi", "what after 12th science?")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "guidance:answer:en:")
	assert.Len(t, a, len("guidance:answer:en:")+40)
}

func TestHandler_Handle_MalformedVariablesReturnTypedError(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, newTestLogger(t))

	err := handler.Handle(nil, entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:       7,
		Variables: "{not json",
	}})
	require.Error(t, err)

	stdErr, ok := err.(*errors.StandardError)
	require.True(t, ok, "expected a StandardError, got %T", err)
	assert.Equal(t, errors.ErrCodeInvalidQueryPayload, stdErr.Code)
	assert.False(t, stdErr.Retryable)
}
