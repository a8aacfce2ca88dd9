// internal/workers/guidance/score-quiz/handler_test.go
package scorequiz

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	apperrors "career-guidance-workers/internal/common/errors"
	"career-guidance-workers/internal/common/logger"

	"github.com/DATA-DOG/go-sqlmock"
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

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	return db, mock
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

func TestHandler_Execute_ConsistentTechnologyAnswers(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO quiz_results").
		WithArgs(sqlmock.AnyArg(), "sess-1", "technology", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	handler := NewHandler(createTestConfig(), db, newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		SessionID: "sess-1",
		Answers: QuizAnswers{
			Skill:     "Coding",
			Interest:  "Technology",
			WorkStyle: "Computer",
			Goal:      "Growth",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "technology", output.CareerKey)
	assert.Equal(t, "Software Developer/Engineer", output.Career)
	assert.Equal(t, 8, output.Scores["technology"])
	assert.Equal(t, 4, output.Scores["data"])
	assert.NotEmpty(t, output.ResultID)
	assert.NotEmpty(t, output.StudyPlan)
	assert.NotEmpty(t, output.SalaryBand.Entry)
	assert.NotEmpty(t, output.SalaryBand.GrowthRate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_PerformerAnswersWinOverDefault(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO quiz_results").
		WithArgs(sqlmock.AnyArg(), "sess-2", "dancing", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	handler := NewHandler(createTestConfig(), db, newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		SessionID: "sess-2",
		Answers: QuizAnswers{
			Skill:     "dancing",
			Interest:  "dancing",
			WorkStyle: "performing",
			Goal:      "fame",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "dancing", output.CareerKey)
	assert.Equal(t, 8, output.Scores["dancing"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_PersistenceFailureStillCompletes(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO quiz_results").
		WillReturnError(errors.New("connection reset"))

	handler := NewHandler(createTestConfig(), db, newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		SessionID: "sess-3",
		Answers:   QuizAnswers{Skill: "coding"},
	})
	require.NoError(t, err)

	assert.Equal(t, "technology", output.CareerKey)
	assert.Empty(t, output.ResultID)
}

func TestHandler_Execute_EmptyAnswersResolveDeterministically(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, newTestLogger(t))

	output, err := handler.Execute(context.Background(), &Input{
		SessionID: "sess-4",
	})
	require.NoError(t, err)

	assert.Equal(t, "technology", output.CareerKey)
	assert.Equal(t, 0, output.Scores["technology"])
	assert.Empty(t, output.ResultID)
}

func TestHandler_Handle_MalformedVariablesReturnTypedError(t *testing.T) {
	handler := NewHandler(createTestConfig(), nil, newTestLogger(t))

	err := handler.Handle(nil, entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:       7,
		Variables: `{"quizAnswers": [1, 2]}`,
	}})
	require.Error(t, err)

	stdErr, ok := err.(*apperrors.StandardError)
	require.True(t, ok, "expected a StandardError, got %T", err)
	assert.Equal(t, apperrors.ErrCodeInvalidQuizAnswers, stdErr.Code)
	assert.False(t, stdErr.Retryable)
}
