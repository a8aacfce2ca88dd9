// internal/workers/guidance/score-quiz/handler.go
package scorequiz

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"career-guidance-workers/internal/common/errors"
	"career-guidance-workers/internal/common/logger"
	"career-guidance-workers/internal/common/metrics"
	"career-guidance-workers/internal/guidance/catalog"
	"career-guidance-workers/internal/guidance/quiz"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "score-career-quiz"
)

type Handler struct {
	config *Config
	db     *sql.DB
	logger logger.Logger
}

func NewHandler(config *Config, db *sql.DB, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		db:     db,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		return errors.NewInvalidQuizAnswersError(fmt.Sprintf("parse input: %v", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		return err
	}

	h.completeJob(client, job, output)
	return nil
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	result := quiz.Score(quiz.Answers{
		Skill:     normalizeAnswer(input.Answers.Skill),
		Interest:  normalizeAnswer(input.Answers.Interest),
		WorkStyle: normalizeAnswer(input.Answers.WorkStyle),
		Goal:      normalizeAnswer(input.Answers.Goal),
	})

	band := catalog.SalaryBandFor(result.Profile.Career)

	output := &Output{
		CareerKey:   result.Key,
		Career:      result.Profile.Career,
		Skills:      result.Profile.Skills,
		Courses:     result.Profile.Courses,
		Salary:      result.Profile.Salary,
		FutureScope: result.Profile.FutureScope,
		StudyPlan:   result.Profile.StudyPlan,
		SalaryBand: SalaryBand{
			Entry:      band.Entry,
			Mid:        band.Mid,
			Senior:     band.Senior,
			GrowthRate: band.GrowthRate,
		},
		Scores: result.Scores,
	}

	if h.db != nil {
		if id, err := h.persistResult(ctx, input.SessionID, result); err != nil {
			h.logger.Warn("failed to persist quiz result", map[string]interface{}{
				"sessionId": input.SessionID,
				"careerKey": result.Key,
				"error":     err,
			})
		} else {
			output.ResultID = id
		}
	}

	h.logger.Info("quiz scored", map[string]interface{}{
		"sessionId": input.SessionID,
		"careerKey": result.Key,
		"scores":    result.Scores,
	})

	return output, nil
}

func (h *Handler) persistResult(ctx context.Context, sessionID string, result quiz.Result) (string, error) {
	id := uuid.New().String()
	scores, err := json.Marshal(result.Scores)
	if err != nil {
		return "", err
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO quiz_results (id, session_id, career_key, score_breakdown, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		id, sessionID, result.Key, scores, time.Now().UTC())
	if err != nil {
		return "", err
	}
	return id, nil
}

func normalizeAnswer(answer string) string {
	return strings.ToLower(strings.TrimSpace(answer))
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
