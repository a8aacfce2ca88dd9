// internal/workers/guidance/analyze-conflict/handler.go
package analyzeconflict

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"career-guidance-workers/internal/common/errors"
	"career-guidance-workers/internal/common/logger"
	"career-guidance-workers/internal/common/metrics"
	"career-guidance-workers/internal/guidance/conflict"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "analyze-career-conflict"
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
		return errors.NewConflictInputInvalidError(fmt.Sprintf("parse input: %v", err))
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
	analysis := conflict.Analyze(input.StudentChoice, input.ParentChoice)

	output := &Output{
		StudentChoice:     analysis.StudentChoice,
		ParentChoice:      analysis.ParentChoice,
		StudentKey:        analysis.StudentKey,
		ParentKey:         analysis.ParentKey,
		StudentCategory:   string(analysis.StudentCategory),
		ParentCategory:    string(analysis.ParentCategory),
		AgreementLevel:    analysis.AgreementLevel,
		AgreementText:     analysis.AgreementText,
		AgreementColor:    analysis.AgreementColor,
		Compromise:        analysis.Compromise.Suggestion,
		CompromiseDetails: analysis.Compromise.Description,
		CompromiseCareers: analysis.Compromise.Careers,
		Explanation:       analysis.Compromise.Explanation,
	}

	if h.db != nil {
		if id, err := h.persistAnalysis(ctx, input.SessionID, analysis); err != nil {
			h.logger.Warn("failed to persist conflict analysis", map[string]interface{}{
				"sessionId": input.SessionID,
				"error":     err,
			})
		} else {
			output.AnalysisID = id
		}
	}

	h.logger.Info("conflict analyzed", map[string]interface{}{
		"sessionId":      input.SessionID,
		"studentKey":     analysis.StudentKey,
		"parentKey":      analysis.ParentKey,
		"agreementLevel": analysis.AgreementLevel,
	})

	return output, nil
}

func (h *Handler) persistAnalysis(ctx context.Context, sessionID string, analysis conflict.Analysis) (string, error) {
	id := uuid.New().String()
	_, err := h.db.ExecContext(ctx, `
		INSERT INTO conflict_analyses (id, session_id, student_choice, parent_choice, student_category, parent_category, agreement_level, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		id, sessionID, analysis.StudentChoice, analysis.ParentChoice,
		string(analysis.StudentCategory), string(analysis.ParentCategory),
		analysis.AgreementLevel, time.Now().UTC())
	if err != nil {
		return "", err
	}
	return id, nil
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
