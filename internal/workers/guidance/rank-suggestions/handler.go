// internal/workers/guidance/rank-suggestions/handler.go
package ranksuggestions

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"career-guidance-workers/internal/common/errors"
	"career-guidance-workers/internal/common/logger"
	"career-guidance-workers/internal/common/metrics"
	"career-guidance-workers/internal/common/validation"
	"career-guidance-workers/internal/guidance/catalog"
	"career-guidance-workers/internal/guidance/suggest"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const (
	TaskType = "rank-career-suggestions"
)

// inputSchema rejects non-string filter values before they silently
// collapse to empty filters. Extra process variables pass through.
const inputSchema = `{
	"type": "object",
	"properties": {
		"sessionId":  {"type": "string"},
		"interest":   {"type": "string"},
		"skills":     {"type": "string"},
		"salary":     {"type": "string"},
		"difficulty": {"type": "string"}
	},
	"additionalProperties": true
}`

type Handler struct {
	config *Config
	logger logger.Logger
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	if err := h.validatePayload([]byte(job.Variables)); err != nil {
		return errors.NewInvalidFilterFormatError(err.Error())
	}

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		return errors.NewInvalidFilterFormatError(fmt.Sprintf("parse input: %v", err))
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

func (h *Handler) validatePayload(payload []byte) error {
	result, err := validation.ValidateBytes(inputSchema, payload)
	if err != nil {
		return fmt.Errorf("parse filters: %w", err)
	}
	if !result.Valid {
		return fmt.Errorf("invalid filters: %s", result.ErrorString())
	}
	return nil
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	ranked := suggest.Rank(suggest.Filters{
		Interest:   normalizeFilter(input.Interest),
		Skills:     normalizeFilter(input.Skills),
		Salary:     normalizeFilter(input.Salary),
		Difficulty: normalizeFilter(input.Difficulty),
	})

	suggestions := make([]CareerSuggestion, 0, len(ranked))
	for _, s := range ranked {
		colleges := catalog.CollegesFor(s.Profile.Career)
		band := catalog.SalaryBandFor(s.Profile.Career)

		var related []string
		for _, p := range catalog.RelatedCareers(s.Profile.Key, 3) {
			related = append(related, p.Career)
		}

		suggestions = append(suggestions, CareerSuggestion{
			Key:            s.Profile.Key,
			Career:         s.Profile.Career,
			Skills:         s.Profile.Skills,
			Courses:        s.Profile.Courses,
			Salary:         s.Profile.Salary,
			FutureScope:    s.Profile.FutureScope,
			MatchScore:     s.MatchScore,
			TopColleges:    colleges.Colleges,
			EntranceExam:   colleges.EntranceExam,
			EntrySalary:    band.Entry,
			GrowthRate:     band.GrowthRate,
			RelatedCareers: related,
		})
	}

	h.logger.Info("suggestions ranked", map[string]interface{}{
		"sessionId": input.SessionID,
		"count":     len(suggestions),
		"interest":  input.Interest,
	})

	return &Output{
		Suggestions: suggestions,
		Count:       len(suggestions),
	}, nil
}

func normalizeFilter(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
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
