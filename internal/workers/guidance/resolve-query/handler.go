// internal/workers/guidance/resolve-query/handler.go
package resolvequery

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"career-guidance-workers/internal/common/errors"
	"career-guidance-workers/internal/common/logger"
	"career-guidance-workers/internal/common/metrics"
	"career-guidance-workers/internal/guidance/knowledge"
	"career-guidance-workers/internal/guidance/langdetect"
	"career-guidance-workers/internal/guidance/resolver"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"
)

const (
	TaskType = "resolve-career-query"
)

type Handler struct {
	config   *Config
	redis    *redis.Client
	logger   logger.Logger
	resolver *resolver.Resolver
}

func NewHandler(config *Config, redisClient *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		redis:  redisClient,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
		resolver: resolver.New(knowledge.Entries, langdetect.New(langdetect.Config{}), resolver.Config{
			SimilarityThreshold: config.SimilarityThreshold,
		}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) error {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		return errors.NewInvalidQueryPayloadError(fmt.Sprintf("parse input: %v", err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		return errors.NewQueryExecutionFailedError(TaskType, err)
	}

	h.completeJob(client, job, output)
	return nil
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	message := strings.ToLower(strings.TrimSpace(input.Message))
	lang := langdetect.Normalize(input.Language)

	cacheKey := answerCacheKey(string(lang), message)
	if h.redis != nil {
		if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
			var cached Output
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				cached.Cached = true
				return &cached, nil
			}
		}
	}

	result := h.resolver.Resolve(message, lang)

	output := &Output{
		Response:   result.Response,
		Language:   string(result.Language),
		MatchedKey: result.Key,
		Category:   result.Category,
		MatchType:  string(result.MatchType),
		Similarity: result.Similarity,
	}

	if h.redis != nil {
		data, _ := json.Marshal(output)
		if err := h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL).Err(); err != nil {
			h.logger.Warn("failed to cache resolved answer", map[string]interface{}{
				"cacheKey": cacheKey,
				"error":    err,
			})
		}
	}

	h.logger.Info("query resolved", map[string]interface{}{
		"sessionId":  input.SessionID,
		"language":   output.Language,
		"matchType":  output.MatchType,
		"matchedKey": output.MatchedKey,
	})

	return output, nil
}

// answerCacheKey hashes the normalized message so arbitrarily long
// questions still produce bounded Redis keys.
func answerCacheKey(lang, message string) string {
	sum := sha1.Sum([]byte(message))
	return fmt.Sprintf("guidance:answer:%s:%x", lang, sum)
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
