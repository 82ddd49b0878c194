// internal/workers/matching/fetch-job-pool/handler.go
package fetchjobpool

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/elastic/go-elasticsearch/v8"

	commonerrors "jobmatch-workers/internal/common/errors"
	"jobmatch-workers/internal/common/logger"
	"jobmatch-workers/internal/common/metrics"
	"jobmatch-workers/internal/models"
	"jobmatch-workers/internal/workers/matching/fetch-job-pool/queries"
)

const (
	TaskType = "fetch-job-pool"
)

type Handler struct {
	config       *Config
	client       *elasticsearch.Client
	errorHandler *commonerrors.ErrorHandler
	logger       logger.Logger
}

func NewHandler(config *Config, client *elasticsearch.Client, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		client:       client,
		errorHandler: commonerrors.NewErrorHandler(l),
		logger:       l,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, string(commonerrors.ErrCodeInvalidFilterFormat)).Inc()
		h.errorHandler.HandleJobError(ctx, client, job,
			commonerrors.NewInvalidFilterFormatError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		errorCode := "INTERNAL_ERROR"
		if stdErr, ok := err.(*commonerrors.StandardError); ok {
			errorCode = string(stdErr.Code)
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()
		h.errorHandler.HandleJobError(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	index := input.Index
	if index == "" {
		index = h.config.Index
	}

	q := queries.JobPoolQuery{
		Index:           index,
		Keywords:        input.Filters.Keywords,
		Location:        input.Filters.Location,
		Industry:        input.Filters.Industry,
		JobType:         input.Filters.JobType,
		ExperienceLevel: input.Filters.ExperienceLevel,
		RemoteOnly:      input.Filters.RemoteOnly,
		PostedAfter:     input.Filters.PostedAfter,
		SortBy:          input.Filters.SortBy,
	}
	q.Pagination.From = input.Pagination.From
	q.Pagination.Size = input.Pagination.Size
	if q.Pagination.Size == 0 {
		q.Pagination.Size = 50
	}

	req, err := queries.BuildQuery(q)
	if err != nil {
		return nil, commonerrors.NewInvalidFilterFormatError(err.Error())
	}

	res, err := req.Do(ctx, h.client)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, commonerrors.NewSearchTimeoutError(index)
		}
		return nil, commonerrors.NewElasticsearchConnectionFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return nil, commonerrors.NewIndexNotFoundError(index)
		}
		return nil, commonerrors.NewSearchQueryFailedError(index, fmt.Errorf("status %s", res.Status()))
	}

	var parsed searchResponse
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, commonerrors.NewSearchQueryFailedError(index, err)
	}

	jobs := make([]models.JobPosting, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		posting := hit.Source
		if posting.ID == "" {
			posting.ID = hit.ID
		}
		jobs = append(jobs, posting)
	}

	h.logger.Info("job pool fetched", map[string]interface{}{
		"index":     index,
		"returned":  len(jobs),
		"totalHits": parsed.Hits.Total.Value,
		"tookMs":    parsed.Took,
	})

	return &Output{
		Jobs:      jobs,
		TotalHits: parsed.Hits.Total.Value,
		Took:      parsed.Took,
	}, nil
}

// searchResponse is the subset of the ES search envelope we consume.
type searchResponse struct {
	Took int64 `json:"took"`
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			ID     string            `json:"_id"`
			Source models.JobPosting `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
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
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
