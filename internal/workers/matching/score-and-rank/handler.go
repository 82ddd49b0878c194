// internal/workers/matching/score-and-rank/handler.go
package scoreandrank

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	commonerrors "jobmatch-workers/internal/common/errors"
	"jobmatch-workers/internal/common/logger"
	"jobmatch-workers/internal/common/metrics"
	"jobmatch-workers/internal/matching"
	"jobmatch-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/xeipuuv/gojsonschema"
)

const (
	TaskType = "score-and-rank"
)

type Handler struct {
	config       *Config
	engine       *matching.Engine
	db           *sql.DB
	redis        *redis.Client
	inputSchema  map[string]interface{}
	errorHandler *commonerrors.ErrorHandler
	logger       logger.Logger
}

// NewHandler wires the scoring engine with its profile and activity
// stores. inputSchema is the registry's JSON schema for this task type
// and may be nil to skip payload validation.
func NewHandler(config *Config, engine *matching.Engine, db *sql.DB, redisClient *redis.Client, inputSchema map[string]interface{}, log logger.Logger) *Handler {
	l := log.WithFields(map[string]interface{}{"taskType": TaskType})
	return &Handler{
		config:       config,
		engine:       engine,
		db:           db,
		redis:        redisClient,
		inputSchema:  inputSchema,
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

	if err := h.validatePayload(job.Variables); err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(ctx, client, job, commonerrors.NewRequestValidationFailedError(fmt.Sprintf("parse input: %v", err)))
		return
	}

	output, err := h.execute(ctx, &input)
	if err != nil {
		h.failJob(ctx, client, job, err)
		return
	}

	h.completeJob(client, job, output)

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	metrics.MatchingRunDuration.Observe(time.Since(start).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	candidate, err := h.resolveCandidate(ctx, input)
	if err != nil {
		return nil, err
	}

	activity := input.Activity
	if activity == nil && candidate.ID != "" {
		activity, err = h.loadRecentActivity(ctx, candidate.ID)
		if err != nil {
			return nil, err
		}
	}

	result := h.engine.ScoreAndRank(&matching.Request{
		Candidate: *candidate,
		Activity:  activity,
		Jobs:      input.Jobs,
		Now:       time.Now().UTC(),
	})

	metrics.MatchingJobsScored.Add(float64(len(result.Ranked)))
	metrics.MatchingJobsSkipped.Add(float64(len(result.Skipped)))

	runID := uuid.NewString()
	h.logger.Info("matching run complete", map[string]interface{}{
		"matchRunId":  runID,
		"candidateId": candidate.ID,
		"jobsScored":  len(result.Ranked),
		"jobsSkipped": len(result.Skipped),
	})

	return &Output{
		RunID:            runID,
		Ranked:           result.Ranked,
		ForYou:           result.ForYou,
		CareerGrowth:     result.CareerGrowth,
		SkillMatch:       result.SkillMatch,
		NewOpportunities: result.NewOpportunities,
		SkippedJobs:      result.Skipped,
		TotalScored:      len(result.Ranked),
	}, nil
}

func (h *Handler) validatePayload(variables string) error {
	if h.inputSchema == nil {
		return nil
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(h.inputSchema),
		gojsonschema.NewStringLoader(variables),
	)
	if err != nil {
		return commonerrors.NewRequestValidationFailedError(err.Error())
	}
	if !result.Valid() {
		details := ""
		for _, desc := range result.Errors() {
			if details != "" {
				details += "; "
			}
			details += desc.String()
		}
		return commonerrors.NewRequestValidationFailedError(details)
	}
	return nil
}

// resolveCandidate prefers the inline profile; otherwise the candidate
// id is looked up through the cache-backed store.
func (h *Handler) resolveCandidate(ctx context.Context, input *Input) (*models.CandidateProfile, error) {
	if input.Candidate != nil {
		return input.Candidate, nil
	}
	if input.CandidateID == "" {
		return nil, commonerrors.NewRequestValidationFailedError("either candidate or candidateId is required")
	}
	return h.getCandidateProfile(ctx, input.CandidateID)
}

func (h *Handler) getCandidateProfile(ctx context.Context, candidateID string) (*models.CandidateProfile, error) {
	cacheKey := "candidate:profile:" + candidateID
	if val, err := h.redis.Get(ctx, cacheKey).Result(); err == nil {
		var profile models.CandidateProfile
		if err := json.Unmarshal([]byte(val), &profile); err == nil {
			return &profile, nil
		}
	}

	row := h.db.QueryRowContext(ctx, `
		SELECT skills, experience, education, current_role, years_experience,
		       experience_level, preferred_roles, preferred_industries,
		       preferred_locations, preferred_job_types
		FROM candidates WHERE id = $1`, candidateID)

	profile := models.CandidateProfile{ID: candidateID}
	var skills, experience, education, roles, industries, locations, jobTypes []byte
	err := row.Scan(&skills, &experience, &education, &profile.CurrentRole,
		&profile.YearsExperience, &profile.ExperienceLevel, &roles,
		&industries, &locations, &jobTypes)
	if err == sql.ErrNoRows {
		return nil, commonerrors.NewProfileNotFoundError(candidateID)
	}
	if err != nil {
		return nil, commonerrors.NewProfileFetchFailedError(candidateID, err)
	}

	unmarshalList(skills, &profile.Skills)
	unmarshalList(experience, &profile.Experience)
	unmarshalList(education, &profile.Education)
	unmarshalList(roles, &profile.PreferredRoles)
	unmarshalList(industries, &profile.PreferredIndustries)
	unmarshalList(locations, &profile.PreferredLocations)
	unmarshalList(jobTypes, &profile.PreferredJobTypes)

	data, _ := json.Marshal(profile)
	h.redis.Set(ctx, cacheKey, data, h.config.CacheTTL)

	return &profile, nil
}

func unmarshalList(data []byte, target *[]string) {
	if err := json.Unmarshal(data, target); err != nil {
		*target = []string{}
	}
}

// loadRecentActivity pulls the candidate's interaction history for the
// engine's trailing window. The engine re-checks timestamps, so over
// fetching here is harmless.
func (h *Handler) loadRecentActivity(ctx context.Context, candidateID string) ([]models.ActivityEvent, error) {
	rows, err := h.db.QueryContext(ctx, `
		SELECT job_id, action, created_at
		FROM candidate_activity
		WHERE candidate_id = $1 AND created_at > NOW() - INTERVAL '30 days'
		ORDER BY created_at`, candidateID)
	if err != nil {
		return nil, commonerrors.NewActivityFetchFailedError(candidateID, err)
	}
	defer rows.Close()

	var events []models.ActivityEvent
	for rows.Next() {
		ev := models.ActivityEvent{CandidateID: candidateID}
		if err := rows.Scan(&ev.JobID, &ev.Action, &ev.Timestamp); err != nil {
			return nil, commonerrors.NewActivityFetchFailedError(candidateID, err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, commonerrors.NewActivityFetchFailedError(candidateID, err)
	}

	return events, nil
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

func (h *Handler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	errorCode := "INTERNAL_ERROR"
	if stdErr, ok := err.(*commonerrors.StandardError); ok {
		errorCode = string(stdErr.Code)
	}
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	h.errorHandler.HandleJobError(ctx, client, job, err)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
