package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shubh-37/inflections-studio/internal/models"
)

const (
	runsTable = "generation_runs"
	jobsTable = "image_jobs"

	defaultRunLimit = 50
	maxRunLimit     = 500
)

var runColumns = []string{
	"id", "kind", "brand_id", "subject", "outcome", "error", "raw_reply", "duration_ms", "created_at",
}

var jobColumns = []string{
	"id", "status", "prompt", "image_url", "error", "created_at", "updated_at",
}

// HistoryRepository persists generation runs and image jobs.
type HistoryRepository struct {
	q  Querier
	sb squirrel.StatementBuilderType
}

func NewHistoryRepository(q Querier) *HistoryRepository {
	return &HistoryRepository{
		q:  q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// RecordRun inserts a generation run, assigning an id and timestamp when unset.
func (r *HistoryRepository) RecordRun(ctx context.Context, run *models.GenerationRun) error {
	if run == nil {
		return models.Required("run")
	}
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	query, args, err := r.sb.Insert(runsTable).
		Columns(runColumns...).
		Values(run.ID, run.Kind, run.BrandID, run.Subject, run.Outcome, run.Error, run.RawReply, run.DurationMS, run.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to record generation run: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, optionally of one kind.
func (r *HistoryRepository) ListRuns(ctx context.Context, kind models.RunKind, limit int) ([]*models.GenerationRun, error) {
	switch {
	case limit <= 0:
		limit = defaultRunLimit
	case limit > maxRunLimit:
		limit = maxRunLimit
	}

	sel := r.sb.Select(runColumns...).From(runsTable).OrderBy("created_at DESC").Limit(uint64(limit))
	if kind != "" {
		sel = sel.Where(squirrel.Eq{"kind": kind})
	}
	query, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list generation runs: %w", err)
	}
	defer rows.Close()

	runs := []*models.GenerationRun{}
	for rows.Next() {
		run := &models.GenerationRun{}
		if err := rows.Scan(
			&run.ID,
			&run.Kind,
			&run.BrandID,
			&run.Subject,
			&run.Outcome,
			&run.Error,
			&run.RawReply,
			&run.DurationMS,
			&run.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan generation run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list generation runs: %w", err)
	}
	return runs, nil
}

// SaveImageJob inserts a job, replacing any earlier row with the same id.
func (r *HistoryRepository) SaveImageJob(ctx context.Context, job *models.ImageJob) error {
	if job == nil || job.ID == "" {
		return models.Required("id")
	}
	now := time.Now()
	if job.CreatedAt.IsZero() {
		job.CreatedAt = now
	}
	if job.UpdatedAt.IsZero() {
		job.UpdatedAt = now
	}

	query, args, err := r.sb.Insert(jobsTable).
		Columns(jobColumns...).
		Values(job.ID, job.Status, job.Prompt, job.ImageURL, job.Error, job.CreatedAt, job.UpdatedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET status = EXCLUDED.status, prompt = EXCLUDED.prompt, " +
			"image_url = EXCLUDED.image_url, error = EXCLUDED.error, updated_at = EXCLUDED.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save image job: %w", err)
	}
	return nil
}

// UpdateImageJob records a status change. Jobs never saved are ignored.
func (r *HistoryRepository) UpdateImageJob(ctx context.Context, job *models.ImageJob) error {
	if job == nil || job.ID == "" {
		return models.Required("id")
	}
	if job.UpdatedAt.IsZero() {
		job.UpdatedAt = time.Now()
	}

	query, args, err := r.sb.Update(jobsTable).
		Set("status", job.Status).
		Set("image_url", job.ImageURL).
		Set("error", job.Error).
		Set("updated_at", job.UpdatedAt).
		Where(squirrel.Eq{"id": job.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update image job %s: %w", job.ID, err)
	}
	return nil
}

// GetImageJob returns nil, nil when the job is unknown.
func (r *HistoryRepository) GetImageJob(ctx context.Context, id string) (*models.ImageJob, error) {
	query, args, err := r.sb.Select(jobColumns...).From(jobsTable).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	job := &models.ImageJob{}
	err = r.q.QueryRow(ctx, query, args...).Scan(
		&job.ID,
		&job.Status,
		&job.Prompt,
		&job.ImageURL,
		&job.Error,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get image job %s: %w", id, err)
	}
	return job, nil
}

// NopHistory is used when no database is configured.
type NopHistory struct{}

func (NopHistory) RecordRun(context.Context, *models.GenerationRun) error { return nil }

func (NopHistory) ListRuns(context.Context, models.RunKind, int) ([]*models.GenerationRun, error) {
	return []*models.GenerationRun{}, nil
}

func (NopHistory) SaveImageJob(context.Context, *models.ImageJob) error   { return nil }
func (NopHistory) UpdateImageJob(context.Context, *models.ImageJob) error { return nil }

func (NopHistory) GetImageJob(context.Context, string) (*models.ImageJob, error) { return nil, nil }
