package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

type PostgresJobRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresJobRepo(pool *pgxpool.Pool) ports.JobRepository {
	return &PostgresJobRepo{pool: pool}
}

const jobColumns = `id, owner_id, kind, target_id, status, step, error, cost::text, created_at, started_at, finished_at`

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	var cost string
	err := row.Scan(
		&j.ID, &j.OwnerID, &j.Kind, &j.TargetID, &j.Status, &j.Step,
		&j.Error, &cost, &j.CreatedAt, &j.StartedAt, &j.FinishedAt,
	)
	if err != nil {
		return nil, err
	}
	j.Cost, err = decimal.NewFromString(cost)
	if err != nil {
		return nil, fmt.Errorf("decode job cost: %w", err)
	}
	return &j, nil
}

func (r *PostgresJobRepo) InsertJob(ctx context.Context, j *models.Job) error {
	query := `
		INSERT INTO jobs (id, owner_id, kind, target_id, status, step)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`
	if j.Status == "" {
		j.Status = models.JobQueued
	}
	err := r.pool.QueryRow(ctx, query, j.ID, j.OwnerID, j.Kind, j.TargetID, j.Status, j.Step).Scan(&j.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *PostgresJobRepo) GetJobByID(ctx context.Context, id string) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	j, err := scanJob(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get job by id: %w", err)
	}
	return j, nil
}

func (r *PostgresJobRepo) ListJobs(ctx context.Context, ownerID int, limit int) ([]models.Job, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2`
	rows, err := r.pool.Query(ctx, query, ownerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	var out []models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}

func (r *PostgresJobRepo) MarkJobRunning(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE jobs SET status = $1, started_at = now() WHERE id = $2`,
		models.JobRunning, id,
	)
	if err != nil {
		return fmt.Errorf("mark job running: %w", err)
	}
	return nil
}

func (r *PostgresJobRepo) SetJobStep(ctx context.Context, id string, step string) error {
	_, err := r.pool.Exec(ctx, `UPDATE jobs SET step = $1 WHERE id = $2`, step, id)
	if err != nil {
		return fmt.Errorf("set job step: %w", err)
	}
	return nil
}

func (r *PostgresJobRepo) AddJobCost(ctx context.Context, id string, delta string) error {
	_, err := r.pool.Exec(ctx, `UPDATE jobs SET cost = cost + $1::numeric WHERE id = $2`, delta, id)
	if err != nil {
		return fmt.Errorf("add job cost: %w", err)
	}
	return nil
}

func (r *PostgresJobRepo) CompleteJob(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE jobs SET status = $1, finished_at = now() WHERE id = $2`,
		models.JobDone, id,
	)
	if err != nil {
		return fmt.Errorf("complete job: %w", err)
	}
	return nil
}

func (r *PostgresJobRepo) FailJob(ctx context.Context, id string, msg string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE jobs SET status = $1, error = $2, finished_at = now() WHERE id = $3`,
		models.JobFailed, msg, id,
	)
	if err != nil {
		return fmt.Errorf("fail job: %w", err)
	}
	return nil
}

// FailStaleJobs fails running jobs whose worker died without reporting, so
// clients stop polling forever. Returns the jobs it touched.
func (r *PostgresJobRepo) FailStaleJobs(ctx context.Context, olderThan time.Time) ([]models.Job, error) {
	query := `
		UPDATE jobs
		SET status = $1, error = 'generation timed out', finished_at = now()
		WHERE status = $2 AND started_at < $3
		RETURNING ` + jobColumns
	rows, err := r.pool.Query(ctx, query, models.JobFailed, models.JobRunning, olderThan)
	if err != nil {
		return nil, fmt.Errorf("fail stale jobs: %w", err)
	}
	defer rows.Close()

	var out []models.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stale job: %w", err)
		}
		out = append(out, *j)
	}
	return out, rows.Err()
}
