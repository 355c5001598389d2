package infra

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

type PostgresAudienceRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresAudienceRepo(pool *pgxpool.Pool) ports.AudienceRepository {
	return &PostgresAudienceRepo{pool: pool}
}

const segmentColumns = `id, owner_id, name, description, demographics, interests, created_at, updated_at`

func scanSegment(row pgx.Row) (*models.AudienceSegment, error) {
	var s models.AudienceSegment
	err := row.Scan(
		&s.ID, &s.OwnerID, &s.Name, &s.Description, &s.Demographics,
		&s.Interests, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PostgresAudienceRepo) InsertSegment(ctx context.Context, s *models.AudienceSegment) (*models.AudienceSegment, error) {
	query := `
		INSERT INTO audience_segments (owner_id, name, description, demographics, interests)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query, s.OwnerID, s.Name, s.Description, s.Demographics, s.Interests)
	if err := row.Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert segment: %w", err)
	}
	return s, nil
}

func (r *PostgresAudienceRepo) GetSegmentByID(ctx context.Context, id int) (*models.AudienceSegment, error) {
	query := `SELECT ` + segmentColumns + ` FROM audience_segments WHERE id = $1`
	s, err := scanSegment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get segment by id: %w", err)
	}
	return s, nil
}

func (r *PostgresAudienceRepo) ListSegments(ctx context.Context, ownerID int) ([]models.AudienceSegment, error) {
	query := `SELECT ` + segmentColumns + ` FROM audience_segments WHERE owner_id = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list segments: %w", err)
	}
	defer rows.Close()

	var out []models.AudienceSegment
	for rows.Next() {
		s, err := scanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("list segments scan: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *PostgresAudienceRepo) UpdateSegment(ctx context.Context, s *models.AudienceSegment) error {
	query := `
		UPDATE audience_segments
		SET name = $1, description = $2, demographics = $3, interests = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query, s.Name, s.Description, s.Demographics, s.Interests, s.ID).Scan(&s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update segment: %w", err)
	}
	return nil
}

func (r *PostgresAudienceRepo) DeleteSegment(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM audience_segments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete segment: %w", err)
	}
	return nil
}
