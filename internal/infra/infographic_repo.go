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

type PostgresInfographicRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresInfographicRepo(pool *pgxpool.Pool) ports.InfographicRepository {
	return &PostgresInfographicRepo{pool: pool}
}

const infographicColumns = `id, owner_id, title, document_id, brand_id,
	status, prompt, image_path, error_message, created_at, updated_at`

func scanInfographic(row pgx.Row) (*models.Infographic, error) {
	var g models.Infographic
	err := row.Scan(
		&g.ID, &g.OwnerID, &g.Title, &g.DocumentID, &g.BrandID,
		&g.Status, &g.Prompt, &g.ImagePath, &g.ErrorMessage,
		&g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PostgresInfographicRepo) InsertInfographic(ctx context.Context, g *models.Infographic) (*models.Infographic, error) {
	if g.Status == "" {
		g.Status = models.InfographicDraft
	}
	query := `
		INSERT INTO infographics (owner_id, title, document_id, brand_id, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query, g.OwnerID, g.Title, g.DocumentID, g.BrandID, g.Status)
	if err := row.Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert infographic: %w", err)
	}
	return g, nil
}

func (r *PostgresInfographicRepo) GetInfographicByID(ctx context.Context, id int) (*models.Infographic, error) {
	query := `SELECT ` + infographicColumns + ` FROM infographics WHERE id = $1`
	g, err := scanInfographic(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get infographic by id: %w", err)
	}
	return g, nil
}

func (r *PostgresInfographicRepo) ListInfographics(ctx context.Context, ownerID int) ([]models.Infographic, error) {
	query := `SELECT ` + infographicColumns + ` FROM infographics WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.queryInfographics(ctx, query, ownerID)
}

func (r *PostgresInfographicRepo) ListInfographicsByIDs(ctx context.Context, ids []int) ([]models.Infographic, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + infographicColumns + ` FROM infographics WHERE id = ANY($1) ORDER BY created_at DESC`
	return r.queryInfographics(ctx, query, ids)
}

func (r *PostgresInfographicRepo) queryInfographics(ctx context.Context, query string, arg any) ([]models.Infographic, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query infographics: %w", err)
	}
	defer rows.Close()

	var out []models.Infographic
	for rows.Next() {
		g, err := scanInfographic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan infographic: %w", err)
		}
		out = append(out, *g)
	}
	return out, rows.Err()
}

func (r *PostgresInfographicRepo) UpdateInfographic(ctx context.Context, g *models.Infographic) error {
	query := `
		UPDATE infographics
		SET title = $1, brand_id = $2, updated_at = now()
		WHERE id = $3
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query, g.Title, g.BrandID, g.ID).Scan(&g.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update infographic: %w", err)
	}
	return nil
}

func (r *PostgresInfographicRepo) SetInfographicStatus(ctx context.Context, id int, status models.InfographicStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE infographics SET status = $1, error_message = NULL, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("set infographic status: %w", err)
	}
	return nil
}

func (r *PostgresInfographicRepo) SetInfographicResult(ctx context.Context, id int, prompt, imagePath string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE infographics SET prompt = $1, image_path = $2, status = $3, error_message = NULL, updated_at = now() WHERE id = $4`,
		prompt, imagePath, models.InfographicReady, id,
	)
	if err != nil {
		return fmt.Errorf("set infographic result: %w", err)
	}
	return nil
}

func (r *PostgresInfographicRepo) SetInfographicFailed(ctx context.Context, id int, msg string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE infographics SET status = $1, error_message = $2, updated_at = now() WHERE id = $3`,
		models.InfographicFailed, msg, id,
	)
	if err != nil {
		return fmt.Errorf("set infographic failed: %w", err)
	}
	return nil
}

func (r *PostgresInfographicRepo) DeleteInfographic(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM infographics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete infographic: %w", err)
	}
	return nil
}
