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

type PostgresBrandRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresBrandRepo(pool *pgxpool.Pool) ports.BrandRepository {
	return &PostgresBrandRepo{pool: pool}
}

const brandColumns = `id, owner_id, name, description, tone, palette, website, created_at, updated_at`

func scanBrand(row pgx.Row) (*models.Brand, error) {
	var b models.Brand
	err := row.Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.Description, &b.Tone,
		&b.Palette, &b.Website, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PostgresBrandRepo) InsertBrand(ctx context.Context, b *models.Brand) (*models.Brand, error) {
	query := `
		INSERT INTO brands (owner_id, name, description, tone, palette, website)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query, b.OwnerID, b.Name, b.Description, b.Tone, b.Palette, b.Website)
	if err := row.Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert brand: %w", err)
	}
	return b, nil
}

func (r *PostgresBrandRepo) GetBrandByID(ctx context.Context, id int) (*models.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands WHERE id = $1`
	b, err := scanBrand(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand by id: %w", err)
	}
	return b, nil
}

func (r *PostgresBrandRepo) ListBrands(ctx context.Context, ownerID int) ([]models.Brand, error) {
	query := `SELECT ` + brandColumns + ` FROM brands WHERE owner_id = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", err)
	}
	defer rows.Close()

	var out []models.Brand
	for rows.Next() {
		b, err := scanBrand(rows)
		if err != nil {
			return nil, fmt.Errorf("list brands scan: %w", err)
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (r *PostgresBrandRepo) UpdateBrand(ctx context.Context, b *models.Brand) error {
	query := `
		UPDATE brands
		SET name = $1, description = $2, tone = $3, palette = $4, website = $5, updated_at = now()
		WHERE id = $6
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query, b.Name, b.Description, b.Tone, b.Palette, b.Website, b.ID).Scan(&b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update brand: %w", err)
	}
	return nil
}

func (r *PostgresBrandRepo) DeleteBrand(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}
