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

type PostgresDocumentRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresDocumentRepo(pool *pgxpool.Pool) ports.DocumentRepository {
	return &PostgresDocumentRepo{pool: pool}
}

const documentColumns = `id, owner_id, title, filename, content_type, text, blake3_hash, size_bytes, storage_path, created_at, updated_at`

func scanDocument(row pgx.Row) (*models.Document, error) {
	var d models.Document
	err := row.Scan(
		&d.ID, &d.OwnerID, &d.Title, &d.Filename, &d.ContentType,
		&d.Text, &d.Hash, &d.SizeBytes, &d.StoragePath, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PostgresDocumentRepo) InsertDocument(ctx context.Context, d *models.Document) (*models.Document, error) {
	query := `
		INSERT INTO documents (owner_id, title, filename, content_type, text, blake3_hash, size_bytes, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query,
		d.OwnerID, d.Title, d.Filename, d.ContentType, d.Text, d.Hash, d.SizeBytes, d.StoragePath,
	)
	if err := row.Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert document: %w", err)
	}
	return d, nil
}

func (r *PostgresDocumentRepo) GetDocumentByID(ctx context.Context, id int) (*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1`
	d, err := scanDocument(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document by id: %w", err)
	}
	return d, nil
}

func (r *PostgresDocumentRepo) GetDocumentByHash(ctx context.Context, ownerID int, hash string) (*models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE owner_id = $1 AND blake3_hash = $2`
	d, err := scanDocument(r.pool.QueryRow(ctx, query, ownerID, hash))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document by hash: %w", err)
	}
	return d, nil
}

func (r *PostgresDocumentRepo) ListDocuments(ctx context.Context, ownerID int) ([]models.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE owner_id = $1 ORDER BY created_at DESC`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var out []models.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("list documents scan: %w", err)
		}
		out = append(out, *d)
	}
	return out, rows.Err()
}

func (r *PostgresDocumentRepo) UpdateDocument(ctx context.Context, d *models.Document) error {
	query := `
		UPDATE documents
		SET title = $1, text = $2, blake3_hash = $3, size_bytes = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query, d.Title, d.Text, d.Hash, d.SizeBytes, d.ID).Scan(&d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

func (r *PostgresDocumentRepo) DeleteDocument(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
