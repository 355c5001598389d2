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

type PostgresCollaboratorRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresCollaboratorRepo(pool *pgxpool.Pool) ports.CollaboratorRepository {
	return &PostgresCollaboratorRepo{pool: pool}
}

func (r *PostgresCollaboratorRepo) AddCollaborator(ctx context.Context, c *models.Collaborator) (*models.Collaborator, error) {
	query := `
		INSERT INTO collaborators (content_kind, content_id, user_id, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (content_kind, content_id, user_id)
		DO UPDATE SET role = EXCLUDED.role
		RETURNING id, created_at
	`
	row := r.pool.QueryRow(ctx, query, c.ContentKind, c.ContentID, c.UserID, c.Role)
	if err := row.Scan(&c.ID, &c.CreatedAt); err != nil {
		return nil, fmt.Errorf("add collaborator: %w", err)
	}
	return c, nil
}

func (r *PostgresCollaboratorRepo) RemoveCollaborator(ctx context.Context, kind models.ContentKind, contentID, userID int) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM collaborators WHERE content_kind = $1 AND content_id = $2 AND user_id = $3`,
		kind, contentID, userID,
	)
	if err != nil {
		return fmt.Errorf("remove collaborator: %w", err)
	}
	return nil
}

func (r *PostgresCollaboratorRepo) ListCollaborators(ctx context.Context, kind models.ContentKind, contentID int) ([]models.Collaborator, error) {
	query := `
		SELECT c.id, c.content_kind, c.content_id, c.user_id, u.email, c.role, c.created_at
		FROM collaborators c
		JOIN users u ON u.id = c.user_id
		WHERE c.content_kind = $1 AND c.content_id = $2
		ORDER BY c.created_at
	`
	rows, err := r.pool.Query(ctx, query, kind, contentID)
	if err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}
	defer rows.Close()

	var out []models.Collaborator
	for rows.Next() {
		var c models.Collaborator
		if err := rows.Scan(&c.ID, &c.ContentKind, &c.ContentID, &c.UserID, &c.Email, &c.Role, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan collaborator: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresCollaboratorRepo) GetCollaboratorRole(ctx context.Context, kind models.ContentKind, contentID, userID int) (models.CollaboratorRole, bool, error) {
	var role models.CollaboratorRole
	err := r.pool.QueryRow(ctx,
		`SELECT role FROM collaborators WHERE content_kind = $1 AND content_id = $2 AND user_id = $3`,
		kind, contentID, userID,
	).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get collaborator role: %w", err)
	}
	return role, true, nil
}

func (r *PostgresCollaboratorRepo) ListSharedContentIDs(ctx context.Context, kind models.ContentKind, userID int) ([]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT content_id FROM collaborators WHERE content_kind = $1 AND user_id = $2`,
		kind, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list shared content: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan shared content id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
