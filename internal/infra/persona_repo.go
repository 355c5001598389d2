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

type PostgresPersonaRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresPersonaRepo(pool *pgxpool.Pool) ports.PersonaRepository {
	return &PostgresPersonaRepo{pool: pool}
}

const personaColumns = `id, owner_id, name, role, voice_id, style, created_at, updated_at`

func scanPersona(row pgx.Row) (*models.Persona, error) {
	var p models.Persona
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Role, &p.VoiceID, &p.Style, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostgresPersonaRepo) InsertPersona(ctx context.Context, p *models.Persona) (*models.Persona, error) {
	query := `
		INSERT INTO personas (owner_id, name, role, voice_id, style)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query, p.OwnerID, p.Name, p.Role, p.VoiceID, p.Style)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert persona: %w", err)
	}
	return p, nil
}

func (r *PostgresPersonaRepo) GetPersonaByID(ctx context.Context, id int) (*models.Persona, error) {
	query := `SELECT ` + personaColumns + ` FROM personas WHERE id = $1`
	p, err := scanPersona(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get persona by id: %w", err)
	}
	return p, nil
}

func (r *PostgresPersonaRepo) ListPersonas(ctx context.Context, ownerID int) ([]models.Persona, error) {
	query := `SELECT ` + personaColumns + ` FROM personas WHERE owner_id = $1 ORDER BY name`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	defer rows.Close()

	var out []models.Persona
	for rows.Next() {
		p, err := scanPersona(rows)
		if err != nil {
			return nil, fmt.Errorf("list personas scan: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PostgresPersonaRepo) UpdatePersona(ctx context.Context, p *models.Persona) error {
	query := `
		UPDATE personas
		SET name = $1, role = $2, voice_id = $3, style = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query, p.Name, p.Role, p.VoiceID, p.Style, p.ID).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update persona: %w", err)
	}
	return nil
}

func (r *PostgresPersonaRepo) DeletePersona(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM personas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete persona: %w", err)
	}
	return nil
}
