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

type PostgresVoiceoverRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresVoiceoverRepo(pool *pgxpool.Pool) ports.VoiceoverRepository {
	return &PostgresVoiceoverRepo{pool: pool}
}

const voiceoverColumns = `id, owner_id, title, document_id, brand_id, persona_id,
	status, script, audio_path, duration_sec, error_message, created_at, updated_at`

func scanVoiceover(row pgx.Row) (*models.Voiceover, error) {
	var v models.Voiceover
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Title, &v.DocumentID, &v.BrandID, &v.PersonaID,
		&v.Status, &v.Script, &v.AudioPath, &v.DurationSec, &v.ErrorMessage,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *PostgresVoiceoverRepo) InsertVoiceover(ctx context.Context, v *models.Voiceover) (*models.Voiceover, error) {
	if v.Status == "" {
		v.Status = models.StatusDraft
	}
	query := `
		INSERT INTO voiceovers (owner_id, title, document_id, brand_id, persona_id, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	row := r.pool.QueryRow(ctx, query, v.OwnerID, v.Title, v.DocumentID, v.BrandID, v.PersonaID, v.Status)
	if err := row.Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert voiceover: %w", err)
	}
	return v, nil
}

func (r *PostgresVoiceoverRepo) GetVoiceoverByID(ctx context.Context, id int) (*models.Voiceover, error) {
	query := `SELECT ` + voiceoverColumns + ` FROM voiceovers WHERE id = $1`
	v, err := scanVoiceover(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get voiceover by id: %w", err)
	}
	return v, nil
}

func (r *PostgresVoiceoverRepo) ListVoiceovers(ctx context.Context, ownerID int) ([]models.Voiceover, error) {
	query := `SELECT ` + voiceoverColumns + ` FROM voiceovers WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.queryVoiceovers(ctx, query, ownerID)
}

func (r *PostgresVoiceoverRepo) ListVoiceoversByIDs(ctx context.Context, ids []int) ([]models.Voiceover, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + voiceoverColumns + ` FROM voiceovers WHERE id = ANY($1) ORDER BY created_at DESC`
	return r.queryVoiceovers(ctx, query, ids)
}

func (r *PostgresVoiceoverRepo) queryVoiceovers(ctx context.Context, query string, arg any) ([]models.Voiceover, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query voiceovers: %w", err)
	}
	defer rows.Close()

	var out []models.Voiceover
	for rows.Next() {
		v, err := scanVoiceover(rows)
		if err != nil {
			return nil, fmt.Errorf("scan voiceover: %w", err)
		}
		out = append(out, *v)
	}
	return out, rows.Err()
}

func (r *PostgresVoiceoverRepo) UpdateVoiceover(ctx context.Context, v *models.Voiceover) error {
	query := `
		UPDATE voiceovers
		SET title = $1, brand_id = $2, persona_id = $3, script = $4, updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query, v.Title, v.BrandID, v.PersonaID, v.Script, v.ID).Scan(&v.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update voiceover: %w", err)
	}
	return nil
}

func (r *PostgresVoiceoverRepo) SetVoiceoverStatus(ctx context.Context, id int, status models.ContentStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE voiceovers SET status = $1, error_message = NULL, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("set voiceover status: %w", err)
	}
	return nil
}

func (r *PostgresVoiceoverRepo) SetVoiceoverScript(ctx context.Context, id int, script string, status models.ContentStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE voiceovers SET script = $1, status = $2, updated_at = now() WHERE id = $3`,
		script, status, id,
	)
	if err != nil {
		return fmt.Errorf("set voiceover script: %w", err)
	}
	return nil
}

func (r *PostgresVoiceoverRepo) SetVoiceoverAudio(ctx context.Context, id int, audioPath string, durationSec float64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE voiceovers SET audio_path = $1, duration_sec = $2, status = $3, error_message = NULL, updated_at = now() WHERE id = $4`,
		audioPath, durationSec, models.StatusReady, id,
	)
	if err != nil {
		return fmt.Errorf("set voiceover audio: %w", err)
	}
	return nil
}

func (r *PostgresVoiceoverRepo) SetVoiceoverFailed(ctx context.Context, id int, msg string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE voiceovers SET status = $1, error_message = $2, updated_at = now() WHERE id = $3`,
		models.StatusFailed, msg, id,
	)
	if err != nil {
		return fmt.Errorf("set voiceover failed: %w", err)
	}
	return nil
}

func (r *PostgresVoiceoverRepo) DeleteVoiceover(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM voiceovers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete voiceover: %w", err)
	}
	return nil
}
