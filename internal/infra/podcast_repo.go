package infra

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

type PostgresPodcastRepo struct {
	pool *pgxpool.Pool
}

func NewPostgresPodcastRepo(pool *pgxpool.Pool) ports.PodcastRepository {
	return &PostgresPodcastRepo{pool: pool}
}

const podcastColumns = `id, owner_id, title, document_id, brand_id, segment_id, host_persona_id, guest_persona_id,
	status, script, audio_path, duration_sec, error_message, created_at, updated_at`

func scanPodcast(row pgx.Row) (*models.Podcast, error) {
	var p models.Podcast
	var script []byte
	err := row.Scan(
		&p.ID, &p.OwnerID, &p.Title, &p.DocumentID, &p.BrandID, &p.SegmentID,
		&p.HostPersonaID, &p.GuestPersonaID, &p.Status, &script,
		&p.AudioPath, &p.DurationSec, &p.ErrorMessage, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(script) > 0 {
		if err := json.Unmarshal(script, &p.Script); err != nil {
			return nil, fmt.Errorf("decode podcast script: %w", err)
		}
	}
	return &p, nil
}

func (r *PostgresPodcastRepo) InsertPodcast(ctx context.Context, p *models.Podcast) (*models.Podcast, error) {
	query := `
		INSERT INTO podcasts (owner_id, title, document_id, brand_id, segment_id, host_persona_id, guest_persona_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	if p.Status == "" {
		p.Status = models.StatusDraft
	}
	row := r.pool.QueryRow(ctx, query,
		p.OwnerID, p.Title, p.DocumentID, p.BrandID, p.SegmentID,
		p.HostPersonaID, p.GuestPersonaID, p.Status,
	)
	if err := row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("insert podcast: %w", err)
	}
	return p, nil
}

func (r *PostgresPodcastRepo) GetPodcastByID(ctx context.Context, id int) (*models.Podcast, error) {
	query := `SELECT ` + podcastColumns + ` FROM podcasts WHERE id = $1`
	p, err := scanPodcast(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get podcast by id: %w", err)
	}
	return p, nil
}

func (r *PostgresPodcastRepo) ListPodcasts(ctx context.Context, ownerID int) ([]models.Podcast, error) {
	query := `SELECT ` + podcastColumns + ` FROM podcasts WHERE owner_id = $1 ORDER BY created_at DESC`
	return r.queryPodcasts(ctx, query, ownerID)
}

func (r *PostgresPodcastRepo) ListPodcastsByIDs(ctx context.Context, ids []int) ([]models.Podcast, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + podcastColumns + ` FROM podcasts WHERE id = ANY($1) ORDER BY created_at DESC`
	return r.queryPodcasts(ctx, query, ids)
}

func (r *PostgresPodcastRepo) queryPodcasts(ctx context.Context, query string, arg any) ([]models.Podcast, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("query podcasts: %w", err)
	}
	defer rows.Close()

	var out []models.Podcast
	for rows.Next() {
		p, err := scanPodcast(rows)
		if err != nil {
			return nil, fmt.Errorf("scan podcast: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PostgresPodcastRepo) UpdatePodcast(ctx context.Context, p *models.Podcast) error {
	script, err := json.Marshal(p.Script)
	if err != nil {
		return fmt.Errorf("encode podcast script: %w", err)
	}
	query := `
		UPDATE podcasts
		SET title = $1, brand_id = $2, segment_id = $3, host_persona_id = $4,
		    guest_persona_id = $5, script = $6, updated_at = now()
		WHERE id = $7
		RETURNING updated_at
	`
	err = r.pool.QueryRow(ctx, query,
		p.Title, p.BrandID, p.SegmentID, p.HostPersonaID, p.GuestPersonaID, script, p.ID,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update podcast: %w", err)
	}
	return nil
}

func (r *PostgresPodcastRepo) SetPodcastStatus(ctx context.Context, id int, status models.ContentStatus) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE podcasts SET status = $1, error_message = NULL, updated_at = now() WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("set podcast status: %w", err)
	}
	return nil
}

func (r *PostgresPodcastRepo) SetPodcastScript(ctx context.Context, id int, lines []models.ScriptLine, status models.ContentStatus) error {
	script, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode podcast script: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE podcasts SET script = $1, status = $2, updated_at = now() WHERE id = $3`,
		script, status, id,
	)
	if err != nil {
		return fmt.Errorf("set podcast script: %w", err)
	}
	return nil
}

func (r *PostgresPodcastRepo) SetPodcastAudio(ctx context.Context, id int, audioPath string, durationSec float64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE podcasts SET audio_path = $1, duration_sec = $2, status = $3, error_message = NULL, updated_at = now() WHERE id = $4`,
		audioPath, durationSec, models.StatusReady, id,
	)
	if err != nil {
		return fmt.Errorf("set podcast audio: %w", err)
	}
	return nil
}

func (r *PostgresPodcastRepo) SetPodcastFailed(ctx context.Context, id int, msg string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE podcasts SET status = $1, error_message = $2, updated_at = now() WHERE id = $3`,
		models.StatusFailed, msg, id,
	)
	if err != nil {
		return fmt.Errorf("set podcast failed: %w", err)
	}
	return nil
}

func (r *PostgresPodcastRepo) DeletePodcast(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM podcasts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete podcast: %w", err)
	}
	return nil
}
