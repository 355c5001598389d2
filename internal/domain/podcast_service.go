package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/domain/stations"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

type PodcastService struct {
	repo     ports.PodcastRepository
	docs     ports.DocumentRepository
	brands   ports.BrandRepository
	segments ports.AudienceRepository
	personas ports.PersonaRepository
	blobs    ports.BlobStore
	access   access
	runner   *JobRunner

	s1 *stations.S1ComposeBrief
	s2 *stations.S2WriteScript
	s3 *stations.S3Synthesize
	s4 *stations.S4AssembleAudio

	log *zap.SugaredLogger
}

type PodcastServiceDeps struct {
	Podcasts ports.PodcastRepository
	Docs     ports.DocumentRepository
	Brands   ports.BrandRepository
	Segments ports.AudienceRepository
	Personas ports.PersonaRepository
	Collabs  ports.CollaboratorRepository
	Blobs    ports.BlobStore
	Runner   *JobRunner

	Brief      *stations.S1ComposeBrief
	Script     *stations.S2WriteScript
	Synthesize *stations.S3Synthesize
	Assemble   *stations.S4AssembleAudio

	Log *zap.SugaredLogger
}

func NewPodcastService(d PodcastServiceDeps) *PodcastService {
	return &PodcastService{
		repo:     d.Podcasts,
		docs:     d.Docs,
		brands:   d.Brands,
		segments: d.Segments,
		personas: d.Personas,
		blobs:    d.Blobs,
		access:   access{collabs: d.Collabs},
		runner:   d.Runner,
		s1:       d.Brief,
		s2:       d.Script,
		s3:       d.Synthesize,
		s4:       d.Assemble,
		log:      d.Log,
	}
}

type PodcastInput struct {
	Title          string
	DocumentID     int
	BrandID        *int
	SegmentID      *int
	HostPersonaID  int
	GuestPersonaID int
}

func (s *PodcastService) Create(ctx context.Context, ownerID int, in PodcastInput) (*models.Podcast, error) {
	if err := s.validateRefs(ctx, ownerID, in); err != nil {
		return nil, err
	}

	p := &models.Podcast{
		OwnerID:        ownerID,
		Title:          strings.TrimSpace(in.Title),
		DocumentID:     in.DocumentID,
		BrandID:        in.BrandID,
		SegmentID:      in.SegmentID,
		HostPersonaID:  in.HostPersonaID,
		GuestPersonaID: in.GuestPersonaID,
		Status:         models.StatusDraft,
	}
	if _, err := s.repo.InsertPodcast(ctx, p); err != nil {
		return nil, fmt.Errorf("create podcast: %w", err)
	}
	return p, nil
}

func (s *PodcastService) Get(ctx context.Context, userID, id int) (*models.Podcast, error) {
	p, err := s.repo.GetPodcastByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get podcast: %w", err)
	}
	if p == nil {
		return nil, apperr.NotFound("podcast")
	}
	if err := s.access.canView(ctx, models.KindPodcast, p.ID, p.OwnerID, userID); err != nil {
		return nil, err
	}
	return p, nil
}

// List returns the user's own podcasts plus those shared with them.
func (s *PodcastService) List(ctx context.Context, userID int) ([]models.Podcast, error) {
	own, err := s.repo.ListPodcasts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list podcasts: %w", err)
	}

	sharedIDs, err := s.access.collabs.ListSharedContentIDs(ctx, models.KindPodcast, userID)
	if err != nil {
		return nil, fmt.Errorf("list shared podcasts: %w", err)
	}
	shared, err := s.repo.ListPodcastsByIDs(ctx, sharedIDs)
	if err != nil {
		return nil, fmt.Errorf("list shared podcasts: %w", err)
	}
	return append(own, shared...), nil
}

type PodcastUpdate struct {
	Title          *string
	BrandID        *int
	SegmentID      *int
	HostPersonaID  *int
	GuestPersonaID *int
	Script         []models.ScriptLine
}

func (s *PodcastService) Update(ctx context.Context, userID, id int, in PodcastUpdate) (*models.Podcast, error) {
	p, err := s.repo.GetPodcastByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update podcast: %w", err)
	}
	if p == nil {
		return nil, apperr.NotFound("podcast")
	}
	if err := s.access.canEdit(ctx, models.KindPodcast, p.ID, p.OwnerID, userID); err != nil {
		return nil, err
	}
	if p.Status == models.StatusGeneratingScript || p.Status == models.StatusGeneratingAudio {
		return nil, apperr.State("podcast is %s; wait for the job to finish", p.Status)
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		p.Title = strings.TrimSpace(*in.Title)
	}
	if in.BrandID != nil {
		p.BrandID = in.BrandID
	}
	if in.SegmentID != nil {
		p.SegmentID = in.SegmentID
	}
	if in.HostPersonaID != nil {
		p.HostPersonaID = *in.HostPersonaID
	}
	if in.GuestPersonaID != nil {
		p.GuestPersonaID = *in.GuestPersonaID
	}
	if in.Script != nil {
		if p.Status != models.StatusScriptReady && p.Status != models.StatusReady {
			return nil, apperr.State("script can only be edited once it exists")
		}
		p.Script = in.Script
	}

	if err := s.repo.UpdatePodcast(ctx, p); err != nil {
		return nil, fmt.Errorf("update podcast: %w", err)
	}
	return p, nil
}

func (s *PodcastService) Delete(ctx context.Context, userID, id int) error {
	p, err := s.repo.GetPodcastByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete podcast: %w", err)
	}
	if p == nil {
		return apperr.NotFound("podcast")
	}
	if p.OwnerID != userID {
		return apperr.Forbidden("only the owner can delete a podcast")
	}
	if err := s.repo.DeletePodcast(ctx, id); err != nil {
		return fmt.Errorf("delete podcast: %w", err)
	}
	if p.AudioPath != nil {
		_ = s.blobs.Remove(ctx, *p.AudioPath)
	}
	return nil
}

// Generate runs the full pipeline: script then audio. Returns the queued job
// immediately; the client polls it.
func (s *PodcastService) Generate(ctx context.Context, userID, id int) (*models.Job, error) {
	p, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.canEdit(ctx, models.KindPodcast, p.ID, p.OwnerID, userID); err != nil {
		return nil, err
	}
	if p.Status == models.StatusGeneratingScript || p.Status == models.StatusGeneratingAudio {
		return nil, apperr.State("a generation is already running for this podcast")
	}

	job := &models.Job{
		ID:       uuid.NewString(),
		OwnerID:  userID,
		Kind:     models.JobPodcast,
		TargetID: p.ID,
		Step:     string(models.StatusGeneratingScript),
	}
	if err := s.runner.Begin(ctx, job); err != nil {
		return nil, err
	}

	s.runner.Launch(job, func(jctx context.Context, progress *Progress) error {
		lines, err := s.runScriptPhase(jctx, progress, p)
		if err != nil {
			s.markFailed(p.ID, err)
			return err
		}
		if err := s.runAudioPhase(jctx, progress, p, lines); err != nil {
			s.markFailed(p.ID, err)
			return err
		}
		return nil
	})
	return job, nil
}

// GenerateAudio re-runs synthesis only, for a podcast whose script was
// edited after the first pass.
func (s *PodcastService) GenerateAudio(ctx context.Context, userID, id int) (*models.Job, error) {
	p, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.canEdit(ctx, models.KindPodcast, p.ID, p.OwnerID, userID); err != nil {
		return nil, err
	}
	if p.Status != models.StatusScriptReady && p.Status != models.StatusReady {
		return nil, apperr.State("podcast has no script yet; generate one first")
	}
	if len(p.Script) == 0 {
		return nil, apperr.State("podcast script is empty")
	}

	job := &models.Job{
		ID:       uuid.NewString(),
		OwnerID:  userID,
		Kind:     models.JobPodcastAudio,
		TargetID: p.ID,
		Step:     string(models.StatusGeneratingAudio),
	}
	if err := s.runner.Begin(ctx, job); err != nil {
		return nil, err
	}

	s.runner.Launch(job, func(jctx context.Context, progress *Progress) error {
		if err := s.runAudioPhase(jctx, progress, p, p.Script); err != nil {
			s.markFailed(p.ID, err)
			return err
		}
		return nil
	})
	return job, nil
}

func (s *PodcastService) runScriptPhase(ctx context.Context, progress *Progress, p *models.Podcast) ([]models.ScriptLine, error) {
	if err := s.repo.SetPodcastStatus(ctx, p.ID, models.StatusGeneratingScript); err != nil {
		return nil, err
	}
	progress.Step(ctx, string(models.StatusGeneratingScript))

	doc, err := s.docs.GetDocumentByID(ctx, p.DocumentID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, fmt.Errorf("source document no longer exists")
	}

	var brand *models.Brand
	if p.BrandID != nil {
		if brand, err = s.brands.GetBrandByID(ctx, *p.BrandID); err != nil {
			return nil, err
		}
	}
	var segment *models.AudienceSegment
	if p.SegmentID != nil {
		if segment, err = s.segments.GetSegmentByID(ctx, *p.SegmentID); err != nil {
			return nil, err
		}
	}

	host, err := s.personas.GetPersonaByID(ctx, p.HostPersonaID)
	if err != nil {
		return nil, err
	}
	guest, err := s.personas.GetPersonaByID(ctx, p.GuestPersonaID)
	if err != nil {
		return nil, err
	}
	if host == nil || guest == nil {
		return nil, fmt.Errorf("host or guest persona no longer exists")
	}

	brief := s.s1.Run(doc, brand, segment)
	lines, cost, err := s.s2.RunDialogue(ctx, brief, host, guest)
	progress.AddCost(ctx, cost)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetPodcastScript(ctx, p.ID, lines, models.StatusScriptReady); err != nil {
		return nil, err
	}
	progress.Step(ctx, string(models.StatusScriptReady))
	return lines, nil
}

func (s *PodcastService) runAudioPhase(ctx context.Context, progress *Progress, p *models.Podcast, lines []models.ScriptLine) error {
	if err := s.repo.SetPodcastStatus(ctx, p.ID, models.StatusGeneratingAudio); err != nil {
		return err
	}
	progress.Step(ctx, string(models.StatusGeneratingAudio))

	segs, cost, err := s.s3.Run(ctx, lines)
	progress.AddCost(ctx, cost)
	if err != nil {
		return err
	}

	path, duration, err := s.s4.Run(ctx, segs)
	if err != nil {
		return err
	}

	old := p.AudioPath
	if err := s.repo.SetPodcastAudio(ctx, p.ID, path, duration); err != nil {
		return err
	}
	if old != nil && *old != path {
		_ = s.blobs.Remove(ctx, *old)
	}

	progress.Step(ctx, string(models.StatusReady))
	return nil
}

func (s *PodcastService) markFailed(id int, cause error) {
	// job context may already be cancelled; the failure write still has to land
	if err := s.repo.SetPodcastFailed(context.Background(), id, cause.Error()); err != nil {
		s.log.Errorw("mark podcast failed", "podcast", id, "err", err)
	}
}

func (s *PodcastService) validateRefs(ctx context.Context, ownerID int, in PodcastInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return apperr.Invalid("title is required")
	}

	doc, err := s.docs.GetDocumentByID(ctx, in.DocumentID)
	if err != nil {
		return fmt.Errorf("validate podcast: %w", err)
	}
	if doc == nil || doc.OwnerID != ownerID {
		return apperr.Invalid("document %d not found", in.DocumentID)
	}

	if in.BrandID != nil {
		b, err := s.brands.GetBrandByID(ctx, *in.BrandID)
		if err != nil {
			return fmt.Errorf("validate podcast: %w", err)
		}
		if b == nil || b.OwnerID != ownerID {
			return apperr.Invalid("brand %d not found", *in.BrandID)
		}
	}
	if in.SegmentID != nil {
		seg, err := s.segments.GetSegmentByID(ctx, *in.SegmentID)
		if err != nil {
			return fmt.Errorf("validate podcast: %w", err)
		}
		if seg == nil || seg.OwnerID != ownerID {
			return apperr.Invalid("audience segment %d not found", *in.SegmentID)
		}
	}

	for _, pid := range []int{in.HostPersonaID, in.GuestPersonaID} {
		persona, err := s.personas.GetPersonaByID(ctx, pid)
		if err != nil {
			return fmt.Errorf("validate podcast: %w", err)
		}
		if persona == nil || persona.OwnerID != ownerID {
			return apperr.Invalid("persona %d not found", pid)
		}
	}
	return nil
}
