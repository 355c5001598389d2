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

type VoiceoverService struct {
	repo     ports.VoiceoverRepository
	docs     ports.DocumentRepository
	brands   ports.BrandRepository
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

type VoiceoverServiceDeps struct {
	Voiceovers ports.VoiceoverRepository
	Docs       ports.DocumentRepository
	Brands     ports.BrandRepository
	Personas   ports.PersonaRepository
	Collabs    ports.CollaboratorRepository
	Blobs      ports.BlobStore
	Runner     *JobRunner

	Brief      *stations.S1ComposeBrief
	Script     *stations.S2WriteScript
	Synthesize *stations.S3Synthesize
	Assemble   *stations.S4AssembleAudio

	Log *zap.SugaredLogger
}

func NewVoiceoverService(d VoiceoverServiceDeps) *VoiceoverService {
	return &VoiceoverService{
		repo:     d.Voiceovers,
		docs:     d.Docs,
		brands:   d.Brands,
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

type VoiceoverInput struct {
	Title      string
	DocumentID int
	BrandID    *int
	PersonaID  int
}

func (s *VoiceoverService) Create(ctx context.Context, ownerID int, in VoiceoverInput) (*models.Voiceover, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Invalid("title is required")
	}

	doc, err := s.docs.GetDocumentByID(ctx, in.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("create voiceover: %w", err)
	}
	if doc == nil || doc.OwnerID != ownerID {
		return nil, apperr.Invalid("document %d not found", in.DocumentID)
	}
	if in.BrandID != nil {
		b, err := s.brands.GetBrandByID(ctx, *in.BrandID)
		if err != nil {
			return nil, fmt.Errorf("create voiceover: %w", err)
		}
		if b == nil || b.OwnerID != ownerID {
			return nil, apperr.Invalid("brand %d not found", *in.BrandID)
		}
	}
	persona, err := s.personas.GetPersonaByID(ctx, in.PersonaID)
	if err != nil {
		return nil, fmt.Errorf("create voiceover: %w", err)
	}
	if persona == nil || persona.OwnerID != ownerID {
		return nil, apperr.Invalid("persona %d not found", in.PersonaID)
	}

	v := &models.Voiceover{
		OwnerID:    ownerID,
		Title:      strings.TrimSpace(in.Title),
		DocumentID: in.DocumentID,
		BrandID:    in.BrandID,
		PersonaID:  in.PersonaID,
		Status:     models.StatusDraft,
	}
	if _, err := s.repo.InsertVoiceover(ctx, v); err != nil {
		return nil, fmt.Errorf("create voiceover: %w", err)
	}
	return v, nil
}

func (s *VoiceoverService) Get(ctx context.Context, userID, id int) (*models.Voiceover, error) {
	v, err := s.repo.GetVoiceoverByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get voiceover: %w", err)
	}
	if v == nil {
		return nil, apperr.NotFound("voiceover")
	}
	if err := s.access.canView(ctx, models.KindVoiceover, v.ID, v.OwnerID, userID); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VoiceoverService) List(ctx context.Context, userID int) ([]models.Voiceover, error) {
	own, err := s.repo.ListVoiceovers(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list voiceovers: %w", err)
	}
	sharedIDs, err := s.access.collabs.ListSharedContentIDs(ctx, models.KindVoiceover, userID)
	if err != nil {
		return nil, fmt.Errorf("list shared voiceovers: %w", err)
	}
	shared, err := s.repo.ListVoiceoversByIDs(ctx, sharedIDs)
	if err != nil {
		return nil, fmt.Errorf("list shared voiceovers: %w", err)
	}
	return append(own, shared...), nil
}

type VoiceoverUpdate struct {
	Title     *string
	BrandID   *int
	PersonaID *int
	Script    *string
}

func (s *VoiceoverService) Update(ctx context.Context, userID, id int, in VoiceoverUpdate) (*models.Voiceover, error) {
	v, err := s.repo.GetVoiceoverByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update voiceover: %w", err)
	}
	if v == nil {
		return nil, apperr.NotFound("voiceover")
	}
	if err := s.access.canEdit(ctx, models.KindVoiceover, v.ID, v.OwnerID, userID); err != nil {
		return nil, err
	}
	if v.Status == models.StatusGeneratingScript || v.Status == models.StatusGeneratingAudio {
		return nil, apperr.State("voiceover is %s; wait for the job to finish", v.Status)
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		v.Title = strings.TrimSpace(*in.Title)
	}
	if in.BrandID != nil {
		v.BrandID = in.BrandID
	}
	if in.PersonaID != nil {
		v.PersonaID = *in.PersonaID
	}
	if in.Script != nil {
		if v.Status != models.StatusScriptReady && v.Status != models.StatusReady {
			return nil, apperr.State("script can only be edited once it exists")
		}
		v.Script = *in.Script
	}

	if err := s.repo.UpdateVoiceover(ctx, v); err != nil {
		return nil, fmt.Errorf("update voiceover: %w", err)
	}
	return v, nil
}

func (s *VoiceoverService) Delete(ctx context.Context, userID, id int) error {
	v, err := s.repo.GetVoiceoverByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete voiceover: %w", err)
	}
	if v == nil {
		return apperr.NotFound("voiceover")
	}
	if v.OwnerID != userID {
		return apperr.Forbidden("only the owner can delete a voiceover")
	}
	if err := s.repo.DeleteVoiceover(ctx, id); err != nil {
		return fmt.Errorf("delete voiceover: %w", err)
	}
	if v.AudioPath != nil {
		_ = s.blobs.Remove(ctx, *v.AudioPath)
	}
	return nil
}

// Generate writes a narration script and synthesizes it in one job.
func (s *VoiceoverService) Generate(ctx context.Context, userID, id int) (*models.Job, error) {
	v, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.canEdit(ctx, models.KindVoiceover, v.ID, v.OwnerID, userID); err != nil {
		return nil, err
	}
	if v.Status == models.StatusGeneratingScript || v.Status == models.StatusGeneratingAudio {
		return nil, apperr.State("a generation is already running for this voiceover")
	}

	job := &models.Job{
		ID:       uuid.NewString(),
		OwnerID:  userID,
		Kind:     models.JobVoiceover,
		TargetID: v.ID,
		Step:     string(models.StatusGeneratingScript),
	}
	if err := s.runner.Begin(ctx, job); err != nil {
		return nil, err
	}

	s.runner.Launch(job, func(jctx context.Context, progress *Progress) error {
		if err := s.runPipeline(jctx, progress, v); err != nil {
			s.markFailed(v.ID, err)
			return err
		}
		return nil
	})
	return job, nil
}

func (s *VoiceoverService) runPipeline(ctx context.Context, progress *Progress, v *models.Voiceover) error {
	if err := s.repo.SetVoiceoverStatus(ctx, v.ID, models.StatusGeneratingScript); err != nil {
		return err
	}
	progress.Step(ctx, string(models.StatusGeneratingScript))

	doc, err := s.docs.GetDocumentByID(ctx, v.DocumentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("source document no longer exists")
	}
	var brand *models.Brand
	if v.BrandID != nil {
		if brand, err = s.brands.GetBrandByID(ctx, *v.BrandID); err != nil {
			return err
		}
	}
	narrator, err := s.personas.GetPersonaByID(ctx, v.PersonaID)
	if err != nil {
		return err
	}
	if narrator == nil {
		return fmt.Errorf("narrator persona no longer exists")
	}

	brief := s.s1.Run(doc, brand, nil)
	script, cost, err := s.s2.RunNarration(ctx, brief, narrator)
	progress.AddCost(ctx, cost)
	if err != nil {
		return err
	}
	if err := s.repo.SetVoiceoverScript(ctx, v.ID, script, models.StatusScriptReady); err != nil {
		return err
	}
	progress.Step(ctx, string(models.StatusScriptReady))

	if err := s.repo.SetVoiceoverStatus(ctx, v.ID, models.StatusGeneratingAudio); err != nil {
		return err
	}
	progress.Step(ctx, string(models.StatusGeneratingAudio))

	lines := narrationLines(script, narrator)
	segs, synthCost, err := s.s3.Run(ctx, lines)
	progress.AddCost(ctx, synthCost)
	if err != nil {
		return err
	}
	path, duration, err := s.s4.Run(ctx, segs)
	if err != nil {
		return err
	}

	old := v.AudioPath
	if err := s.repo.SetVoiceoverAudio(ctx, v.ID, path, duration); err != nil {
		return err
	}
	if old != nil && *old != path {
		_ = s.blobs.Remove(ctx, *old)
	}
	progress.Step(ctx, string(models.StatusReady))
	return nil
}

// narrationLines splits the script on blank lines so each paragraph is
// synthesized separately. TTS endpoints cap input length per request, and a
// full narration does not fit in one call.
func narrationLines(script string, narrator *models.Persona) []models.ScriptLine {
	var lines []models.ScriptLine
	for _, para := range strings.Split(script, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		lines = append(lines, models.ScriptLine{
			Speaker: narrator.Name,
			Voice:   narrator.VoiceID,
			Text:    para,
		})
	}
	if len(lines) == 0 {
		lines = append(lines, models.ScriptLine{Speaker: narrator.Name, Voice: narrator.VoiceID, Text: script})
	}
	return lines
}

func (s *VoiceoverService) markFailed(id int, cause error) {
	if err := s.repo.SetVoiceoverFailed(context.Background(), id, cause.Error()); err != nil {
		s.log.Errorw("mark voiceover failed", "voiceover", id, "err", err)
	}
}
