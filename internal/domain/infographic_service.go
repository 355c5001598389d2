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

type InfographicService struct {
	repo   ports.InfographicRepository
	docs   ports.DocumentRepository
	brands ports.BrandRepository
	blobs  ports.BlobStore
	access access
	runner *JobRunner

	s1 *stations.S1ComposeBrief
	s5 *stations.S5ArtPrompt
	s6 *stations.S6RenderImage

	log *zap.SugaredLogger
}

type InfographicServiceDeps struct {
	Infographics ports.InfographicRepository
	Docs         ports.DocumentRepository
	Brands       ports.BrandRepository
	Collabs      ports.CollaboratorRepository
	Blobs        ports.BlobStore
	Runner       *JobRunner

	Brief     *stations.S1ComposeBrief
	ArtPrompt *stations.S5ArtPrompt
	Render    *stations.S6RenderImage

	Log *zap.SugaredLogger
}

func NewInfographicService(d InfographicServiceDeps) *InfographicService {
	return &InfographicService{
		repo:   d.Infographics,
		docs:   d.Docs,
		brands: d.Brands,
		blobs:  d.Blobs,
		access: access{collabs: d.Collabs},
		runner: d.Runner,
		s1:     d.Brief,
		s5:     d.ArtPrompt,
		s6:     d.Render,
		log:    d.Log,
	}
}

type InfographicInput struct {
	Title      string
	DocumentID int
	BrandID    *int
}

func (s *InfographicService) Create(ctx context.Context, ownerID int, in InfographicInput) (*models.Infographic, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, apperr.Invalid("title is required")
	}

	doc, err := s.docs.GetDocumentByID(ctx, in.DocumentID)
	if err != nil {
		return nil, fmt.Errorf("create infographic: %w", err)
	}
	if doc == nil || doc.OwnerID != ownerID {
		return nil, apperr.Invalid("document %d not found", in.DocumentID)
	}
	if in.BrandID != nil {
		b, err := s.brands.GetBrandByID(ctx, *in.BrandID)
		if err != nil {
			return nil, fmt.Errorf("create infographic: %w", err)
		}
		if b == nil || b.OwnerID != ownerID {
			return nil, apperr.Invalid("brand %d not found", *in.BrandID)
		}
	}

	g := &models.Infographic{
		OwnerID:    ownerID,
		Title:      strings.TrimSpace(in.Title),
		DocumentID: in.DocumentID,
		BrandID:    in.BrandID,
		Status:     models.InfographicDraft,
	}
	if _, err := s.repo.InsertInfographic(ctx, g); err != nil {
		return nil, fmt.Errorf("create infographic: %w", err)
	}
	return g, nil
}

func (s *InfographicService) Get(ctx context.Context, userID, id int) (*models.Infographic, error) {
	g, err := s.repo.GetInfographicByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get infographic: %w", err)
	}
	if g == nil {
		return nil, apperr.NotFound("infographic")
	}
	if err := s.access.canView(ctx, models.KindInfographic, g.ID, g.OwnerID, userID); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *InfographicService) List(ctx context.Context, userID int) ([]models.Infographic, error) {
	own, err := s.repo.ListInfographics(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list infographics: %w", err)
	}
	sharedIDs, err := s.access.collabs.ListSharedContentIDs(ctx, models.KindInfographic, userID)
	if err != nil {
		return nil, fmt.Errorf("list shared infographics: %w", err)
	}
	shared, err := s.repo.ListInfographicsByIDs(ctx, sharedIDs)
	if err != nil {
		return nil, fmt.Errorf("list shared infographics: %w", err)
	}
	return append(own, shared...), nil
}

type InfographicUpdate struct {
	Title   *string
	BrandID *int
}

func (s *InfographicService) Update(ctx context.Context, userID, id int, in InfographicUpdate) (*models.Infographic, error) {
	g, err := s.repo.GetInfographicByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update infographic: %w", err)
	}
	if g == nil {
		return nil, apperr.NotFound("infographic")
	}
	if err := s.access.canEdit(ctx, models.KindInfographic, g.ID, g.OwnerID, userID); err != nil {
		return nil, err
	}
	if g.Status == models.InfographicGenerating {
		return nil, apperr.State("infographic is generating; wait for the job to finish")
	}

	if in.Title != nil && strings.TrimSpace(*in.Title) != "" {
		g.Title = strings.TrimSpace(*in.Title)
	}
	if in.BrandID != nil {
		g.BrandID = in.BrandID
	}

	if err := s.repo.UpdateInfographic(ctx, g); err != nil {
		return nil, fmt.Errorf("update infographic: %w", err)
	}
	return g, nil
}

func (s *InfographicService) Delete(ctx context.Context, userID, id int) error {
	g, err := s.repo.GetInfographicByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete infographic: %w", err)
	}
	if g == nil {
		return apperr.NotFound("infographic")
	}
	if g.OwnerID != userID {
		return apperr.Forbidden("only the owner can delete an infographic")
	}
	if err := s.repo.DeleteInfographic(ctx, id); err != nil {
		return fmt.Errorf("delete infographic: %w", err)
	}
	if g.ImagePath != nil {
		_ = s.blobs.Remove(ctx, *g.ImagePath)
	}
	return nil
}

// Generate derives an art prompt from the document and renders it.
func (s *InfographicService) Generate(ctx context.Context, userID, id int) (*models.Job, error) {
	g, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if err := s.access.canEdit(ctx, models.KindInfographic, g.ID, g.OwnerID, userID); err != nil {
		return nil, err
	}
	if g.Status == models.InfographicGenerating {
		return nil, apperr.State("a generation is already running for this infographic")
	}

	job := &models.Job{
		ID:       uuid.NewString(),
		OwnerID:  userID,
		Kind:     models.JobInfographic,
		TargetID: g.ID,
		Step:     string(models.InfographicGenerating),
	}
	if err := s.runner.Begin(ctx, job); err != nil {
		return nil, err
	}

	s.runner.Launch(job, func(jctx context.Context, progress *Progress) error {
		if err := s.runPipeline(jctx, progress, g); err != nil {
			s.markFailed(g.ID, err)
			return err
		}
		return nil
	})
	return job, nil
}

func (s *InfographicService) runPipeline(ctx context.Context, progress *Progress, g *models.Infographic) error {
	if err := s.repo.SetInfographicStatus(ctx, g.ID, models.InfographicGenerating); err != nil {
		return err
	}
	progress.Step(ctx, string(models.InfographicGenerating))

	doc, err := s.docs.GetDocumentByID(ctx, g.DocumentID)
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("source document no longer exists")
	}
	var brand *models.Brand
	if g.BrandID != nil {
		if brand, err = s.brands.GetBrandByID(ctx, *g.BrandID); err != nil {
			return err
		}
	}

	brief := s.s1.Run(doc, brand, nil)
	prompt, promptCost, err := s.s5.Run(ctx, brief)
	progress.AddCost(ctx, promptCost)
	if err != nil {
		return err
	}

	path, renderCost, err := s.s6.Run(ctx, prompt)
	progress.AddCost(ctx, renderCost)
	if err != nil {
		return err
	}

	old := g.ImagePath
	if err := s.repo.SetInfographicResult(ctx, g.ID, prompt, path); err != nil {
		return err
	}
	if old != nil && *old != path {
		_ = s.blobs.Remove(ctx, *old)
	}
	progress.Step(ctx, string(models.InfographicReady))
	return nil
}

func (s *InfographicService) markFailed(id int, cause error) {
	if err := s.repo.SetInfographicFailed(context.Background(), id, cause.Error()); err != nil {
		s.log.Errorw("mark infographic failed", "infographic", id, "err", err)
	}
}
