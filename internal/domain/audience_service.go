package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

// AudienceService covers both audience segments and the personas that voice
// generated content.
type AudienceService struct {
	segments ports.AudienceRepository
	personas ports.PersonaRepository
}

func NewAudienceService(segments ports.AudienceRepository, personas ports.PersonaRepository) *AudienceService {
	return &AudienceService{segments: segments, personas: personas}
}

func (s *AudienceService) CreateSegment(ctx context.Context, ownerID int, seg models.AudienceSegment) (*models.AudienceSegment, error) {
	seg.Name = strings.TrimSpace(seg.Name)
	if seg.Name == "" {
		return nil, apperr.Invalid("segment name is required")
	}
	seg.OwnerID = ownerID
	if _, err := s.segments.InsertSegment(ctx, &seg); err != nil {
		return nil, fmt.Errorf("create segment: %w", err)
	}
	return &seg, nil
}

func (s *AudienceService) GetSegment(ctx context.Context, userID, id int) (*models.AudienceSegment, error) {
	seg, err := s.segments.GetSegmentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get segment: %w", err)
	}
	if seg == nil || seg.OwnerID != userID {
		return nil, apperr.NotFound("audience segment")
	}
	return seg, nil
}

func (s *AudienceService) ListSegments(ctx context.Context, userID int) ([]models.AudienceSegment, error) {
	return s.segments.ListSegments(ctx, userID)
}

func (s *AudienceService) UpdateSegment(ctx context.Context, userID, id int, in models.AudienceSegment) (*models.AudienceSegment, error) {
	seg, err := s.GetSegment(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	in.ID = seg.ID
	in.OwnerID = seg.OwnerID
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, apperr.Invalid("segment name is required")
	}
	if err := s.segments.UpdateSegment(ctx, &in); err != nil {
		return nil, fmt.Errorf("update segment: %w", err)
	}
	return &in, nil
}

func (s *AudienceService) DeleteSegment(ctx context.Context, userID, id int) error {
	if _, err := s.GetSegment(ctx, userID, id); err != nil {
		return err
	}
	if err := s.segments.DeleteSegment(ctx, id); err != nil {
		return fmt.Errorf("delete segment: %w", err)
	}
	return nil
}

func (s *AudienceService) CreatePersona(ctx context.Context, ownerID int, p models.Persona) (*models.Persona, error) {
	if err := validatePersona(&p); err != nil {
		return nil, err
	}
	p.OwnerID = ownerID
	if _, err := s.personas.InsertPersona(ctx, &p); err != nil {
		return nil, fmt.Errorf("create persona: %w", err)
	}
	return &p, nil
}

func (s *AudienceService) GetPersona(ctx context.Context, userID, id int) (*models.Persona, error) {
	p, err := s.personas.GetPersonaByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get persona: %w", err)
	}
	if p == nil || p.OwnerID != userID {
		return nil, apperr.NotFound("persona")
	}
	return p, nil
}

func (s *AudienceService) ListPersonas(ctx context.Context, userID int) ([]models.Persona, error) {
	return s.personas.ListPersonas(ctx, userID)
}

func (s *AudienceService) UpdatePersona(ctx context.Context, userID, id int, in models.Persona) (*models.Persona, error) {
	p, err := s.GetPersona(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	in.ID = p.ID
	in.OwnerID = p.OwnerID
	if err := validatePersona(&in); err != nil {
		return nil, err
	}
	if err := s.personas.UpdatePersona(ctx, &in); err != nil {
		return nil, fmt.Errorf("update persona: %w", err)
	}
	return &in, nil
}

func (s *AudienceService) DeletePersona(ctx context.Context, userID, id int) error {
	if _, err := s.GetPersona(ctx, userID, id); err != nil {
		return err
	}
	if err := s.personas.DeletePersona(ctx, id); err != nil {
		return fmt.Errorf("delete persona: %w", err)
	}
	return nil
}

func validatePersona(p *models.Persona) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return apperr.Invalid("persona name is required")
	}
	switch p.Role {
	case models.PersonaHost, models.PersonaGuest, models.PersonaNarrator:
	default:
		return apperr.Invalid("persona role must be host, guest or narrator")
	}
	if strings.TrimSpace(p.VoiceID) == "" {
		return apperr.Invalid("persona voice is required")
	}
	return nil
}
