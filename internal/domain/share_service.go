package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

// ShareService manages collaborators on content rows. Only the owner can
// share or unshare.
type ShareService struct {
	collabs      ports.CollaboratorRepository
	users        ports.UserRepository
	podcasts     ports.PodcastRepository
	voiceovers   ports.VoiceoverRepository
	infographics ports.InfographicRepository
}

func NewShareService(
	collabs ports.CollaboratorRepository,
	users ports.UserRepository,
	podcasts ports.PodcastRepository,
	voiceovers ports.VoiceoverRepository,
	infographics ports.InfographicRepository,
) *ShareService {
	return &ShareService{
		collabs:      collabs,
		users:        users,
		podcasts:     podcasts,
		voiceovers:   voiceovers,
		infographics: infographics,
	}
}

func (s *ShareService) Add(ctx context.Context, ownerID int, kind models.ContentKind, contentID int, email string, role models.CollaboratorRole) (*models.Collaborator, error) {
	if role != models.RoleViewer && role != models.RoleEditor {
		return nil, apperr.Invalid("role must be viewer or editor")
	}
	if err := s.requireOwner(ctx, ownerID, kind, contentID); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("add collaborator: %w", err)
	}
	if user == nil {
		return nil, apperr.NotFound("user " + email)
	}
	if user.ID == ownerID {
		return nil, apperr.Invalid("cannot add the owner as a collaborator")
	}

	c := &models.Collaborator{
		ContentKind: kind,
		ContentID:   contentID,
		UserID:      user.ID,
		Email:       user.Email,
		Role:        role,
	}
	if _, err := s.collabs.AddCollaborator(ctx, c); err != nil {
		return nil, fmt.Errorf("add collaborator: %w", err)
	}
	return c, nil
}

func (s *ShareService) Remove(ctx context.Context, ownerID int, kind models.ContentKind, contentID, userID int) error {
	if err := s.requireOwner(ctx, ownerID, kind, contentID); err != nil {
		return err
	}
	if err := s.collabs.RemoveCollaborator(ctx, kind, contentID, userID); err != nil {
		return fmt.Errorf("remove collaborator: %w", err)
	}
	return nil
}

func (s *ShareService) List(ctx context.Context, userID int, kind models.ContentKind, contentID int) ([]models.Collaborator, error) {
	owner, err := s.contentOwner(ctx, kind, contentID)
	if err != nil {
		return nil, err
	}
	if owner != userID {
		a := access{collabs: s.collabs}
		if err := a.canView(ctx, kind, contentID, owner, userID); err != nil {
			return nil, err
		}
	}
	list, err := s.collabs.ListCollaborators(ctx, kind, contentID)
	if err != nil {
		return nil, fmt.Errorf("list collaborators: %w", err)
	}
	return list, nil
}

func (s *ShareService) requireOwner(ctx context.Context, userID int, kind models.ContentKind, contentID int) error {
	owner, err := s.contentOwner(ctx, kind, contentID)
	if err != nil {
		return err
	}
	if owner != userID {
		return apperr.Forbidden("only the owner can manage collaborators")
	}
	return nil
}

func (s *ShareService) contentOwner(ctx context.Context, kind models.ContentKind, contentID int) (int, error) {
	switch kind {
	case models.KindPodcast:
		p, err := s.podcasts.GetPodcastByID(ctx, contentID)
		if err != nil {
			return 0, fmt.Errorf("resolve content: %w", err)
		}
		if p == nil {
			return 0, apperr.NotFound("podcast")
		}
		return p.OwnerID, nil
	case models.KindVoiceover:
		v, err := s.voiceovers.GetVoiceoverByID(ctx, contentID)
		if err != nil {
			return 0, fmt.Errorf("resolve content: %w", err)
		}
		if v == nil {
			return 0, apperr.NotFound("voiceover")
		}
		return v.OwnerID, nil
	case models.KindInfographic:
		g, err := s.infographics.GetInfographicByID(ctx, contentID)
		if err != nil {
			return 0, fmt.Errorf("resolve content: %w", err)
		}
		if g == nil {
			return 0, apperr.NotFound("infographic")
		}
		return g.OwnerID, nil
	default:
		return 0, apperr.Invalid("unknown content kind %q", kind)
	}
}
