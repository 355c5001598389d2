package domain

import (
	"context"
	"fmt"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

// access answers who may see or change a content row: the owner always,
// collaborators by role.
type access struct {
	collabs ports.CollaboratorRepository
}

func (a access) canView(ctx context.Context, kind models.ContentKind, contentID, ownerID, userID int) error {
	if ownerID == userID {
		return nil
	}
	_, ok, err := a.collabs.GetCollaboratorRole(ctx, kind, contentID, userID)
	if err != nil {
		return fmt.Errorf("access check: %w", err)
	}
	if !ok {
		return apperr.Forbidden("you do not have access to this item")
	}
	return nil
}

func (a access) canEdit(ctx context.Context, kind models.ContentKind, contentID, ownerID, userID int) error {
	if ownerID == userID {
		return nil
	}
	role, ok, err := a.collabs.GetCollaboratorRole(ctx, kind, contentID, userID)
	if err != nil {
		return fmt.Errorf("access check: %w", err)
	}
	if !ok || role != models.RoleEditor {
		return apperr.Forbidden("you do not have edit access to this item")
	}
	return nil
}
