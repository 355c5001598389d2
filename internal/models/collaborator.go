package models

import "time"

type CollaboratorRole string

const (
	RoleViewer CollaboratorRole = "viewer"
	RoleEditor CollaboratorRole = "editor"
)

type Collaborator struct {
	ID          int              `db:"id" json:"id"`
	ContentKind ContentKind      `db:"content_kind" json:"contentKind"`
	ContentID   int              `db:"content_id" json:"contentId"`
	UserID      int              `db:"user_id" json:"userId"`
	Email       string           `db:"email" json:"email"` // denormalized for listing
	Role        CollaboratorRole `db:"role" json:"role"`
	CreatedAt   time.Time        `db:"created_at" json:"createdAt"`
}
