package ports

import (
	"context"
	"time"

	"github.com/brandonbryant12/content-studio-sub011/internal/models"
)

type UserRepository interface {
	InsertUser(ctx context.Context, user *models.User) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
}

type SessionRepository interface {
	InsertSession(ctx context.Context, s *models.Session) error
	GetSession(ctx context.Context, token string) (*models.Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error)
}

type DocumentRepository interface {
	InsertDocument(ctx context.Context, d *models.Document) (*models.Document, error)
	GetDocumentByID(ctx context.Context, id int) (*models.Document, error)
	GetDocumentByHash(ctx context.Context, ownerID int, hash string) (*models.Document, error)
	ListDocuments(ctx context.Context, ownerID int) ([]models.Document, error)
	UpdateDocument(ctx context.Context, d *models.Document) error
	DeleteDocument(ctx context.Context, id int) error
}

type BrandRepository interface {
	InsertBrand(ctx context.Context, b *models.Brand) (*models.Brand, error)
	GetBrandByID(ctx context.Context, id int) (*models.Brand, error)
	ListBrands(ctx context.Context, ownerID int) ([]models.Brand, error)
	UpdateBrand(ctx context.Context, b *models.Brand) error
	DeleteBrand(ctx context.Context, id int) error
}

type AudienceRepository interface {
	InsertSegment(ctx context.Context, s *models.AudienceSegment) (*models.AudienceSegment, error)
	GetSegmentByID(ctx context.Context, id int) (*models.AudienceSegment, error)
	ListSegments(ctx context.Context, ownerID int) ([]models.AudienceSegment, error)
	UpdateSegment(ctx context.Context, s *models.AudienceSegment) error
	DeleteSegment(ctx context.Context, id int) error
}

type PersonaRepository interface {
	InsertPersona(ctx context.Context, p *models.Persona) (*models.Persona, error)
	GetPersonaByID(ctx context.Context, id int) (*models.Persona, error)
	ListPersonas(ctx context.Context, ownerID int) ([]models.Persona, error)
	UpdatePersona(ctx context.Context, p *models.Persona) error
	DeletePersona(ctx context.Context, id int) error
}

type PodcastRepository interface {
	InsertPodcast(ctx context.Context, p *models.Podcast) (*models.Podcast, error)
	GetPodcastByID(ctx context.Context, id int) (*models.Podcast, error)
	ListPodcasts(ctx context.Context, ownerID int) ([]models.Podcast, error)
	ListPodcastsByIDs(ctx context.Context, ids []int) ([]models.Podcast, error)
	UpdatePodcast(ctx context.Context, p *models.Podcast) error
	SetPodcastStatus(ctx context.Context, id int, status models.ContentStatus) error
	SetPodcastScript(ctx context.Context, id int, script []models.ScriptLine, status models.ContentStatus) error
	SetPodcastAudio(ctx context.Context, id int, audioPath string, durationSec float64) error
	SetPodcastFailed(ctx context.Context, id int, msg string) error
	DeletePodcast(ctx context.Context, id int) error
}

type VoiceoverRepository interface {
	InsertVoiceover(ctx context.Context, v *models.Voiceover) (*models.Voiceover, error)
	GetVoiceoverByID(ctx context.Context, id int) (*models.Voiceover, error)
	ListVoiceovers(ctx context.Context, ownerID int) ([]models.Voiceover, error)
	ListVoiceoversByIDs(ctx context.Context, ids []int) ([]models.Voiceover, error)
	UpdateVoiceover(ctx context.Context, v *models.Voiceover) error
	SetVoiceoverStatus(ctx context.Context, id int, status models.ContentStatus) error
	SetVoiceoverScript(ctx context.Context, id int, script string, status models.ContentStatus) error
	SetVoiceoverAudio(ctx context.Context, id int, audioPath string, durationSec float64) error
	SetVoiceoverFailed(ctx context.Context, id int, msg string) error
	DeleteVoiceover(ctx context.Context, id int) error
}

type InfographicRepository interface {
	InsertInfographic(ctx context.Context, g *models.Infographic) (*models.Infographic, error)
	GetInfographicByID(ctx context.Context, id int) (*models.Infographic, error)
	ListInfographics(ctx context.Context, ownerID int) ([]models.Infographic, error)
	ListInfographicsByIDs(ctx context.Context, ids []int) ([]models.Infographic, error)
	UpdateInfographic(ctx context.Context, g *models.Infographic) error
	SetInfographicStatus(ctx context.Context, id int, status models.InfographicStatus) error
	SetInfographicResult(ctx context.Context, id int, prompt, imagePath string) error
	SetInfographicFailed(ctx context.Context, id int, msg string) error
	DeleteInfographic(ctx context.Context, id int) error
}

type CollaboratorRepository interface {
	AddCollaborator(ctx context.Context, c *models.Collaborator) (*models.Collaborator, error)
	RemoveCollaborator(ctx context.Context, kind models.ContentKind, contentID, userID int) error
	ListCollaborators(ctx context.Context, kind models.ContentKind, contentID int) ([]models.Collaborator, error)
	GetCollaboratorRole(ctx context.Context, kind models.ContentKind, contentID, userID int) (models.CollaboratorRole, bool, error)
	ListSharedContentIDs(ctx context.Context, kind models.ContentKind, userID int) ([]int, error)
}

type JobRepository interface {
	InsertJob(ctx context.Context, j *models.Job) error
	GetJobByID(ctx context.Context, id string) (*models.Job, error)
	ListJobs(ctx context.Context, ownerID int, limit int) ([]models.Job, error)
	MarkJobRunning(ctx context.Context, id string) error
	SetJobStep(ctx context.Context, id string, step string) error
	AddJobCost(ctx context.Context, id string, delta string) error
	CompleteJob(ctx context.Context, id string) error
	FailJob(ctx context.Context, id string, msg string) error
	FailStaleJobs(ctx context.Context, olderThan time.Time) ([]models.Job, error)
}
