package domain

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

// In-memory repositories for service tests. Maps are guarded by a single
// mutex per fake because generation jobs touch them from goroutines.

type memUsers struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]models.User
}

func newMemUsers() *memUsers { return &memUsers{byID: map[int]models.User{}} }

func (m *memUsers) InsertUser(_ context.Context, u *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now()
	m.byID[u.ID] = *u
	return u, nil
}

func (m *memUsers) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == email {
			cp := u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memUsers) GetUserByID(_ context.Context, id int) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		return &u, nil
	}
	return nil, nil
}

type memSessions struct {
	mu      sync.Mutex
	byToken map[string]models.Session
}

func newMemSessions() *memSessions { return &memSessions{byToken: map[string]models.Session{}} }

func (m *memSessions) InsertSession(_ context.Context, s *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byToken[s.Token] = *s
	return nil
}

func (m *memSessions) GetSession(_ context.Context, token string) (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.byToken[token]; ok {
		return &s, nil
	}
	return nil, nil
}

func (m *memSessions) DeleteSession(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byToken, token)
	return nil
}

func (m *memSessions) DeleteExpiredSessions(_ context.Context, now time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for token, s := range m.byToken {
		if s.ExpiresAt.Before(now) {
			delete(m.byToken, token)
			n++
		}
	}
	return n, nil
}

type memDocs struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]models.Document
}

func newMemDocs() *memDocs { return &memDocs{byID: map[int]models.Document{}} }

func (m *memDocs) InsertDocument(_ context.Context, d *models.Document) (*models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	d.ID = m.nextID
	m.byID[d.ID] = *d
	return d, nil
}

func (m *memDocs) GetDocumentByID(_ context.Context, id int) (*models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d, ok := m.byID[id]; ok {
		return &d, nil
	}
	return nil, nil
}

func (m *memDocs) GetDocumentByHash(_ context.Context, ownerID int, hash string) (*models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.byID {
		if d.OwnerID == ownerID && d.Hash == hash {
			cp := d
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memDocs) ListDocuments(_ context.Context, ownerID int) ([]models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Document
	for _, d := range m.byID {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *memDocs) UpdateDocument(_ context.Context, d *models.Document) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[d.ID] = *d
	return nil
}

func (m *memDocs) DeleteDocument(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

type memBrands struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]models.Brand
}

func newMemBrands() *memBrands { return &memBrands{byID: map[int]models.Brand{}} }

func (m *memBrands) InsertBrand(_ context.Context, b *models.Brand) (*models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	b.ID = m.nextID
	m.byID[b.ID] = *b
	return b, nil
}

func (m *memBrands) GetBrandByID(_ context.Context, id int) (*models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if b, ok := m.byID[id]; ok {
		return &b, nil
	}
	return nil, nil
}

func (m *memBrands) ListBrands(_ context.Context, ownerID int) ([]models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Brand
	for _, b := range m.byID {
		if b.OwnerID == ownerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBrands) UpdateBrand(_ context.Context, b *models.Brand) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[b.ID] = *b
	return nil
}

func (m *memBrands) DeleteBrand(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

type memSegments struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]models.AudienceSegment
}

func newMemSegments() *memSegments { return &memSegments{byID: map[int]models.AudienceSegment{}} }

func (m *memSegments) InsertSegment(_ context.Context, s *models.AudienceSegment) (*models.AudienceSegment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	s.ID = m.nextID
	m.byID[s.ID] = *s
	return s, nil
}

func (m *memSegments) GetSegmentByID(_ context.Context, id int) (*models.AudienceSegment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.byID[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (m *memSegments) ListSegments(_ context.Context, ownerID int) ([]models.AudienceSegment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.AudienceSegment
	for _, s := range m.byID {
		if s.OwnerID == ownerID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memSegments) UpdateSegment(_ context.Context, s *models.AudienceSegment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[s.ID] = *s
	return nil
}

func (m *memSegments) DeleteSegment(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

type memPersonas struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]models.Persona
}

func newMemPersonas() *memPersonas { return &memPersonas{byID: map[int]models.Persona{}} }

func (m *memPersonas) InsertPersona(_ context.Context, p *models.Persona) (*models.Persona, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p.ID = m.nextID
	m.byID[p.ID] = *p
	return p, nil
}

func (m *memPersonas) GetPersonaByID(_ context.Context, id int) (*models.Persona, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.byID[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *memPersonas) ListPersonas(_ context.Context, ownerID int) ([]models.Persona, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Persona
	for _, p := range m.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPersonas) UpdatePersona(_ context.Context, p *models.Persona) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[p.ID] = *p
	return nil
}

func (m *memPersonas) DeletePersona(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

type memPodcasts struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]models.Podcast
}

func newMemPodcasts() *memPodcasts { return &memPodcasts{byID: map[int]models.Podcast{}} }

func (m *memPodcasts) InsertPodcast(_ context.Context, p *models.Podcast) (*models.Podcast, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p.ID = m.nextID
	m.byID[p.ID] = *p
	return p, nil
}

func (m *memPodcasts) GetPodcastByID(_ context.Context, id int) (*models.Podcast, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.byID[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (m *memPodcasts) ListPodcasts(_ context.Context, ownerID int) ([]models.Podcast, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Podcast
	for _, p := range m.byID {
		if p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPodcasts) ListPodcastsByIDs(_ context.Context, ids []int) ([]models.Podcast, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Podcast
	for _, id := range ids {
		if p, ok := m.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPodcasts) UpdatePodcast(_ context.Context, p *models.Podcast) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[p.ID] = *p
	return nil
}

func (m *memPodcasts) SetPodcastStatus(_ context.Context, id int, status models.ContentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.byID[id]
	p.Status = status
	m.byID[id] = p
	return nil
}

func (m *memPodcasts) SetPodcastScript(_ context.Context, id int, script []models.ScriptLine, status models.ContentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.byID[id]
	p.Script = script
	p.Status = status
	m.byID[id] = p
	return nil
}

func (m *memPodcasts) SetPodcastAudio(_ context.Context, id int, audioPath string, durationSec float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.byID[id]
	p.AudioPath = &audioPath
	p.DurationSec = durationSec
	p.Status = models.StatusReady
	p.ErrorMessage = nil
	m.byID[id] = p
	return nil
}

func (m *memPodcasts) SetPodcastFailed(_ context.Context, id int, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.byID[id]
	p.Status = models.StatusFailed
	p.ErrorMessage = &msg
	m.byID[id] = p
	return nil
}

func (m *memPodcasts) DeletePodcast(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

type memVoiceovers struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]models.Voiceover
}

func newMemVoiceovers() *memVoiceovers { return &memVoiceovers{byID: map[int]models.Voiceover{}} }

func (m *memVoiceovers) InsertVoiceover(_ context.Context, v *models.Voiceover) (*models.Voiceover, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	v.ID = m.nextID
	m.byID[v.ID] = *v
	return v, nil
}

func (m *memVoiceovers) GetVoiceoverByID(_ context.Context, id int) (*models.Voiceover, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.byID[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (m *memVoiceovers) ListVoiceovers(_ context.Context, ownerID int) ([]models.Voiceover, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Voiceover
	for _, v := range m.byID {
		if v.OwnerID == ownerID {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memVoiceovers) ListVoiceoversByIDs(_ context.Context, ids []int) ([]models.Voiceover, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Voiceover
	for _, id := range ids {
		if v, ok := m.byID[id]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}

func (m *memVoiceovers) UpdateVoiceover(_ context.Context, v *models.Voiceover) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[v.ID] = *v
	return nil
}

func (m *memVoiceovers) SetVoiceoverStatus(_ context.Context, id int, status models.ContentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.byID[id]
	v.Status = status
	m.byID[id] = v
	return nil
}

func (m *memVoiceovers) SetVoiceoverScript(_ context.Context, id int, script string, status models.ContentStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.byID[id]
	v.Script = script
	v.Status = status
	m.byID[id] = v
	return nil
}

func (m *memVoiceovers) SetVoiceoverAudio(_ context.Context, id int, audioPath string, durationSec float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.byID[id]
	v.AudioPath = &audioPath
	v.DurationSec = durationSec
	v.Status = models.StatusReady
	v.ErrorMessage = nil
	m.byID[id] = v
	return nil
}

func (m *memVoiceovers) SetVoiceoverFailed(_ context.Context, id int, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := m.byID[id]
	v.Status = models.StatusFailed
	v.ErrorMessage = &msg
	m.byID[id] = v
	return nil
}

func (m *memVoiceovers) DeleteVoiceover(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

type memInfographics struct {
	mu     sync.Mutex
	nextID int
	byID   map[int]models.Infographic
}

func newMemInfographics() *memInfographics {
	return &memInfographics{byID: map[int]models.Infographic{}}
}

func (m *memInfographics) InsertInfographic(_ context.Context, g *models.Infographic) (*models.Infographic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	g.ID = m.nextID
	m.byID[g.ID] = *g
	return g, nil
}

func (m *memInfographics) GetInfographicByID(_ context.Context, id int) (*models.Infographic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if g, ok := m.byID[id]; ok {
		return &g, nil
	}
	return nil, nil
}

func (m *memInfographics) ListInfographics(_ context.Context, ownerID int) ([]models.Infographic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Infographic
	for _, g := range m.byID {
		if g.OwnerID == ownerID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memInfographics) ListInfographicsByIDs(_ context.Context, ids []int) ([]models.Infographic, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Infographic
	for _, id := range ids {
		if g, ok := m.byID[id]; ok {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *memInfographics) UpdateInfographic(_ context.Context, g *models.Infographic) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[g.ID] = *g
	return nil
}

func (m *memInfographics) SetInfographicStatus(_ context.Context, id int, status models.InfographicStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g := m.byID[id]
	g.Status = status
	m.byID[id] = g
	return nil
}

func (m *memInfographics) SetInfographicResult(_ context.Context, id int, prompt, imagePath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g := m.byID[id]
	g.Prompt = prompt
	g.ImagePath = &imagePath
	g.Status = models.InfographicReady
	g.ErrorMessage = nil
	m.byID[id] = g
	return nil
}

func (m *memInfographics) SetInfographicFailed(_ context.Context, id int, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g := m.byID[id]
	g.Status = models.InfographicFailed
	g.ErrorMessage = &msg
	m.byID[id] = g
	return nil
}

func (m *memInfographics) DeleteInfographic(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
	return nil
}

type memCollabs struct {
	mu     sync.Mutex
	nextID int
	rows   []models.Collaborator
}

func newMemCollabs() *memCollabs { return &memCollabs{} }

func (m *memCollabs) AddCollaborator(_ context.Context, c *models.Collaborator) (*models.Collaborator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, row := range m.rows {
		if row.ContentKind == c.ContentKind && row.ContentID == c.ContentID && row.UserID == c.UserID {
			c.ID = row.ID
			m.rows[i] = *c
			return c, nil
		}
	}
	m.nextID++
	c.ID = m.nextID
	m.rows = append(m.rows, *c)
	return c, nil
}

func (m *memCollabs) RemoveCollaborator(_ context.Context, kind models.ContentKind, contentID, userID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, row := range m.rows {
		if row.ContentKind == kind && row.ContentID == contentID && row.UserID == userID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memCollabs) ListCollaborators(_ context.Context, kind models.ContentKind, contentID int) ([]models.Collaborator, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Collaborator
	for _, row := range m.rows {
		if row.ContentKind == kind && row.ContentID == contentID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (m *memCollabs) GetCollaboratorRole(_ context.Context, kind models.ContentKind, contentID, userID int) (models.CollaboratorRole, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, row := range m.rows {
		if row.ContentKind == kind && row.ContentID == contentID && row.UserID == userID {
			return row.Role, true, nil
		}
	}
	return "", false, nil
}

func (m *memCollabs) ListSharedContentIDs(_ context.Context, kind models.ContentKind, userID int) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []int
	for _, row := range m.rows {
		if row.ContentKind == kind && row.UserID == userID {
			out = append(out, row.ContentID)
		}
	}
	return out, nil
}

type memJobs struct {
	mu   sync.Mutex
	byID map[string]models.Job
}

func newMemJobs() *memJobs { return &memJobs{byID: map[string]models.Job{}} }

func (m *memJobs) InsertJob(_ context.Context, j *models.Job) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j.Status = models.JobQueued
	j.CreatedAt = time.Now()
	m.byID[j.ID] = *j
	return nil
}

func (m *memJobs) GetJobByID(_ context.Context, id string) (*models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if j, ok := m.byID[id]; ok {
		return &j, nil
	}
	return nil, nil
}

func (m *memJobs) ListJobs(_ context.Context, ownerID int, limit int) ([]models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Job
	for _, j := range m.byID {
		if j.OwnerID == ownerID && len(out) < limit {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *memJobs) MarkJobRunning(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := m.byID[id]
	now := time.Now()
	j.Status = models.JobRunning
	j.StartedAt = &now
	m.byID[id] = j
	return nil
}

func (m *memJobs) SetJobStep(_ context.Context, id string, step string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := m.byID[id]
	j.Step = step
	m.byID[id] = j
	return nil
}

func (m *memJobs) AddJobCost(_ context.Context, id string, delta string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, err := decimal.NewFromString(delta)
	if err != nil {
		return err
	}
	j := m.byID[id]
	j.Cost = j.Cost.Add(d)
	m.byID[id] = j
	return nil
}

func (m *memJobs) CompleteJob(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := m.byID[id]
	now := time.Now()
	j.Status = models.JobDone
	j.FinishedAt = &now
	m.byID[id] = j
	return nil
}

func (m *memJobs) FailJob(_ context.Context, id string, msg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	j := m.byID[id]
	now := time.Now()
	j.Status = models.JobFailed
	j.Error = &msg
	j.FinishedAt = &now
	m.byID[id] = j
	return nil
}

func (m *memJobs) FailStaleJobs(_ context.Context, olderThan time.Time) ([]models.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Job
	for id, j := range m.byID {
		if j.Status == models.JobRunning && j.StartedAt != nil && j.StartedAt.Before(olderThan) {
			msg := "generation timed out"
			now := time.Now()
			j.Status = models.JobFailed
			j.Error = &msg
			j.FinishedAt = &now
			m.byID[id] = j
			out = append(out, j)
		}
	}
	return out, nil
}

type memBlobs struct {
	mu    sync.Mutex
	next  int
	files map[string][]byte
}

func newMemBlobs() *memBlobs { return &memBlobs{files: map[string][]byte{}} }

func (m *memBlobs) Put(_ context.Context, kind, ext string, data []byte) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	path := fmt.Sprintf("%s/%d.%s", kind, m.next, ext)
	m.files[path] = data
	return path, nil
}

func (m *memBlobs) Get(_ context.Context, path string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[path]
	if !ok {
		return nil, fmt.Errorf("blob %s not found", path)
	}
	return data, nil
}

func (m *memBlobs) Remove(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.files, path)
	return nil
}

// Provider fakes.

type stubChat struct {
	reply string
	err   error
}

func (c stubChat) Complete(context.Context, string, string) (string, decimal.Decimal, error) {
	if c.err != nil {
		return "", decimal.Zero, c.err
	}
	return c.reply, decimal.NewFromFloat(0.001), nil
}

type stubSpeech struct {
	err error
}

func (s stubSpeech) Synthesize(_ context.Context, _, text string) ([]byte, decimal.Decimal, error) {
	if s.err != nil {
		return nil, decimal.Zero, s.err
	}
	// two bytes per sample keeps the output frame aligned
	return make([]byte, 2*len(text)), decimal.NewFromFloat(0.0001), nil
}

type stubImage struct {
	err error
}

func (s stubImage) Render(context.Context, string) ([]byte, decimal.Decimal, error) {
	if s.err != nil {
		return nil, decimal.Zero, s.err
	}
	return []byte("png-bytes"), decimal.NewFromFloat(0.04), nil
}

func testLogger() *zap.SugaredLogger { return zap.NewNop().Sugar() }

var _ ports.UserRepository = (*memUsers)(nil)
var _ ports.SessionRepository = (*memSessions)(nil)
var _ ports.DocumentRepository = (*memDocs)(nil)
var _ ports.BrandRepository = (*memBrands)(nil)
var _ ports.AudienceRepository = (*memSegments)(nil)
var _ ports.PersonaRepository = (*memPersonas)(nil)
var _ ports.PodcastRepository = (*memPodcasts)(nil)
var _ ports.VoiceoverRepository = (*memVoiceovers)(nil)
var _ ports.InfographicRepository = (*memInfographics)(nil)
var _ ports.CollaboratorRepository = (*memCollabs)(nil)
var _ ports.JobRepository = (*memJobs)(nil)
var _ ports.BlobStore = (*memBlobs)(nil)
var _ ports.ChatClient = stubChat{}
var _ ports.SpeechClient = stubSpeech{}
var _ ports.ImageClient = stubImage{}
