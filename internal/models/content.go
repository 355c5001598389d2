package models

import "time"

// ContentStatus is the audio generation lifecycle shared by podcasts and
// voiceovers. Transitions are linear; failed is terminal until the next
// generate request resets the row back into the machine.
type ContentStatus string

const (
	StatusDraft            ContentStatus = "draft"
	StatusGeneratingScript ContentStatus = "generating_script"
	StatusScriptReady      ContentStatus = "script_ready"
	StatusGeneratingAudio  ContentStatus = "generating_audio"
	StatusReady            ContentStatus = "ready"
	StatusFailed           ContentStatus = "failed"
)

// ScriptLine is one spoken line of a podcast script. Voiceover scripts use
// the same shape with a single speaker.
type ScriptLine struct {
	Speaker string `json:"speaker"`
	Voice   string `json:"voice"`
	Text    string `json:"text"`
}

type Podcast struct {
	ID             int           `db:"id" json:"id"`
	OwnerID        int           `db:"owner_id" json:"ownerId"`
	Title          string        `db:"title" json:"title"`
	DocumentID     int           `db:"document_id" json:"documentId"`
	BrandID        *int          `db:"brand_id" json:"brandId"`
	SegmentID      *int          `db:"segment_id" json:"segmentId"`
	HostPersonaID  int           `db:"host_persona_id" json:"hostPersonaId"`
	GuestPersonaID int           `db:"guest_persona_id" json:"guestPersonaId"`
	Status         ContentStatus `db:"status" json:"status"`
	Script         []ScriptLine  `db:"script" json:"script"` // jsonb
	AudioPath      *string       `db:"audio_path" json:"audioPath"`
	DurationSec    float64       `db:"duration_sec" json:"durationSec"`
	ErrorMessage   *string       `db:"error_message" json:"errorMessage"`
	CreatedAt      time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updatedAt"`
}

type Voiceover struct {
	ID           int           `db:"id" json:"id"`
	OwnerID      int           `db:"owner_id" json:"ownerId"`
	Title        string        `db:"title" json:"title"`
	DocumentID   int           `db:"document_id" json:"documentId"`
	BrandID      *int          `db:"brand_id" json:"brandId"`
	PersonaID    int           `db:"persona_id" json:"personaId"`
	Status       ContentStatus `db:"status" json:"status"`
	Script       string        `db:"script" json:"script"` // narration text
	AudioPath    *string       `db:"audio_path" json:"audioPath"`
	DurationSec  float64       `db:"duration_sec" json:"durationSec"`
	ErrorMessage *string       `db:"error_message" json:"errorMessage"`
	CreatedAt    time.Time     `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time     `db:"updated_at" json:"updatedAt"`
}

// InfographicStatus is a shorter machine: a single generation phase covers
// both the art prompt and the render.
type InfographicStatus string

const (
	InfographicDraft      InfographicStatus = "draft"
	InfographicGenerating InfographicStatus = "generating"
	InfographicReady      InfographicStatus = "ready"
	InfographicFailed     InfographicStatus = "failed"
)

type Infographic struct {
	ID           int               `db:"id" json:"id"`
	OwnerID      int               `db:"owner_id" json:"ownerId"`
	Title        string            `db:"title" json:"title"`
	DocumentID   int               `db:"document_id" json:"documentId"`
	BrandID      *int              `db:"brand_id" json:"brandId"`
	Status       InfographicStatus `db:"status" json:"status"`
	Prompt       string            `db:"prompt" json:"prompt"`
	ImagePath    *string           `db:"image_path" json:"imagePath"`
	ErrorMessage *string           `db:"error_message" json:"errorMessage"`
	CreatedAt    time.Time         `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time         `db:"updated_at" json:"updatedAt"`
}

type ContentKind string

const (
	KindPodcast     ContentKind = "podcast"
	KindVoiceover   ContentKind = "voiceover"
	KindInfographic ContentKind = "infographic"
)
