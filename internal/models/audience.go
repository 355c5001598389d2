package models

import "time"

type AudienceSegment struct {
	ID           int       `db:"id" json:"id"`
	OwnerID      int       `db:"owner_id" json:"ownerId"`
	Name         string    `db:"name" json:"name"`
	Description  string    `db:"description" json:"description"`
	Demographics string    `db:"demographics" json:"demographics"`
	Interests    []string  `db:"interests" json:"interests"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

type PersonaRole string

const (
	PersonaHost     PersonaRole = "host"
	PersonaGuest    PersonaRole = "guest"
	PersonaNarrator PersonaRole = "narrator"
)

type Persona struct {
	ID        int         `db:"id" json:"id"`
	OwnerID   int         `db:"owner_id" json:"ownerId"`
	Name      string      `db:"name" json:"name"`
	Role      PersonaRole `db:"role" json:"role"`
	VoiceID   string      `db:"voice_id" json:"voiceId"` // provider voice identifier
	Style     string      `db:"style" json:"style"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time   `db:"updated_at" json:"updatedAt"`
}
