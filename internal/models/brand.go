package models

import "time"

type Brand struct {
	ID          int       `db:"id" json:"id"`
	OwnerID     int       `db:"owner_id" json:"ownerId"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Tone        string    `db:"tone" json:"tone"` // free-form voice/tone guidelines
	Palette     []string  `db:"palette" json:"palette"`
	Website     string    `db:"website" json:"website"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
