package models

import "time"

type Document struct {
	ID          int       `db:"id" json:"id"`
	OwnerID     int       `db:"owner_id" json:"ownerId"`
	Title       string    `db:"title" json:"title"`
	Filename    string    `db:"filename" json:"filename"`
	ContentType string    `db:"content_type" json:"contentType"`
	Text        string    `db:"text" json:"text"`
	Hash        string    `db:"blake3_hash" json:"hash"` // hex, per-owner dedup key
	SizeBytes   int       `db:"size_bytes" json:"sizeBytes"`
	StoragePath *string   `db:"storage_path" json:"-"` // nullable, raw upload in blob store
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}
