package domain

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"lukechampine.com/blake3"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

// maxDocumentBytes caps uploads; anything larger is rejected before hashing.
const maxDocumentBytes = 5 << 20

type DocumentService struct {
	repo  ports.DocumentRepository
	blobs ports.BlobStore
}

func NewDocumentService(repo ports.DocumentRepository, blobs ports.BlobStore) *DocumentService {
	return &DocumentService{repo: repo, blobs: blobs}
}

// Create ingests an upload. Identical content re-uploaded by the same owner
// returns the existing row instead of a duplicate.
func (s *DocumentService) Create(ctx context.Context, ownerID int, title, filename, contentType string, raw []byte) (*models.Document, error) {
	if len(raw) == 0 {
		return nil, apperr.Invalid("document content is empty")
	}
	if len(raw) > maxDocumentBytes {
		return nil, apperr.Invalid("document exceeds the %d byte limit", maxDocumentBytes)
	}
	if !utf8.Valid(raw) {
		return nil, apperr.Invalid("only plain text and markdown uploads are supported")
	}

	text := strings.ToValidUTF8(string(raw), "")
	if strings.TrimSpace(text) == "" {
		return nil, apperr.Invalid("document content is empty")
	}

	if title = strings.TrimSpace(title); title == "" {
		title = strings.TrimSpace(filename)
	}
	if title == "" {
		return nil, apperr.Invalid("title is required")
	}

	sum := blake3.Sum256([]byte(text))
	hash := hex.EncodeToString(sum[:])

	existing, err := s.repo.GetDocumentByHash(ctx, ownerID, hash)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	storagePath, err := s.blobs.Put(ctx, "documents", extFor(contentType), raw)
	if err != nil {
		return nil, fmt.Errorf("create document store: %w", err)
	}

	doc := &models.Document{
		OwnerID:     ownerID,
		Title:       title,
		Filename:    filename,
		ContentType: contentType,
		Text:        text,
		Hash:        hash,
		SizeBytes:   len(raw),
		StoragePath: &storagePath,
	}
	if _, err := s.repo.InsertDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("create document insert: %w", err)
	}
	return doc, nil
}

func (s *DocumentService) Get(ctx context.Context, userID, id int) (*models.Document, error) {
	doc, err := s.repo.GetDocumentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get document: %w", err)
	}
	if doc == nil || doc.OwnerID != userID {
		return nil, apperr.NotFound("document")
	}
	return doc, nil
}

func (s *DocumentService) List(ctx context.Context, userID int) ([]models.Document, error) {
	return s.repo.ListDocuments(ctx, userID)
}

func (s *DocumentService) Update(ctx context.Context, userID, id int, title, text string) (*models.Document, error) {
	doc, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if title = strings.TrimSpace(title); title != "" {
		doc.Title = title
	}
	if strings.TrimSpace(text) != "" {
		clean := strings.ToValidUTF8(text, "")
		sum := blake3.Sum256([]byte(clean))
		hash := hex.EncodeToString(sum[:])
		// The owner's documents are unique by content hash, so an edit that
		// duplicates another document is a conflict, not a server error.
		other, err := s.repo.GetDocumentByHash(ctx, userID, hash)
		if err != nil {
			return nil, fmt.Errorf("update document: %w", err)
		}
		if other != nil && other.ID != doc.ID {
			return nil, apperr.Conflict("another document already has this content")
		}
		doc.Text = clean
		doc.Hash = hash
		doc.SizeBytes = len(clean)
	}

	if err := s.repo.UpdateDocument(ctx, doc); err != nil {
		return nil, fmt.Errorf("update document: %w", err)
	}
	return doc, nil
}

func (s *DocumentService) Delete(ctx context.Context, userID, id int) error {
	doc, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	if doc.StoragePath != nil {
		_ = s.blobs.Remove(ctx, *doc.StoragePath)
	}
	return nil
}

func extFor(contentType string) string {
	switch {
	case strings.Contains(contentType, "markdown"):
		return "md"
	default:
		return "txt"
	}
}
