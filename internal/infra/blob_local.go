package infra

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

// LocalBlobStore keeps artifacts on disk under the data dir, one subdir per
// kind (audio, images, documents). Paths stored on rows are store-relative.
type LocalBlobStore struct {
	root string
}

func NewLocalBlobStore(root string) (*LocalBlobStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("blob store root: %w", err)
	}
	return &LocalBlobStore{root: root}, nil
}

var _ ports.BlobStore = (*LocalBlobStore)(nil)

func (s *LocalBlobStore) Put(_ context.Context, kind, ext string, data []byte) (string, error) {
	dir := filepath.Join(s.root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("blob store mkdir: %w", err)
	}

	name := uuid.NewString() + "." + strings.TrimPrefix(ext, ".")
	rel := filepath.Join(kind, name)

	if err := os.WriteFile(filepath.Join(s.root, rel), data, 0o644); err != nil {
		return "", fmt.Errorf("blob store write: %w", err)
	}
	return rel, nil
}

func (s *LocalBlobStore) Get(_ context.Context, path string) ([]byte, error) {
	clean, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("blob store read: %w", err)
	}
	return data, nil
}

func (s *LocalBlobStore) Remove(_ context.Context, path string) error {
	clean, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.Remove(clean); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("blob store remove: %w", err)
	}
	return nil
}

// resolve rejects paths that would escape the store root.
func (s *LocalBlobStore) resolve(path string) (string, error) {
	clean := filepath.Clean(path)
	if clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) || filepath.IsAbs(clean) {
		return "", fmt.Errorf("blob store: invalid path %q", path)
	}
	return filepath.Join(s.root, clean), nil
}
