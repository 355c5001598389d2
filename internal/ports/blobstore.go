package ports

import "context"

// BlobStore persists generated artifacts and raw document uploads. Paths are
// store-relative and recorded on the owning row.
type BlobStore interface {
	Put(ctx context.Context, kind string, ext string, data []byte) (path string, err error)
	Get(ctx context.Context, path string) ([]byte, error)
	Remove(ctx context.Context, path string) error
}
