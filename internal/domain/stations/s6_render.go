package stations

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

// S6RenderImage renders the art prompt and stores the PNG.
type S6RenderImage struct {
	img   ports.ImageClient
	store ports.BlobStore
}

func NewS6RenderImage(img ports.ImageClient, store ports.BlobStore) *S6RenderImage {
	return &S6RenderImage{img: img, store: store}
}

func (s *S6RenderImage) Run(ctx context.Context, prompt string) (string, decimal.Decimal, error) {
	png, cost, err := s.img.Render(ctx, prompt)
	if err != nil {
		return "", cost, fmt.Errorf("render image: %w", err)
	}

	path, err := s.store.Put(ctx, "images", "png", png)
	if err != nil {
		return "", cost, fmt.Errorf("render store: %w", err)
	}
	return path, cost, nil
}
