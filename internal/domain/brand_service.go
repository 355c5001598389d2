package domain

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type BrandService struct {
	repo ports.BrandRepository
}

func NewBrandService(repo ports.BrandRepository) *BrandService {
	return &BrandService{repo: repo}
}

func (s *BrandService) Create(ctx context.Context, ownerID int, b models.Brand) (*models.Brand, error) {
	if err := validateBrand(&b); err != nil {
		return nil, err
	}
	b.OwnerID = ownerID
	if _, err := s.repo.InsertBrand(ctx, &b); err != nil {
		return nil, fmt.Errorf("create brand: %w", err)
	}
	return &b, nil
}

func (s *BrandService) Get(ctx context.Context, userID, id int) (*models.Brand, error) {
	b, err := s.repo.GetBrandByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get brand: %w", err)
	}
	if b == nil || b.OwnerID != userID {
		return nil, apperr.NotFound("brand")
	}
	return b, nil
}

func (s *BrandService) List(ctx context.Context, userID int) ([]models.Brand, error) {
	return s.repo.ListBrands(ctx, userID)
}

func (s *BrandService) Update(ctx context.Context, userID, id int, in models.Brand) (*models.Brand, error) {
	b, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	in.ID = b.ID
	in.OwnerID = b.OwnerID
	if err := validateBrand(&in); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateBrand(ctx, &in); err != nil {
		return nil, fmt.Errorf("update brand: %w", err)
	}
	return &in, nil
}

func (s *BrandService) Delete(ctx context.Context, userID, id int) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	if err := s.repo.DeleteBrand(ctx, id); err != nil {
		return fmt.Errorf("delete brand: %w", err)
	}
	return nil
}

func validateBrand(b *models.Brand) error {
	b.Name = strings.TrimSpace(b.Name)
	if b.Name == "" {
		return apperr.Invalid("brand name is required")
	}
	for _, c := range b.Palette {
		if !hexColor.MatchString(c) {
			return apperr.Invalid("palette color %q must be #rrggbb", c)
		}
	}
	return nil
}
