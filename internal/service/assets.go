package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// AssetRepository defines asset persistence.
type AssetRepository interface {
	ListAssets(ctx context.Context, p models.ListParams) ([]models.Asset, int64, error)
	ListAssignedTo(ctx context.Context, userID int64) ([]models.Asset, error)
	ListFoodEligible(ctx context.Context) ([]models.Asset, error)
	GetAsset(ctx context.Context, id int64) (*models.Asset, error)
	CreateAsset(ctx context.Context, a models.Asset) (int64, error)
	UpdateAsset(ctx context.Context, a models.Asset) error
	SoftDeleteAsset(ctx context.Context, id int64) error
}

// AssetService implements the asset registry.
type AssetService struct {
	repo AssetRepository
}

func NewAssetService(repo AssetRepository) *AssetService {
	return &AssetService{repo: repo}
}

// List returns one page of assets matching p.
func (s *AssetService) List(ctx context.Context, p models.ListParams) (models.Page[models.Asset], error) {
	assets, total, err := s.repo.ListAssets(ctx, p)
	if err != nil {
		return models.Page[models.Asset]{}, err
	}
	return models.Page[models.Asset]{Content: assets, TotalElements: total}, nil
}

// Mine returns the assets assigned to the calling user.
func (s *AssetService) Mine(ctx context.Context, userID int64) ([]models.Asset, error) {
	return s.repo.ListAssignedTo(ctx, userID)
}

// FoodEligible returns active assets usable for food storage or preparation.
func (s *AssetService) FoodEligible(ctx context.Context) ([]models.Asset, error) {
	return s.repo.ListFoodEligible(ctx)
}

func (s *AssetService) Get(ctx context.Context, id int64) (*models.Asset, error) {
	return s.repo.GetAsset(ctx, id)
}

// Create validates a and stores it. A missing status defaults to ACTIVE.
func (s *AssetService) Create(ctx context.Context, a models.Asset) (*models.Asset, error) {
	if err := checkAsset(&a); err != nil {
		return nil, err
	}
	id, err := s.repo.CreateAsset(ctx, a)
	if err != nil {
		return nil, err
	}
	return s.repo.GetAsset(ctx, id)
}

// Update replaces the stored asset with a.
func (s *AssetService) Update(ctx context.Context, a models.Asset) (*models.Asset, error) {
	if err := checkAsset(&a); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateAsset(ctx, a); err != nil {
		return nil, err
	}
	return s.repo.GetAsset(ctx, a.ID)
}

// Delete soft-deletes the asset.
func (s *AssetService) Delete(ctx context.Context, id int64) error {
	return s.repo.SoftDeleteAsset(ctx, id)
}

func checkAsset(a *models.Asset) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Code = strings.TrimSpace(a.Code)
	switch {
	case a.Name == "":
		return fmt.Errorf("%w: asset name is required", ErrInvalidInput)
	case a.Code == "":
		return fmt.Errorf("%w: asset code is required", ErrInvalidInput)
	case a.CategoryID <= 0:
		return fmt.Errorf("%w: category is required", ErrInvalidInput)
	case a.PurchaseCost < 0:
		return fmt.Errorf("%w: purchase cost must not be negative", ErrInvalidInput)
	}
	if a.Status == "" {
		a.Status = models.AssetActive
	}
	switch a.Status {
	case models.AssetActive, models.AssetInRepair, models.AssetTransferred, models.AssetDisposed:
	default:
		return fmt.Errorf("%w: unknown asset status %q", ErrInvalidInput, a.Status)
	}
	if a.PurchaseDate != "" {
		if _, err := time.Parse(time.DateOnly, a.PurchaseDate); err != nil {
			return fmt.Errorf("%w: purchase date must be YYYY-MM-DD", ErrInvalidInput)
		}
	}
	return nil
}
