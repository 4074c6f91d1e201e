package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// CatalogRepository stores categories and the lookup tables.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, c models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, c models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListBranches(ctx context.Context) ([]models.Branch, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
}

// CatalogService serves categories and branch, department and location lookups.
type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListCategories(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	return s.repo.GetCategory(ctx, id)
}

func (s *CatalogService) CreateCategory(ctx context.Context, c models.Category) (*models.Category, error) {
	if err := checkCategory(&c); err != nil {
		return nil, err
	}
	return s.repo.CreateCategory(ctx, c)
}

func (s *CatalogService) UpdateCategory(ctx context.Context, c models.Category) (*models.Category, error) {
	if err := checkCategory(&c); err != nil {
		return nil, err
	}
	return s.repo.UpdateCategory(ctx, c)
}

// DeleteCategory fails with repository.ErrInUse while assets reference it.
func (s *CatalogService) DeleteCategory(ctx context.Context, id int64) error {
	return s.repo.DeleteCategory(ctx, id)
}

func (s *CatalogService) ListBranches(ctx context.Context) ([]models.Branch, error) {
	return s.repo.ListBranches(ctx)
}

func (s *CatalogService) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return s.repo.ListDepartments(ctx)
}

func (s *CatalogService) ListLocations(ctx context.Context) ([]models.Location, error) {
	return s.repo.ListLocations(ctx)
}

func checkCategory(c *models.Category) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Name == "" {
		return fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	return nil
}
