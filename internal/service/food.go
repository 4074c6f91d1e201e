package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// FoodRepository stores ingredients and menu items.
type FoodRepository interface {
	ListIngredients(ctx context.Context, p models.ListParams) ([]models.Ingredient, int64, error)
	CreateIngredient(ctx context.Context, i models.Ingredient) (*models.Ingredient, error)
	ListMenuItems(ctx context.Context, p models.ListParams) ([]models.MenuItem, int64, error)
	CreateMenuItem(ctx context.Context, m models.MenuItem) (*models.MenuItem, error)
}

// FoodService serves the kitchen inventory and the menu.
type FoodService struct {
	repo FoodRepository
}

func NewFoodService(repo FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

func (s *FoodService) ListIngredients(ctx context.Context, p models.ListParams) (models.Page[models.Ingredient], error) {
	items, total, err := s.repo.ListIngredients(ctx, p)
	if err != nil {
		return models.Page[models.Ingredient]{}, err
	}
	return models.Page[models.Ingredient]{Content: items, TotalElements: total}, nil
}

func (s *FoodService) CreateIngredient(ctx context.Context, i models.Ingredient) (*models.Ingredient, error) {
	i.Name = strings.TrimSpace(i.Name)
	switch {
	case i.Name == "":
		return nil, fmt.Errorf("%w: ingredient name is required", ErrInvalidInput)
	case i.Unit == "":
		return nil, fmt.Errorf("%w: unit is required", ErrInvalidInput)
	case i.Quantity < 0 || i.MinThreshold < 0:
		return nil, fmt.Errorf("%w: quantities must not be negative", ErrInvalidInput)
	}
	return s.repo.CreateIngredient(ctx, i)
}

func (s *FoodService) ListMenuItems(ctx context.Context, p models.ListParams) (models.Page[models.MenuItem], error) {
	items, total, err := s.repo.ListMenuItems(ctx, p)
	if err != nil {
		return models.Page[models.MenuItem]{}, err
	}
	return models.Page[models.MenuItem]{Content: items, TotalElements: total}, nil
}

func (s *FoodService) CreateMenuItem(ctx context.Context, m models.MenuItem) (*models.MenuItem, error) {
	m.Name = strings.TrimSpace(m.Name)
	if m.Name == "" {
		return nil, fmt.Errorf("%w: menu item name is required", ErrInvalidInput)
	}
	if m.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	return s.repo.CreateMenuItem(ctx, m)
}
