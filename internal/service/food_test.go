package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
	"github.com/Kurniawan20/effiework-sub000/internal/service"
)

func TestCreateIngredient_Validation(t *testing.T) {
	svc := service.NewFoodService(&mockFoodRepo{})
	for _, in := range []models.Ingredient{
		{Unit: "kg"},
		{Name: "Flour"},
		{Name: "Flour", Unit: "kg", Quantity: -1},
	} {
		if _, err := svc.CreateIngredient(context.Background(), in); !errors.Is(err, service.ErrInvalidInput) {
			t.Errorf("CreateIngredient(%+v) error = %v; want ErrInvalidInput", in, err)
		}
	}
}

func TestCreateMenuItem(t *testing.T) {
	repo := &mockFoodRepo{
		CreateMenuItemFunc: func(_ context.Context, m models.MenuItem) (*models.MenuItem, error) {
			m.ID = 2
			return &m, nil
		},
	}
	got, err := service.NewFoodService(repo).CreateMenuItem(context.Background(), models.MenuItem{Name: "Es Teh", Price: 5000})
	if err != nil {
		t.Fatalf("CreateMenuItem returned error: %v", err)
	}
	if got.ID != 2 {
		t.Errorf("id = %d", got.ID)
	}
}

func TestListIngredients_Error(t *testing.T) {
	wantErr := errors.New("db down")
	repo := &mockFoodRepo{
		ListIngredientsFunc: func(context.Context, models.ListParams) ([]models.Ingredient, int64, error) {
			return nil, 0, wantErr
		},
	}
	_, err := service.NewFoodService(repo).ListIngredients(context.Background(), models.ListParams{})
	if err != wantErr {
		t.Fatalf("ListIngredients error = %v; want %v", err, wantErr)
	}
}
