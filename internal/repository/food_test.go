package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

func TestListIngredients_LowStock(t *testing.T) {
	db, mock, cleanup := setupMock(t)
	defer cleanup()
	repo := NewPostgresFoodRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM ingredients WHERE quantity <= min_threshold`)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY name LIMIT $1 OFFSET $2`)).
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "unit", "quantity", "min_threshold", "storage_asset_id"}).
			AddRow(int64(1), "Flour", "kg", 2.0, 5.0, int64(12)))

	items, total, err := repo.ListIngredients(context.Background(), models.ListParams{Size: 10, Status: "LOW_STOCK"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(items) != 1 || !items[0].LowStock() || *items[0].StorageAssetID != 12 {
		t.Errorf("unexpected ingredients: %+v", items)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateMenuItem(t *testing.T) {
	db, mock, cleanup := setupMock(t)
	defer cleanup()
	repo := NewPostgresFoodRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO menu_items`)).
		WithArgs("Nasi Goreng", "", "Main", 25000.0, true).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	m, err := repo.CreateMenuItem(context.Background(), models.MenuItem{Name: "Nasi Goreng", Category: "Main", Price: 25000, Available: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != 4 {
		t.Errorf("expected id 4, got %d", m.ID)
	}
}
