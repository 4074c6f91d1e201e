package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// PostgresFoodRepository stores ingredients and menu items.
type PostgresFoodRepository struct {
	DB *sql.DB
}

func NewPostgresFoodRepository(db *sql.DB) *PostgresFoodRepository {
	return &PostgresFoodRepository{DB: db}
}

// ListIngredients returns one page of ingredients. Status "LOW_STOCK" keeps
// only ingredients at or below their threshold.
func (r *PostgresFoodRepository) ListIngredients(ctx context.Context, p models.ListParams) ([]models.Ingredient, int64, error) {
	var w whereBuilder
	if p.Search != "" {
		w.add("name ILIKE $%d", "%"+p.Search+"%")
	}
	if p.Status == "LOW_STOCK" {
		w.raw("quantity <= min_threshold")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM ingredients`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListIngredients count: %w", err)
	}

	limit, args := w.page(p)
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, unit, quantity, min_threshold, storage_asset_id FROM ingredients`+w.sql()+
			orderBy(p.Sort, map[string]string{"name": "name", "quantity": "quantity"}, "name")+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListIngredients: %w", err)
	}
	defer rows.Close()

	items := []models.Ingredient{}
	for rows.Next() {
		var (
			i       models.Ingredient
			storage sql.NullInt64
		)
		if err := rows.Scan(&i.ID, &i.Name, &i.Unit, &i.Quantity, &i.MinThreshold, &storage); err != nil {
			return nil, 0, fmt.Errorf("scan: %w", err)
		}
		i.StorageAssetID = ptrInt(storage)
		items = append(items, i)
	}
	return items, total, rows.Err()
}

func (r *PostgresFoodRepository) CreateIngredient(ctx context.Context, i models.Ingredient) (*models.Ingredient, error) {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO ingredients (name, unit, quantity, min_threshold, storage_asset_id)
		VALUES ($1, $2, $3, $4, $5) RETURNING id
	`, i.Name, i.Unit, i.Quantity, i.MinThreshold, nullInt(i.StorageAssetID)).Scan(&i.ID)
	if err != nil {
		return nil, fmt.Errorf("CreateIngredient: %w", classify(err))
	}
	return &i, nil
}

// ListMenuItems returns one page of menu items. Status "AVAILABLE" keeps only
// items currently on sale.
func (r *PostgresFoodRepository) ListMenuItems(ctx context.Context, p models.ListParams) ([]models.MenuItem, int64, error) {
	var w whereBuilder
	if p.Search != "" {
		w.add("name ILIKE $%d", "%"+p.Search+"%")
	}
	if p.Status == "AVAILABLE" {
		w.raw("available = true")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListMenuItems count: %w", err)
	}

	limit, args := w.page(p)
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, description, category, price, available FROM menu_items`+w.sql()+
			orderBy(p.Sort, map[string]string{"name": "name", "price": "price"}, "name")+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListMenuItems: %w", err)
	}
	defer rows.Close()

	items := []models.MenuItem{}
	for rows.Next() {
		var m models.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Category, &m.Price, &m.Available); err != nil {
			return nil, 0, fmt.Errorf("scan: %w", err)
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}

func (r *PostgresFoodRepository) CreateMenuItem(ctx context.Context, m models.MenuItem) (*models.MenuItem, error) {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO menu_items (name, description, category, price, available)
		VALUES ($1, $2, $3, $4, $5) RETURNING id
	`, m.Name, m.Description, m.Category, m.Price, m.Available).Scan(&m.ID)
	if err != nil {
		return nil, fmt.Errorf("CreateMenuItem: %w", classify(err))
	}
	return &m, nil
}
