package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// PostgresAssetRepository implements asset persistence. Deleted assets are
// soft-deleted (deleted_at set) and purged later by db.StartSoftDeleteCleaner.
type PostgresAssetRepository struct {
	DB *sql.DB
}

// NewPostgresAssetRepository creates a new PostgresAssetRepository.
func NewPostgresAssetRepository(db *sql.DB) *PostgresAssetRepository {
	return &PostgresAssetRepository{DB: db}
}

const assetSelect = `SELECT a.id, a.code, a.name, a.description, a.category_id, COALESCE(c.name, ''),
	a.branch_id, a.department_id, a.location_id, a.assigned_to, a.status,
	a.purchase_date, a.purchase_cost, a.food_eligible
	FROM assets a LEFT JOIN categories c ON c.id = a.category_id`

var assetSortColumns = map[string]string{
	"id":           "a.id",
	"name":         "a.name",
	"code":         "a.code",
	"status":       "a.status",
	"purchaseDate": "a.purchase_date",
}

func scanAsset(row interface{ Scan(...any) error }) (*models.Asset, error) {
	var (
		a                           models.Asset
		branch, dept, loc, assignee sql.NullInt64
		purchased                   sql.NullTime
	)
	err := row.Scan(&a.ID, &a.Code, &a.Name, &a.Description, &a.CategoryID, &a.CategoryName,
		&branch, &dept, &loc, &assignee, &a.Status, &purchased, &a.PurchaseCost, &a.FoodEligible)
	if err != nil {
		return nil, err
	}
	a.BranchID = ptrInt(branch)
	a.DepartmentID = ptrInt(dept)
	a.LocationID = ptrInt(loc)
	a.AssignedTo = ptrInt(assignee)
	a.PurchaseDate = dateString(purchased)
	return &a, nil
}

func (r *PostgresAssetRepository) collect(ctx context.Context, query string, args ...any) ([]models.Asset, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []models.Asset{}
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		assets = append(assets, *a)
	}
	return assets, rows.Err()
}

// ListAssets returns one page of live assets and the total count.
// Search matches name or code; DateFrom/DateTo bound the purchase date.
func (r *PostgresAssetRepository) ListAssets(ctx context.Context, p models.ListParams) ([]models.Asset, int64, error) {
	var w whereBuilder
	w.raw("a.deleted_at IS NULL")
	if p.Search != "" {
		w.add("(a.name ILIKE $%[1]d OR a.code ILIKE $%[1]d)", "%"+p.Search+"%")
	}
	if p.Status != "" {
		w.add("a.status = $%d", p.Status)
	}
	if p.CategoryID > 0 {
		w.add("a.category_id = $%d", p.CategoryID)
	}
	if p.BranchID > 0 {
		w.add("a.branch_id = $%d", p.BranchID)
	}
	if !p.DateFrom.IsZero() {
		w.add("a.purchase_date >= $%d", p.DateFrom)
	}
	if !p.DateTo.IsZero() {
		w.add("a.purchase_date <= $%d", p.DateTo)
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets a`+w.sql(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListAssets count: %w", err)
	}

	limit, args := w.page(p)
	assets, err := r.collect(ctx, assetSelect+w.sql()+orderBy(p.Sort, assetSortColumns, "a.id")+limit, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListAssets: %w", err)
	}
	return assets, total, nil
}

// ListAssignedTo returns the live assets assigned to a user.
func (r *PostgresAssetRepository) ListAssignedTo(ctx context.Context, userID int64) ([]models.Asset, error) {
	assets, err := r.collect(ctx, assetSelect+` WHERE a.deleted_at IS NULL AND a.assigned_to = $1 ORDER BY a.name`, userID)
	if err != nil {
		return nil, fmt.Errorf("ListAssignedTo: %w", err)
	}
	return assets, nil
}

// ListFoodEligible returns active assets flagged for food storage or preparation.
func (r *PostgresAssetRepository) ListFoodEligible(ctx context.Context) ([]models.Asset, error) {
	assets, err := r.collect(ctx, assetSelect+` WHERE a.deleted_at IS NULL AND a.food_eligible = true AND a.status = $1 ORDER BY a.name`,
		string(models.AssetActive))
	if err != nil {
		return nil, fmt.Errorf("ListFoodEligible: %w", err)
	}
	return assets, nil
}

func (r *PostgresAssetRepository) GetAsset(ctx context.Context, id int64) (*models.Asset, error) {
	a, err := scanAsset(r.DB.QueryRowContext(ctx, assetSelect+` WHERE a.id = $1 AND a.deleted_at IS NULL`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetAsset: %w", err)
	}
	return a, nil
}

func (r *PostgresAssetRepository) CreateAsset(ctx context.Context, a models.Asset) (int64, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO assets (code, name, description, category_id, branch_id, department_id, location_id,
			assigned_to, status, purchase_date, purchase_cost, food_eligible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12) RETURNING id
	`, a.Code, a.Name, a.Description, a.CategoryID, nullInt(a.BranchID), nullInt(a.DepartmentID),
		nullInt(a.LocationID), nullInt(a.AssignedTo), string(a.Status), nullDate(a.PurchaseDate),
		a.PurchaseCost, a.FoodEligible).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("CreateAsset: %w", classify(err))
	}
	return id, nil
}

func (r *PostgresAssetRepository) UpdateAsset(ctx context.Context, a models.Asset) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE assets SET code = $2, name = $3, description = $4, category_id = $5, branch_id = $6,
			department_id = $7, location_id = $8, assigned_to = $9, status = $10, purchase_date = $11,
			purchase_cost = $12, food_eligible = $13
		WHERE id = $1 AND deleted_at IS NULL
	`, a.ID, a.Code, a.Name, a.Description, a.CategoryID, nullInt(a.BranchID), nullInt(a.DepartmentID),
		nullInt(a.LocationID), nullInt(a.AssignedTo), string(a.Status), nullDate(a.PurchaseDate),
		a.PurchaseCost, a.FoodEligible)
	if err != nil {
		return fmt.Errorf("UpdateAsset: %w", classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDeleteAsset marks an asset deleted.
func (r *PostgresAssetRepository) SoftDeleteAsset(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE assets SET deleted_at = now() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("SoftDeleteAsset: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
