package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// PostgresCatalogRepository stores categories and the branch, department
// and location lookup tables.
type PostgresCatalogRepository struct {
	DB *sql.DB
}

// NewPostgresCatalogRepository creates a new PostgresCatalogRepository.
func NewPostgresCatalogRepository(db *sql.DB) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{DB: db}
}

// ListCategories returns all categories ordered by name.
func (r *PostgresCatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, code, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer rows.Close()

	cats := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Code, &c.Description); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

func (r *PostgresCatalogRepository) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, name, code, description FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.Code, &c.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetCategory: %w", err)
	}
	return &c, nil
}

func (r *PostgresCatalogRepository) CreateCategory(ctx context.Context, c models.Category) (*models.Category, error) {
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO categories (name, code, description) VALUES ($1, $2, $3) RETURNING id`,
		c.Name, c.Code, c.Description,
	).Scan(&c.ID)
	if err != nil {
		return nil, fmt.Errorf("CreateCategory: %w", classify(err))
	}
	return &c, nil
}

func (r *PostgresCatalogRepository) UpdateCategory(ctx context.Context, c models.Category) (*models.Category, error) {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE categories SET name = $2, code = $3, description = $4 WHERE id = $1`,
		c.ID, c.Name, c.Code, c.Description,
	)
	if err != nil {
		return nil, fmt.Errorf("UpdateCategory: %w", classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, ErrNotFound
	}
	return &c, nil
}

// DeleteCategory removes a category. Soft-deleted assets of the category
// are purged with it; live assets still referencing it make the foreign key
// fail, reported as ErrInUse.
func (r *PostgresCatalogRepository) DeleteCategory(ctx context.Context, id int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM assets WHERE category_id = $1 AND deleted_at IS NOT NULL`, id,
	); err != nil {
		return fmt.Errorf("purge deleted assets: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteCategory: %w", classifyDelete(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *PostgresCatalogRepository) ListBranches(ctx context.Context) ([]models.Branch, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, code, address FROM branches ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("ListBranches: %w", err)
	}
	defer rows.Close()

	branches := []models.Branch{}
	for rows.Next() {
		var b models.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Code, &b.Address); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (r *PostgresCatalogRepository) ListDepartments(ctx context.Context) ([]models.Department, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, branch_id FROM departments ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("ListDepartments: %w", err)
	}
	defer rows.Close()

	deps := []models.Department{}
	for rows.Next() {
		var (
			d      models.Department
			branch sql.NullInt64
		)
		if err := rows.Scan(&d.ID, &d.Name, &branch); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		d.BranchID = ptrInt(branch)
		deps = append(deps, d)
	}
	return deps, rows.Err()
}

func (r *PostgresCatalogRepository) ListLocations(ctx context.Context) ([]models.Location, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, branch_id FROM locations ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("ListLocations: %w", err)
	}
	defer rows.Close()

	locs := []models.Location{}
	for rows.Next() {
		var (
			l      models.Location
			branch sql.NullInt64
		)
		if err := rows.Scan(&l.ID, &l.Name, &branch); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		l.BranchID = ptrInt(branch)
		locs = append(locs, l)
	}
	return locs, rows.Err()
}
