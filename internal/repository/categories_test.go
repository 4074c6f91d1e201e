package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

func TestListCategories(t *testing.T) {
	db, mock, cleanup := setupMock(t)
	defer cleanup()
	repo := NewPostgresCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, code, description FROM categories ORDER BY name`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "description"}).
			AddRow(int64(1), "Furniture", "FUR", "").
			AddRow(int64(2), "Kitchen", "KIT", "Cooking equipment"))

	cats, err := repo.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cats) != 2 || cats[1].Name != "Kitchen" {
		t.Errorf("unexpected categories: %+v", cats)
	}
}

func TestListCategories_EmptyIsNotNil(t *testing.T) {
	db, mock, cleanup := setupMock(t)
	defer cleanup()
	repo := NewPostgresCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM categories`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "code", "description"}))

	cats, err := repo.ListCategories(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cats == nil {
		t.Error("expected empty slice so the JSON body is [] not null")
	}
}

func TestCreateCategory_Duplicate(t *testing.T) {
	db, mock, cleanup := setupMock(t)
	defer cleanup()
	repo := NewPostgresCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO categories`)).
		WithArgs("Kitchen", "KIT", "").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key"})

	_, err := repo.CreateCategory(context.Background(), models.Category{Name: "Kitchen", Code: "KIT"})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestUpdateCategory_NotFound(t *testing.T) {
	db, mock, cleanup := setupMock(t)
	defer cleanup()
	repo := NewPostgresCatalogRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE categories SET`)).
		WithArgs(int64(9), "X", "", "").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := repo.UpdateCategory(context.Background(), models.Category{ID: 9, Name: "X"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func expectPurgeDeleted(mock sqlmock.Sqlmock, id int64, purged int64) {
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM assets WHERE category_id = $1 AND deleted_at IS NOT NULL`)).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, purged))
}

func TestDeleteCategory_InUse(t *testing.T) {
	db, mock, cleanup := setupMock(t)
	defer cleanup()
	repo := NewPostgresCatalogRepository(db)

	mock.ExpectBegin()
	expectPurgeDeleted(mock, 1, 0)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "assets_category_id_fkey"})
	mock.ExpectRollback()

	err := repo.DeleteCategory(context.Background(), 1)
	if !errors.Is(err, ErrInUse) {
		t.Errorf("expected ErrInUse, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDeleteCategory_OnlySoftDeletedAssets(t *testing.T) {
	db, mock, cleanup := setupMock(t)
	defer cleanup()
	repo := NewPostgresCatalogRepository(db)

	mock.ExpectBegin()
	expectPurgeDeleted(mock, 2, 3)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.DeleteCategory(context.Background(), 2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDeleteCategory_NotFound(t *testing.T) {
	db, mock, cleanup := setupMock(t)
	defer cleanup()
	repo := NewPostgresCatalogRepository(db)

	mock.ExpectBegin()
	expectPurgeDeleted(mock, 8, 0)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM categories WHERE id = $1`)).
		WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	if err := repo.DeleteCategory(context.Background(), 8); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestListDepartments(t *testing.T) {
	db, mock, cleanup := setupMock(t)
	defer cleanup()
	repo := NewPostgresCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, branch_id FROM departments`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "branch_id"}).
			AddRow(int64(1), "Kitchen", int64(3)).
			AddRow(int64(2), "Head Office", nil))

	deps, err := repo.ListDepartments(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deps) != 2 || deps[0].BranchID == nil || *deps[0].BranchID != 3 || deps[1].BranchID != nil {
		t.Errorf("unexpected departments: %+v", deps)
	}
}

func TestListBranches_QueryError(t *testing.T) {
	db, mock, cleanup := setupMock(t)
	defer cleanup()
	repo := NewPostgresCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM branches`)).WillReturnError(errors.New("conn reset"))

	_, err := repo.ListBranches(context.Background())
	if err == nil || !regexp.MustCompile(`ListBranches`).MatchString(err.Error()) {
		t.Errorf("expected ListBranches error, got %v", err)
	}
}
