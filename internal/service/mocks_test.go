package service_test

import (
	"context"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

type mockUserRepo struct {
	UserExistsFunc    func(ctx context.Context, username string) (bool, error)
	CreateUserFunc    func(ctx context.Context, u models.User) (int64, error)
	GetByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
	GetByIDFunc       func(ctx context.Context, id int64) (*models.User, error)
	ListUsersFunc     func(ctx context.Context, p models.ListParams) ([]models.User, int64, error)
}

func (m *mockUserRepo) UserExists(ctx context.Context, username string) (bool, error) {
	return m.UserExistsFunc(ctx, username)
}
func (m *mockUserRepo) CreateUser(ctx context.Context, u models.User) (int64, error) {
	return m.CreateUserFunc(ctx, u)
}
func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return m.GetByUsernameFunc(ctx, username)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return m.GetByIDFunc(ctx, id)
}
func (m *mockUserRepo) ListUsers(ctx context.Context, p models.ListParams) ([]models.User, int64, error) {
	return m.ListUsersFunc(ctx, p)
}

type issuerFunc func(userID int64, username string) (string, error)

func (f issuerFunc) Issue(userID int64, username string) (string, error) { return f(userID, username) }

type mockAssetRepo struct {
	ListAssetsFunc       func(ctx context.Context, p models.ListParams) ([]models.Asset, int64, error)
	ListAssignedToFunc   func(ctx context.Context, userID int64) ([]models.Asset, error)
	ListFoodEligibleFunc func(ctx context.Context) ([]models.Asset, error)
	GetAssetFunc         func(ctx context.Context, id int64) (*models.Asset, error)
	CreateAssetFunc      func(ctx context.Context, a models.Asset) (int64, error)
	UpdateAssetFunc      func(ctx context.Context, a models.Asset) error
	SoftDeleteAssetFunc  func(ctx context.Context, id int64) error
}

func (m *mockAssetRepo) ListAssets(ctx context.Context, p models.ListParams) ([]models.Asset, int64, error) {
	return m.ListAssetsFunc(ctx, p)
}
func (m *mockAssetRepo) ListAssignedTo(ctx context.Context, userID int64) ([]models.Asset, error) {
	return m.ListAssignedToFunc(ctx, userID)
}
func (m *mockAssetRepo) ListFoodEligible(ctx context.Context) ([]models.Asset, error) {
	return m.ListFoodEligibleFunc(ctx)
}
func (m *mockAssetRepo) GetAsset(ctx context.Context, id int64) (*models.Asset, error) {
	return m.GetAssetFunc(ctx, id)
}
func (m *mockAssetRepo) CreateAsset(ctx context.Context, a models.Asset) (int64, error) {
	return m.CreateAssetFunc(ctx, a)
}
func (m *mockAssetRepo) UpdateAsset(ctx context.Context, a models.Asset) error {
	return m.UpdateAssetFunc(ctx, a)
}
func (m *mockAssetRepo) SoftDeleteAsset(ctx context.Context, id int64) error {
	return m.SoftDeleteAssetFunc(ctx, id)
}

type mockTransferRepo struct {
	ListTransfersFunc        func(ctx context.Context, p models.ListParams) ([]models.Transfer, int64, error)
	GetTransferFunc          func(ctx context.Context, id int64) (*models.Transfer, error)
	CreateTransferFunc       func(ctx context.Context, t models.Transfer) (*models.Transfer, error)
	UpdateTransferStatusFunc func(ctx context.Context, id int64, from, to models.TransferStatus, note string) error
}

func (m *mockTransferRepo) ListTransfers(ctx context.Context, p models.ListParams) ([]models.Transfer, int64, error) {
	return m.ListTransfersFunc(ctx, p)
}
func (m *mockTransferRepo) GetTransfer(ctx context.Context, id int64) (*models.Transfer, error) {
	return m.GetTransferFunc(ctx, id)
}
func (m *mockTransferRepo) CreateTransfer(ctx context.Context, t models.Transfer) (*models.Transfer, error) {
	return m.CreateTransferFunc(ctx, t)
}
func (m *mockTransferRepo) UpdateTransferStatus(ctx context.Context, id int64, from, to models.TransferStatus, note string) error {
	return m.UpdateTransferStatusFunc(ctx, id, from, to, note)
}

type mockCatalogRepo struct {
	ListCategoriesFunc  func(ctx context.Context) ([]models.Category, error)
	GetCategoryFunc     func(ctx context.Context, id int64) (*models.Category, error)
	CreateCategoryFunc  func(ctx context.Context, c models.Category) (*models.Category, error)
	UpdateCategoryFunc  func(ctx context.Context, c models.Category) (*models.Category, error)
	DeleteCategoryFunc  func(ctx context.Context, id int64) error
	ListBranchesFunc    func(ctx context.Context) ([]models.Branch, error)
	ListDepartmentsFunc func(ctx context.Context) ([]models.Department, error)
	ListLocationsFunc   func(ctx context.Context) ([]models.Location, error)
}

func (m *mockCatalogRepo) ListCategories(ctx context.Context) ([]models.Category, error) {
	return m.ListCategoriesFunc(ctx)
}
func (m *mockCatalogRepo) GetCategory(ctx context.Context, id int64) (*models.Category, error) {
	return m.GetCategoryFunc(ctx, id)
}
func (m *mockCatalogRepo) CreateCategory(ctx context.Context, c models.Category) (*models.Category, error) {
	return m.CreateCategoryFunc(ctx, c)
}
func (m *mockCatalogRepo) UpdateCategory(ctx context.Context, c models.Category) (*models.Category, error) {
	return m.UpdateCategoryFunc(ctx, c)
}
func (m *mockCatalogRepo) DeleteCategory(ctx context.Context, id int64) error {
	return m.DeleteCategoryFunc(ctx, id)
}
func (m *mockCatalogRepo) ListBranches(ctx context.Context) ([]models.Branch, error) {
	return m.ListBranchesFunc(ctx)
}
func (m *mockCatalogRepo) ListDepartments(ctx context.Context) ([]models.Department, error) {
	return m.ListDepartmentsFunc(ctx)
}
func (m *mockCatalogRepo) ListLocations(ctx context.Context) ([]models.Location, error) {
	return m.ListLocationsFunc(ctx)
}

type mockFoodRepo struct {
	ListIngredientsFunc  func(ctx context.Context, p models.ListParams) ([]models.Ingredient, int64, error)
	CreateIngredientFunc func(ctx context.Context, i models.Ingredient) (*models.Ingredient, error)
	ListMenuItemsFunc    func(ctx context.Context, p models.ListParams) ([]models.MenuItem, int64, error)
	CreateMenuItemFunc   func(ctx context.Context, m models.MenuItem) (*models.MenuItem, error)
}

func (m *mockFoodRepo) ListIngredients(ctx context.Context, p models.ListParams) ([]models.Ingredient, int64, error) {
	return m.ListIngredientsFunc(ctx, p)
}
func (m *mockFoodRepo) CreateIngredient(ctx context.Context, i models.Ingredient) (*models.Ingredient, error) {
	return m.CreateIngredientFunc(ctx, i)
}
func (m *mockFoodRepo) ListMenuItems(ctx context.Context, p models.ListParams) ([]models.MenuItem, int64, error) {
	return m.ListMenuItemsFunc(ctx, p)
}
func (m *mockFoodRepo) CreateMenuItem(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	return m.CreateMenuItemFunc(ctx, item)
}
