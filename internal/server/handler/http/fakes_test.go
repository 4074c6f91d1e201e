package http_test

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Kurniawan20/effiework-sub000/internal/auth"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// fakeTokens accepts the token "good" as user 7.
type fakeTokens struct{}

func (fakeTokens) Parse(token string) (*auth.Claims, error) {
	if token != "good" {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{Username: "alice", RegisteredClaims: jwt.RegisteredClaims{Subject: "7"}}, nil
}

type fakeAuthService struct {
	loginResp *models.LoginResponse
	err       error
	gotUserID int64
	gotParams models.ListParams
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (*models.LoginResponse, error) {
	return f.loginResp, f.err
}

func (f *fakeAuthService) Me(_ context.Context, userID int64) (*models.User, error) {
	f.gotUserID = userID
	return &models.User{ID: userID, Username: "alice"}, f.err
}

func (f *fakeAuthService) ListUsers(_ context.Context, p models.ListParams) (models.Page[models.User], error) {
	f.gotParams = p
	return models.Page[models.User]{Content: []models.User{{ID: 1}}, TotalElements: 1}, f.err
}

type fakeAssetService struct {
	err       error
	gotParams models.ListParams
	gotUserID int64
	gotAsset  models.Asset
	deleted   int64
}

func (f *fakeAssetService) List(_ context.Context, p models.ListParams) (models.Page[models.Asset], error) {
	f.gotParams = p
	return models.Page[models.Asset]{Content: []models.Asset{{ID: 1, Name: "Oven"}}, TotalElements: 31}, f.err
}

func (f *fakeAssetService) Mine(_ context.Context, userID int64) ([]models.Asset, error) {
	f.gotUserID = userID
	return []models.Asset{}, f.err
}

func (f *fakeAssetService) FoodEligible(context.Context) ([]models.Asset, error) {
	return []models.Asset{{ID: 2, FoodEligible: true}}, f.err
}

func (f *fakeAssetService) Get(_ context.Context, id int64) (*models.Asset, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Asset{ID: id}, nil
}

func (f *fakeAssetService) Create(_ context.Context, a models.Asset) (*models.Asset, error) {
	f.gotAsset = a
	a.ID = 99
	return &a, f.err
}

func (f *fakeAssetService) Update(_ context.Context, a models.Asset) (*models.Asset, error) {
	f.gotAsset = a
	return &a, f.err
}

func (f *fakeAssetService) Delete(_ context.Context, id int64) error {
	f.deleted = id
	return f.err
}

type fakeCatalogService struct {
	err error
}

func (f *fakeCatalogService) ListCategories(context.Context) ([]models.Category, error) {
	return []models.Category{{ID: 1, Name: "Kitchen"}}, f.err
}
func (f *fakeCatalogService) GetCategory(_ context.Context, id int64) (*models.Category, error) {
	return &models.Category{ID: id}, f.err
}
func (f *fakeCatalogService) CreateCategory(_ context.Context, c models.Category) (*models.Category, error) {
	return &c, f.err
}
func (f *fakeCatalogService) UpdateCategory(_ context.Context, c models.Category) (*models.Category, error) {
	return &c, f.err
}
func (f *fakeCatalogService) DeleteCategory(context.Context, int64) error { return f.err }
func (f *fakeCatalogService) ListBranches(context.Context) ([]models.Branch, error) {
	return []models.Branch{{ID: 1, Name: "Jakarta"}}, f.err
}
func (f *fakeCatalogService) ListDepartments(context.Context) ([]models.Department, error) {
	return []models.Department{}, f.err
}
func (f *fakeCatalogService) ListLocations(context.Context) ([]models.Location, error) {
	return []models.Location{}, f.err
}

type fakeTransferService struct {
	err       error
	gotUserID int64
	gotUpdate models.TransferStatusUpdate
}

func (f *fakeTransferService) List(context.Context, models.ListParams) (models.Page[models.Transfer], error) {
	return models.Page[models.Transfer]{Content: []models.Transfer{}}, f.err
}
func (f *fakeTransferService) Get(_ context.Context, id int64) (*models.Transfer, error) {
	return &models.Transfer{ID: id, Status: models.TransferPending}, f.err
}
func (f *fakeTransferService) Create(_ context.Context, userID int64, req models.TransferRequest) (*models.Transfer, error) {
	f.gotUserID = userID
	return &models.Transfer{ID: 1, AssetID: req.AssetID, Status: models.TransferPending}, f.err
}
func (f *fakeTransferService) UpdateStatus(_ context.Context, id int64, upd models.TransferStatusUpdate) (*models.Transfer, error) {
	f.gotUpdate = upd
	if f.err != nil {
		return nil, f.err
	}
	return &models.Transfer{ID: id, Status: upd.Status}, nil
}

type fakeFoodService struct {
	err   error
	panic bool
}

func (f *fakeFoodService) ListIngredients(context.Context, models.ListParams) (models.Page[models.Ingredient], error) {
	return models.Page[models.Ingredient]{Content: []models.Ingredient{}}, f.err
}
func (f *fakeFoodService) CreateIngredient(_ context.Context, i models.Ingredient) (*models.Ingredient, error) {
	return &i, f.err
}
func (f *fakeFoodService) ListMenuItems(context.Context, models.ListParams) (models.Page[models.MenuItem], error) {
	if f.panic {
		panic("menu exploded")
	}
	return models.Page[models.MenuItem]{Content: []models.MenuItem{}}, f.err
}
func (f *fakeFoodService) CreateMenuItem(_ context.Context, m models.MenuItem) (*models.MenuItem, error) {
	return &m, f.err
}

var errBoom = errors.New("boom")
