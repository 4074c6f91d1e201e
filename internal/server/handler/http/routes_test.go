package http_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
	"github.com/Kurniawan20/effiework-sub000/internal/repository"
	handler "github.com/Kurniawan20/effiework-sub000/internal/server/handler/http"
	"github.com/Kurniawan20/effiework-sub000/internal/service"
)

type fixture struct {
	auth      *fakeAuthService
	assets    *fakeAssetService
	catalog   *fakeCatalogService
	transfers *fakeTransferService
	food      *fakeFoodService
	router    http.Handler
}

func newFixture() *fixture {
	f := &fixture{
		auth:      &fakeAuthService{},
		assets:    &fakeAssetService{},
		catalog:   &fakeCatalogService{},
		transfers: &fakeTransferService{},
		food:      &fakeFoodService{},
	}
	rs := handler.Responder{Log: zap.NewNop()}
	f.router = handler.NewRouter(handler.Handlers{
		Auth:      &handler.AuthHandler{Responder: rs, AuthService: f.auth},
		Assets:    &handler.AssetHandler{Responder: rs, AssetService: f.assets},
		Catalog:   &handler.CatalogHandler{Responder: rs, CatalogService: f.catalog},
		Transfers: &handler.TransferHandler{Responder: rs, TransferService: f.transfers},
		Food:      &handler.FoodHandler{Responder: rs, FoodService: f.food},
	}, fakeTokens{}, []string{"http://localhost:5173"}, zap.NewNop())
	return f
}

func (f *fixture) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authed {
		req.Header.Set("Authorization", "Bearer good")
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func messageOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var e models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e), "body: %s", rec.Body.String())
	return e.Message
}

func TestLogin_IsPublic(t *testing.T) {
	f := newFixture()
	f.auth.loginResp = &models.LoginResponse{Token: "tok", User: models.User{ID: 7}}

	rec := f.do(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"pw"}`, false)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "tok", resp.Token)
}

func TestLogin_BadCredentials(t *testing.T) {
	f := newFixture()
	f.auth.err = service.ErrInvalidCredentials

	rec := f.do(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"x"}`, false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid username or password", messageOf(t, rec))
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	f := newFixture()
	for _, target := range []string{"/api/assets", "/api/auth/me", "/api/categories", "/api/asset-transfers", "/api/food/ingredients"} {
		rec := f.do(http.MethodGet, target, "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.NotEmpty(t, messageOf(t, rec), target)
	}
}

func TestMe_UsesTokenSubject(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodGet, "/api/auth/me", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), f.auth.gotUserID)
}

func TestAssetsList_ParsesQuery(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodGet,
		"/api/assets?page=2&size=500&search=oven&status=ACTIVE&categoryId=4&branchId=3&dateFrom=2024-01-01&dateTo=2024-12-31&sort=name,desc",
		"", true)

	require.Equal(t, http.StatusOK, rec.Code)
	want := models.ListParams{
		Page: 2, Size: 100, Search: "oven", Status: "ACTIVE", CategoryID: 4, BranchID: 3,
		DateFrom: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
		Sort:     "name,desc",
	}
	assert.Equal(t, want, f.assets.gotParams)

	var page models.Page[models.Asset]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, int64(31), page.TotalElements)
	assert.Len(t, page.Content, 1)
}

func TestAssetsList_Defaults(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodGet, "/api/assets", "", true)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ListParams{Size: 10}, f.assets.gotParams)
}

func TestAssetsList_BadQuery(t *testing.T) {
	f := newFixture()
	for _, q := range []string{"page=-1", "size=0", "size=x", "categoryId=abc", "dateFrom=01-01-2024"} {
		rec := f.do(http.MethodGet, "/api/assets?"+q, "", true)
		assert.Equal(t, http.StatusBadRequest, rec.Code, q)
		assert.NotEmpty(t, messageOf(t, rec), q)
	}
}

func TestAssets_StaticRoutesBeforeID(t *testing.T) {
	f := newFixture()

	rec := f.do(http.MethodGet, "/api/assets/my-assets", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), f.assets.gotUserID)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = f.do(http.MethodGet, "/api/assets/available-for-food", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"foodEligible":true`)
}

func TestAssets_GetNotFound(t *testing.T) {
	f := newFixture()
	f.assets.err = repository.ErrNotFound

	rec := f.do(http.MethodGet, "/api/assets/42", "", true)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found", messageOf(t, rec))
}

func TestAssets_BadID(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodGet, "/api/assets/abc", "", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid id", messageOf(t, rec))
}

func TestAssets_CreateAndValidation(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodPost, "/api/assets", `{"id":5,"code":"A1","name":"Oven","categoryId":2}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(0), f.assets.gotAsset.ID, "client-supplied id must be ignored")

	f.assets.err = fmt.Errorf("%w: asset name is required", service.ErrInvalidInput)
	rec = f.do(http.MethodPost, "/api/assets", `{"code":"A1"}`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid input: asset name is required", messageOf(t, rec))
}

func TestAssets_InvalidBody(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodPost, "/api/assets", `{not json`, true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid request body", messageOf(t, rec))
}

func TestAssets_UpdateUsesPathID(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodPut, "/api/assets/12", `{"id":1,"code":"A1","name":"Oven","categoryId":2}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(12), f.assets.gotAsset.ID)
}

func TestAssets_Delete(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodDelete, "/api/assets/12", "", true)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, int64(12), f.assets.deleted)
	assert.Empty(t, rec.Body.String())
}

func TestCategories_ListIsBareArray(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodGet, "/api/categories", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Kitchen"}]`, rec.Body.String())
}

func TestCategories_DeleteInUse(t *testing.T) {
	f := newFixture()
	f.catalog.err = fmt.Errorf("DeleteCategory: %w", repository.ErrInUse)

	rec := f.do(http.MethodDelete, "/api/categories/1", "", true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "Category in use", messageOf(t, rec))
}

func TestLookups(t *testing.T) {
	f := newFixture()
	for _, target := range []string{"/api/branches", "/api/departments", "/api/locations"} {
		rec := f.do(http.MethodGet, target, "", true)
		assert.Equal(t, http.StatusOK, rec.Code, target)
		assert.True(t, strings.HasPrefix(rec.Body.String(), "["), target)
	}
}

func TestUsers_Page(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodGet, "/api/users?page=1&size=5&search=sa", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.ListParams{Page: 1, Size: 5, Search: "sa"}, f.auth.gotParams)
	assert.JSONEq(t, `{"content":[{"id":1,"username":""}],"totalElements":1}`, rec.Body.String())
}

func TestTransfers_CreateUsesCaller(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodPost, "/api/asset-transfers", `{"assetId":3,"toBranchId":2}`, true)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(7), f.transfers.gotUserID)
}

func TestTransfers_UpdateStatus(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodPatch, "/api/asset-transfers/4/status", `{"status":"APPROVED","note":"ok"}`, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.TransferStatusUpdate{Status: models.TransferApproved, Note: "ok"}, f.transfers.gotUpdate)
	assert.Contains(t, rec.Body.String(), `"status":"APPROVED"`)
}

func TestTransfers_InvalidTransition(t *testing.T) {
	f := newFixture()
	f.transfers.err = fmt.Errorf("%w: COMPLETED to APPROVED", service.ErrInvalidTransition)

	rec := f.do(http.MethodPatch, "/api/asset-transfers/4/status", `{"status":"APPROVED"}`, true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "invalid status transition: COMPLETED to APPROVED", messageOf(t, rec))
}

func TestFood_Routes(t *testing.T) {
	f := newFixture()
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/food/ingredients?status=LOW_STOCK", "", true).Code)
	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/api/food/menu-items", "", true).Code)
	assert.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/food/ingredients", `{"name":"Flour","unit":"kg"}`, true).Code)
	assert.Equal(t, http.StatusCreated, f.do(http.MethodPost, "/api/food/menu-items", `{"name":"Es Teh","price":5000}`, true).Code)
}

func TestInternalError_HidesCause(t *testing.T) {
	f := newFixture()
	f.food.err = errBoom

	rec := f.do(http.MethodGet, "/api/food/menu-items", "", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal error", messageOf(t, rec))
}

func TestPanic_JSON500(t *testing.T) {
	f := newFixture()
	f.food.panic = true

	rec := f.do(http.MethodGet, "/api/food/menu-items", "", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "internal error", messageOf(t, rec))
}

func TestNonJSONBody_JSON415(t *testing.T) {
	f := newFixture()
	req := httptest.NewRequest(http.MethodPost, "/api/assets", strings.NewReader("code=A1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.Equal(t, "Unsupported Media Type", messageOf(t, rec))
	assert.Equal(t, models.Asset{}, f.assets.gotAsset)
}

func TestAssets_CreateUnknownReference(t *testing.T) {
	f := newFixture()
	f.assets.err = fmt.Errorf("CreateAsset: %w: assets_category_id_fkey", repository.ErrInvalidReference)

	rec := f.do(http.MethodPost, "/api/assets", `{"code":"A1","name":"Oven","categoryId":404}`, true)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Referenced record does not exist", messageOf(t, rec))
}

func TestTransfers_CreateAssetUnavailable(t *testing.T) {
	f := newFixture()
	f.transfers.err = fmt.Errorf("%w: asset was claimed by another transfer", service.ErrAssetUnavailable)

	rec := f.do(http.MethodPost, "/api/asset-transfers", `{"assetId":3,"toBranchId":2}`, true)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, messageOf(t, rec), "claimed by another transfer")
}

func TestUnknownRoute_JSON404(t *testing.T) {
	f := newFixture()
	rec := f.do(http.MethodGet, "/api/nope", "", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Resource not found", messageOf(t, rec))
}

func TestCORS_Preflight(t *testing.T) {
	f := newFixture()
	req := httptest.NewRequest(http.MethodOptions, "/api/assets", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "Authorization")
	rec := httptest.NewRecorder()

	f.router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Less(t, rec.Code, 300)
}
