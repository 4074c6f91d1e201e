package http

import (
	"context"
	"net/http"

	"github.com/Kurniawan20/effiework-sub000/internal/middleware"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// AssetService defines the asset operations required by AssetHandler.
type AssetService interface {
	List(ctx context.Context, p models.ListParams) (models.Page[models.Asset], error)
	Mine(ctx context.Context, userID int64) ([]models.Asset, error)
	FoodEligible(ctx context.Context) ([]models.Asset, error)
	Get(ctx context.Context, id int64) (*models.Asset, error)
	Create(ctx context.Context, a models.Asset) (*models.Asset, error)
	Update(ctx context.Context, a models.Asset) (*models.Asset, error)
	Delete(ctx context.Context, id int64) error
}

// AssetHandler serves /api/assets.
type AssetHandler struct {
	Responder
	AssetService AssetService
}

func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := h.listParams(w, r)
	if !ok {
		return
	}
	page, err := h.AssetService.List(r.Context(), p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, page)
}

// Mine handles GET /api/assets/my-assets.
func (h *AssetHandler) Mine(w http.ResponseWriter, r *http.Request) {
	assets, err := h.AssetService.Mine(r.Context(), middleware.GetUserIDFromContext(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, assets)
}

// FoodEligible handles GET /api/assets/available-for-food.
func (h *AssetHandler) FoodEligible(w http.ResponseWriter, r *http.Request) {
	assets, err := h.AssetService.FoodEligible(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, assets)
}

func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	a, err := h.AssetService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, a)
}

func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var a models.Asset
	if !h.decode(w, r, &a) {
		return
	}
	a.ID = 0
	created, err := h.AssetService.Create(r.Context(), a)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusCreated, created)
}

// Update handles PUT /api/assets/{id}. The id in the path wins over the body.
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var a models.Asset
	if !h.decode(w, r, &a) {
		return
	}
	a.ID = id
	updated, err := h.AssetService.Update(r.Context(), a)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, updated)
}

func (h *AssetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	if err := h.AssetService.Delete(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
