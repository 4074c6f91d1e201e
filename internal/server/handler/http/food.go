package http

import (
	"context"
	"net/http"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// FoodService defines the kitchen operations required by FoodHandler.
type FoodService interface {
	ListIngredients(ctx context.Context, p models.ListParams) (models.Page[models.Ingredient], error)
	CreateIngredient(ctx context.Context, i models.Ingredient) (*models.Ingredient, error)
	ListMenuItems(ctx context.Context, p models.ListParams) (models.Page[models.MenuItem], error)
	CreateMenuItem(ctx context.Context, m models.MenuItem) (*models.MenuItem, error)
}

// FoodHandler serves /api/food.
type FoodHandler struct {
	Responder
	FoodService FoodService
}

func (h *FoodHandler) ListIngredients(w http.ResponseWriter, r *http.Request) {
	p, ok := h.listParams(w, r)
	if !ok {
		return
	}
	page, err := h.FoodService.ListIngredients(r.Context(), p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, page)
}

func (h *FoodHandler) CreateIngredient(w http.ResponseWriter, r *http.Request) {
	var i models.Ingredient
	if !h.decode(w, r, &i) {
		return
	}
	i.ID = 0
	created, err := h.FoodService.CreateIngredient(r.Context(), i)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusCreated, created)
}

func (h *FoodHandler) ListMenuItems(w http.ResponseWriter, r *http.Request) {
	p, ok := h.listParams(w, r)
	if !ok {
		return
	}
	page, err := h.FoodService.ListMenuItems(r.Context(), p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, page)
}

func (h *FoodHandler) CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var m models.MenuItem
	if !h.decode(w, r, &m) {
		return
	}
	m.ID = 0
	created, err := h.FoodService.CreateMenuItem(r.Context(), m)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusCreated, created)
}
