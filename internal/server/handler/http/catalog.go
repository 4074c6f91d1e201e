package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Kurniawan20/effiework-sub000/internal/models"
	"github.com/Kurniawan20/effiework-sub000/internal/repository"
)

// CatalogService defines the category and lookup operations required by
// CatalogHandler.
type CatalogService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (*models.Category, error)
	CreateCategory(ctx context.Context, c models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, c models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListBranches(ctx context.Context) ([]models.Branch, error)
	ListDepartments(ctx context.Context) ([]models.Department, error)
	ListLocations(ctx context.Context) ([]models.Location, error)
}

// CatalogHandler serves /api/categories and the branch, department and
// location lookups. Lists are bare JSON arrays.
type CatalogHandler struct {
	Responder
	CatalogService CatalogService
}

func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.CatalogService.ListCategories(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, cats)
}

func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	c, err := h.CatalogService.GetCategory(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, c)
}

func (h *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if !h.decode(w, r, &c) {
		return
	}
	c.ID = 0
	created, err := h.CatalogService.CreateCategory(r.Context(), c)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusCreated, created)
}

func (h *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var c models.Category
	if !h.decode(w, r, &c) {
		return
	}
	c.ID = id
	updated, err := h.CatalogService.UpdateCategory(r.Context(), c)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, updated)
}

// DeleteCategory answers 409 "Category in use" while assets reference it.
func (h *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	err := h.CatalogService.DeleteCategory(r.Context(), id)
	switch {
	case errors.Is(err, repository.ErrInUse):
		h.message(w, http.StatusConflict, "Category in use")
	case err != nil:
		h.fail(w, r, err)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

func (h *CatalogHandler) ListBranches(w http.ResponseWriter, r *http.Request) {
	branches, err := h.CatalogService.ListBranches(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, branches)
}

func (h *CatalogHandler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	deps, err := h.CatalogService.ListDepartments(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, deps)
}

func (h *CatalogHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	locs, err := h.CatalogService.ListLocations(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, locs)
}
