package http

import (
	"context"
	"net/http"

	"github.com/Kurniawan20/effiework-sub000/internal/middleware"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// TransferService defines the transfer operations required by TransferHandler.
type TransferService interface {
	List(ctx context.Context, p models.ListParams) (models.Page[models.Transfer], error)
	Get(ctx context.Context, id int64) (*models.Transfer, error)
	Create(ctx context.Context, userID int64, req models.TransferRequest) (*models.Transfer, error)
	UpdateStatus(ctx context.Context, id int64, upd models.TransferStatusUpdate) (*models.Transfer, error)
}

// TransferHandler serves /api/asset-transfers.
type TransferHandler struct {
	Responder
	TransferService TransferService
}

func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	p, ok := h.listParams(w, r)
	if !ok {
		return
	}
	page, err := h.TransferService.List(r.Context(), p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, page)
}

func (h *TransferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	t, err := h.TransferService.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, t)
}

// Create handles POST /api/asset-transfers on behalf of the calling user.
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.TransferRequest
	if !h.decode(w, r, &req) {
		return
	}
	t, err := h.TransferService.Create(r.Context(), middleware.GetUserIDFromContext(r.Context()), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusCreated, t)
}

// UpdateStatus handles PATCH /api/asset-transfers/{id}/status.
func (h *TransferHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}
	var upd models.TransferStatusUpdate
	if !h.decode(w, r, &upd) {
		return
	}
	t, err := h.TransferService.UpdateStatus(r.Context(), id, upd)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.json(w, http.StatusOK, t)
}
