package api

import (
	"context"
	"fmt"

	"github.com/Kurniawan20/effiework-sub000/internal/client"
	"github.com/Kurniawan20/effiework-sub000/internal/client/query"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// Transfers covers /asset-transfers and its status workflow.
type Transfers struct {
	c *client.Client
}

func (t *Transfers) List(ctx context.Context, q query.ListQuery) (models.Page[models.Transfer], error) {
	return listPage[models.Transfer](ctx, t.c, "/asset-transfers", q)
}

func (t *Transfers) Get(ctx context.Context, id int64) (models.Transfer, error) {
	return client.Get[models.Transfer](ctx, t.c, fmt.Sprintf("/asset-transfers/%d", id))
}

// Create opens a PENDING transfer.
func (t *Transfers) Create(ctx context.Context, req models.TransferRequest) (models.Transfer, error) {
	return client.Post[models.Transfer](ctx, t.c, "/asset-transfers", req)
}

// SetStatus asks the backend to move a transfer to status. The backend
// decides whether the transition is allowed.
func (t *Transfers) SetStatus(ctx context.Context, id int64, status models.TransferStatus, note string) (models.Transfer, error) {
	return client.Patch[models.Transfer](ctx, t.c, fmt.Sprintf("/asset-transfers/%d/status", id),
		models.TransferStatusUpdate{Status: status, Note: note})
}

func (t *Transfers) Approve(ctx context.Context, id int64, note string) (models.Transfer, error) {
	return t.SetStatus(ctx, id, models.TransferApproved, note)
}

func (t *Transfers) Reject(ctx context.Context, id int64, note string) (models.Transfer, error) {
	return t.SetStatus(ctx, id, models.TransferRejected, note)
}

func (t *Transfers) Complete(ctx context.Context, id int64, note string) (models.Transfer, error) {
	return t.SetStatus(ctx, id, models.TransferCompleted, note)
}

func (t *Transfers) Cancel(ctx context.Context, id int64, note string) (models.Transfer, error) {
	return t.SetStatus(ctx, id, models.TransferCancelled, note)
}
