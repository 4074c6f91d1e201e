package api

import (
	"context"
	"fmt"

	"github.com/Kurniawan20/effiework-sub000/internal/client"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// Categories covers /categories. The endpoint returns a bare array.
type Categories struct {
	c *client.Client
}

func (cs *Categories) List(ctx context.Context) ([]models.Category, error) {
	return client.Get[[]models.Category](ctx, cs.c, "/categories")
}

func (cs *Categories) Get(ctx context.Context, id int64) (models.Category, error) {
	return client.Get[models.Category](ctx, cs.c, fmt.Sprintf("/categories/%d", id))
}

func (cs *Categories) Create(ctx context.Context, cat models.Category) (models.Category, error) {
	return client.Post[models.Category](ctx, cs.c, "/categories", cat)
}

func (cs *Categories) Update(ctx context.Context, cat models.Category) (models.Category, error) {
	return client.Put[models.Category](ctx, cs.c, fmt.Sprintf("/categories/%d", cat.ID), cat)
}

// Delete removes a category. The backend answers 409 while assets still use it.
func (cs *Categories) Delete(ctx context.Context, id int64) error {
	return cs.c.Delete(ctx, fmt.Sprintf("/categories/%d", id))
}
