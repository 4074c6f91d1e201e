package api

import (
	"context"
	"fmt"

	"github.com/Kurniawan20/effiework-sub000/internal/client"
	"github.com/Kurniawan20/effiework-sub000/internal/client/query"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// Assets covers /assets.
type Assets struct {
	c *client.Client
}

// List returns one page of assets matching q.
func (a *Assets) List(ctx context.Context, q query.ListQuery) (models.Page[models.Asset], error) {
	return listPage[models.Asset](ctx, a.c, "/assets", q)
}

func (a *Assets) Get(ctx context.Context, id int64) (models.Asset, error) {
	return client.Get[models.Asset](ctx, a.c, fmt.Sprintf("/assets/%d", id))
}

// Mine returns the assets assigned to the current user.
func (a *Assets) Mine(ctx context.Context) ([]models.Asset, error) {
	return client.Get[[]models.Asset](ctx, a.c, "/assets/my-assets")
}

// AvailableForFood returns assets that can be linked to ingredients.
func (a *Assets) AvailableForFood(ctx context.Context) ([]models.Asset, error) {
	return client.Get[[]models.Asset](ctx, a.c, "/assets/available-for-food")
}

func (a *Assets) Create(ctx context.Context, asset models.Asset) (models.Asset, error) {
	return client.Post[models.Asset](ctx, a.c, "/assets", asset)
}

func (a *Assets) Update(ctx context.Context, asset models.Asset) (models.Asset, error) {
	return client.Put[models.Asset](ctx, a.c, fmt.Sprintf("/assets/%d", asset.ID), asset)
}

func (a *Assets) Delete(ctx context.Context, id int64) error {
	return a.c.Delete(ctx, fmt.Sprintf("/assets/%d", id))
}
