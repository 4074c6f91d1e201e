package api

import (
	"context"

	"github.com/Kurniawan20/effiework-sub000/internal/client"
	"github.com/Kurniawan20/effiework-sub000/internal/client/query"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// Ingredients covers /food/ingredients.
type Ingredients struct {
	c *client.Client
}

func (i *Ingredients) List(ctx context.Context, q query.ListQuery) (models.Page[models.Ingredient], error) {
	return listPage[models.Ingredient](ctx, i.c, "/food/ingredients", q)
}

func (i *Ingredients) Create(ctx context.Context, ing models.Ingredient) (models.Ingredient, error) {
	return client.Post[models.Ingredient](ctx, i.c, "/food/ingredients", ing)
}

// MenuItems covers /food/menu-items.
type MenuItems struct {
	c *client.Client
}

func (m *MenuItems) List(ctx context.Context, q query.ListQuery) (models.Page[models.MenuItem], error) {
	return listPage[models.MenuItem](ctx, m.c, "/food/menu-items", q)
}

func (m *MenuItems) Create(ctx context.Context, item models.MenuItem) (models.MenuItem, error) {
	return client.Post[models.MenuItem](ctx, m.c, "/food/menu-items", item)
}
