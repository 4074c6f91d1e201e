package api

import (
	"context"

	"github.com/Kurniawan20/effiework-sub000/internal/client"
	"github.com/Kurniawan20/effiework-sub000/internal/client/query"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

type Branches struct {
	c *client.Client
}

func (b *Branches) List(ctx context.Context) ([]models.Branch, error) {
	return client.Get[[]models.Branch](ctx, b.c, "/branches")
}

type Departments struct {
	c *client.Client
}

func (d *Departments) List(ctx context.Context) ([]models.Department, error) {
	return client.Get[[]models.Department](ctx, d.c, "/departments")
}

type Locations struct {
	c *client.Client
}

func (l *Locations) List(ctx context.Context) ([]models.Location, error) {
	return client.Get[[]models.Location](ctx, l.c, "/locations")
}

// Users covers the paginated /users listing.
type Users struct {
	c *client.Client
}

func (u *Users) List(ctx context.Context, q query.ListQuery) (models.Page[models.User], error) {
	return listPage[models.User](ctx, u.c, "/users", q)
}
