// Package api groups the typed endpoint wrappers the dashboard screens call.
// Every wrapper is a thin layer over client.Client; business rules live in
// the backend.
package api

import (
	"context"

	"github.com/Kurniawan20/effiework-sub000/internal/client"
	"github.com/Kurniawan20/effiework-sub000/internal/client/query"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// API bundles the endpoint modules sharing one Client.
type API struct {
	Auth        *Auth
	Assets      *Assets
	Categories  *Categories
	Transfers   *Transfers
	Branches    *Branches
	Departments *Departments
	Locations   *Locations
	Users       *Users
	Ingredients *Ingredients
	MenuItems   *MenuItems
	Dashboard   *Dashboard
}

// New wires every module to c.
func New(c *client.Client) *API {
	a := &API{
		Auth:        &Auth{c: c},
		Assets:      &Assets{c: c},
		Categories:  &Categories{c: c},
		Transfers:   &Transfers{c: c},
		Branches:    &Branches{c: c},
		Departments: &Departments{c: c},
		Locations:   &Locations{c: c},
		Users:       &Users{c: c},
		Ingredients: &Ingredients{c: c},
		MenuItems:   &MenuItems{c: c},
	}
	a.Dashboard = &Dashboard{assets: a.Assets, transfers: a.Transfers, categories: a.Categories, ingredients: a.Ingredients}
	return a
}

func listPage[T any](ctx context.Context, c *client.Client, endpoint string, q query.ListQuery) (models.Page[T], error) {
	return client.Get[models.Page[T]](ctx, c, q.Path(endpoint))
}

// ListView drives one paginated screen: it fetches the pager's current
// query, discards superseded responses and clamps the page to the new total.
type ListView[T any] struct {
	Pager   *query.Pager
	tracker query.Tracker
	fetch   func(context.Context, query.ListQuery) (models.Page[T], error)
}

// NewListView returns a view with the given page size over fetch, for
// example Assets.List.
func NewListView[T any](size int, fetch func(context.Context, query.ListQuery) (models.Page[T], error)) *ListView[T] {
	return &ListView[T]{Pager: query.NewPager(size), fetch: fetch}
}

// Load fetches the current page. When the requested page lies beyond the
// reported total it is clamped and the last valid page is fetched instead.
// A response overtaken by a later Load, or by a filter or size change made
// while it was in flight, returns query.ErrStale and leaves the pager as is.
func (v *ListView[T]) Load(ctx context.Context) (models.Page[T], error) {
	q := v.Pager.Query()
	page, err := v.load(ctx, q)
	if err != nil {
		return page, err
	}
	if cur := v.Pager.Query(); cur.Page != q.Page {
		return v.load(ctx, cur)
	}
	return page, nil
}

func (v *ListView[T]) load(ctx context.Context, q query.ListQuery) (models.Page[T], error) {
	page, err := query.Fetch(ctx, &v.tracker, func(ctx context.Context) (models.Page[T], error) {
		return v.fetch(ctx, q)
	})
	if err != nil {
		return page, err
	}
	// The filter or size changed while q was in flight.
	if cur := v.Pager.Query(); cur.Size != q.Size || !cur.Filter.Equal(q.Filter) {
		return models.Page[T]{}, query.ErrStale
	}
	v.Pager.SetTotal(page.TotalElements)
	return page, nil
}
