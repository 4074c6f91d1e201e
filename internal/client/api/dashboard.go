package api

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Kurniawan20/effiework-sub000/internal/client/query"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

// Summary holds the headline counters of the dashboard home screen.
type Summary struct {
	Assets           int64 `json:"assets"`
	ActiveAssets     int64 `json:"activeAssets"`
	PendingTransfers int64 `json:"pendingTransfers"`
	Categories       int   `json:"categories"`
	Ingredients      int64 `json:"ingredients"`
}

// Dashboard aggregates counters from several endpoints.
type Dashboard struct {
	assets      *Assets
	transfers   *Transfers
	categories  *Categories
	ingredients *Ingredients
}

// Summary fetches all counters concurrently. The first failure cancels the
// remaining requests and is returned.
func (d *Dashboard) Summary(ctx context.Context) (Summary, error) {
	var s Summary
	g, ctx := errgroup.WithContext(ctx)
	one := query.ListQuery{Page: 0, Size: 1}

	g.Go(func() error {
		p, err := d.assets.List(ctx, one)
		s.Assets = p.TotalElements
		return err
	})
	g.Go(func() error {
		q := one
		q.Filter.Status = string(models.AssetActive)
		p, err := d.assets.List(ctx, q)
		s.ActiveAssets = p.TotalElements
		return err
	})
	g.Go(func() error {
		q := one
		q.Filter.Status = string(models.TransferPending)
		p, err := d.transfers.List(ctx, q)
		s.PendingTransfers = p.TotalElements
		return err
	})
	g.Go(func() error {
		cats, err := d.categories.List(ctx)
		s.Categories = len(cats)
		return err
	})
	g.Go(func() error {
		p, err := d.ingredients.List(ctx, one)
		s.Ingredients = p.TotalElements
		return err
	})

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}
	return s, nil
}
