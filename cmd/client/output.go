package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kurniawan20/effiework-sub000/internal/client"
	"github.com/Kurniawan20/effiework-sub000/internal/client/api"
	"github.com/Kurniawan20/effiework-sub000/internal/client/query"
	"github.com/Kurniawan20/effiework-sub000/internal/models"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describe turns client errors into one line for the terminal.
func describe(err error) string {
	if errors.Is(err, client.ErrAuthRequired) {
		return "not logged in, run `effiework login`"
	}
	var apiErr *client.APIError
	if !errors.As(err, &apiErr) {
		return err.Error()
	}
	if client.IsUnauthorized(err) {
		return fmt.Sprintf("%s (HTTP 401), run `effiework login`", apiErr.Message)
	}
	return fmt.Sprintf("%s (HTTP %d)", apiErr.Message, apiErr.StatusCode)
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// readJSON decodes the file at path ("-" for stdin) into v.
func readJSON(path string, v any) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// listFlags are the pagination and filter flags shared by list commands.
type listFlags struct {
	page     int
	size     int
	search   string
	status   string
	sort     string
	from     string
	to       string
	category int64
	branch   int64
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&f.size, "size", query.DefaultPageSize, "page size")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "search text")
	cmd.Flags().StringVar(&f.status, "status", "", "status filter")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort as field,asc|desc")
	cmd.Flags().StringVar(&f.from, "from", "", "start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.to, "to", "", "end date (YYYY-MM-DD)")
	cmd.Flags().Int64Var(&f.category, "category", 0, "category id")
	cmd.Flags().Int64Var(&f.branch, "branch", 0, "branch id")
}

func (f *listFlags) filter() (query.Filter, error) {
	flt := query.Filter{
		Search:     f.search,
		Status:     f.status,
		Sort:       f.sort,
		CategoryID: f.category,
	}
	var err error
	if f.from != "" {
		if flt.DateFrom, err = time.Parse(time.DateOnly, f.from); err != nil {
			return flt, fmt.Errorf("invalid --from %q", f.from)
		}
	}
	if f.to != "" {
		if flt.DateTo, err = time.Parse(time.DateOnly, f.to); err != nil {
			return flt, fmt.Errorf("invalid --to %q", f.to)
		}
	}
	if f.branch > 0 {
		flt.Extra = map[string]string{"branchId": strconv.FormatInt(f.branch, 10)}
	}
	return flt, nil
}

// runList loads the requested page through a ListView, so a page past the
// end is clamped to the last one, and prints its content.
func runList[T any](cmd *cobra.Command, f *listFlags, fetch func(ctx context.Context, q query.ListQuery) (models.Page[T], error)) error {
	flt, err := f.filter()
	if err != nil {
		return err
	}
	view := api.NewListView(f.size, fetch)
	view.Pager.SetFilter(flt)
	view.Pager.GoTo(f.page - 1)

	page, err := view.Load(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "page %d of %d, %d total\n",
		view.Pager.Page()+1, max(view.Pager.TotalPages(), 1), page.TotalElements)
	return printJSON(cmd.OutOrStdout(), page.Content)
}
