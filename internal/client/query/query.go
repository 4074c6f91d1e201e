// Package query builds list queries for paginated endpoints and keeps the
// page index consistent while filters, page size and totals change.
package query

import (
	"net/url"
	"sort"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// Filter holds the optional list filters. Zero values are not sent.
type Filter struct {
	Search     string
	Status     string
	CategoryID int64
	DateFrom   time.Time
	DateTo     time.Time
	Sort       string
	// Extra carries endpoint-specific parameters such as branchId.
	Extra map[string]string
}

// Equal reports whether two filters would produce the same parameters.
func (f Filter) Equal(o Filter) bool {
	return f.values().Encode() == o.values().Encode()
}

func (f Filter) values() url.Values {
	v := url.Values{}
	if f.Search != "" {
		v.Set("search", f.Search)
	}
	if f.Status != "" {
		v.Set("status", f.Status)
	}
	if f.CategoryID > 0 {
		v.Set("categoryId", strconv.FormatInt(f.CategoryID, 10))
	}
	if !f.DateFrom.IsZero() {
		v.Set("dateFrom", f.DateFrom.Format(dateLayout))
	}
	if !f.DateTo.IsZero() {
		v.Set("dateTo", f.DateTo.Format(dateLayout))
	}
	if f.Sort != "" {
		v.Set("sort", f.Sort)
	}
	keys := make([]string, 0, len(f.Extra))
	for k := range f.Extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if k != "" && f.Extra[k] != "" {
			v.Set(k, f.Extra[k])
		}
	}
	return v
}

// ListQuery is one request for a page of results. Page is zero-based.
type ListQuery struct {
	Page   int
	Size   int
	Filter Filter
}

// Values returns the query parameters: page and size always, filters only
// when set.
func (q ListQuery) Values() url.Values {
	v := q.Filter.values()
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("size", strconv.Itoa(q.Size))
	return v
}

// Encode returns the URL-encoded query string, keys sorted.
func (q ListQuery) Encode() string {
	return q.Values().Encode()
}

// Path appends the encoded query to endpoint.
func (q ListQuery) Path(endpoint string) string {
	return endpoint + "?" + q.Encode()
}

// TotalPages returns ceil(total/size); zero when there is nothing to page.
func TotalPages(total int64, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return int((total + int64(size) - 1) / int64(size))
}

// ClampPage keeps page inside [0, totalPages-1].
func ClampPage(page, totalPages int) int {
	if totalPages <= 0 || page < 0 {
		return 0
	}
	if page > totalPages-1 {
		return totalPages - 1
	}
	return page
}
