package query

import "sync"

// DefaultPageSize is used when a Pager is created with a non-positive size.
const DefaultPageSize = 10

// Pager tracks the page a list view shows. A raw page change keeps the
// filters; a new page size, a new filter or an explicit submit go back to
// the first page. Once a total is known every page is clamped to the last
// valid one.
type Pager struct {
	mu       sync.Mutex
	page     int
	size     int
	filter   Filter
	total    int64
	hasTotal bool
}

// NewPager returns a Pager on page 0.
func NewPager(size int) *Pager {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Pager{size: size}
}

// Page returns the current zero-based page index.
func (p *Pager) Page() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.page
}

// Size returns the page size.
func (p *Pager) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.size
}

// TotalPages returns the page count for the last recorded total.
func (p *Pager) TotalPages() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return TotalPages(p.total, p.size)
}

// GoTo moves to page without resetting anything else.
func (p *Pager) GoTo(page int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = p.clamp(page)
	return p.page
}

// SetSize changes the page size and returns to the first page.
func (p *Pager) SetSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.size = size
	p.page = 0
}

// SetFilter replaces the filter and returns to the first page.
func (p *Pager) SetFilter(f Filter) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filter = f
	p.page = 0
}

// Filter returns the current filter.
func (p *Pager) Filter() Filter {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.filter
}

// Submit re-runs the search from the first page.
func (p *Pager) Submit() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = 0
}

// SetTotal records the totalElements of the latest response and clamps the
// current page to the new range.
func (p *Pager) SetTotal(total int64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.total = total
	p.hasTotal = true
	p.page = p.clamp(p.page)
}

// Query returns the request for the current state.
func (p *Pager) Query() ListQuery {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ListQuery{Page: p.page, Size: p.size, Filter: p.filter}
}

func (p *Pager) clamp(page int) int {
	if !p.hasTotal {
		if page < 0 {
			return 0
		}
		return page
	}
	return ClampPage(page, TotalPages(p.total, p.size))
}
