// Package view holds the list view-state shared by the paginated pages:
// discover, admin, and the account lists. It is pure arithmetic over the item
// count; the TUI layer owns rendering.
package view

// DefaultPerPage is the card count every paginated page shows.
const DefaultPerPage = 4

// PlaceholderRow is the filler cell rendered when a page beyond the first is
// underfilled.
const PlaceholderRow = "-"

// Pagination tracks the active page of a list with a fixed page size.
// The zero value is not valid; use [NewPagination].
type Pagination struct {
	// PerPage is the page size, always >= 1.
	PerPage int

	// Active is the 1-based current page.
	Active int
}

// NewPagination constructs a Pagination on page 1. A non-positive perPage
// falls back to [DefaultPerPage].
func NewPagination(perPage int) Pagination {
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return Pagination{PerPage: perPage, Active: 1}
}

// PageCount returns the number of pages needed for n items: ceil(n/PerPage),
// and 0 for an empty list.
func (p Pagination) PageCount(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + p.PerPage - 1) / p.PerPage
}

// Window returns the half-open index range [from, to) of the active page
// within a list of n items.
func (p Pagination) Window(n int) (from, to int) {
	from = p.PerPage * (p.Active - 1)
	if from > n {
		from = n
	}
	to = p.PerPage * p.Active
	if to > n {
		to = n
	}
	return from, to
}

// SetPage moves to page number within a list of n items. Selecting the
// already-active page is a no-op (matching the original click handling);
// anything else clamps into [1, max(1, PageCount)].
func (p *Pagination) SetPage(page, n int) {
	if page == p.Active {
		return
	}
	p.Active = clamp(page, 1, maxInt(1, p.PageCount(n)))
}

// Reclamp pulls the active page back into range after the list length
// changed. Every list mutation must call this.
func (p *Pagination) Reclamp(n int) {
	p.Active = clamp(p.Active, 1, maxInt(1, p.PageCount(n)))
}

// Placeholders returns how many filler rows the active page needs so that
// pages beyond the first keep a constant height. Page 1 never pads.
func (p Pagination) Placeholders(n int) int {
	if p.Active <= 1 {
		return 0
	}
	from, to := p.Window(n)
	if to <= from {
		return 0
	}
	return p.PerPage - (to - from)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
