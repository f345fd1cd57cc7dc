// Package pagination computes the display window for remote paginated
// results. The remote API caps how deep it will reliably paginate, and it may
// report fewer total pages after a filter change than it did before, so the
// current page is clamped defensively.
package pagination

// DefaultPageCap bounds how deep pagination goes regardless of what the
// remote API reports; empirically it stops serving results around page 500.
const DefaultPageCap = 500

// Window describes one view onto a paginated remote result set.
type Window struct {
	Page       int
	TotalPages int
	PageCap    int
}

func (w Window) cap() int {
	if w.PageCap <= 0 {
		return DefaultPageCap
	}
	return w.PageCap
}

// MaxDisplayPage is the last page the UI may navigate to: the reported total
// capped at PageCap, and never less than one.
func (w Window) MaxDisplayPage() int {
	max := w.TotalPages
	if max > w.cap() {
		max = w.cap()
	}
	if max < 1 {
		max = 1
	}
	return max
}

// ClampedPage returns the current page forced into [1, MaxDisplayPage].
func (w Window) ClampedPage() int {
	page := w.Page
	if page < 1 {
		page = 1
	}
	if max := w.MaxDisplayPage(); page > max {
		page = max
	}
	return page
}

// HasPrevious reports whether the previous-page control should be enabled.
func (w Window) HasPrevious() bool {
	return w.ClampedPage() > 1
}

// HasNext reports whether the next-page control should be enabled.
func (w Window) HasNext() bool {
	return w.ClampedPage() < w.MaxDisplayPage()
}

// Meta is the pagination payload emitted to the presentation layer.
type Meta struct {
	Page           int  `json:"page"`
	MaxDisplayPage int  `json:"maxDisplayPage"`
	HasPrevious    bool `json:"hasPrevious"`
	HasNext        bool `json:"hasNext"`
}

// BuildMeta materializes the window into its presentation payload.
func (w Window) BuildMeta() Meta {
	return Meta{
		Page:           w.ClampedPage(),
		MaxDisplayPage: w.MaxDisplayPage(),
		HasPrevious:    w.HasPrevious(),
		HasNext:        w.HasNext(),
	}
}
