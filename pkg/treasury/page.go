package treasury

import (
	"context"
)

// CursorParams is implemented by list parameter types. WithAfterCursor returns
// a copy of the receiver with only the after_cursor parameter replaced.
type CursorParams[P any] interface {
	WithAfterCursor(cursor string) P
}

// PageFetcher issues one list request. Resource services supply it so that a
// page can fetch its successor through the service that produced it.
type PageFetcher[T any, P CursorParams[P]] func(ctx context.Context, params P) (*Page[T, P], error)

// ListResponse is the wire shape of a list endpoint response.
type ListResponse[T any] struct {
	Items       []T           `json:"items"                  yaml:"items"`
	PerPage     Field[string] `json:"per_page,omitzero"     yaml:"per_page,omitempty"`
	AfterCursor Field[string] `json:"after_cursor,omitzero" yaml:"after_cursor,omitempty"`
}

// Page is one fetched slice of a list endpoint together with the parameters
// that produced it. Pages are immutable; advancing creates a new Page.
type Page[T any, P CursorParams[P]] struct {
	Items       []T
	PerPage     string
	AfterCursor string

	params P
	fetch  PageFetcher[T, P]
}

// NewPage builds a page from a decoded list response.
func NewPage[T any, P CursorParams[P]](resp *ListResponse[T], params P, fetch PageFetcher[T, P]) *Page[T, P] {
	page := &Page[T, P]{
		params: params,
		fetch:  fetch,
	}

	if resp != nil {
		page.Items = resp.Items
		page.PerPage = resp.PerPage.Or("")
		page.AfterCursor = resp.AfterCursor.Or("")
	}

	return page
}

// Params returns the request parameters that produced this page.
func (p *Page[T, P]) Params() P {
	return p.params
}

// HasNextPage reports whether another page may follow. Only the item count is
// consulted: an empty page is terminal whatever its cursor says, and a
// non-empty page always leads to one more fetch.
func (p *Page[T, P]) HasNextPage() bool {
	return len(p.Items) > 0
}

// NextPageParams returns the original parameters with after_cursor set to
// this page's cursor, or false when there is no next page.
func (p *Page[T, P]) NextPageParams() (P, bool) {
	if !p.HasNextPage() {
		var zero P

		return zero, false
	}

	return p.params.WithAfterCursor(p.AfterCursor), true
}

// NextPage fetches the following page. It returns nil, nil when this page is
// terminal. Fetch errors are returned unchanged.
func (p *Page[T, P]) NextPage(ctx context.Context) (*Page[T, P], error) {
	params, ok := p.NextPageParams()
	if !ok || p.fetch == nil {
		return nil, nil //nolint:nilnil // terminal page
	}

	return p.fetch(ctx, params)
}

// AutoPager returns a view that flattens this page and all following pages.
func (p *Page[T, P]) AutoPager() *AutoPager[T, P] {
	return &AutoPager[T, P]{first: p}
}
