package treasury

import (
	"context"
	"iter"
)

// PaginationOptions bounds a traversal. Zero values mean unbounded.
type PaginationOptions struct {
	MaxPages int
	MaxItems int
}

// StreamResult is one element of an asynchronous item stream.
type StreamResult[T any] struct {
	Item T
	Err  error
}

// PageResult is one element of an asynchronous page stream.
type PageResult[T any] struct {
	Items []T
	Err   error
}

// AutoPager is a restartable, lazy view over a chain of pages. It holds only
// the first page; every traversal walks forward from it and fetches each
// following page again.
type AutoPager[T any, P CursorParams[P]] struct {
	first *Page[T, P]
}

// FirstPage returns the page the traversals start from.
func (a *AutoPager[T, P]) FirstPage() *Page[T, P] {
	return a.first
}

// Pages yields the first page and every page after it. A fetch error is
// yielded once as the last element.
func (a *AutoPager[T, P]) Pages(ctx context.Context) iter.Seq2[*Page[T, P], error] {
	return func(yield func(*Page[T, P], error) bool) {
		page := a.first
		for page != nil {
			if !yield(page, nil) {
				return
			}

			if !page.HasNextPage() {
				return
			}

			err := ctx.Err()
			if err != nil {
				yield(nil, err)

				return
			}

			page, err = page.NextPage(ctx)
			if err != nil {
				yield(nil, err)

				return
			}
		}
	}
}

// All yields every item of every page in page order, then in-page order.
// Each call starts again from the first page.
func (a *AutoPager[T, P]) All(ctx context.Context) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for page, err := range a.Pages(ctx) {
			if err != nil {
				var zero T

				yield(zero, err)

				return
			}

			for _, item := range page.Items {
				if !yield(item, nil) {
					return
				}
			}
		}
	}
}

// Iterator returns a pull-style iterator over all items.
func (a *AutoPager[T, P]) Iterator(ctx context.Context) *Iterator[T, P] {
	return &Iterator[T, P]{
		ctx:  ctx,
		page: a.first,
	}
}

// Collect gathers items into a slice, honoring opts when given.
func (a *AutoPager[T, P]) Collect(ctx context.Context, opts *PaginationOptions) ([]T, error) {
	if opts == nil {
		opts = &PaginationOptions{}
	}

	var items []T

	pages := 0

	for page, err := range a.Pages(ctx) {
		if err != nil {
			return nil, err
		}

		pages++

		for _, item := range page.Items {
			items = append(items, item)

			if opts.MaxItems > 0 && len(items) >= opts.MaxItems {
				return items, nil
			}
		}

		if opts.MaxPages > 0 && pages >= opts.MaxPages {
			break
		}
	}

	return items, nil
}

// ForEach calls fn for each item and stops at the first error from fn or from a fetch.
func (a *AutoPager[T, P]) ForEach(ctx context.Context, fn func(T) error) error {
	for item, err := range a.All(ctx) {
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return nil
}

// Stream produces items on an unbuffered channel from a single goroutine.
// The producer blocks on every send and on every page fetch, so it runs at
// most one page ahead of the consumer. Cancelling ctx stops further fetches
// and closes the channel; a fetch error is sent as the final result. Callers
// must drain the channel or cancel ctx.
func (a *AutoPager[T, P]) Stream(ctx context.Context) <-chan StreamResult[T] {
	results := make(chan StreamResult[T])

	go func() {
		defer close(results)

		for item, err := range a.All(ctx) {
			select {
			case results <- StreamResult[T]{Item: item, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}

// StreamPages is Stream at page granularity.
func (a *AutoPager[T, P]) StreamPages(ctx context.Context) <-chan PageResult[T] {
	results := make(chan PageResult[T])

	go func() {
		defer close(results)

		for page, err := range a.Pages(ctx) {
			result := PageResult[T]{Err: err}
			if page != nil {
				result.Items = page.Items
			}

			select {
			case results <- result:
			case <-ctx.Done():
				return
			}
		}
	}()

	return results
}

// Iterator walks the items of a page chain with HasNext/Next.
type Iterator[T any, P CursorParams[P]] struct {
	ctx   context.Context //nolint:containedctx // bound to one traversal
	page  *Page[T, P]
	index int
	err   error
}

// HasNext reports whether Next will return an item, fetching pages as needed.
// It returns false after a fetch error; see Err.
func (it *Iterator[T, P]) HasNext() bool {
	for it.err == nil && it.page != nil {
		if it.index < len(it.page.Items) {
			return true
		}

		if !it.page.HasNextPage() {
			it.page = nil

			return false
		}

		err := it.ctx.Err()
		if err != nil {
			it.err = err

			return false
		}

		next, err := it.page.NextPage(it.ctx)
		if err != nil {
			it.err = err

			return false
		}

		it.page = next
		it.index = 0
	}

	return false
}

// Next returns the next item, ErrNoMoreItems at the end, or the fetch error.
func (it *Iterator[T, P]) Next() (T, error) {
	var zero T

	if !it.HasNext() {
		if it.err != nil {
			return zero, it.err
		}

		return zero, ErrNoMoreItems
	}

	item := it.page.Items[it.index]
	it.index++

	return item, nil
}

// Err returns the error that stopped the iteration, if any.
func (it *Iterator[T, P]) Err() error {
	return it.err
}
