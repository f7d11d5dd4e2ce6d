package treasury_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

var errFetch = errors.New("fetch failed")

type listParams struct {
	Filter      string
	AfterCursor string
}

func (p listParams) WithAfterCursor(cursor string) listParams {
	p.AfterCursor = cursor

	return p
}

type itemPage = treasury.Page[string, listParams]

// fakeList serves pages keyed by after_cursor and counts fetches.
type fakeList struct {
	pages   map[string]*treasury.ListResponse[string]
	failAt  string
	fetches atomic.Int32
	seen    []listParams
}

func newFakeList() *fakeList {
	return &fakeList{
		pages: map[string]*treasury.ListResponse[string]{
			"":  {Items: []string{"a", "b"}, AfterCursor: treasury.F("b")},
			"b": {Items: []string{"c", "d"}, AfterCursor: treasury.F("d")},
			"d": {Items: []string{"e"}, AfterCursor: treasury.F("e")},
			"e": {Items: []string{}},
		},
	}
}

func (f *fakeList) fetch(_ context.Context, params listParams) (*itemPage, error) {
	f.fetches.Add(1)
	f.seen = append(f.seen, params)

	if f.failAt != "" && params.AfterCursor == f.failAt {
		return nil, errFetch
	}

	return treasury.NewPage(f.pages[params.AfterCursor], params, f.fetch), nil
}

func (f *fakeList) first(t *testing.T) *itemPage {
	t.Helper()

	page, err := f.fetch(context.Background(), listParams{Filter: "pending"})
	require.NoError(t, err)

	return page
}

func TestPage_NextPageParams(t *testing.T) {
	t.Parallel()

	list := newFakeList()
	page := list.first(t)

	assert.True(t, page.HasNextPage())
	assert.Equal(t, "b", page.AfterCursor)
	assert.Equal(t, listParams{Filter: "pending"}, page.Params())

	params, ok := page.NextPageParams()
	require.True(t, ok)
	assert.Equal(t, listParams{Filter: "pending", AfterCursor: "b"}, params)
	assert.Empty(t, page.Params().AfterCursor)
}

func TestPage_EmptyPageIsTerminal(t *testing.T) {
	t.Parallel()

	page := treasury.NewPage(&treasury.ListResponse[string]{Items: nil, AfterCursor: treasury.F("zzz")}, listParams{}, nil)

	assert.False(t, page.HasNextPage())

	_, ok := page.NextPageParams()
	assert.False(t, ok)

	next, err := page.NextPage(context.Background())
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestPage_NilResponse(t *testing.T) {
	t.Parallel()

	page := treasury.NewPage[string](nil, listParams{}, nil)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNextPage())
}

func TestAutoPager_All(t *testing.T) {
	t.Parallel()

	list := newFakeList()
	pager := list.first(t).AutoPager()

	var items []string

	for item, err := range pager.All(context.Background()) {
		require.NoError(t, err)

		items = append(items, item)
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
	// first page, two full pages and the empty terminal page
	assert.Equal(t, int32(4), list.fetches.Load())
	assert.Equal(t, "pending", list.seen[len(list.seen)-1].Filter)
}

func TestAutoPager_TraversalsAreIndependent(t *testing.T) {
	t.Parallel()

	list := newFakeList()
	pager := list.first(t).AutoPager()

	first, err := pager.Collect(context.Background(), nil)
	require.NoError(t, err)

	second, err := pager.Collect(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(7), list.fetches.Load())
	assert.Equal(t, []string{"a", "b"}, pager.FirstPage().Items)
}

func TestAutoPager_EarlyBreakStopsFetching(t *testing.T) {
	t.Parallel()

	list := newFakeList()
	pager := list.first(t).AutoPager()

	for item, err := range pager.All(context.Background()) {
		require.NoError(t, err)

		if item == "b" {
			break
		}
	}

	assert.Equal(t, int32(1), list.fetches.Load())
}

func TestAutoPager_Pages(t *testing.T) {
	t.Parallel()

	list := newFakeList()

	var sizes []int

	for page, err := range list.first(t).AutoPager().Pages(context.Background()) {
		require.NoError(t, err)

		sizes = append(sizes, len(page.Items))
	}

	assert.Equal(t, []int{2, 2, 1, 0}, sizes)
}

func TestAutoPager_FetchErrorIsYieldedUnchanged(t *testing.T) {
	t.Parallel()

	list := newFakeList()
	list.failAt = "d"

	var (
		items   []string
		lastErr error
	)

	for item, err := range list.first(t).AutoPager().All(context.Background()) {
		if err != nil {
			lastErr = err

			continue
		}

		items = append(items, item)
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, items)
	assert.Same(t, errFetch, lastErr)
}

func TestAutoPager_Collect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        *treasury.PaginationOptions
		want        []string
		wantFetches int32
	}{
		{name: "unbounded", opts: nil, want: []string{"a", "b", "c", "d", "e"}, wantFetches: 4},
		{name: "max items", opts: &treasury.PaginationOptions{MaxItems: 3}, want: []string{"a", "b", "c"}, wantFetches: 2},
		{name: "max pages", opts: &treasury.PaginationOptions{MaxPages: 2}, want: []string{"a", "b", "c", "d"}, wantFetches: 2},
		{name: "max items on page boundary", opts: &treasury.PaginationOptions{MaxItems: 2}, want: []string{"a", "b"}, wantFetches: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list := newFakeList()

			items, err := list.first(t).AutoPager().Collect(context.Background(), tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, items)
			assert.Equal(t, tt.wantFetches, list.fetches.Load())
		})
	}

	t.Run("error discards items", func(t *testing.T) {
		t.Parallel()

		list := newFakeList()
		list.failAt = "b"

		items, err := list.first(t).AutoPager().Collect(context.Background(), nil)
		require.ErrorIs(t, err, errFetch)
		assert.Nil(t, items)
	})

	t.Run("filled limit skips failing next page", func(t *testing.T) {
		t.Parallel()

		list := newFakeList()
		list.failAt = "b"

		items, err := list.first(t).AutoPager().Collect(context.Background(), &treasury.PaginationOptions{MaxItems: 2})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, items)
		assert.Equal(t, int32(1), list.fetches.Load())
	})
}

func TestAutoPager_ForEach(t *testing.T) {
	t.Parallel()

	errStop := errors.New("stop")

	list := newFakeList()

	var seen []string

	err := list.first(t).AutoPager().ForEach(context.Background(), func(item string) error {
		seen = append(seen, item)
		if item == "c" {
			return errStop
		}

		return nil
	})
	require.ErrorIs(t, err, errStop)
	assert.Equal(t, []string{"a", "b", "c"}, seen)
	assert.Equal(t, int32(2), list.fetches.Load())
}

func TestAutoPager_Iterator(t *testing.T) {
	t.Parallel()

	list := newFakeList()
	it := list.first(t).AutoPager().Iterator(context.Background())

	var items []string

	for it.HasNext() {
		item, err := it.Next()
		require.NoError(t, err)

		items = append(items, item)
	}

	require.NoError(t, it.Err())
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)

	_, err := it.Next()
	require.ErrorIs(t, err, treasury.ErrNoMoreItems)
}

func TestAutoPager_IteratorError(t *testing.T) {
	t.Parallel()

	list := newFakeList()
	list.failAt = "b"

	it := list.first(t).AutoPager().Iterator(context.Background())

	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
	}

	require.ErrorIs(t, it.Err(), errFetch)

	_, err := it.Next()
	require.ErrorIs(t, err, errFetch)
}

func TestAutoPager_CancelledContext(t *testing.T) {
	t.Parallel()

	list := newFakeList()
	page := list.first(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var (
		items   []string
		lastErr error
	)

	for item, err := range page.AutoPager().All(ctx) {
		if err != nil {
			lastErr = err

			continue
		}

		items = append(items, item)
	}

	assert.Equal(t, []string{"a", "b"}, items)
	require.ErrorIs(t, lastErr, context.Canceled)
	assert.Equal(t, int32(1), list.fetches.Load())
}

func TestAutoPager_Stream(t *testing.T) {
	t.Parallel()

	list := newFakeList()

	var items []string

	for result := range list.first(t).AutoPager().Stream(context.Background()) {
		require.NoError(t, result.Err)

		items = append(items, result.Item)
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
}

func TestAutoPager_StreamError(t *testing.T) {
	t.Parallel()

	list := newFakeList()
	list.failAt = "d"

	var (
		items []string
		errs  []error
	)

	for result := range list.first(t).AutoPager().Stream(context.Background()) {
		if result.Err != nil {
			errs = append(errs, result.Err)

			continue
		}

		items = append(items, result.Item)
	}

	assert.Equal(t, []string{"a", "b", "c", "d"}, items)
	require.Len(t, errs, 1)
	require.ErrorIs(t, errs[0], errFetch)
}

func TestAutoPager_StreamCancel(t *testing.T) {
	t.Parallel()

	list := newFakeList()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	results := list.first(t).AutoPager().Stream(ctx)

	first := <-results
	require.NoError(t, first.Err)
	assert.Equal(t, "a", first.Item)

	cancel()

	for range results { //nolint:revive // drain until the producer closes the channel
	}

	assert.LessOrEqual(t, list.fetches.Load(), int32(2))
}

func TestAutoPager_StreamPages(t *testing.T) {
	t.Parallel()

	list := newFakeList()

	var pages [][]string

	for result := range list.first(t).AutoPager().StreamPages(context.Background()) {
		require.NoError(t, result.Err)

		pages = append(pages, result.Items)
	}

	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}, {}}, pages)
}
