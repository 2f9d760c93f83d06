package harvest

import (
	"context"
	"net/url"
	"strconv"
)

// Pagination bounds for per_page. Values outside the range are omitted
// from the request so the API falls back to its default page size.
const (
	minPerPage = 1
	maxPerPage = 2000
)

// Pagination is the page metadata Harvest attaches to every list
// response. next_page is present exactly when page < total_pages,
// previous_page exactly when page > 1.
type Pagination struct {
	PerPage      int       `json:"per_page"`
	TotalPages   int       `json:"total_pages"`
	TotalEntries int       `json:"total_entries"`
	NextPage     *int      `json:"next_page"`
	PreviousPage *int      `json:"previous_page"`
	Page         int       `json:"page"`
	Links        PageLinks `json:"links"`
}

// PageLinks are the navigation URLs of a list response.
type PageLinks struct {
	First    string  `json:"first"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Last     string  `json:"last"`
}

// HasNextPage reports whether a following page exists. The page counters
// are authoritative: a stray next_page value on the final page is ignored.
func (p Pagination) HasNextPage() bool {
	return p.Page < p.TotalPages
}

// HasPreviousPage reports whether a preceding page exists.
func (p Pagination) HasPreviousPage() bool {
	return p.Page > 1
}

// ListParams select a page of a listing. Zero or out-of-range values
// are not sent.
type ListParams struct {
	Page    int
	PerPage int
}

// query serializes the page selection, dropping out-of-range values.
func (p ListParams) query() url.Values {
	q := url.Values{}
	if p.Page >= 1 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage >= minPerPage && p.PerPage <= maxPerPage {
		q.Set("per_page", strconv.Itoa(p.PerPage))
	}
	return q
}

// collectPages walks a paginated listing from the first page, calling
// fetch once per page and concatenating items in page order. The walk
// stops as soon as a page reports no next page.
func collectPages[T any](ctx context.Context, fetch func(ctx context.Context, page int) ([]T, Pagination, error)) ([]T, error) {
	items := []T{}
	page := 1
	for {
		batch, meta, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		items = append(items, batch...)
		if !meta.HasNextPage() {
			return items, nil
		}
		page = meta.Page + 1
		if meta.NextPage != nil {
			page = *meta.NextPage
		}
	}
}
