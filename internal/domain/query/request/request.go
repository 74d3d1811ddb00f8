package request

import "github.com/kailas-cloud/papersapi/internal/domain/query/sortkey"

// Filters holds the optional narrowing constraints. Nil means "no constraint".
type Filters struct {
	Status       *string
	Category     *string
	Author       *string
	Institution  *string
	ResearchType *string
	Search       *string
}

// Request is a normalized paper query.
type Request struct {
	filters   Filters
	sortBy    sortkey.Key
	sortOrder sortkey.Order
	limit     *int
	offset    int
}

// New normalizes query parameters. It never fails: malformed values fall back
// to defaults. Empty filter strings are dropped, sortBy and sortOrder default
// to submission_date/desc, a non-positive limit means unbounded and a negative
// offset becomes 0.
func New(filters Filters, sortBy sortkey.Key, sortOrder sortkey.Order, limit *int, offset int) Request {
	if sortBy == "" {
		sortBy = sortkey.Default
	}
	if sortOrder == "" {
		sortOrder = sortkey.DefaultOrder
	}
	if limit != nil && *limit <= 0 {
		limit = nil
	}
	if limit != nil {
		l := *limit
		limit = &l
	}
	if offset < 0 {
		offset = 0
	}

	return Request{
		filters: Filters{
			Status:       nonEmpty(filters.Status),
			Category:     nonEmpty(filters.Category),
			Author:       nonEmpty(filters.Author),
			Institution:  nonEmpty(filters.Institution),
			ResearchType: nonEmpty(filters.ResearchType),
			Search:       nonEmpty(filters.Search),
		},
		sortBy:    sortBy,
		sortOrder: sortOrder,
		limit:     limit,
		offset:    offset,
	}
}

// Filters returns the applied filters.
func (r *Request) Filters() Filters { return r.filters }

// SortBy returns the requested sort key, possibly unrecognized.
func (r *Request) SortBy() sortkey.Key { return r.sortBy }

// SortOrder returns the requested sort direction as supplied.
func (r *Request) SortOrder() sortkey.Order { return r.sortOrder }

// Limit returns the page size, nil when unbounded.
func (r *Request) Limit() *int { return r.limit }

// Offset returns the number of leading records skipped.
func (r *Request) Offset() int { return r.offset }

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
