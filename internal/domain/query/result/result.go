package result

import (
	"github.com/kailas-cloud/papersapi/internal/domain/catalog"
	"github.com/kailas-cloud/papersapi/internal/domain/paper"
	"github.com/kailas-cloud/papersapi/internal/domain/query/request"
	"github.com/kailas-cloud/papersapi/internal/domain/query/sortkey"
)

// Pagination describes the window taken from the matching set.
type Pagination struct {
	TotalCount    int
	ReturnedCount int
	Offset        int
	Limit         *int
	HasMore       bool
}

// Summary aggregates the full matching set before pagination.
type Summary struct {
	StatusDistribution   Distribution
	CategoryDistribution Distribution
	TotalCitations       int
}

// Sorting echoes the requested ordering.
type Sorting struct {
	SortBy    sortkey.Key
	SortOrder sortkey.Order
}

// Result is the outcome of one query execution.
type Result struct {
	Papers           []paper.Paper
	Pagination       Pagination
	FiltersApplied   request.Filters
	Sorting          Sorting
	Summary          Summary
	AvailableFilters catalog.Catalog
}
