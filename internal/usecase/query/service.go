package query

import (
	"context"

	"go.uber.org/zap"

	"github.com/kailas-cloud/papersapi/internal/domain/catalog"
	"github.com/kailas-cloud/papersapi/internal/domain/query/request"
	"github.com/kailas-cloud/papersapi/internal/domain/query/result"
	logpkg "github.com/kailas-cloud/papersapi/internal/logger"
)

// Service executes paper queries against a read-only repository.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	repo    Repository
	catalog catalog.Catalog
}

var _ Executor = (*Service)(nil)

// New creates a query service.
func New(repo Repository) *Service {
	return &Service{repo: repo, catalog: catalog.Default()}
}

// Execute filters, searches, sorts, summarizes and paginates the collection.
// It never fails: every request yields a result.
func (s *Service) Execute(ctx context.Context, req *request.Request) result.Result {
	// All returns a private copy, so filtering and sorting in place is safe
	papers := applyPredicates(s.repo.All(), buildPredicates(req.Filters()))

	sortPapers(papers, req.SortBy(), req.SortOrder())

	summary := summarize(papers)
	page, pagination := paginate(papers, req.Offset(), req.Limit())

	logpkg.FromContext(ctx).Debug("paper query executed",
		zap.String("sort_by", string(req.SortBy())),
		zap.String("sort_order", string(req.SortOrder())),
		zap.Int("total_count", pagination.TotalCount),
		zap.Int("returned_count", pagination.ReturnedCount),
	)

	return result.Result{
		Papers:         page,
		Pagination:     pagination,
		FiltersApplied: req.Filters(),
		Sorting: result.Sorting{
			SortBy:    req.SortBy(),
			SortOrder: req.SortOrder(),
		},
		Summary:          summary,
		AvailableFilters: s.catalog,
	}
}
