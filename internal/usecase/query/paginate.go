package query

import (
	dompaper "github.com/kailas-cloud/papersapi/internal/domain/paper"
	"github.com/kailas-cloud/papersapi/internal/domain/query/result"
)

// paginate takes the [offset, offset+limit) window. A nil limit runs to the
// end; an offset past the end yields an empty, non-nil page.
func paginate(papers []dompaper.Paper, offset int, limit *int) ([]dompaper.Paper, result.Pagination) {
	total := len(papers)

	start := min(max(offset, 0), total)
	end := total
	if limit != nil && *limit < total-start {
		end = start + max(*limit, 0)
	}

	page := make([]dompaper.Paper, end-start)
	copy(page, papers[start:end])

	return page, result.Pagination{
		TotalCount:    total,
		ReturnedCount: len(page),
		Offset:        offset,
		Limit:         limit,
		HasMore:       offset+len(page) < total,
	}
}
