package query

import (
	"context"
	"time"

	"github.com/kailas-cloud/papersapi/internal/domain/query/request"
	"github.com/kailas-cloud/papersapi/internal/domain/query/result"
	"github.com/kailas-cloud/papersapi/internal/domain/query/sortkey"
	"github.com/kailas-cloud/papersapi/internal/metrics"
)

// InstrumentedExecutor wraps an Executor with Prometheus metrics.
// Call metrics.RegisterQueryMetrics before serving traffic.
type InstrumentedExecutor struct {
	inner Executor
}

// NewInstrumented wraps inner with query metrics.
func NewInstrumented(inner Executor) *InstrumentedExecutor {
	return &InstrumentedExecutor{inner: inner}
}

// Execute delegates to the inner executor and records metrics.
func (e *InstrumentedExecutor) Execute(ctx context.Context, req *request.Request) result.Result {
	start := time.Now()
	res := e.inner.Execute(ctx, req)
	metrics.QueryDuration.Observe(time.Since(start).Seconds())

	metrics.QueryExecutionsTotal.WithLabelValues(sortLabel(req.SortBy()), orderLabel(req.SortOrder())).Inc()
	metrics.QueryMatchedRecords.Observe(float64(res.Pagination.TotalCount))

	f := req.Filters()
	for name, v := range map[string]*string{
		"status":        f.Status,
		"category":      f.Category,
		"author":        f.Author,
		"institution":   f.Institution,
		"research_type": f.ResearchType,
		"search":        f.Search,
	} {
		if v != nil {
			metrics.QueryFiltersTotal.WithLabelValues(name).Inc()
		}
	}

	return res
}

// sortLabel bounds label cardinality: raw unknown keys collapse to "unsorted".
func sortLabel(k sortkey.Key) string {
	if k.IsValid() {
		return string(k)
	}
	return "unsorted"
}

func orderLabel(o sortkey.Order) string {
	if o.Descending() {
		return string(sortkey.Desc)
	}
	return string(sortkey.Asc)
}
