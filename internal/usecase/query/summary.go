package query

import (
	dompaper "github.com/kailas-cloud/papersapi/internal/domain/paper"
	"github.com/kailas-cloud/papersapi/internal/domain/query/result"
)

// summarize aggregates the whole matching set.
func summarize(papers []dompaper.Paper) result.Summary {
	s := result.Summary{
		StatusDistribution:   result.NewDistribution(),
		CategoryDistribution: result.NewDistribution(),
	}
	for i := range papers {
		s.StatusDistribution.Add(string(papers[i].Status))
		s.CategoryDistribution.Add(papers[i].Category)
		s.TotalCitations += papers[i].Citations
	}
	return s
}
