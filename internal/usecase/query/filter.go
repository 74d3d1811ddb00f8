package query

import (
	"strings"

	dompaper "github.com/kailas-cloud/papersapi/internal/domain/paper"
	"github.com/kailas-cloud/papersapi/internal/domain/query/request"
)

// predicate reports whether a paper passes one constraint.
type predicate func(p *dompaper.Paper) bool

// buildPredicates turns the supplied filters into predicates, search last.
// A paper matches when every predicate holds.
func buildPredicates(f request.Filters) []predicate {
	var preds []predicate

	if f.Status != nil {
		status := *f.Status
		preds = append(preds, func(p *dompaper.Paper) bool { return string(p.Status) == status })
	}
	if f.Category != nil {
		category := *f.Category
		preds = append(preds, func(p *dompaper.Paper) bool { return p.Category == category })
	}
	if f.Author != nil {
		needle := strings.ToLower(*f.Author)
		preds = append(preds, func(p *dompaper.Paper) bool {
			return containsFold(p.Author, needle) || anyContainsFold(p.CoAuthors, needle)
		})
	}
	if f.Institution != nil {
		needle := strings.ToLower(*f.Institution)
		preds = append(preds, func(p *dompaper.Paper) bool { return containsFold(p.Institution, needle) })
	}
	if f.ResearchType != nil {
		researchType := *f.ResearchType
		preds = append(preds, func(p *dompaper.Paper) bool { return p.ResearchType == researchType })
	}
	if f.Search != nil {
		needle := strings.ToLower(*f.Search)
		preds = append(preds, func(p *dompaper.Paper) bool {
			return containsFold(p.Title, needle) ||
				containsFold(p.Abstract, needle) ||
				anyContainsFold(p.Keywords, needle)
		})
	}

	return preds
}

// applyPredicates keeps papers matching all predicates, preserving order.
func applyPredicates(papers []dompaper.Paper, preds []predicate) []dompaper.Paper {
	if len(preds) == 0 {
		return papers
	}
	out := papers[:0]
	for i := range papers {
		if matchesAll(&papers[i], preds) {
			out = append(out, papers[i])
		}
	}
	return out
}

func matchesAll(p *dompaper.Paper, preds []predicate) bool {
	for _, pred := range preds {
		if !pred(p) {
			return false
		}
	}
	return true
}

// containsFold reports whether lowered needle occurs in haystack, ignoring case.
func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

func anyContainsFold(values []string, lowerNeedle string) bool {
	for _, v := range values {
		if containsFold(v, lowerNeedle) {
			return true
		}
	}
	return false
}
