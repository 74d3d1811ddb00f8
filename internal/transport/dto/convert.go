package dto

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/papersapi/internal/domain/catalog"
	dompaper "github.com/kailas-cloud/papersapi/internal/domain/paper"
	"github.com/kailas-cloud/papersapi/internal/domain/query/request"
	"github.com/kailas-cloud/papersapi/internal/domain/query/result"
)

// ErrorMessage is the human-readable message of every failure envelope.
const ErrorMessage = "An error occurred while processing the request"

// timestampLayout is ISO-8601 UTC with microseconds.
const timestampLayout = "2006-01-02T15:04:05.000000Z"

// Timestamp formats t for response envelopes.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// PapersResponseFromResult builds the success envelope.
func PapersResponseFromResult(res *result.Result, now time.Time) PapersResponse {
	data := make([]Paper, len(res.Papers))
	for i := range res.Papers {
		data[i] = paperToDTO(&res.Papers[i])
	}

	return PapersResponse{
		Success: true,
		Data:    data,
		Pagination: Pagination{
			TotalCount:    res.Pagination.TotalCount,
			ReturnedCount: res.Pagination.ReturnedCount,
			Offset:        res.Pagination.Offset,
			Limit:         res.Pagination.Limit,
			HasMore:       res.Pagination.HasMore,
		},
		FiltersApplied: filtersToDTO(res.FiltersApplied),
		Sorting: Sorting{
			SortBy:    string(res.Sorting.SortBy),
			SortOrder: string(res.Sorting.SortOrder),
		},
		Summary: Summary{
			StatusDistribution:   countsToDTO(res.Summary.StatusDistribution),
			CategoryDistribution: countsToDTO(res.Summary.CategoryDistribution),
			TotalCitations:       res.Summary.TotalCitations,
		},
		AvailableFilters: catalogToDTO(res.AvailableFilters),
		Message: fmt.Sprintf(
			"Research papers retrieved successfully. Found %d papers matching criteria.",
			res.Pagination.TotalCount,
		),
		Timestamp: Timestamp(now),
	}
}

// NewErrorResponse builds the failure envelope for an unexpected fault.
func NewErrorResponse(fault string, now time.Time) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Error:     fault,
		Message:   ErrorMessage,
		Timestamp: Timestamp(now),
	}
}

func paperToDTO(p *dompaper.Paper) Paper {
	return Paper{
		ID:              p.ID,
		Title:           p.Title,
		Abstract:        p.Abstract,
		Author:          p.Author,
		CoAuthors:       nonNil(p.CoAuthors),
		Institution:     p.Institution,
		SubmissionDate:  p.SubmissionDate,
		PublicationDate: p.PublicationDate,
		Status:          string(p.Status),
		DOI:             p.DOI,
		Keywords:        nonNil(p.Keywords),
		Category:        p.Category,
		ResearchType:    p.ResearchType,
		Citations:       p.Citations,
		FundingSource:   p.FundingSource,
		PeerReviewers:   nonNil(p.PeerReviewers),
		Journal:         p.Journal,
		VolumeIssue:     p.VolumeIssue,
	}
}

func filtersToDTO(f request.Filters) FiltersApplied {
	return FiltersApplied{
		Status:       f.Status,
		Category:     f.Category,
		Author:       f.Author,
		Institution:  f.Institution,
		ResearchType: f.ResearchType,
		Search:       f.Search,
	}
}

func countsToDTO(d result.Distribution) OrderedCounts {
	keys := d.Keys()
	counts := make(map[string]int, len(keys))
	for _, k := range keys {
		counts[k] = d.Count(k)
	}
	return OrderedCounts{Keys: keys, Counts: counts}
}

func catalogToDTO(c catalog.Catalog) AvailableFilters {
	return AvailableFilters{
		Statuses:      nonNil(c.Statuses),
		ResearchTypes: nonNil(c.ResearchTypes),
		Categories:    nonNil(c.Categories),
	}
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
