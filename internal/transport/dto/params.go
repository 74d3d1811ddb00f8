package dto

import (
	"net/url"

	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/papersapi/internal/domain/query/request"
	"github.com/kailas-cloud/papersapi/internal/domain/query/sortkey"
)

// Query parameter names of GET /api/papers.
const (
	ParamStatus       = "status"
	ParamCategory     = "category"
	ParamAuthor       = "author"
	ParamInstitution  = "institution"
	ParamResearchType = "research_type"
	ParamSearch       = "search"
	ParamSortBy       = "sort_by"
	ParamSortOrder    = "sort_order"
	ParamLimit        = "limit"
	ParamOffset       = "offset"
)

// ParseQuery turns raw query-string values into a normalized request.
// It never fails. Blank values count as absent and the first value of a
// repeated parameter wins. If either limit or offset is not an integer, both
// fall back to "no limit, offset 0".
func ParseQuery(raw url.Values) request.Request {
	values := firstNonBlank(raw)

	filters := request.Filters{
		Status:       optional(values, ParamStatus),
		Category:     optional(values, ParamCategory),
		Author:       optional(values, ParamAuthor),
		Institution:  optional(values, ParamInstitution),
		ResearchType: optional(values, ParamResearchType),
		Search:       optional(values, ParamSearch),
	}

	limit, offset, err := parsePagination(values)
	if err != nil {
		limit, offset = nil, 0
	}

	return request.New(
		filters,
		sortkey.Key(values.Get(ParamSortBy)),
		sortkey.Order(values.Get(ParamSortOrder)),
		limit,
		offset,
	)
}

func parsePagination(values url.Values) (*int, int, error) {
	var limit *int
	if err := runtime.BindQueryParameter("form", true, false, ParamLimit, values, &limit); err != nil {
		return nil, 0, err //nolint:wrapcheck // caller discards the error
	}

	var offset *int
	if err := runtime.BindQueryParameter("form", true, false, ParamOffset, values, &offset); err != nil {
		return nil, 0, err //nolint:wrapcheck // caller discards the error
	}

	if offset == nil {
		return limit, 0, nil
	}
	return limit, *offset, nil
}

// firstNonBlank keeps, per key, the first non-empty value.
func firstNonBlank(raw url.Values) url.Values {
	out := make(url.Values, len(raw))
	for k, vs := range raw {
		for _, v := range vs {
			if v != "" {
				out[k] = []string{v}
				break
			}
		}
	}
	return out
}

func optional(values url.Values, key string) *string {
	v := values.Get(key)
	if v == "" {
		return nil
	}
	return &v
}
