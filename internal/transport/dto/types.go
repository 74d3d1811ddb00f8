// Package dto holds the JSON wire shapes of the papers API and the mapping
// between them and the domain.
package dto

// Paper is the wire form of a paper record.
type Paper struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Abstract        string   `json:"abstract"`
	Author          string   `json:"author"`
	CoAuthors       []string `json:"co_authors"`
	Institution     string   `json:"institution"`
	SubmissionDate  string   `json:"submission_date"`
	PublicationDate *string  `json:"publication_date"`
	Status          string   `json:"status"`
	DOI             *string  `json:"doi"`
	Keywords        []string `json:"keywords"`
	Category        string   `json:"category"`
	ResearchType    string   `json:"research_type"`
	Citations       int      `json:"citations"`
	FundingSource   string   `json:"funding_source"`
	PeerReviewers   []string `json:"peer_reviewers"`
	Journal         string   `json:"journal"`
	VolumeIssue     string   `json:"volume_issue"`
}

// Pagination describes the returned window.
type Pagination struct {
	TotalCount    int  `json:"total_count"`
	ReturnedCount int  `json:"returned_count"`
	Offset        int  `json:"offset"`
	Limit         *int `json:"limit"`
	HasMore       bool `json:"has_more"`
}

// FiltersApplied echoes the filters in effect; absent filters are null.
type FiltersApplied struct {
	Status       *string `json:"status"`
	Category     *string `json:"category"`
	Author       *string `json:"author"`
	Institution  *string `json:"institution"`
	ResearchType *string `json:"research_type"`
	Search       *string `json:"search"`
}

// Sorting echoes the requested ordering.
type Sorting struct {
	SortBy    string `json:"sort_by"`
	SortOrder string `json:"sort_order"`
}

// Summary carries aggregates over the full matching set.
type Summary struct {
	StatusDistribution   OrderedCounts `json:"status_distribution"`
	CategoryDistribution OrderedCounts `json:"category_distribution"`
	TotalCitations       int           `json:"total_citations"`
}

// AvailableFilters lists recognized filter values for client discovery.
type AvailableFilters struct {
	Statuses      []string `json:"statuses"`
	ResearchTypes []string `json:"research_types"`
	Categories    []string `json:"categories"`
}

// PapersResponse is the success envelope of GET /api/papers.
type PapersResponse struct {
	Success          bool             `json:"success"`
	Data             []Paper          `json:"data"`
	Pagination       Pagination       `json:"pagination"`
	FiltersApplied   FiltersApplied   `json:"filters_applied"`
	Sorting          Sorting          `json:"sorting"`
	Summary          Summary          `json:"summary"`
	AvailableFilters AvailableFilters `json:"available_filters"`
	Message          string           `json:"message"`
	Timestamp        string           `json:"timestamp"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Records int               `json:"records"`
}
