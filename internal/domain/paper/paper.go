package paper

import (
	"fmt"
	"slices"

	"github.com/kailas-cloud/papersapi/internal/domain"
)

// Status is the publication lifecycle state of a paper.
type Status string

// Status values.
const (
	Published     Status = "published"
	UnderReview   Status = "under-review"
	InPreparation Status = "in-preparation"
	Draft         Status = "draft"
)

// Statuses lists every status in catalog order.
func Statuses() []Status {
	return []Status{Published, UnderReview, InPreparation, Draft}
}

// IsValid checks if the status is one of the known values.
func (s Status) IsValid() bool {
	return slices.Contains(Statuses(), s)
}

// Paper is one immutable research-paper record.
// PublicationDate and DOI are nil when absent.
type Paper struct {
	ID              int
	Title           string
	Abstract        string
	Author          string
	CoAuthors       []string
	Institution     string
	SubmissionDate  string
	PublicationDate *string
	Status          Status
	DOI             *string
	Keywords        []string
	Category        string
	ResearchType    string
	Citations       int
	FundingSource   string
	PeerReviewers   []string
	Journal         string
	VolumeIssue     string
}

// Validate checks the record-level invariants.
func (p *Paper) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("%w: id must be positive, got %d", domain.ErrInvalidPaper, p.ID)
	}
	if p.SubmissionDate == "" {
		return fmt.Errorf("%w: paper %d has no submission date", domain.ErrInvalidPaper, p.ID)
	}
	if !p.Status.IsValid() {
		return fmt.Errorf("%w: paper %d has unknown status %q", domain.ErrInvalidPaper, p.ID, p.Status)
	}
	if p.Citations < 0 {
		return fmt.Errorf("%w: paper %d has negative citations", domain.ErrInvalidPaper, p.ID)
	}
	return nil
}

// Clone returns a deep copy; list fields are never nil in the copy.
func (p *Paper) Clone() Paper {
	c := *p
	c.CoAuthors = cloneList(p.CoAuthors)
	c.Keywords = cloneList(p.Keywords)
	c.PeerReviewers = cloneList(p.PeerReviewers)
	if p.PublicationDate != nil {
		d := *p.PublicationDate
		c.PublicationDate = &d
	}
	if p.DOI != nil {
		d := *p.DOI
		c.DOI = &d
	}
	return c
}

func cloneList(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
