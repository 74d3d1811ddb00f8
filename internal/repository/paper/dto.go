package paper

import dompaper "github.com/kailas-cloud/papersapi/internal/domain/paper"

// datasetFile is the on-disk YAML layout of a dataset.
type datasetFile struct {
	Papers []paperRecord `yaml:"papers"`
}

// paperRecord mirrors a paper's YAML keys.
type paperRecord struct {
	ID              int      `yaml:"id"`
	Title           string   `yaml:"title"`
	Abstract        string   `yaml:"abstract"`
	Author          string   `yaml:"author"`
	CoAuthors       []string `yaml:"co_authors"`
	Institution     string   `yaml:"institution"`
	SubmissionDate  string   `yaml:"submission_date"`
	PublicationDate *string  `yaml:"publication_date"`
	Status          string   `yaml:"status"`
	DOI             *string  `yaml:"doi"`
	Keywords        []string `yaml:"keywords"`
	Category        string   `yaml:"category"`
	ResearchType    string   `yaml:"research_type"`
	Citations       int      `yaml:"citations"`
	FundingSource   string   `yaml:"funding_source"`
	PeerReviewers   []string `yaml:"peer_reviewers"`
	Journal         string   `yaml:"journal"`
	VolumeIssue     string   `yaml:"volume_issue"`
}

func (r *paperRecord) toDomain() dompaper.Paper {
	return dompaper.Paper{
		ID:              r.ID,
		Title:           r.Title,
		Abstract:        r.Abstract,
		Author:          r.Author,
		CoAuthors:       r.CoAuthors,
		Institution:     r.Institution,
		SubmissionDate:  r.SubmissionDate,
		PublicationDate: r.PublicationDate,
		Status:          dompaper.Status(r.Status),
		DOI:             r.DOI,
		Keywords:        r.Keywords,
		Category:        r.Category,
		ResearchType:    r.ResearchType,
		Citations:       r.Citations,
		FundingSource:   r.FundingSource,
		PeerReviewers:   r.PeerReviewers,
		Journal:         r.Journal,
		VolumeIssue:     r.VolumeIssue,
	}
}
