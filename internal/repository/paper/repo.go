package paper

import (
	"fmt"

	"github.com/kailas-cloud/papersapi/internal/domain"
	dompaper "github.com/kailas-cloud/papersapi/internal/domain/paper"
)

// Repo is the in-memory, read-only paper collection.
// It is populated once and never mutated, so concurrent reads need no locking.
type Repo struct {
	papers []dompaper.Paper
}

// New validates papers and takes a private copy of them.
func New(papers []dompaper.Paper) (*Repo, error) {
	seen := make(map[int]struct{}, len(papers))
	owned := make([]dompaper.Paper, len(papers))
	for i := range papers {
		if err := papers[i].Validate(); err != nil {
			return nil, fmt.Errorf("paper at position %d: %w", i, err)
		}
		if _, dup := seen[papers[i].ID]; dup {
			return nil, fmt.Errorf("%w: %d", domain.ErrDuplicateID, papers[i].ID)
		}
		seen[papers[i].ID] = struct{}{}
		owned[i] = papers[i].Clone()
	}
	return &Repo{papers: owned}, nil
}

// Seeded returns a repository holding the built-in dataset.
func Seeded() *Repo {
	r, err := New(seed())
	if err != nil {
		panic("built-in dataset is invalid: " + err.Error())
	}
	return r
}

// All returns every paper in dataset order. The result is a deep copy.
func (r *Repo) All() []dompaper.Paper {
	out := make([]dompaper.Paper, len(r.papers))
	for i := range r.papers {
		out[i] = r.papers[i].Clone()
	}
	return out
}

// Count returns the number of papers held.
func (r *Repo) Count() int {
	return len(r.papers)
}
