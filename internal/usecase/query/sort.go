package query

import (
	"cmp"
	"slices"
	"strings"

	dompaper "github.com/kailas-cloud/papersapi/internal/domain/paper"
	"github.com/kailas-cloud/papersapi/internal/domain/query/sortkey"
)

// missingPublicationDate stands in for an absent publication date, so
// unpublished papers sort last ascending and first descending.
const missingPublicationDate = "9999-12-31"

// comparator orders two papers ascending by one key.
type comparator func(a, b *dompaper.Paper) int

var comparators = map[sortkey.Key]comparator{
	sortkey.SubmissionDate: func(a, b *dompaper.Paper) int {
		return strings.Compare(a.SubmissionDate, b.SubmissionDate)
	},
	sortkey.Title: func(a, b *dompaper.Paper) int {
		return strings.Compare(a.Title, b.Title)
	},
	sortkey.Author: func(a, b *dompaper.Paper) int {
		return strings.Compare(a.Author, b.Author)
	},
	sortkey.Citations: func(a, b *dompaper.Paper) int {
		return cmp.Compare(a.Citations, b.Citations)
	},
	sortkey.PublicationDate: func(a, b *dompaper.Paper) int {
		return strings.Compare(publicationDateKey(a), publicationDateKey(b))
	},
}

// identity treats every pair as equal, leaving a stable sort's input order intact.
func identity(_, _ *dompaper.Paper) int { return 0 }

// comparatorFor returns the comparator for key; unknown keys get identity.
func comparatorFor(key sortkey.Key) comparator {
	if c, ok := comparators[key]; ok {
		return c
	}
	return identity
}

func publicationDateKey(p *dompaper.Paper) string {
	if p.PublicationDate == nil {
		return missingPublicationDate
	}
	return *p.PublicationDate
}

// sortPapers stably orders papers in place. Papers equal under the key keep
// their relative order in both directions.
func sortPapers(papers []dompaper.Paper, key sortkey.Key, order sortkey.Order) {
	compare := comparatorFor(key)
	desc := order.Descending()
	slices.SortStableFunc(papers, func(a, b dompaper.Paper) int {
		c := compare(&a, &b)
		if desc {
			return -c
		}
		return c
	})
}
