// Package catalog lists the filter values advertised to clients for discovery.
// The lists are hints: the query engine does not reject values outside them.
package catalog

import "github.com/kailas-cloud/papersapi/internal/domain/paper"

// Catalog holds the recognized filter values.
type Catalog struct {
	Statuses      []string
	ResearchTypes []string
	Categories    []string
}

// Default returns the advertised filter values.
func Default() Catalog {
	statuses := paper.Statuses()
	s := make([]string, len(statuses))
	for i, st := range statuses {
		s[i] = string(st)
	}
	return Catalog{
		Statuses: s,
		ResearchTypes: []string{
			"observational",
			"meta-analysis",
			"survey",
			"surveillance",
			"modeling",
			"systematic review",
		},
		Categories: []string{
			"Infectious Disease",
			"Global Health",
			"Vector-borne Disease",
			"Climate Health",
			"Antimicrobial Resistance",
			"Digital Health",
			"One Health",
		},
	}
}
