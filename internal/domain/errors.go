package domain

import "errors"

var (
	// ErrInvalidPaper signals a paper record that fails validation.
	ErrInvalidPaper = errors.New("invalid paper")
	// ErrDuplicateID signals two records sharing an id.
	ErrDuplicateID = errors.New("duplicate paper id")
)
