package sortkey

// Key names the field a result set is ordered by.
type Key string

// Sort key constants.
const (
	// SubmissionDate is the default ordering.
	SubmissionDate  Key = "submission_date"
	Title           Key = "title"
	Author          Key = "author"
	Citations       Key = "citations"
	PublicationDate Key = "publication_date"
)

// Default is the key used when none is supplied.
const Default = SubmissionDate

// IsValid checks if the key is one of the supported values.
// Unsupported keys are not an error: they leave the order untouched.
func (k Key) IsValid() bool {
	return k == SubmissionDate || k == Title || k == Author || k == Citations || k == PublicationDate
}

// Order is the raw sort direction as supplied by the caller.
type Order string

// Sort order constants.
const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// DefaultOrder is the direction used when none is supplied.
const DefaultOrder = Desc

// Descending reports whether the order sorts high to low.
// Only the exact value "asc" ascends.
func (o Order) Descending() bool {
	return o != Asc
}
