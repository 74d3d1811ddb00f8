package health

// RecordCounter reports how many records the repository holds.
type RecordCounter interface {
	Count() int
}
