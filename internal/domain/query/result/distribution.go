package result

// Distribution counts occurrences per value, remembering the order in which
// values were first seen.
type Distribution struct {
	keys   []string
	counts map[string]int
}

// NewDistribution creates an empty distribution.
func NewDistribution() Distribution {
	return Distribution{counts: make(map[string]int)}
}

// Add counts one occurrence of value.
func (d *Distribution) Add(value string) {
	if d.counts == nil {
		d.counts = make(map[string]int)
	}
	if _, ok := d.counts[value]; !ok {
		d.keys = append(d.keys, value)
	}
	d.counts[value]++
}

// Keys returns values in first-occurrence order.
func (d Distribution) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Count returns the occurrences of value, 0 when never seen.
func (d Distribution) Count(value string) int { return d.counts[value] }

// Len returns the number of distinct values.
func (d Distribution) Len() int { return len(d.keys) }

// Total returns the sum of all counts.
func (d Distribution) Total() int {
	n := 0
	for _, c := range d.counts {
		n += c
	}
	return n
}
