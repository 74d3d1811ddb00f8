package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OrderedCounts is a string-to-count object that serializes its keys in
// insertion order rather than Go's sorted map order.
type OrderedCounts struct {
	Keys   []string
	Counts map[string]int
}

// MarshalJSON writes {"key": count, ...} in Keys order.
func (o OrderedCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		fmt.Fprintf(&buf, "%d", o.Counts[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
