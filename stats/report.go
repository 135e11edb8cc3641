package stats

import (
	"fmt"
	"io"
)

// Report is an ordered set of named scalar results, rendered one
// "<key> <value>" line per entry in the order they were set.
type Report struct {
	order  []string
	values map[string]float64
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{values: make(map[string]float64)}
}

// Set records value under key, overwriting any previous value for the
// same key without changing its position in the output order.
func (r *Report) Set(key string, value float64) {
	if _, exists := r.values[key]; !exists {
		r.order = append(r.order, key)
	}
	r.values[key] = value
}

// WriteTo writes the report to w, one "<key> <value>" line per entry.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, key := range r.order {
		n, err := fmt.Fprintf(w, "%s %v\n", key, r.values[key])
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
