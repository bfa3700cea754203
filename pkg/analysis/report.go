/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: Ordered mapping from column name to result. Keeps the header order of first
appearance while letting a later column with the same name replace the stored result.
*/

package analysis

// Report maps column names to results
type Report struct {
	names   []string
	results map[string]Result
}

// NewReport creates a report holding the given results
func NewReport(results ...Result) *Report {
	r := &Report{results: make(map[string]Result)}
	for _, res := range results {
		r.Put(res)
	}
	return r
}

// Put stores res under its column name, replacing any earlier entry
func (r *Report) Put(res Result) {
	name := res.ColumnName()
	if _, exists := r.results[name]; !exists {
		r.names = append(r.names, name)
	}
	r.results[name] = res
}

// Get returns the result for a column
func (r *Report) Get(name string) (Result, bool) {
	res, ok := r.results[name]
	return res, ok
}

// Names returns the column names in order of first appearance
func (r *Report) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of described columns
func (r *Report) Len() int { return len(r.names) }

// Results returns the results in column order
func (r *Report) Results() []Result {
	out := make([]Result, len(r.names))
	for i, name := range r.names {
		out[i] = r.results[name]
	}
	return out
}

// Equal compares two reports entry by entry, ignoring order
func (r *Report) Equal(other *Report) bool {
	if other == nil || r.Len() != other.Len() {
		return false
	}
	for name, res := range r.results {
		o, ok := other.results[name]
		if !ok || !res.Equal(o) {
			return false
		}
	}
	return true
}
