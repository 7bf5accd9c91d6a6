package naming

import "sort"

// RecordSet tracks the target file names processed during one run. A name
// that has been claimed once is never renamed onto again in the same run.
// A run visits references one at a time, so the set is not locked.
type RecordSet struct {
	names map[string]struct{}
}

// NewRecordSet creates an empty set.
func NewRecordSet() *RecordSet {
	return &RecordSet{names: make(map[string]struct{})}
}

// Claim records name and reports whether this is the first time it was seen.
func (rs *RecordSet) Claim(name string) bool {
	if _, ok := rs.names[name]; ok {
		return false
	}
	rs.names[name] = struct{}{}
	return true
}

// Add records name. Adding a name twice is a no-op.
func (rs *RecordSet) Add(name string) {
	rs.names[name] = struct{}{}
}

// Names returns the recorded names sorted lexicographically.
func (rs *RecordSet) Names() []string {
	out := make([]string, 0, len(rs.names))
	for n := range rs.names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
