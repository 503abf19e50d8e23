// Package strset provides an insertion-ordered set of normalized strings.
package strset

import "strings"

// Normalize produces the comparison form of a name.
func Normalize(val string) string {
	return strings.ToLower(val)
}

// Set is an ordered set of strings compared case-insensitive.
// Values are stored in their [Normalize] form, and the zero value is ready to use.
type Set struct {
	index map[string]struct{}
	order []string
}

// New creates a new [Set] from the given values.
// Empty values are skipped, and repeated values keep their first position.
func New(vals ...string) *Set {
	s := &Set{}
	for _, v := range vals {
		s.Add(v)
	}
	return s
}

// Add normalizes val and adds it to the end of the [Set] if it's not already present.
// Returns true if the value was added.
func (s *Set) Add(val string) bool {
	val = Normalize(val)
	if len(val) == 0 || s.Has(val) {
		return false
	}
	if s.index == nil {
		s.index = map[string]struct{}{}
	}
	s.index[val] = struct{}{}
	s.order = append(s.order, val)
	return true
}

func (s *Set) Has(val string) bool {
	if s == nil {
		return false
	}
	_, ok := s.index[Normalize(val)]
	return ok
}

// HasAny determines if any of the given values are present in the [Set].
// If the parameter list is empty, then false is returned.
func (s *Set) HasAny(vals ...string) bool {
	for _, v := range vals {
		if s.Has(v) {
			return true
		}
	}
	return false
}

func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.order)
}

// Slice returns a copy of the values in insertion order, or nil if the [Set] is empty.
func (s *Set) Slice() []string {
	if s.Len() == 0 {
		return nil
	}
	vals := make([]string, len(s.order))
	copy(vals, s.order)
	return vals
}
