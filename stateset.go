package nfa

import "slices"

// StateID is an opaque handle to a state inside a Machine. Handles are minted
// by Machine.NewState and are only meaningful for the machine that issued
// them. The zero value is never a valid handle.
type StateID int

// StateSet is an unordered set of state handles.
type StateSet map[StateID]struct{}

// NewStateSet builds a set from the given handles.
func NewStateSet(ids ...StateID) StateSet {
	s := make(StateSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id into the set.
func (s StateSet) Add(id StateID) {
	s[id] = struct{}{}
}

// Contains reports whether id is in the set.
func (s StateSet) Contains(id StateID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of states in the set.
func (s StateSet) Len() int {
	return len(s)
}

// Clone returns an independent copy of the set.
func (s StateSet) Clone() StateSet {
	c := make(StateSet, len(s))
	for id := range s {
		c[id] = struct{}{}
	}
	return c
}

// Equal reports whether both sets contain exactly the same handles.
func (s StateSet) Equal(other StateSet) bool {
	if len(s) != len(other) {
		return false
	}
	for id := range s {
		if !other.Contains(id) {
			return false
		}
	}
	return true
}

// IDs returns the handles in ascending order.
func (s StateSet) IDs() []StateID {
	ids := make([]StateID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// intersects reports whether the two sets share at least one handle.
func (s StateSet) intersects(other StateSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for id := range small {
		if large.Contains(id) {
			return true
		}
	}
	return false
}
