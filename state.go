package nfa

import "fmt"

// state is an arena record. Per-state queries and mutations are methods on
// Machine keyed by handle, so states never need a back-reference to the
// machine that owns them.
type state struct {
	name  string
	trans map[rune]StateSet
}

// StateName returns the name the state was created with.
func (m *Machine) StateName(id StateID) (string, error) {
	st, ok := m.states[id]
	if !ok {
		return "", &UnknownStateError{ID: id}
	}
	return st.name, nil
}

// Transitions returns a deep copy of the state's transition function, with
// destination handles in ascending order per symbol.
func (m *Machine) Transitions(id StateID) (map[rune][]StateID, error) {
	st, ok := m.states[id]
	if !ok {
		return nil, &UnknownStateError{ID: id}
	}
	out := make(map[rune][]StateID, len(st.trans))
	for sym, dests := range st.trans {
		out[sym] = dests.IDs()
	}
	return out, nil
}

// IsStartState reports whether id is in the start set.
func (m *Machine) IsStartState(id StateID) bool {
	return m.start.Contains(id)
}

// IsFinalState reports whether id is in the final set.
func (m *Machine) IsFinalState(id StateID) bool {
	return m.final.Contains(id)
}

// SetStartState adds id to or removes it from the start set. Reports whether
// the set changed.
func (m *Machine) SetStartState(id StateID, start bool) (bool, error) {
	return m.setMembership(m.start, id, start, "set start state")
}

// SetFinalState adds id to or removes it from the final set. Reports whether
// the set changed.
func (m *Machine) SetFinalState(id StateID, final bool) (bool, error) {
	return m.setMembership(m.final, id, final, "set final state")
}

func (m *Machine) setMembership(set StateSet, id StateID, in bool, op string) (bool, error) {
	if m.run != nil {
		return false, fmt.Errorf("%s: %w", op, ErrRunning)
	}
	if _, ok := m.states[id]; !ok {
		return false, fmt.Errorf("%s: %w", op, &UnknownStateError{ID: id})
	}
	if in {
		if set.Contains(id) {
			return false, nil
		}
		set.Add(id)
		return true, nil
	}
	if !set.Contains(id) {
		return false, nil
	}
	delete(set, id)
	return true, nil
}
