package nfa

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/automatakit/nfa/internal/logging"
)

// Epsilon is the reserved empty-string symbol. It is always a legal
// transition key but is never a member of any alphabet.
const Epsilon rune = 0

// Machine is a nondeterministic finite automaton over a fixed alphabet.
//
// A Machine is in one of two modes. In build mode the graph (states,
// transitions, start and final sets) may be mutated freely. Start switches
// the machine to run mode, freezing the graph; only the stepping operations
// are legal until Stop returns it to build mode.
//
// A Machine is a single mutable object with no internal locking. Callers
// sharing one across goroutines must serialize access externally.
type Machine struct {
	alphabet map[rune]struct{}
	states   map[StateID]*state
	nextID   StateID
	start    StateSet
	final    StateSet

	closeStart bool
	logger     *slog.Logger

	run *session // non-nil while in run mode
}

// New constructs an empty machine over the given alphabet. The alphabet is
// the set of distinct runes in the string and cannot be changed afterwards.
// It must not contain the Epsilon sentinel.
func New(alphabet string, opts ...Option) (*Machine, error) {
	m := &Machine{
		alphabet: make(map[rune]struct{}),
		states:   make(map[StateID]*state),
		start:    make(StateSet),
		final:    make(StateSet),
		logger:   logging.NewNop(),
	}
	pos := 0
	for _, sym := range alphabet {
		if sym == Epsilon {
			return nil, fmt.Errorf("new machine: %w", &InvalidSymbolError{Symbol: sym, Pos: pos})
		}
		m.alphabet[sym] = struct{}{}
		pos++
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Running reports whether the machine is in run mode.
func (m *Machine) Running() bool {
	return m.run != nil
}

// SymbolInAlphabet reports whether sym is a member of the alphabet. The
// Epsilon sentinel is never a member.
func (m *Machine) SymbolInAlphabet(sym rune) bool {
	_, ok := m.alphabet[sym]
	return ok
}

// OverAlphabet reports whether every rune of input is in the alphabet.
func (m *Machine) OverAlphabet(input string) bool {
	for _, sym := range input {
		if !m.SymbolInAlphabet(sym) {
			return false
		}
	}
	return true
}

// Alphabet returns the alphabet symbols in ascending order.
func (m *Machine) Alphabet() []rune {
	syms := make([]rune, 0, len(m.alphabet))
	for sym := range m.alphabet {
		syms = append(syms, sym)
	}
	slices.Sort(syms)
	return syms
}

// NewState creates a state with the given name and an empty transition
// function and returns its handle. Names are conventionally unique but no
// uniqueness is enforced. Fails while the machine is running.
func (m *Machine) NewState(name string) (StateID, error) {
	if m.run != nil {
		return 0, fmt.Errorf("new state: %w", ErrRunning)
	}
	m.nextID++
	id := m.nextID
	m.states[id] = &state{name: name, trans: make(map[rune]StateSet)}
	return id, nil
}

// RemoveState removes id from the machine and scrubs every transition, on
// every symbol including Epsilon, that targets it. Keys whose destination
// set becomes empty are dropped. Reports whether the member set changed.
func (m *Machine) RemoveState(id StateID) (bool, error) {
	if m.run != nil {
		return false, fmt.Errorf("remove state: %w", ErrRunning)
	}
	if _, ok := m.states[id]; !ok {
		return false, nil
	}
	for _, st := range m.states {
		for sym, dests := range st.trans {
			if dests.Contains(id) {
				delete(dests, id)
				if len(dests) == 0 {
					delete(st.trans, sym)
				}
			}
		}
	}
	delete(m.states, id)
	delete(m.start, id)
	delete(m.final, id)
	return true, nil
}

// AddTransition adds a transition from one state to another on the given
// symbol. The symbol must be Epsilon or a member of the alphabet, and both
// endpoints must be current members of the machine. Adding an existing
// transition has no further effect.
func (m *Machine) AddTransition(from StateID, sym rune, to StateID) error {
	if m.run != nil {
		return fmt.Errorf("add transition: %w", ErrRunning)
	}
	src, ok := m.states[from]
	if !ok {
		return fmt.Errorf("add transition: %w", &UnknownStateError{ID: from})
	}
	if _, ok := m.states[to]; !ok {
		return fmt.Errorf("add transition: %w", &UnknownStateError{ID: to})
	}
	if sym != Epsilon && !m.SymbolInAlphabet(sym) {
		return fmt.Errorf("add transition: %w", &InvalidSymbolError{Symbol: sym, Pos: -1})
	}
	dests, ok := src.trans[sym]
	if !ok {
		dests = make(StateSet)
		src.trans[sym] = dests
	}
	dests.Add(to)
	return nil
}

// RemoveTransition removes the destination from the state's transition set
// for the given symbol, dropping the key if its set becomes empty. Reports
// whether anything changed.
func (m *Machine) RemoveTransition(from StateID, sym rune, to StateID) (bool, error) {
	if m.run != nil {
		return false, fmt.Errorf("remove transition: %w", ErrRunning)
	}
	src, ok := m.states[from]
	if !ok {
		return false, fmt.Errorf("remove transition: %w", &UnknownStateError{ID: from})
	}
	dests, ok := src.trans[sym]
	if !ok || !dests.Contains(to) {
		return false, nil
	}
	delete(dests, to)
	if len(dests) == 0 {
		delete(src.trans, sym)
	}
	return true, nil
}

// SetStartStates replaces the start set. Every handle must be a current
// member; on failure the previous start set is left untouched.
func (m *Machine) SetStartStates(ids ...StateID) error {
	if m.run != nil {
		return fmt.Errorf("set start states: %w", ErrRunning)
	}
	set, err := m.memberSet(ids)
	if err != nil {
		return fmt.Errorf("set start states: %w", err)
	}
	m.start = set
	return nil
}

// SetFinalStates replaces the final set. Every handle must be a current
// member; on failure the previous final set is left untouched.
func (m *Machine) SetFinalStates(ids ...StateID) error {
	if m.run != nil {
		return fmt.Errorf("set final states: %w", ErrRunning)
	}
	set, err := m.memberSet(ids)
	if err != nil {
		return fmt.Errorf("set final states: %w", err)
	}
	m.final = set
	return nil
}

// memberSet validates every handle against the member set before building
// the new subset, so a failed replacement mutates nothing.
func (m *Machine) memberSet(ids []StateID) (StateSet, error) {
	set := make(StateSet, len(ids))
	for _, id := range ids {
		if _, ok := m.states[id]; !ok {
			return nil, &UnknownStateError{ID: id}
		}
		set.Add(id)
	}
	return set, nil
}

// States returns the handles of all member states in ascending order.
func (m *Machine) States() []StateID {
	ids := make([]StateID, 0, len(m.states))
	for id := range m.states {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// HasState reports whether id is a current member of the machine.
func (m *Machine) HasState(id StateID) bool {
	_, ok := m.states[id]
	return ok
}

// StartStates returns a copy of the start set.
func (m *Machine) StartStates() StateSet {
	return m.start.Clone()
}

// FinalStates returns a copy of the final set.
func (m *Machine) FinalStates() StateSet {
	return m.final.Clone()
}

// Validate re-checks every structural invariant: start and final sets are
// subsets of the member set, every transition target is a live member, and
// every non-epsilon transition key is in the alphabet.
func (m *Machine) Validate() error {
	for id := range m.start {
		if _, ok := m.states[id]; !ok {
			return fmt.Errorf("validate: start set: %w", &UnknownStateError{ID: id})
		}
	}
	for id := range m.final {
		if _, ok := m.states[id]; !ok {
			return fmt.Errorf("validate: final set: %w", &UnknownStateError{ID: id})
		}
	}
	for id, st := range m.states {
		for sym, dests := range st.trans {
			if sym != Epsilon && !m.SymbolInAlphabet(sym) {
				return fmt.Errorf("validate: state %d: %w", id, &InvalidSymbolError{Symbol: sym, Pos: -1})
			}
			for dst := range dests {
				if _, ok := m.states[dst]; !ok {
					return fmt.Errorf("validate: state %d: %w", id, &UnknownStateError{ID: dst})
				}
			}
		}
	}
	return nil
}
