package nfa

import "fmt"

// session holds all run-mode state. It exists only between Start and Stop,
// and nothing outside the machine ever mutates it.
//
// trail is the positional cache: trail[0] is the configuration before any
// symbol is consumed and trail[i] the configuration at position i. It is
// always a prefix, holding an entry for every position from 0 up to the
// highest position ever visited, so moving backward is a pure lookup and
// moving forward extends it in strict order.
type session struct {
	input   string
	symbols []rune
	pos     int
	current StateSet
	trail   []StateSet
}

// Start freezes the graph and enters run mode over the given input string.
// Every rune of the input must be in the alphabet. The current states are
// seeded from the start set; unless the machine was built with
// WithStartClosure, epsilon transitions out of start states are not applied
// to the seed (they first take effect on the following step).
func (m *Machine) Start(input string) error {
	if m.run != nil {
		return fmt.Errorf("start: %w", ErrRunning)
	}
	symbols := []rune(input)
	for i, sym := range symbols {
		if !m.SymbolInAlphabet(sym) {
			return fmt.Errorf("start: %w", &InvalidSymbolError{Symbol: sym, Pos: i})
		}
	}
	seed := m.start.Clone()
	if m.closeStart {
		seed = m.EpsilonClosure(seed)
	}
	m.run = &session{
		input:   input,
		symbols: symbols,
		current: seed,
		trail:   []StateSet{seed},
	}
	m.logger.Debug("run started", "input", input, "states", seed.Len())
	return nil
}

// Stop discards the session and returns the machine to build mode.
func (m *Machine) Stop() error {
	if m.run == nil {
		return fmt.Errorf("stop: %w", ErrNotRunning)
	}
	m.run = nil
	m.logger.Debug("run stopped")
	return nil
}

// Step advances the position by one. Reaching a position equal to the input
// length is legal and leaves the current states untouched (there is no
// symbol under that position); advancing past it fails with OutOfBounds.
// Within the cached frontier Step is a pure lookup; exactly at the frontier
// it consumes the symbol under the new position and extends the cache.
func (m *Machine) Step() error {
	if m.run == nil {
		return fmt.Errorf("step: %w", ErrNotRunning)
	}
	if err := m.step(); err != nil {
		return fmt.Errorf("step: %w", err)
	}
	return nil
}

func (m *Machine) step() error {
	s := m.run
	next := s.pos + 1
	if next > len(s.symbols) {
		return &OutOfBoundsError{Position: next, Length: len(s.symbols)}
	}
	if next == len(s.symbols) {
		s.pos = next
		return nil
	}
	switch {
	case next < len(s.trail):
		s.pos = next
		s.current = s.trail[next]
	case next == len(s.trail):
		sym := s.symbols[next]
		moved := make(StateSet)
		for id := range s.current {
			for dst := range m.states[id].trans[sym] {
				moved.Add(dst)
			}
		}
		closed := m.EpsilonClosure(moved)
		s.pos = next
		s.current = closed
		s.trail = append(s.trail, closed)
		m.logger.Debug("cache extended", "position", next, "symbol", string(sym), "states", closed.Len())
	default:
		// Unreachable through the public operations: the trail is a prefix
		// and only ever grows by one entry at a time.
		panic(fmt.Sprintf("nfa: cache gap stepping to position %d with frontier %d", next, len(s.trail)-1))
	}
	return nil
}

// StepBack navigates to position-1 under the same frontier rule as GoToStep.
// Fails with OutOfBounds when the position is already 0.
func (m *Machine) StepBack() error {
	if m.run == nil {
		return fmt.Errorf("step back: %w", ErrNotRunning)
	}
	if err := m.goToStep(m.run.pos - 1); err != nil {
		return fmt.Errorf("step back: %w", err)
	}
	return nil
}

// GoToStep moves directly to position n, which must be in [0, input length).
// Cached positions are restored by lookup; positions beyond the cache
// frontier are reached by stepping forward one symbol at a time, extending
// the cache as it goes.
func (m *Machine) GoToStep(n int) error {
	if m.run == nil {
		return fmt.Errorf("go to step: %w", ErrNotRunning)
	}
	if err := m.goToStep(n); err != nil {
		return fmt.Errorf("go to step: %w", err)
	}
	return nil
}

func (m *Machine) goToStep(n int) error {
	s := m.run
	if n < 0 || n >= len(s.symbols) {
		return &OutOfBoundsError{Position: n, Length: len(s.symbols)}
	}
	if n < len(s.trail) {
		s.pos = n
		s.current = s.trail[n]
		return nil
	}
	if n < s.pos {
		// An uncached position below the current one cannot exist: the trail
		// covers every position ever visited.
		panic(fmt.Sprintf("nfa: position %d below current %d but beyond frontier %d", n, s.pos, len(s.trail)-1))
	}
	for s.pos < n {
		if err := m.step(); err != nil {
			return err
		}
	}
	return nil
}

// OnFinalState reports whether the current state set contains at least one
// final state.
func (m *Machine) OnFinalState() (bool, error) {
	if m.run == nil {
		return false, fmt.Errorf("on final state: %w", ErrNotRunning)
	}
	return m.run.current.intersects(m.final), nil
}

// CurrentStates returns a copy of the state set at the current position.
func (m *Machine) CurrentStates() (StateSet, error) {
	if m.run == nil {
		return nil, fmt.Errorf("current states: %w", ErrNotRunning)
	}
	return m.run.current.Clone(), nil
}

// Position returns how many symbols have been consumed so far.
func (m *Machine) Position() (int, error) {
	if m.run == nil {
		return 0, fmt.Errorf("position: %w", ErrNotRunning)
	}
	return m.run.pos, nil
}

// Input returns the input string the session was started with.
func (m *Machine) Input() (string, error) {
	if m.run == nil {
		return "", fmt.Errorf("input: %w", ErrNotRunning)
	}
	return m.run.input, nil
}

// Accepts reports whether the machine accepts the input string. It simulates
// the same stepping rule as a run session on scratch state, so it works in
// either mode and has no side effects on the machine or any active session.
func (m *Machine) Accepts(input string) (bool, error) {
	symbols := []rune(input)
	for i, sym := range symbols {
		if !m.SymbolInAlphabet(sym) {
			return false, fmt.Errorf("accepts: %w", &InvalidSymbolError{Symbol: sym, Pos: i})
		}
	}
	current := m.start.Clone()
	if m.closeStart {
		current = m.EpsilonClosure(current)
	}
	for pos := 1; pos < len(symbols); pos++ {
		sym := symbols[pos]
		moved := make(StateSet)
		for id := range current {
			for dst := range m.states[id].trans[sym] {
				moved.Add(dst)
			}
		}
		current = m.EpsilonClosure(moved)
	}
	return current.intersects(m.final), nil
}
