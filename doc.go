/*
Package nfa builds and simulates nondeterministic finite automata with
incremental, bidirectional replay of a computation.

A Machine is constructed over a fixed alphabet and starts in build mode,
where states, transitions and the start/final sets may be mutated. Start
freezes the graph and opens a run session over an input string; the session
consumes one symbol per step, applying the epsilon closure to each new state
set, and caches every state set it computes so that stepping backward, or jumping to
any previously visited position, is a lookup rather than a recomputation.

# Usage

	m, err := nfa.New("01")
	if err != nil {
		log.Fatal(err)
	}

	s0, _ := m.NewState("s0")
	s1, _ := m.NewState("s1")
	_ = m.AddTransition(s0, '0', s0)
	_ = m.AddTransition(s0, '1', s1)
	_ = m.AddTransition(s1, '0', s0)
	_ = m.AddTransition(s1, '1', s1)
	m.SetStartState(s0, true)
	m.SetFinalState(s1, true)

	if err := m.Start("00110101010"); err != nil {
		log.Fatal(err)
	}
	for {
		pos, _ := m.Position()
		states, _ := m.CurrentStates()
		fmt.Println(pos, states.IDs())
		if pos == len("00110101010") {
			break
		}
		_ = m.Step()
	}
	accepted, _ := m.OnFinalState()
	fmt.Println(accepted)

Machines are not safe for concurrent use; callers sharing one across
goroutines must serialize access externally.
*/
package nfa
