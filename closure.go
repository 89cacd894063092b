package nfa

// EpsilonClosure returns every state reachable from the given set using zero
// or more epsilon transitions, including the input states themselves. The
// traversal shares one visited set across all input states, so it terminates
// on cyclic epsilon-graphs and visits each state at most once. Each call
// recomputes from scratch; closures are computed once per consumed symbol,
// not in a hot loop, so nothing is memoized across calls.
func (m *Machine) EpsilonClosure(set StateSet) StateSet {
	closure := set.Clone()
	stack := make([]StateID, 0, len(set))
	for id := range set {
		stack = append(stack, id)
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		st, ok := m.states[id]
		if !ok {
			continue
		}
		for dst := range st.trans[Epsilon] {
			if !closure.Contains(dst) {
				closure.Add(dst)
				stack = append(stack, dst)
			}
		}
	}
	return closure
}
