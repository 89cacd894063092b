package cli

import "github.com/automatakit/nfa"

// Sample builds the built-in demo machine: two states over the alphabet
// {0,1}, where s1 is reached exactly when the symbol under the cursor is 1.
// It returns the machine and its demo input.
func Sample(opts ...nfa.Option) (*nfa.Machine, string, error) {
	m, err := nfa.New("01", opts...)
	if err != nil {
		return nil, "", err
	}

	s0, err := m.NewState("s0")
	if err != nil {
		return nil, "", err
	}
	s1, err := m.NewState("s1")
	if err != nil {
		return nil, "", err
	}

	transitions := []struct {
		from nfa.StateID
		sym  rune
		to   nfa.StateID
	}{
		{s0, '0', s0},
		{s0, '1', s1},
		{s1, '0', s0},
		{s1, '1', s1},
	}
	for _, tr := range transitions {
		if err := m.AddTransition(tr.from, tr.sym, tr.to); err != nil {
			return nil, "", err
		}
	}

	if _, err := m.SetStartState(s0, true); err != nil {
		return nil, "", err
	}
	if _, err := m.SetFinalState(s1, true); err != nil {
		return nil, "", err
	}
	return m, "00110101010", nil
}
