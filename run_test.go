package nfa_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automatakit/nfa"
)

func TestStart(t *testing.T) {
	t.Run("Seeds Start Set Verbatim", func(t *testing.T) {
		// Epsilon transitions out of start states are not applied to the
		// seed at position 0.
		m, err := nfa.New("a")
		require.NoError(t, err)
		p, _ := m.NewState("p")
		q, _ := m.NewState("q")
		require.NoError(t, m.AddTransition(p, nfa.Epsilon, q))
		_, err = m.SetStartState(p, true)
		require.NoError(t, err)

		require.NoError(t, m.Start("a"))
		current, err := m.CurrentStates()
		require.NoError(t, err)
		assert.True(t, current.Equal(nfa.NewStateSet(p)))
	})

	t.Run("WithStartClosure Closes The Seed", func(t *testing.T) {
		m, err := nfa.New("a", nfa.WithStartClosure())
		require.NoError(t, err)
		p, _ := m.NewState("p")
		q, _ := m.NewState("q")
		require.NoError(t, m.AddTransition(p, nfa.Epsilon, q))
		_, err = m.SetStartState(p, true)
		require.NoError(t, err)

		require.NoError(t, m.Start("a"))
		current, err := m.CurrentStates()
		require.NoError(t, err)
		assert.True(t, current.Equal(nfa.NewStateSet(p, q)))
	})

	t.Run("Rejects Input Outside Alphabet", func(t *testing.T) {
		m, _, _ := buildSample(t)

		err := m.Start("01x1")
		var symErr *nfa.InvalidSymbolError
		require.ErrorAs(t, err, &symErr)
		assert.Equal(t, 'x', symErr.Symbol)
		assert.Equal(t, 2, symErr.Pos)
		assert.False(t, m.Running())
	})

	t.Run("Rejected While Already Running", func(t *testing.T) {
		m, _, _ := buildSample(t)
		require.NoError(t, m.Start("01"))
		assert.ErrorIs(t, m.Start("10"), nfa.ErrRunning)

		// The original session is intact.
		pos, err := m.Position()
		require.NoError(t, err)
		assert.Equal(t, 0, pos)
		input, err := m.Input()
		require.NoError(t, err)
		assert.Equal(t, "01", input)
	})

	t.Run("Empty Input Is Legal", func(t *testing.T) {
		m, s0, _ := buildSample(t)
		require.NoError(t, m.Start(""))

		pos, err := m.Position()
		require.NoError(t, err)
		assert.Equal(t, 0, pos)
		current, err := m.CurrentStates()
		require.NoError(t, err)
		assert.True(t, current.Equal(nfa.NewStateSet(s0)))
	})
}

func TestStop(t *testing.T) {
	m, _, _ := buildSample(t)

	assert.ErrorIs(t, m.Stop(), nfa.ErrNotRunning)

	require.NoError(t, m.Start("01"))
	require.NoError(t, m.Stop())
	assert.False(t, m.Running())

	// The session is gone: run-mode accessors fail again.
	_, err := m.Position()
	assert.ErrorIs(t, err, nfa.ErrNotRunning)
	_, err = m.CurrentStates()
	assert.ErrorIs(t, err, nfa.ErrNotRunning)
	_, err = m.Input()
	assert.ErrorIs(t, err, nfa.ErrNotRunning)
	_, err = m.OnFinalState()
	assert.ErrorIs(t, err, nfa.ErrNotRunning)

	// And the machine can be mutated and restarted.
	_, err = m.NewState("s2")
	require.NoError(t, err)
	require.NoError(t, m.Start("10"))
	require.NoError(t, m.Stop())
}

// referenceTrace computes the expected state set at every position of the
// sample machine independently of the engine: the entry for position n is
// driven by the symbol at index n, and the entry at position 0 is the start
// set untouched.
func referenceTrace(s0, s1 nfa.StateID, input string) []nfa.StateSet {
	trace := []nfa.StateSet{nfa.NewStateSet(s0)}
	for _, sym := range input[1:] {
		if sym == '1' {
			trace = append(trace, nfa.NewStateSet(s1))
		} else {
			trace = append(trace, nfa.NewStateSet(s0))
		}
	}
	return trace
}

func TestStep(t *testing.T) {
	t.Run("Matches Reference Simulation", func(t *testing.T) {
		m, s0, s1 := buildSample(t)
		const input = "00110101010"
		expected := referenceTrace(s0, s1, input)

		require.NoError(t, m.Start(input))
		for pos := 0; pos < len(input); pos++ {
			current, err := m.CurrentStates()
			require.NoError(t, err)
			assert.True(t, current.Equal(expected[pos]), "position %d: got %v, want %v", pos, current.IDs(), expected[pos].IDs())
			require.NoError(t, m.Step())
		}

		// The whole string is consumed and the last computed set stands.
		pos, err := m.Position()
		require.NoError(t, err)
		assert.Equal(t, len(input), pos)
		final, err := m.OnFinalState()
		require.NoError(t, err)
		assert.False(t, final)
	})

	t.Run("End Position Is A NoOp", func(t *testing.T) {
		m, _, _ := buildSample(t)
		require.NoError(t, m.Start("01"))
		require.NoError(t, m.Step())

		before, err := m.CurrentStates()
		require.NoError(t, err)
		require.NoError(t, m.Step())

		pos, err := m.Position()
		require.NoError(t, err)
		assert.Equal(t, 2, pos)
		after, err := m.CurrentStates()
		require.NoError(t, err)
		assert.True(t, after.Equal(before))
	})

	t.Run("Past The End Fails Without Mutation", func(t *testing.T) {
		m, _, _ := buildSample(t)
		require.NoError(t, m.Start("0"))
		require.NoError(t, m.Step())

		err := m.Step()
		var oobErr *nfa.OutOfBoundsError
		require.ErrorAs(t, err, &oobErr)
		assert.Equal(t, 2, oobErr.Position)
		assert.Equal(t, 1, oobErr.Length)

		pos, perr := m.Position()
		require.NoError(t, perr)
		assert.Equal(t, 1, pos)
	})

	t.Run("Requires Running", func(t *testing.T) {
		m, _, _ := buildSample(t)
		assert.ErrorIs(t, m.Step(), nfa.ErrNotRunning)
	})

	t.Run("Applies Epsilon Closure To Destinations", func(t *testing.T) {
		m, err := nfa.New("a")
		require.NoError(t, err)
		p, _ := m.NewState("p")
		q, _ := m.NewState("q")
		r, _ := m.NewState("r")
		require.NoError(t, m.AddTransition(p, 'a', q))
		require.NoError(t, m.AddTransition(q, nfa.Epsilon, r))
		_, err = m.SetStartState(p, true)
		require.NoError(t, err)

		require.NoError(t, m.Start("aa"))
		require.NoError(t, m.Step())

		current, err := m.CurrentStates()
		require.NoError(t, err)
		assert.True(t, current.Equal(nfa.NewStateSet(q, r)))
	})

	t.Run("States Without A Transition Contribute Nothing", func(t *testing.T) {
		m, err := nfa.New("ab")
		require.NoError(t, err)
		p, _ := m.NewState("p")
		q, _ := m.NewState("q")
		require.NoError(t, m.AddTransition(p, 'a', q))
		require.NoError(t, m.SetStartStates(p, q))

		require.NoError(t, m.Start("aa"))
		require.NoError(t, m.Step())

		current, err := m.CurrentStates()
		require.NoError(t, err)
		assert.True(t, current.Equal(nfa.NewStateSet(q)))
	})
}

func TestStepBack(t *testing.T) {
	t.Run("Inverse Of Step At Every Position", func(t *testing.T) {
		m, _, _ := buildSample(t)
		const input = "00110101010"
		require.NoError(t, m.Start(input))

		for pos := 1; pos < len(input); pos++ {
			require.NoError(t, m.GoToStep(pos))
			before, err := m.CurrentStates()
			require.NoError(t, err)

			require.NoError(t, m.StepBack())
			require.NoError(t, m.Step())

			after, err := m.CurrentStates()
			require.NoError(t, err)
			assert.True(t, after.Equal(before), "position %d", pos)
			got, err := m.Position()
			require.NoError(t, err)
			assert.Equal(t, pos, got)
		}
	})

	t.Run("Fails At Position Zero", func(t *testing.T) {
		m, _, _ := buildSample(t)
		require.NoError(t, m.Start("01"))

		err := m.StepBack()
		var oobErr *nfa.OutOfBoundsError
		require.ErrorAs(t, err, &oobErr)
		assert.Equal(t, -1, oobErr.Position)
	})

	t.Run("Requires Running", func(t *testing.T) {
		m, _, _ := buildSample(t)
		assert.ErrorIs(t, m.StepBack(), nfa.ErrNotRunning)
	})
}

func TestGoToStep(t *testing.T) {
	t.Run("Jump Equals Sequential Replay", func(t *testing.T) {
		const input = "00110101010"

		jumper, _, _ := buildSample(t)
		require.NoError(t, jumper.Start(input))

		stepper, _, _ := buildSample(t)
		require.NoError(t, stepper.Start(input))

		for target := 0; target < len(input); target++ {
			require.NoError(t, jumper.GoToStep(target))
			require.NoError(t, stepper.GoToStep(0))
			for i := 0; i < target; i++ {
				require.NoError(t, stepper.Step())
			}

			jumped, err := jumper.CurrentStates()
			require.NoError(t, err)
			walked, err := stepper.CurrentStates()
			require.NoError(t, err)
			assert.True(t, jumped.Equal(walked), "target %d", target)
		}
	})

	t.Run("Backward Moves Are Lookups", func(t *testing.T) {
		m, _, _ := buildSample(t)
		const input = "0011"
		require.NoError(t, m.Start(input))
		require.NoError(t, m.GoToStep(3))

		expected, err := m.CurrentStates()
		require.NoError(t, err)

		require.NoError(t, m.GoToStep(1))
		require.NoError(t, m.GoToStep(3))
		replayed, err := m.CurrentStates()
		require.NoError(t, err)
		assert.True(t, replayed.Equal(expected))
	})

	t.Run("Rejects Positions Outside The Input", func(t *testing.T) {
		m, _, _ := buildSample(t)
		const input = "01"
		require.NoError(t, m.Start(input))

		var oobErr *nfa.OutOfBoundsError
		require.ErrorAs(t, m.GoToStep(-1), &oobErr)

		// The end sentinel position is reachable by Step but not GoToStep.
		err := m.GoToStep(len(input))
		require.ErrorAs(t, err, &oobErr)
		assert.Equal(t, len(input), oobErr.Position)

		pos, err := m.Position()
		require.NoError(t, err)
		assert.Equal(t, 0, pos)
	})

	t.Run("Requires Running", func(t *testing.T) {
		m, _, _ := buildSample(t)
		assert.ErrorIs(t, m.GoToStep(0), nfa.ErrNotRunning)
	})
}

func TestOnFinalState(t *testing.T) {
	m, _, _ := buildSample(t)
	const input = "011"
	require.NoError(t, m.Start(input))

	final, err := m.OnFinalState()
	require.NoError(t, err)
	assert.False(t, final)

	// Position 1 consumes the '1' under the cursor.
	require.NoError(t, m.Step())
	final, err = m.OnFinalState()
	require.NoError(t, err)
	assert.True(t, final)
}

func TestAccepts(t *testing.T) {
	m, _, _ := buildSample(t)

	cases := []struct {
		input string
		want  bool
	}{
		{"011", true},
		{"00110101010", false},
		{"", false},
		{"01", true},
		{"10", false},
	}
	for _, tc := range cases {
		got, err := m.Accepts(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}

	_, err := m.Accepts("02")
	var symErr *nfa.InvalidSymbolError
	assert.ErrorAs(t, err, &symErr)

	// Accepts leaves any active session alone.
	require.NoError(t, m.Start("0101"))
	require.NoError(t, m.GoToStep(2))
	_, err = m.Accepts("011")
	require.NoError(t, err)
	pos, err := m.Position()
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
}
