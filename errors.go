package nfa

import (
	"errors"
	"fmt"
)

// ErrRunning is returned when a build-mode operation is attempted while the
// machine is running.
var ErrRunning = errors.New("machine is running")

// ErrNotRunning is returned when a run-mode operation is attempted while the
// machine is not running.
var ErrNotRunning = errors.New("machine is not running")

// UnknownStateError reports a state handle that is not a member of the
// machine it was used with.
type UnknownStateError struct {
	ID StateID
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown state %d", e.ID)
}

// InvalidSymbolError reports a symbol outside the machine's alphabet, either
// as a transition key or inside an input string. Pos is the rune index within
// the offending input, or -1 when the symbol did not come from an input
// string.
type InvalidSymbolError struct {
	Symbol rune
	Pos    int
}

func (e *InvalidSymbolError) Error() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("symbol %q at position %d is not in the alphabet", e.Symbol, e.Pos)
	}
	return fmt.Sprintf("symbol %q is not in the alphabet", e.Symbol)
}

// OutOfBoundsError reports a position outside the valid range for the current
// input string.
type OutOfBoundsError struct {
	Position int
	Length   int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position %d out of bounds for input of length %d", e.Position, e.Length)
}
