// Package cli drives a machine over an input string and prints the
// positional trace. It is built entirely from the engine's public run-mode
// operations.
package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/automatakit/nfa"
)

// TraceOptions controls trace presentation.
type TraceOptions struct {
	// Color enables terminal styling. Keep it off when writing to a pipe or
	// a test buffer.
	Color bool
}

const rule = "---------------"

// Trace runs the machine over input and writes one block per position: the
// position and the set of current states, in name order. After the final
// step it reports whether the machine ended on a final state. The machine
// must be in build mode; it is returned to build mode before Trace returns.
func Trace(w io.Writer, m *nfa.Machine, input string, opts TraceOptions) error {
	if err := m.Start(input); err != nil {
		return fmt.Errorf("failed to start run: %w", err)
	}
	defer func() {
		_ = m.Stop()
	}()

	style := newStyler(opts.Color)
	length := len([]rune(input))
	for {
		pos, err := m.Position()
		if err != nil {
			return err
		}
		if pos >= length {
			break
		}
		states, err := m.CurrentStates()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "position: %s\n", style.position(strconv.Itoa(pos)))
		fmt.Fprintf(w, "states:   %s\n", style.states(formatStates(m, states)))
		if err := m.Step(); err != nil {
			return err
		}
	}

	accepted, err := m.OnFinalState()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, rule)
	if accepted {
		fmt.Fprintln(w, style.accept("accepted"))
	} else {
		fmt.Fprintln(w, style.reject("rejected"))
	}
	return nil
}

// formatStates renders a state set as "{a b c}" with names sorted.
func formatStates(m *nfa.Machine, states nfa.StateSet) string {
	names := make([]string, 0, states.Len())
	for _, id := range states.IDs() {
		name, err := m.StateName(id)
		if err != nil {
			name = fmt.Sprintf("#%d", id)
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return "{" + strings.Join(names, " ") + "}"
}

type styler struct {
	enabled bool
	profile termenv.Profile
}

func newStyler(enabled bool) styler {
	return styler{enabled: enabled, profile: termenv.ColorProfile()}
}

func (s styler) paint(text, hex string) string {
	if !s.enabled {
		return text
	}
	return termenv.String(text).Foreground(s.profile.Color(hex)).String()
}

func (s styler) position(text string) string { return s.paint(text, "#818cf8") }
func (s styler) states(text string) string   { return s.paint(text, "#34d399") }
func (s styler) accept(text string) string   { return s.paint(text, "#22c55e") }
func (s styler) reject(text string) string   { return s.paint(text, "#f87171") }
