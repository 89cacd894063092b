// Package compiler turns YAML machine definitions into built nfa.Machines.
// It is a consumer of the engine's public build-mode API: the engine itself
// never reads or parses anything.
package compiler

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/automatakit/nfa"
)

// Definition is the on-disk shape of a machine. Transition keys are
// single-rune strings; the empty string denotes an epsilon transition.
type Definition struct {
	Alphabet string     `yaml:"alphabet"`
	Input    string     `yaml:"input,omitempty"`
	States   []StateDef `yaml:"states"`
}

// StateDef describes one named state and its outgoing transitions by
// destination name.
type StateDef struct {
	Name        string              `yaml:"name"`
	Start       bool                `yaml:"start,omitempty"`
	Final       bool                `yaml:"final,omitempty"`
	Transitions map[string][]string `yaml:"transitions,omitempty"`
}

// Parser converts raw definition bytes into a validated Definition.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes and validates a definition. State names must be non-empty
// and unique (they are the transition address space of the file format),
// every transition key must be empty or a single rune, and every destination
// must name a state defined in the same file.
func (p *Parser) Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}
	if len(def.States) == 0 {
		return nil, fmt.Errorf("definition has no states")
	}

	names := make(map[string]bool, len(def.States))
	for _, sd := range def.States {
		if sd.Name == "" {
			return nil, fmt.Errorf("state missing name")
		}
		if names[sd.Name] {
			return nil, fmt.Errorf("duplicate state name %q", sd.Name)
		}
		names[sd.Name] = true
	}
	for _, sd := range def.States {
		for key, dests := range sd.Transitions {
			if _, err := symbolKey(key); err != nil {
				return nil, fmt.Errorf("state %q: %w", sd.Name, err)
			}
			for _, dest := range dests {
				if !names[dest] {
					return nil, fmt.Errorf("state %q: transition to undefined state %q", sd.Name, dest)
				}
			}
		}
	}
	return &def, nil
}

// Compile builds a machine from a parsed definition through the engine's
// public API.
func (p *Parser) Compile(def *Definition, opts ...nfa.Option) (*nfa.Machine, error) {
	m, err := nfa.New(def.Alphabet, opts...)
	if err != nil {
		return nil, err
	}

	ids := make(map[string]nfa.StateID, len(def.States))
	var start, final []nfa.StateID
	for _, sd := range def.States {
		id, err := m.NewState(sd.Name)
		if err != nil {
			return nil, err
		}
		ids[sd.Name] = id
		if sd.Start {
			start = append(start, id)
		}
		if sd.Final {
			final = append(final, id)
		}
	}
	for _, sd := range def.States {
		for key, dests := range sd.Transitions {
			sym, err := symbolKey(key)
			if err != nil {
				return nil, fmt.Errorf("state %q: %w", sd.Name, err)
			}
			for _, dest := range dests {
				if err := m.AddTransition(ids[sd.Name], sym, ids[dest]); err != nil {
					return nil, fmt.Errorf("state %q: %w", sd.Name, err)
				}
			}
		}
	}
	if err := m.SetStartStates(start...); err != nil {
		return nil, err
	}
	if err := m.SetFinalStates(final...); err != nil {
		return nil, err
	}
	return m, nil
}

// Load reads, parses and compiles a definition file. It returns the machine
// and the file's default input string, which may be empty.
func Load(path string, opts ...nfa.Option) (*nfa.Machine, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read definition: %w", err)
	}
	p := NewParser()
	def, err := p.Parse(data)
	if err != nil {
		return nil, "", err
	}
	m, err := p.Compile(def, opts...)
	if err != nil {
		return nil, "", err
	}
	return m, def.Input, nil
}

// symbolKey maps a transition key to its rune, with "" meaning epsilon.
func symbolKey(key string) (rune, error) {
	if key == "" {
		return nfa.Epsilon, nil
	}
	sym, size := utf8.DecodeRuneInString(key)
	if sym == utf8.RuneError || size != len(key) {
		return 0, fmt.Errorf("transition key %q is not a single symbol", key)
	}
	return sym, nil
}
