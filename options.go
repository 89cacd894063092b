package nfa

import "log/slog"

// Option defines a functional option for configuring a Machine.
type Option func(*Machine)

// WithLogger sets a structured logger for the machine. The engine logs at
// debug level only; the default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithStartClosure makes Start (and Accepts) apply the epsilon closure to
// the start-state seed. By default the seed is the start set verbatim, so
// epsilon transitions out of start states are not honored at position 0;
// this option opts into closing them there as well.
func WithStartClosure() Option {
	return func(m *Machine) {
		m.closeStart = true
	}
}
