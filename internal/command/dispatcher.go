// Package command matches free-text input lines to registered commands and
// turns handler failures into user-facing messages.
package command

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind identifies a registered command.
type Kind string

const (
	KindHello   Kind = "hello"
	KindAdd     Kind = "add"
	KindChange  Kind = "change"
	KindPhone   Kind = "phone"
	KindShowAll Kind = "show all"
	KindExit    Kind = "exit"
)

// UnknownText is shown when no trigger matches the input.
const UnknownText = "Unknown command, try again."

// Handler runs a command against the raw input line.
type Handler func(line string) (string, error)

type entry struct {
	kind    Kind
	trigger string
	handler Handler
}

// Response is the outcome of dispatching one input line.
type Response struct {
	Kind    Kind
	Text    string
	Matched bool  // A trigger matched the input.
	Failed  bool  // The handler failed and Text holds the translated message.
	Err     error // Handler error with no user-facing translation.
}

// Dispatcher holds commands in registration order. The first trigger that
// prefixes the lower-cased input wins.
// It is not safe for concurrent use.
type Dispatcher struct {
	entries []entry
	lower   cases.Caser
	logger  *slog.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// NewDispatcher creates a Dispatcher with no commands.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		lower:  cases.Lower(language.Und),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Register appends a command. Earlier registrations take precedence.
// Panics if kind or trigger is empty or h is nil (programmer error).
func (d *Dispatcher) Register(kind Kind, trigger string, h Handler) {
	if kind == "" {
		panic("command: Register called with empty kind")
	}
	if trigger == "" {
		panic("command: Register called with empty trigger")
	}
	if h == nil {
		panic("command: Register called with nil handler")
	}
	d.entries = append(d.entries, entry{kind: kind, trigger: trigger, handler: h})
}

// Triggers returns the registered triggers in registration order.
func (d *Dispatcher) Triggers() []string {
	out := make([]string, len(d.entries))
	for i, e := range d.entries {
		out[i] = e.trigger
	}
	return out
}

// Match returns the kind and handler of the first command whose trigger
// prefixes the lower-cased line.
func (d *Dispatcher) Match(line string) (Kind, Handler, bool) {
	lowered := d.lower.String(line)
	for _, e := range d.entries {
		if strings.HasPrefix(lowered, e.trigger) {
			return e.kind, e.handler, true
		}
	}
	return "", nil, false
}

// Dispatch runs the command matching line. Handler errors are translated
// with Message; errors it does not recognize are returned in Response.Err.
func (d *Dispatcher) Dispatch(line string) Response {
	kind, h, ok := d.Match(line)
	if !ok {
		d.logger.Debug("no command matched", "input", line)
		return Response{}
	}
	d.logger.Debug("dispatching command", "kind", kind)

	text, err := h(line)
	if err == nil {
		return Response{Kind: kind, Text: text, Matched: true}
	}

	msg, known := Message(err)
	if !known {
		d.logger.Error("command failed", "kind", kind, "error", err)
		return Response{Kind: kind, Matched: true, Err: fmt.Errorf("command %s: %w", kind, err)}
	}
	d.logger.Debug("command rejected", "kind", kind, "error", err)
	return Response{Kind: kind, Text: msg, Matched: true, Failed: true}
}
