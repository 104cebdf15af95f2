// Package repl runs the interactive read-dispatch-print loop, either as a
// plain line-based session or as a Bubble Tea terminal UI.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/smileynet/addrbook/internal/command"
)

// Dispatcher runs one input line and reports the outcome.
type Dispatcher interface {
	Dispatch(line string) command.Response
}

// Verify *command.Dispatcher satisfies Dispatcher at compile time.
var _ Dispatcher = (*command.Dispatcher)(nil)

// Session is an interactive loop over a Dispatcher.
type Session interface {
	Run(ctx context.Context) error
}

// SessionOptions configures session creation.
type SessionOptions struct {
	In         io.Reader    // Input source (default: os.Stdin).
	Out        io.Writer    // Output destination (default: os.Stdout).
	Prompt     string       // Prompt printed before each line (default: ">>> ").
	ForcePlain bool         // Force the line-based session even if TTY.
	Hints      []string     // Command triggers shown by the TUI.
	Logger     *slog.Logger // Session lifecycle logging (default: discard).
	Dispatcher Dispatcher
}

// NewSession returns a TUI session when both input and output are terminals,
// or a plain line-based session otherwise. ForcePlain overrides detection.
func NewSession(opts SessionOptions) Session {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Prompt == "" {
		opts.Prompt = ">>> "
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	plain := &PlainSession{
		in:     opts.In,
		out:    opts.Out,
		prompt: opts.Prompt,
		d:      opts.Dispatcher,
		logger: opts.Logger,
	}
	if opts.ForcePlain || !isTTY(opts.In) || !isTTY(opts.Out) {
		return plain
	}
	return &TUISession{plain: plain, hints: opts.Hints}
}

// isTTY reports whether v is an *os.File connected to a terminal.
func isTTY(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// State is the loop's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// PlainSession reads lines from in and prints responses to out.
type PlainSession struct {
	in     io.Reader
	out    io.Writer
	prompt string
	d      Dispatcher
	logger *slog.Logger
	state  State
}

// State returns the session's current state.
func (s *PlainSession) State() State { return s.state }

// Run loops until the exit command, end of input, or context cancellation.
// End of input and cancellation are not errors. A handler error with no
// user-facing translation stops the loop and is returned.
func (s *PlainSession) Run(ctx context.Context) error {
	s.state = StateRunning
	s.logger.Debug("session started", "mode", "plain")
	defer func() {
		s.state = StateStopped
		s.logger.Debug("session stopped", "mode", "plain")
	}()

	lines, readErr, stop := s.readLines()
	defer close(stop)

	for s.state == StateRunning {
		_, _ = fmt.Fprint(s.out, s.prompt)

		select {
		case <-ctx.Done():
			_, _ = fmt.Fprintln(s.out)
			return nil
		case line, ok := <-lines:
			if !ok {
				_, _ = fmt.Fprintln(s.out)
				if err := <-readErr; err != nil {
					return fmt.Errorf("repl: reading input: %w", err)
				}
				return nil
			}
			if err := s.step(line); err != nil {
				return err
			}
		}
	}
	return nil
}

// step dispatches one line and prints the response.
func (s *PlainSession) step(line string) error {
	resp := s.d.Dispatch(line)
	switch {
	case !resp.Matched:
		_, _ = fmt.Fprintln(s.out, command.UnknownText)
		return nil
	case resp.Err != nil:
		s.state = StateStopped
		return resp.Err
	}

	_, _ = fmt.Fprintln(s.out, resp.Text)
	if resp.Kind == command.KindExit {
		s.state = StateStopped
	}
	return nil
}

// readLines reads input on a separate goroutine so the loop can also watch
// for cancellation. Lines have no length limit. The lines channel is closed
// at end of input, after which readErr yields the read error (nil at clean
// EOF). Closing stop releases the goroutine if the loop exits first.
func (s *PlainSession) readLines() (<-chan string, <-chan error, chan struct{}) {
	lines := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})

	go func() {
		defer close(lines)
		r := bufio.NewReader(s.in)
		for {
			line, err := r.ReadString('\n')
			if err != nil && (!errors.Is(err, io.EOF) || line == "") {
				if errors.Is(err, io.EOF) {
					err = nil
				}
				readErr <- err
				return
			}
			select {
			case lines <- trimEOL(line):
			case <-stop:
				readErr <- nil
				return
			}
			if err != nil {
				readErr <- nil
				return
			}
		}
	}()

	return lines, readErr, stop
}

// trimEOL drops a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// TUISession runs the loop as a Bubble Tea program.
// Falls back to PlainSession if the program fails to start.
type TUISession struct {
	plain *PlainSession
	hints []string
}

// Run starts the Bubble Tea program and blocks until it quits.
func (s *TUISession) Run(ctx context.Context) error {
	p := s.plain
	p.logger.Debug("session started", "mode", "tui")
	defer p.logger.Debug("session stopped", "mode", "tui")

	model := NewModel(p.d, p.prompt, WithHints(s.hints))
	prog := tea.NewProgram(model,
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
		tea.WithContext(ctx),
	)

	final, err := prog.Run()
	if err != nil {
		if ctx.Err() != nil || errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		p.logger.Warn("terminal UI failed, falling back to plain session", "error", err)
		return p.Run(ctx)
	}

	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
