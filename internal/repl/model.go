package repl

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/smileynet/addrbook/internal/command"
)

// exchange is one submitted line and its response.
type exchange struct {
	input string
	resp  command.Response
}

// Model is the Bubble Tea model for the interactive address book prompt.
type Model struct {
	input   textinput.Model
	d       Dispatcher
	prompt  string
	history []exchange
	hints   []string
	styles  Styles
	done    bool
	err     error
}

// ModelOption configures optional Model behavior.
type ModelOption func(*Model)

// WithHints sets the command triggers listed under the prompt.
func WithHints(hints []string) ModelOption {
	return func(m *Model) {
		m.hints = hints
	}
}

// WithStyles overrides the default styles.
func WithStyles(s Styles) ModelOption {
	return func(m *Model) {
		m.styles = s
	}
}

// NewModel creates a Model that sends submitted lines to d.
func NewModel(d Dispatcher, prompt string, opts ...ModelOption) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Focus()

	m := Model{
		input:  ti,
		d:      d,
		prompt: prompt,
		styles: DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses; Enter submits the current line.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the current input line and records the exchange.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	resp := m.d.Dispatch(line)
	m.history = append(m.history, exchange{input: line, resp: resp})

	if resp.Err != nil {
		m.done = true
		m.err = resp.Err
		return m, tea.Quit
	}
	if resp.Matched && resp.Kind == command.KindExit {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the transcript followed by the live prompt.
func (m Model) View() string {
	var sb strings.Builder

	for _, ex := range m.history {
		sb.WriteString(m.styles.Echo.Render(m.prompt + ex.input))
		sb.WriteString("\n")

		switch {
		case !ex.resp.Matched:
			sb.WriteString(renderLines(m.styles.Failure, command.UnknownText))
		case ex.resp.Err != nil:
			sb.WriteString(renderLines(m.styles.Failure, "Error: "+ex.resp.Err.Error()))
		case ex.resp.Failed:
			sb.WriteString(renderLines(m.styles.Failure, ex.resp.Text))
		default:
			sb.WriteString(renderLines(m.styles.Response, strings.TrimRight(ex.resp.Text, "\n")))
		}
		sb.WriteString("\n")
	}

	if m.done {
		return sb.String()
	}

	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	if len(m.hints) > 0 {
		sb.WriteString(m.styles.Hint.Render("commands: " + strings.Join(m.hints, ", ") + " · esc to quit"))
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderLines styles each line separately so block padding never
// widens short lines.
func renderLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}
