package repl

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the TUI transcript.
type Styles struct {
	Echo     lipgloss.Style // Submitted input lines.
	Response lipgloss.Style // Successful responses.
	Failure  lipgloss.Style // Translated failures and unknown commands.
	Hint     lipgloss.Style // Command list under the prompt.
}

// DefaultStyles returns styles with adaptive colors for light and dark terminals.
func DefaultStyles() Styles {
	return Styles{
		Echo: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"}),
		Response: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}),
		Failure: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"}),
		Hint: lipgloss.NewStyle().
			Faint(true),
	}
}

// PlainStyles returns styles that render text unchanged.
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Echo: s, Response: s, Failure: s, Hint: s}
}
