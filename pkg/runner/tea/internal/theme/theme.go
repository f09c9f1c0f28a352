package theme

import (
	"hash/fnv"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Footer FooterTheme
	Pane   PaneTheme
	Memo   MemoTheme
}

// FooterTheme groups styles used by the bottom status/command bar.
type FooterTheme struct {
	Help                lipgloss.Style
	Status              lipgloss.Style
	View                lipgloss.Style
	Saving              lipgloss.Style
	Confirm             lipgloss.Style
	CommandName         lipgloss.Style
	CommandDescription  lipgloss.Style
	CommandSelectedName lipgloss.Style
	CommandSelectedDesc lipgloss.Style
}

// PaneTheme styles the list panes.
type PaneTheme struct {
	Focused lipgloss.Style
	Blurred lipgloss.Style
}

// MemoTheme styles the memo detail area.
type MemoTheme struct {
	Title       lipgloss.Style
	Placeholder lipgloss.Style
	Meta        lipgloss.Style
	Body        lipgloss.Style
	Deleted     lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	commandName := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)
	commandDesc := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))

	return Theme{
		Footer: FooterTheme{
			Help:                lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:              lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			View:                lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Saving:              lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true),
			Confirm:             lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			CommandName:         commandName,
			CommandDescription:  commandDesc,
			CommandSelectedName: commandName.Reverse(true),
			CommandSelectedDesc: commandDesc.Reverse(true),
		},
		Pane: PaneTheme{
			Focused: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("212")),
			Blurred: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		},
		Memo: MemoTheme{
			Title:       lipgloss.NewStyle().Bold(true),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
			Meta:        lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Body:        lipgloss.NewStyle(),
			Deleted:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		},
	}
}

// CategoryColor picks a stable accent for a category name so the same
// category always renders in the same color.
func CategoryColor(name string) lipgloss.Color {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	hue := float64(h.Sum32() % 360)
	return lipgloss.Color(colorful.Hcl(hue, 0.45, 0.72).Clamped().Hex())
}
