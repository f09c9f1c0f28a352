package bottombar

import (
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
	"github.com/stretchr/testify/assert"
)

func TestStatusLine(t *testing.T) {
	m := New()
	m.SetHelp("? help")
	m.SetStatus("Created")
	m.SetSaving(true)

	view, lines := m.View()
	assert.Equal(t, 1, lines)
	assert.Contains(t, view, "[memos]")
	assert.Contains(t, view, "Created")
	assert.Contains(t, view, "saving…")

	m.SetView("trash")
	m.SetSaving(false)
	view, _ = m.View()
	assert.Contains(t, view, "[trash]")
	assert.NotContains(t, view, "saving")
}

func TestCommandSuggestions(t *testing.T) {
	m := New()
	m.SetMode(ModeCommand)
	m.SetCommandDefinitions([]CommandOption{
		{Name: "quit", Description: "Exit"},
		{Name: "trash", Description: "Show trash"},
		{Name: "empty", Description: "Empty trash"},
	})
	m.UpdateCommandInput("t", "t")

	view, lines := m.View()
	assert.Equal(t, 2, lines)
	assert.Equal(t, 2, m.Height())
	assert.Contains(t, view, ":trash")
	assert.NotContains(t, view, ":quit")
	assert.True(t, strings.HasSuffix(view, ":t"))
	assert.LessOrEqual(t, ansi.PrintableRuneWidth(view), 80)
}

func TestConfirm(t *testing.T) {
	m := New()
	m.SetMode(ModeConfirm)
	m.SetStatus("Empty trash?")

	view, lines := m.View()
	assert.Equal(t, 1, lines)
	assert.Contains(t, view, "Empty trash? [y/N]")
	assert.Equal(t, ModeConfirm, m.Mode())
}
