// Package printers renders memos, trash and categories for the terminal.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/memo/pkg/memo"
)

// DefaultWidth is the preview and wrap width used when Width is unset.
const DefaultWidth = 60

const timeLayout = "2006-01-02 15:04"

type PrettyPrint struct {
	ShowID bool
	Width  int
	Out    io.Writer
}

var (
	spacing = strings.Repeat(" ", len("1700000000000  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return DefaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " memo")
	default:
		_, _ = c.Fprintln(pp.out(), " memos")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Preview shortens s to a single line of at most the configured width.
func (pp *PrettyPrint) Preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	return truncate.StringWithTail(s, uint(pp.width()), "…")
}

// Memos prints one row per memo. The memo with id selected, if any, is
// marked.
func (pp *PrettyPrint) Memos(selected *int64, memos ...memo.Memo) {
	if len(memos) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)
	b := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = " "
	for _, m := range memos {
		cursor := " "
		title := pp.Preview(m.DisplayTitle())
		if selected != nil && *selected == m.ID {
			cursor = ">"
			title = b.Sprint(title)
		}
		pin := " "
		if m.Pinned {
			pin = "★"
		}
		cat := ""
		if m.Category != "" {
			cat = f.Sprintf("[%s]", m.Category)
		}
		if pp.ShowID {
			tbl.AddRow(cursor, y.Sprint(m.ID), pin, title, cat)
		} else {
			tbl.AddRow(cursor, pin, title, cat)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Memo prints a single memo in full.
func (pp *PrettyPrint) Memo(m memo.Memo) {
	b := color.New(color.Bold)
	f := color.New(color.Faint)

	_, _ = b.Fprintln(pp.out(), m.DisplayTitle())

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(f.Sprint("id"), m.ID)
	tbl.AddRow(f.Sprint("created"), m.Created().Local().Format(timeLayout))
	tbl.AddRow(f.Sprint("category"), categoryLabel(m.Category))
	tbl.AddRow(f.Sprint("pinned"), m.Pinned)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()

	if strings.TrimSpace(m.Content) != "" {
		_, _ = fmt.Fprintln(pp.out(), wordwrap.String(m.Content, pp.width()))
		pp.NewLine()
	}
}

// Trash prints trashed memos with their deletion time.
func (pp *PrettyPrint) Trash(entries ...memo.TrashEntry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)
	s := color.New(color.CrossedOut)

	tbl := uitable.New()
	tbl.Separator = " "
	for _, e := range entries {
		title := s.Sprint(pp.Preview(e.DisplayTitle()))
		deleted := f.Sprintf("deleted %s", e.Deleted().Local().Format(timeLayout))
		if pp.ShowID {
			tbl.AddRow(y.Sprint(e.ID), title, deleted)
		} else {
			tbl.AddRow(title, deleted)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Categories prints the effective categories with their memo counts. The
// row matching the active filter is marked, and declared categories show
// their position in the declared list.
func (pp *PrettyPrint) Categories(active memo.CategoryFilter, names, declared []string, counts map[string]int, total int) {
	bold := color.New(color.Bold)
	f := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(" ", bold.Sprint("#"), bold.Sprint("Category"), bold.Sprint("Memos"))

	pos := make(map[string]int, len(declared))
	for i, name := range declared {
		pos[name] = i
	}

	row := func(idx string, filter memo.CategoryFilter, label string, n int) {
		cursor := " "
		if filter == active {
			cursor = ">"
			label = bold.Sprint(label)
		}
		tbl.AddRow(cursor, f.Sprint(idx), label, n)
	}
	row("", memo.AllCategories(), "All", total)
	row("", memo.Uncategorized(), "Uncategorized", counts[""])
	for _, name := range names {
		idx := ""
		if i, ok := pos[name]; ok {
			idx = fmt.Sprint(i)
		}
		row(idx, memo.Named(name), name, counts[name])
	}
	tbl.RightAlign(3)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func categoryLabel(c string) string {
	if c == "" {
		return "uncategorized"
	}
	return c
}
