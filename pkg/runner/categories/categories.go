// Package categories lists and manages memo categories.
package categories

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"tableflip.dev/memo/pkg/printers"
	"tableflip.dev/memo/pkg/prompt"
	"tableflip.dev/memo/pkg/runner/session"
)

var errNoSession = errors.New("can not manage categories, no session")

// List prints the effective categories and their counts.
type List struct {
	Session *session.Session
	JSON    bool
	Out     io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	st := n.Session.Service.State()
	names := st.Categories()
	counts := st.Counts()

	if n.JSON {
		return printers.JSON(n.Out, map[string]any{
			"active":        st.Selection.Category.Encode(),
			"total":         len(st.Memos),
			"uncategorized": counts[""],
			"categories":    st.Summaries(),
		})
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Categories(st.Selection.Category, names, st.CustomCategories, counts, len(st.Memos))
	return nil
}

// Add declares a category. An empty Name asks for one.
type Add struct {
	Session *session.Session
	Name    string
	Prompt  prompt.Prompter
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	name := strings.TrimSpace(n.Name)
	if name == "" && n.Prompt != nil {
		var err error
		if name, err = n.Prompt.Text("Category name"); err != nil {
			return err
		}
	}
	if name == "" {
		return errors.New("category name is required")
	}
	if !n.Session.Service.AddCategory(name) {
		_, _ = fmt.Fprintf(n.Out, "category %q already declared\n", name)
		return nil
	}
	_, _ = fmt.Fprintf(n.Out, "added %q\n", name)
	return nil
}

// Delete removes a category, moving its memos to Target.
type Delete struct {
	Session *session.Session
	Name    string
	Target  string
	Out     io.Writer
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	moved, ok := n.Session.Service.DeleteCategory(n.Name, n.Target)
	if !ok {
		return fmt.Errorf("category %q not found", n.Name)
	}
	dest := strings.TrimSpace(n.Target)
	if dest == "" {
		dest = "uncategorized"
	}
	_, _ = fmt.Fprintf(n.Out, "deleted %q, moved %d to %s\n", n.Name, moved, dest)
	return nil
}

// Reorder moves a declared category between positions.
type Reorder struct {
	Session *session.Session
	From    int
	To      int
}

func (n *Reorder) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	if !n.Session.Service.ReorderCategories(n.From, n.To) {
		return fmt.Errorf("can not move category %d to %d (have %d declared)",
			n.From, n.To, len(n.Session.Service.State().CustomCategories))
	}
	return nil
}

// Move reassigns one memo to a category.
type Move struct {
	Session  *session.Session
	ID       int64
	Category string
}

func (n *Move) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	if !n.Session.Service.ReassignCategory(n.ID, strings.TrimSpace(n.Category)) {
		return fmt.Errorf("memo %d not found", n.ID)
	}
	return nil
}
