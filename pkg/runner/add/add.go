// Package add creates memos from the command line.
package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/memo/pkg/memo"
	"tableflip.dev/memo/pkg/printers"
	"tableflip.dev/memo/pkg/runner/session"
)

type Add struct {
	Session *session.Session

	Title   string
	Content string
	// Category overrides the active filter as the category hint.
	Category *string
	Pin      bool

	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not add, no session")
	}
	svc := n.Session.Service

	hint := svc.State().Selection.Category
	if n.Category != nil {
		hint = memo.Named(*n.Category)
	}

	m := svc.Create(hint)
	if n.Title != "" || n.Content != "" {
		m.Title = n.Title
		m.Content = n.Content
		svc.Update(m)
	}
	if n.Pin {
		svc.TogglePin(m.ID)
	}
	m, _ = svc.Get(m.ID)

	if n.JSON {
		return printers.JSON(n.Out, m)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.Memo(m)
	return nil
}
