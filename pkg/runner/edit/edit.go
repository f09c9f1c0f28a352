// Package edit changes memos and the persisted selection.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/memo/pkg/memo"
	"tableflip.dev/memo/pkg/printers"
	"tableflip.dev/memo/pkg/runner/session"
)

var errNoSession = errors.New("can not edit, no session")

// Edit overwrites the fields that are set. A zero ID edits the selected
// memo.
type Edit struct {
	Session *session.Session
	ID      int64

	Title    *string
	Content  *string
	Category *string

	JSON bool
	Out  io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	svc := n.Session.Service

	m, err := lookup(n.Session, n.ID)
	if err != nil {
		return err
	}
	if n.Title != nil {
		m.Title = *n.Title
	}
	if n.Content != nil {
		m.Content = *n.Content
	}
	if n.Category != nil {
		m.Category = *n.Category
	}
	svc.Update(m)
	return show(n.Out, n.JSON, m)
}

// Pin toggles the pinned flag.
type Pin struct {
	Session *session.Session
	ID      int64

	JSON bool
	Out  io.Writer
}

func (n *Pin) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	m, err := lookup(n.Session, n.ID)
	if err != nil {
		return err
	}
	n.Session.Service.TogglePin(m.ID)
	m, _ = n.Session.Service.Get(m.ID)
	return show(n.Out, n.JSON, m)
}

// Select makes a memo the selected one.
type Select struct {
	Session *session.Session
	ID      int64
}

func (n *Select) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	if !n.Session.Service.Select(n.ID) {
		return fmt.Errorf("memo %d not found", n.ID)
	}
	return nil
}

// Filter sets the active category filter.
type Filter struct {
	Session *session.Session
	Filter  memo.CategoryFilter
}

func (n *Filter) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	n.Session.Service.SelectCategory(n.Filter)
	return nil
}

func lookup(s *session.Session, id int64) (memo.Memo, error) {
	var (
		m  memo.Memo
		ok bool
	)
	if id == 0 {
		m, ok = s.Service.Selected()
	} else {
		m, ok = s.Service.Get(id)
	}
	if !ok {
		return memo.Memo{}, fmt.Errorf("memo %d not found", id)
	}
	return m, nil
}

func show(out io.Writer, asJSON bool, m memo.Memo) error {
	if asJSON {
		return printers.JSON(out, m)
	}
	pp := printers.PrettyPrint{Out: out}
	pp.Memo(m)
	return nil
}
