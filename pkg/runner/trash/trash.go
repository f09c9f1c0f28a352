// Package trash soft-deletes, lists, restores and purges memos.
package trash

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/memo/pkg/printers"
	"tableflip.dev/memo/pkg/prompt"
	"tableflip.dev/memo/pkg/runner/session"
)

var errNoSession = errors.New("can not use trash, no session")

// Delete moves memos to the trash. No ids trashes the selected memo.
type Delete struct {
	Session *session.Session
	IDs     []int64
	Out     io.Writer
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	svc := n.Session.Service

	ids := n.IDs
	if len(ids) == 0 {
		m, ok := svc.Selected()
		if !ok {
			return errors.New("no memo selected")
		}
		ids = []int64{m.ID}
	}
	var missing []int64
	for _, id := range ids {
		if !svc.SoftDelete(id) {
			missing = append(missing, id)
			continue
		}
		_, _ = fmt.Fprintf(n.Out, "trashed %d\n", id)
	}
	if len(missing) > 0 {
		return fmt.Errorf("memos not found: %v", missing)
	}
	return nil
}

// List prints the trash, most recently deleted first.
type List struct {
	Session *session.Session
	ShowID  bool
	JSON    bool
	Out     io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	entries := n.Session.Service.State().Trash
	if n.JSON {
		return printers.JSON(n.Out, entries)
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.TitleWithCount("Trash", len(entries))
	pp.Trash(entries...)
	return nil
}

// Restore moves trashed memos back to the live collection.
type Restore struct {
	Session *session.Session
	IDs     []int64
	Out     io.Writer
}

func (n *Restore) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	var missing []int64
	for _, id := range n.IDs {
		m, ok := n.Session.Service.Restore(id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		_, _ = fmt.Fprintf(n.Out, "restored %d %s\n", m.ID, m.DisplayTitle())
	}
	if len(missing) > 0 {
		return fmt.Errorf("trash entries not found: %v", missing)
	}
	return nil
}

// Purge permanently deletes trashed memos after confirmation.
type Purge struct {
	Session *session.Session
	IDs     []int64
	Prompt  prompt.Prompter
	Out     io.Writer
}

func (n *Purge) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	svc := n.Session.Service

	var missing []int64
	for _, id := range n.IDs {
		e, ok := findTrash(n.Session, id)
		if !ok {
			missing = append(missing, id)
			continue
		}
		yes, err := n.Prompt.Confirm(fmt.Sprintf("Permanently delete %q", e))
		if err != nil {
			return err
		}
		if !yes {
			_, _ = fmt.Fprintf(n.Out, "kept %d\n", id)
			continue
		}
		svc.Purge(id)
		_, _ = fmt.Fprintf(n.Out, "purged %d\n", id)
	}
	if len(missing) > 0 {
		return fmt.Errorf("trash entries not found: %v", missing)
	}
	return nil
}

// Empty purges the whole trash after confirmation.
type Empty struct {
	Session *session.Session
	Prompt  prompt.Prompter
	Out     io.Writer
}

func (n *Empty) Do(ctx context.Context) error {
	if n.Session == nil {
		return errNoSession
	}
	count := len(n.Session.Service.State().Trash)
	if count == 0 {
		_, _ = fmt.Fprintln(n.Out, "trash is empty")
		return nil
	}
	yes, err := n.Prompt.Confirm(fmt.Sprintf("Permanently delete %d trashed memos", count))
	if err != nil {
		return err
	}
	if !yes {
		_, _ = fmt.Fprintln(n.Out, "trash kept")
		return nil
	}
	_, _ = fmt.Fprintf(n.Out, "purged %d\n", n.Session.Service.EmptyTrash())
	return nil
}

func findTrash(s *session.Session, id int64) (string, bool) {
	for _, e := range s.Service.State().Trash {
		if e.ID == id {
			return e.DisplayTitle(), true
		}
	}
	return "", false
}
