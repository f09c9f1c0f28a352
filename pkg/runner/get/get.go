// Package get lists and shows memos.
package get

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/memo/pkg/memo"
	"tableflip.dev/memo/pkg/printers"
	"tableflip.dev/memo/pkg/runner/session"
)

// Get lists the memos visible under a filter and search query. Nil fields
// fall back to the persisted selection.
type Get struct {
	Session *session.Session

	Filter        *memo.CategoryFilter
	Search        *string
	CaseSensitive bool

	ShowID bool
	JSON   bool
	Out    io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not get, no session")
	}
	st := n.Session.Service.State()

	q := memo.Query{
		Filter:        st.Selection.Category,
		Search:        st.Selection.Search,
		CaseSensitive: n.CaseSensitive || n.Session.Config.CaseSensitiveSearch(),
	}
	if n.Filter != nil {
		q.Filter = *n.Filter
	}
	if n.Search != nil {
		q.Search = *n.Search
	}
	visible := memo.Visible(st.Memos, q)

	if n.JSON {
		return printers.JSON(n.Out, visible)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	title := fmt.Sprintf("Memos (%s)", q.Filter)
	if q.Search != "" {
		title = fmt.Sprintf("%s matching %q", title, q.Search)
	}
	pp.TitleWithCount(title, len(visible))
	pp.Memos(st.Selection.MemoID, visible...)
	return nil
}

// Show prints one memo in full. A zero ID shows the selected memo.
type Show struct {
	Session *session.Session
	ID      int64

	JSON bool
	Out  io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.Session == nil {
		return errors.New("can not show, no session")
	}
	svc := n.Session.Service

	var (
		m  memo.Memo
		ok bool
	)
	if n.ID == 0 {
		m, ok = svc.Selected()
	} else {
		m, ok = svc.Get(n.ID)
	}
	if !ok {
		return fmt.Errorf("memo %d not found", n.ID)
	}

	if n.JSON {
		return printers.JSON(n.Out, m)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Memo(m)
	return nil
}
