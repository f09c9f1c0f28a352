package app

import "tableflip.dev/memo/pkg/memo"

// Selection is the transient UI state carried across restarts for
// convenience. It is never authoritative over the collections.
type Selection struct {
	MemoID    *int64
	Category  memo.CategoryFilter
	Search    string
	TrashView bool
}

// SelectedID returns the selected memo id, if any.
func (s Selection) SelectedID() (int64, bool) {
	if s.MemoID == nil {
		return 0, false
	}
	return *s.MemoID, true
}

func (s Selection) clone() Selection {
	if s.MemoID != nil {
		id := *s.MemoID
		s.MemoID = &id
	}
	return s
}

func ptr(id int64) *int64 {
	return &id
}
