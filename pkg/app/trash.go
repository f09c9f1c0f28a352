package app

import "tableflip.dev/memo/pkg/memo"

// TrashStore owns soft-deleted memos, newest deletion first.
type TrashStore struct {
	entries []memo.TrashEntry
}

// NewTrashStore adopts entries after removing duplicate ids.
func NewTrashStore(entries []memo.TrashEntry) *TrashStore {
	return &TrashStore{entries: memo.DedupeTrash(entries)}
}

// All returns a copy of the trash in storage order.
func (s *TrashStore) All() []memo.TrashEntry {
	return append([]memo.TrashEntry(nil), s.entries...)
}

// Len returns the number of trashed memos.
func (s *TrashStore) Len() int {
	return len(s.entries)
}

// Get looks an entry up by id.
func (s *TrashStore) Get(id int64) (memo.TrashEntry, bool) {
	if i := s.index(id); i >= 0 {
		return s.entries[i], true
	}
	return memo.TrashEntry{}, false
}

// Put inserts e at the front, replacing any entry with the same id.
func (s *TrashStore) Put(e memo.TrashEntry) {
	s.entries = memo.DedupeTrash(append([]memo.TrashEntry{e}, s.entries...))
}

// Restore removes the entry and hands back its memo without the deletion
// stamp.
func (s *TrashStore) Restore(id int64) (memo.Memo, bool) {
	e, ok := s.remove(id)
	if !ok {
		return memo.Memo{}, false
	}
	return e.Memo, true
}

// Purge removes the entry for good. Callers confirm with the user first.
func (s *TrashStore) Purge(id int64) bool {
	_, ok := s.remove(id)
	return ok
}

// Empty drops every entry and returns how many were dropped.
func (s *TrashStore) Empty() int {
	n := len(s.entries)
	s.entries = nil
	return n
}

func (s *TrashStore) remove(id int64) (memo.TrashEntry, bool) {
	i := s.index(id)
	if i < 0 {
		return memo.TrashEntry{}, false
	}
	e := s.entries[i]
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	return e, true
}

func (s *TrashStore) index(id int64) int {
	for i, e := range s.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
