package app

import "tableflip.dev/memo/pkg/memo"

// MemoStore owns the live memo collection. Storage order is insertion order
// with the newest insert at the front; display order comes from memo.Visible.
type MemoStore struct {
	memos []memo.Memo
}

// NewMemoStore adopts memos after removing duplicate ids.
func NewMemoStore(memos []memo.Memo) *MemoStore {
	return &MemoStore{memos: memo.DedupeMemos(memos)}
}

// All returns a copy of the collection in storage order.
func (s *MemoStore) All() []memo.Memo {
	return append([]memo.Memo(nil), s.memos...)
}

// Len returns the number of live memos.
func (s *MemoStore) Len() int {
	return len(s.memos)
}

// First returns the first memo in storage order.
func (s *MemoStore) First() (memo.Memo, bool) {
	if len(s.memos) == 0 {
		return memo.Memo{}, false
	}
	return s.memos[0], true
}

// Get looks a memo up by id.
func (s *MemoStore) Get(id int64) (memo.Memo, bool) {
	if i := s.index(id); i >= 0 {
		return s.memos[i], true
	}
	return memo.Memo{}, false
}

// Has reports whether id is live.
func (s *MemoStore) Has(id int64) bool {
	return s.index(id) >= 0
}

// IDs returns the set of live ids.
func (s *MemoStore) IDs() memo.IDSet {
	return memo.IDsOf(s.memos)
}

// Prepend inserts m at the front. A memo already holding m.ID is replaced.
func (s *MemoStore) Prepend(m memo.Memo) {
	s.memos = memo.DedupeMemos(append([]memo.Memo{m}, s.memos...))
}

// Replace overwrites every field of the memo with m.ID.
func (s *MemoStore) Replace(m memo.Memo) bool {
	i := s.index(m.ID)
	if i < 0 {
		return false
	}
	s.memos[i] = m
	return true
}

// TogglePin flips the pinned flag.
func (s *MemoStore) TogglePin(id int64) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.memos[i].Pinned = !s.memos[i].Pinned
	return true
}

// SetCategory overwrites only the category field.
func (s *MemoStore) SetCategory(id int64, category string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.memos[i].Category = category
	return true
}

// Reassign moves every memo in category from to category to and returns how
// many memos changed.
func (s *MemoStore) Reassign(from, to string) int {
	n := 0
	for i := range s.memos {
		if s.memos[i].Category == from {
			s.memos[i].Category = to
			n++
		}
	}
	return n
}

// Remove takes the memo out of the collection, keeping the order of the rest.
func (s *MemoStore) Remove(id int64) (memo.Memo, bool) {
	i := s.index(id)
	if i < 0 {
		return memo.Memo{}, false
	}
	m := s.memos[i]
	s.memos = append(s.memos[:i:i], s.memos[i+1:]...)
	return m, true
}

func (s *MemoStore) index(id int64) int {
	for i, m := range s.memos {
		if m.ID == id {
			return i
		}
	}
	return -1
}
