package memo

import "time"

// IDSet is a set of memo ids.
type IDSet map[int64]struct{}

// IDsOf collects the ids of the given memos.
func IDsOf(memos []Memo) IDSet {
	set := make(IDSet, len(memos))
	for _, m := range memos {
		set[m.ID] = struct{}{}
	}
	return set
}

// AddTrash merges the ids of trash entries into the set.
func (s IDSet) AddTrash(entries []TrashEntry) IDSet {
	for _, e := range entries {
		s[e.ID] = struct{}{}
	}
	return s
}

// Has reports whether id is in the set.
func (s IDSet) Has(id int64) bool {
	_, ok := s[id]
	return ok
}

// AllocateID returns the millisecond timestamp of now, bumped by one until it
// no longer collides with existing.
func AllocateID(existing IDSet, now time.Time) int64 {
	id := now.UnixMilli()
	for existing.Has(id) {
		id++
	}
	return id
}
