// Package memo holds the memo model and the pure helpers that operate on
// memo collections: id allocation, de-duplication, filtering and ordering.
package memo

import (
	"fmt"
	"strings"
	"time"
)

// Memo is a user-authored note. Category "" means uncategorized.
type Memo struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Pinned   bool   `json:"pinned"`
}

// New returns a blank memo with the given id and category.
func New(id int64, category string) Memo {
	return Memo{ID: id, Category: category}
}

// DisplayTitle returns the title, or a placeholder for untitled memos.
func (m Memo) DisplayTitle() string {
	if strings.TrimSpace(m.Title) == "" {
		return "(untitled)"
	}
	return m.Title
}

// Created interprets the id as the creation time. Ids come from the
// allocator so this is accurate to the millisecond, give or take collisions.
func (m Memo) Created() time.Time {
	return time.UnixMilli(m.ID)
}

func (m Memo) String() string {
	pin := " "
	if m.Pinned {
		pin = "*"
	}
	return fmt.Sprintf("%s %d %s", pin, m.ID, m.DisplayTitle())
}

// TrashEntry is a soft-deleted memo. DeletedAt is epoch milliseconds.
type TrashEntry struct {
	Memo
	DeletedAt int64 `json:"deletedAt"`
}

// Trashed wraps m into a trash entry stamped with at.
func Trashed(m Memo, at time.Time) TrashEntry {
	return TrashEntry{Memo: m, DeletedAt: at.UnixMilli()}
}

// Deleted returns the deletion time.
func (t TrashEntry) Deleted() time.Time {
	return time.UnixMilli(t.DeletedAt)
}
