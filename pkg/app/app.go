// Package app implements the memo lifecycle: the live memo collection, the
// trash, the category registry and the selection, kept consistent with each
// other behind a single Service.
package app

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/memo/pkg/memo"
)

// CommitHook is called synchronously at the end of every mutating Service
// operation with a detached copy of the new state. Hooks must not call back
// into the Service.
type CommitHook func(State)

// Option configures a Service.
type Option func(*Service)

// WithClock replaces time.Now for id allocation and deletion stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// Service provides high-level memo operations. It wraps the memo, trash and
// category stores so UIs and CLIs can share logic. All methods are safe for
// concurrent use.
type Service struct {
	mu         sync.Mutex
	memos      *MemoStore
	trash      *TrashStore
	categories *CategoryRegistry
	selection  Selection
	hooks      []CommitHook

	now func() time.Time
	log *zap.Logger
}

// New builds a Service from loaded state. Duplicate ids are dropped, a memo
// that is both live and trashed stays live, and an empty memo collection is
// replaced by one blank memo.
func New(st State, opts ...Option) *Service {
	s := &Service{
		now: time.Now,
		log: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.memos = NewMemoStore(st.Memos)
	s.trash = NewTrashStore(st.Trash)
	for _, e := range s.trash.All() {
		if s.memos.Has(e.ID) {
			s.log.Warn("dropping trash entry shadowed by live memo", zap.Int64("id", e.ID))
			s.trash.Purge(e.ID)
		}
	}
	s.categories = NewCategoryRegistry(st.CustomCategories)
	s.selection = st.Selection.clone()

	s.ensureNonEmptyLocked()
	s.repairSelectionLocked()
	return s
}

// OnCommit registers a hook run after every committed mutation.
func (s *Service) OnCommit(hook CommitHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// State returns a detached snapshot.
func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Get returns the live memo with id.
func (s *Service) Get(id int64) (memo.Memo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.memos.Get(id)
}

// Selected returns the selected live memo.
func (s *Service) Selected() (memo.Memo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.selection.SelectedID()
	if !ok {
		return memo.Memo{}, false
	}
	return s.memos.Get(id)
}

// Create inserts a blank memo at the front, categorized by the hint, selects
// it and leaves the trash view.
func (s *Service) Create(hint memo.CategoryFilter) memo.Memo {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := memo.New(s.allocateLocked(), hint.Resolve())
	s.memos.Prepend(m)
	s.selection.MemoID = ptr(m.ID)
	s.selection.TrashView = false
	s.log.Debug("memo created", zap.Int64("id", m.ID), zap.String("category", m.Category))
	s.commitLocked()
	return m
}

// Update overwrites the stored memo with the same id. Unknown ids are
// ignored.
func (s *Service) Update(m memo.Memo) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.memos.Replace(m) {
		return false
	}
	s.commitLocked()
	return true
}

// TogglePin flips the pinned flag of a live memo.
func (s *Service) TogglePin(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.memos.TogglePin(id) {
		return false
	}
	s.commitLocked()
	return true
}

// SoftDelete moves a live memo to the trash. Deleting the last memo leaves
// a fresh blank memo selected in its place.
func (s *Service) SoftDelete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.memos.Remove(id)
	if !ok {
		return false
	}
	s.trash.Put(memo.Trashed(m, s.now()))
	s.log.Debug("memo trashed", zap.Int64("id", id))

	if !s.ensureNonEmptyLocked() {
		if sel, ok := s.selection.SelectedID(); ok && sel == id {
			first, _ := s.memos.First()
			s.selection.MemoID = ptr(first.ID)
		}
	}
	s.commitLocked()
	return true
}

// Restore moves a trashed memo back to the front of the live collection,
// selects it and leaves the trash view.
func (s *Service) Restore(id int64) (memo.Memo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.trash.Restore(id)
	if !ok {
		return memo.Memo{}, false
	}
	s.memos.Prepend(m)
	s.selection.MemoID = ptr(m.ID)
	s.selection.TrashView = false
	s.log.Debug("memo restored", zap.Int64("id", id))
	s.commitLocked()
	return m, true
}

// Purge deletes a trashed memo permanently. Confirmation is the caller's job.
func (s *Service) Purge(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.trash.Purge(id) {
		return false
	}
	s.commitLocked()
	return true
}

// EmptyTrash purges every trashed memo and returns how many were dropped.
func (s *Service) EmptyTrash() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := s.trash.Empty()
	s.commitLocked()
	return n
}

// ReassignCategory sets the category of a single memo.
func (s *Service) ReassignCategory(id int64, category string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.memos.SetCategory(id, category) {
		return false
	}
	s.commitLocked()
	return true
}

// AddCategory declares a category that may have no memos yet.
func (s *Service) AddCategory(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.categories.Add(name) {
		return false
	}
	s.commitLocked()
	return true
}

// DeleteCategory moves every memo in name to target, forgets name, and
// resets a filter on name to match all. The uncategorized bucket cannot be
// deleted. It returns how many memos moved.
func (s *Service) DeleteCategory(name, target string) (int, bool) {
	if name == "" {
		return 0, false
	}
	target = strings.TrimSpace(target)

	s.mu.Lock()
	defer s.mu.Unlock()

	known := s.categories.Remove(name)
	moved := 0
	if target != name {
		moved = s.memos.Reassign(name, target)
	}
	reset := s.selection.Category.IsNamed(name)
	if reset {
		s.selection.Category = memo.AllCategories()
	}
	if !known && moved == 0 && !reset {
		return 0, false
	}
	s.log.Debug("category deleted", zap.String("name", name), zap.String("target", target), zap.Int("moved", moved))
	s.commitLocked()
	return moved, true
}

// ReorderCategories moves a declared category from one index to another.
func (s *Service) ReorderCategories(from, to int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.categories.Reorder(from, to) {
		return false
	}
	s.commitLocked()
	return true
}

// Select makes a live memo the selected one.
func (s *Service) Select(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.memos.Has(id) {
		return false
	}
	s.selection.MemoID = ptr(id)
	s.commitLocked()
	return true
}

// SelectCategory sets the category filter and clears the memo selection,
// which then falls back to the first memo.
func (s *Service) SelectCategory(f memo.CategoryFilter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Category = f
	s.selection.MemoID = nil
	s.commitLocked()
}

// SetSearch sets the search query.
func (s *Service) SetSearch(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Search = q
	s.commitLocked()
}

// SetTrashView switches between the memo list and the trash list.
func (s *Service) SetTrashView(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.TrashView = on
	s.commitLocked()
}

func (s *Service) allocateLocked() int64 {
	return memo.AllocateID(s.memos.IDs().AddTrash(s.trash.All()), s.now())
}

// ensureNonEmptyLocked synthesizes and selects a blank memo when the live
// collection is empty. It reports whether it did so.
func (s *Service) ensureNonEmptyLocked() bool {
	if s.memos.Len() > 0 {
		return false
	}
	m := memo.New(s.allocateLocked(), "")
	s.memos.Prepend(m)
	s.selection.MemoID = ptr(m.ID)
	return true
}

// repairSelectionLocked points the selection at the first memo whenever it
// does not reference a live one.
func (s *Service) repairSelectionLocked() {
	if id, ok := s.selection.SelectedID(); ok && s.memos.Has(id) {
		return
	}
	if first, ok := s.memos.First(); ok {
		s.selection.MemoID = ptr(first.ID)
	}
}

func (s *Service) commitLocked() {
	s.repairSelectionLocked()
	if len(s.hooks) == 0 {
		return
	}
	st := s.stateLocked()
	for _, hook := range s.hooks {
		hook(st)
	}
}

func (s *Service) stateLocked() State {
	return State{
		Memos:            s.memos.All(),
		Trash:            s.trash.All(),
		CustomCategories: s.categories.Custom(),
		Selection:        s.selection.clone(),
	}
}
