// Package mcp provides the Model Context Protocol server integration for memo.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/memo/pkg/app"
	"tableflip.dev/memo/pkg/memo"
)

// Service adapts app.Service operations to transport-friendly shapes.
type Service struct {
	App           *app.Service
	CaseSensitive bool
}

var (
	// ErrMemoNotFound is returned when no live memo has the requested id.
	ErrMemoNotFound = errors.New("memo not found")
	// ErrTrashEntryNotFound is returned when no trash entry has the requested id.
	ErrTrashEntryNotFound = errors.New("trash entry not found")
	// ErrConfirmationRequired is returned by destructive calls made without
	// confirm set.
	ErrConfirmationRequired = errors.New("confirmation required: set confirm to true")
)

// MemoDTO is a transport-friendly projection of a memo.
type MemoDTO struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content,omitempty"`
	Category    string `json:"category,omitempty"`
	Pinned      bool   `json:"pinned"`
	Selected    bool   `json:"selected,omitempty"`
	CreatedISO  string `json:"created"`
	CreatedUnix int64  `json:"createdUnix"`
}

// TrashDTO is a transport-friendly projection of a trash entry.
type TrashDTO struct {
	MemoDTO
	DeletedISO  string `json:"deleted"`
	DeletedUnix int64  `json:"deletedUnix"`
}

// ListOptions filters ListMemos. Category uses the CLI syntax: "" or "all",
// "none" or "uncategorized", or a name.
type ListOptions struct {
	Category string
	Search   string
}

// CreateOptions captures the parameters used to create a memo. A nil
// Category files the memo under the active filter.
type CreateOptions struct {
	Title    string
	Content  string
	Category *string
	Pinned   bool
}

// UpdateOptions overwrites the fields that are set.
type UpdateOptions struct {
	ID       int64
	Title    *string
	Content  *string
	Category *string
}

// NewService builds a service wrapper around svc.
func NewService(svc *app.Service, caseSensitive bool) *Service {
	return &Service{App: svc, CaseSensitive: caseSensitive}
}

func (s *Service) ready() error {
	if s == nil || s.App == nil {
		return errors.New("memo service is not configured")
	}
	return nil
}

// ListMemos returns the visible memos, pinned first then newest first.
func (s *Service) ListMemos(ctx context.Context, opts ListOptions) ([]MemoDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	st := s.App.State()
	visible := memo.Visible(st.Memos, memo.Query{
		Filter:        memo.FilterFromFlag(opts.Category),
		Search:        opts.Search,
		CaseSensitive: s.CaseSensitive,
	})
	sel, _ := st.Selection.SelectedID()
	out := make([]MemoDTO, 0, len(visible))
	for _, m := range visible {
		out = append(out, toDTO(m, sel))
	}
	return out, nil
}

// GetMemo fetches a live memo.
func (s *Service) GetMemo(ctx context.Context, id int64) (MemoDTO, error) {
	if err := s.ready(); err != nil {
		return MemoDTO{}, err
	}
	m, ok := s.App.Get(id)
	if !ok {
		return MemoDTO{}, fmt.Errorf("%w: %d", ErrMemoNotFound, id)
	}
	return s.dto(m), nil
}

// CreateMemo creates and selects a memo.
func (s *Service) CreateMemo(ctx context.Context, opts CreateOptions) (MemoDTO, error) {
	if err := s.ready(); err != nil {
		return MemoDTO{}, err
	}
	hint := s.App.State().Selection.Category
	if opts.Category != nil {
		hint = memo.Named(strings.TrimSpace(*opts.Category))
	}
	m := s.App.Create(hint)
	if opts.Title != "" || opts.Content != "" {
		m.Title = opts.Title
		m.Content = opts.Content
		s.App.Update(m)
	}
	if opts.Pinned {
		s.App.TogglePin(m.ID)
	}
	return s.GetMemo(ctx, m.ID)
}

// UpdateMemo edits a live memo.
func (s *Service) UpdateMemo(ctx context.Context, opts UpdateOptions) (MemoDTO, error) {
	if err := s.ready(); err != nil {
		return MemoDTO{}, err
	}
	m, ok := s.App.Get(opts.ID)
	if !ok {
		return MemoDTO{}, fmt.Errorf("%w: %d", ErrMemoNotFound, opts.ID)
	}
	if opts.Title != nil {
		m.Title = *opts.Title
	}
	if opts.Content != nil {
		m.Content = *opts.Content
	}
	if opts.Category != nil {
		m.Category = strings.TrimSpace(*opts.Category)
	}
	s.App.Update(m)
	return s.GetMemo(ctx, m.ID)
}

// TogglePin flips the pinned flag.
func (s *Service) TogglePin(ctx context.Context, id int64) (MemoDTO, error) {
	if err := s.ready(); err != nil {
		return MemoDTO{}, err
	}
	if !s.App.TogglePin(id) {
		return MemoDTO{}, fmt.Errorf("%w: %d", ErrMemoNotFound, id)
	}
	return s.GetMemo(ctx, id)
}

// TrashMemo soft-deletes a memo.
func (s *Service) TrashMemo(ctx context.Context, id int64) (TrashDTO, error) {
	if err := s.ready(); err != nil {
		return TrashDTO{}, err
	}
	if !s.App.SoftDelete(id) {
		return TrashDTO{}, fmt.Errorf("%w: %d", ErrMemoNotFound, id)
	}
	for _, e := range s.App.State().Trash {
		if e.ID == id {
			return toTrashDTO(e), nil
		}
	}
	return TrashDTO{}, fmt.Errorf("%w: %d", ErrTrashEntryNotFound, id)
}

// RestoreMemo moves a trash entry back to the live collection.
func (s *Service) RestoreMemo(ctx context.Context, id int64) (MemoDTO, error) {
	if err := s.ready(); err != nil {
		return MemoDTO{}, err
	}
	m, ok := s.App.Restore(id)
	if !ok {
		return MemoDTO{}, fmt.Errorf("%w: %d", ErrTrashEntryNotFound, id)
	}
	return s.dto(m), nil
}

// PurgeMemo permanently deletes a trash entry.
func (s *Service) PurgeMemo(ctx context.Context, id int64, confirm bool) error {
	if err := s.ready(); err != nil {
		return err
	}
	if !confirm {
		return ErrConfirmationRequired
	}
	if !s.App.Purge(id) {
		return fmt.Errorf("%w: %d", ErrTrashEntryNotFound, id)
	}
	return nil
}

// EmptyTrash purges every trash entry and returns how many there were.
func (s *Service) EmptyTrash(ctx context.Context, confirm bool) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	if !confirm {
		return 0, ErrConfirmationRequired
	}
	return s.App.EmptyTrash(), nil
}

// ListTrash returns the trash, most recently deleted first.
func (s *Service) ListTrash(ctx context.Context) ([]TrashDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	entries := s.App.State().Trash
	out := make([]TrashDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toTrashDTO(e))
	}
	return out, nil
}

// ListCategories returns the effective categories with counts.
func (s *Service) ListCategories(ctx context.Context) ([]app.CategorySummary, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.App.State().Summaries(), nil
}

// AddCategory declares a category. It reports false if it already was.
func (s *Service) AddCategory(ctx context.Context, name string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	if strings.TrimSpace(name) == "" {
		return false, errors.New("category name is required")
	}
	return s.App.AddCategory(name), nil
}

// DeleteCategory removes a category and moves its memos to target.
func (s *Service) DeleteCategory(ctx context.Context, name, target string) (int, error) {
	if err := s.ready(); err != nil {
		return 0, err
	}
	moved, ok := s.App.DeleteCategory(name, target)
	if !ok {
		return 0, fmt.Errorf("category %q not found", name)
	}
	return moved, nil
}

// ReorderCategories moves a declared category and returns the new order.
func (s *Service) ReorderCategories(ctx context.Context, from, to int) ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if !s.App.ReorderCategories(from, to) {
		return nil, fmt.Errorf("can not move category %d to %d", from, to)
	}
	return s.App.State().CustomCategories, nil
}

// MoveMemo assigns a memo to a category.
func (s *Service) MoveMemo(ctx context.Context, id int64, category string) (MemoDTO, error) {
	if err := s.ready(); err != nil {
		return MemoDTO{}, err
	}
	if !s.App.ReassignCategory(id, strings.TrimSpace(category)) {
		return MemoDTO{}, fmt.Errorf("%w: %d", ErrMemoNotFound, id)
	}
	return s.GetMemo(ctx, id)
}

func (s *Service) dto(m memo.Memo) MemoDTO {
	sel, _ := s.App.State().Selection.SelectedID()
	return toDTO(m, sel)
}

func toDTO(m memo.Memo, selected int64) MemoDTO {
	created := m.Created()
	return MemoDTO{
		ID:          m.ID,
		Title:       m.Title,
		Content:     m.Content,
		Category:    m.Category,
		Pinned:      m.Pinned,
		Selected:    m.ID == selected,
		CreatedISO:  created.UTC().Format(time.RFC3339),
		CreatedUnix: created.Unix(),
	}
}

func toTrashDTO(e memo.TrashEntry) TrashDTO {
	deleted := e.Deleted()
	return TrashDTO{
		MemoDTO:     toDTO(e.Memo, 0),
		DeletedISO:  deleted.UTC().Format(time.RFC3339),
		DeletedUnix: deleted.Unix(),
	}
}
