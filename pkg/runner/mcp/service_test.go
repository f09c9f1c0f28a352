package mcp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/memo/pkg/app"
	"tableflip.dev/memo/pkg/memo"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	now := time.UnixMilli(1700000000000)
	svc := app.New(app.State{}, app.WithClock(func() time.Time {
		now = now.Add(time.Millisecond)
		return now
	}))
	return NewService(svc, false)
}

func strp(s string) *string { return &s }

func TestServiceCreateMemoDefaults(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.CreateMemo(ctx, CreateOptions{Title: "Test item"})
	require.NoError(t, err)
	assert.Equal(t, "Test item", dto.Title)
	assert.Equal(t, "", dto.Category)
	assert.True(t, dto.Selected)
	assert.NotEmpty(t, dto.CreatedISO)

	dto, err = svc.CreateMemo(ctx, CreateOptions{Category: strp("Work"), Pinned: true})
	require.NoError(t, err)
	assert.Equal(t, "Work", dto.Category)
	assert.True(t, dto.Pinned)
}

func TestServiceListMemos(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.CreateMemo(ctx, CreateOptions{Title: "Groceries", Category: strp("Home")})
	require.NoError(t, err)
	_, err = svc.CreateMemo(ctx, CreateOptions{Title: "Standup", Category: strp("Work")})
	require.NoError(t, err)

	all, err := svc.ListMemos(ctx, ListOptions{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	home, err := svc.ListMemos(ctx, ListOptions{Category: "Home"})
	require.NoError(t, err)
	require.Len(t, home, 1)
	assert.Equal(t, "Groceries", home[0].Title)

	none, err := svc.ListMemos(ctx, ListOptions{Category: "uncategorized"})
	require.NoError(t, err)
	assert.Len(t, none, 1)

	found, err := svc.ListMemos(ctx, ListOptions{Search: "stand"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Standup", found[0].Title)
}

func TestServiceUpdateAndPin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	dto, err := svc.CreateMemo(ctx, CreateOptions{Title: "draft", Content: "body"})
	require.NoError(t, err)

	dto, err = svc.UpdateMemo(ctx, UpdateOptions{ID: dto.ID, Title: strp("final"), Category: strp(" Work ")})
	require.NoError(t, err)
	assert.Equal(t, "final", dto.Title)
	assert.Equal(t, "body", dto.Content)
	assert.Equal(t, "Work", dto.Category)

	dto, err = svc.TogglePin(ctx, dto.ID)
	require.NoError(t, err)
	assert.True(t, dto.Pinned)

	_, err = svc.UpdateMemo(ctx, UpdateOptions{ID: 1})
	assert.ErrorIs(t, err, ErrMemoNotFound)
	_, err = svc.TogglePin(ctx, 1)
	assert.ErrorIs(t, err, ErrMemoNotFound)
}

func TestServiceTrashLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	a, err := svc.CreateMemo(ctx, CreateOptions{Title: "a"})
	require.NoError(t, err)
	b, err := svc.CreateMemo(ctx, CreateOptions{Title: "b"})
	require.NoError(t, err)

	trashed, err := svc.TrashMemo(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, trashed.ID)
	assert.NotZero(t, trashed.DeletedUnix)

	restored, err := svc.RestoreMemo(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, restored.Selected)

	_, err = svc.RestoreMemo(ctx, a.ID)
	assert.ErrorIs(t, err, ErrTrashEntryNotFound)

	_, err = svc.TrashMemo(ctx, b.ID)
	require.NoError(t, err)

	assert.ErrorIs(t, svc.PurgeMemo(ctx, b.ID, false), ErrConfirmationRequired)
	require.NoError(t, svc.PurgeMemo(ctx, b.ID, true))
	assert.ErrorIs(t, svc.PurgeMemo(ctx, b.ID, true), ErrTrashEntryNotFound)

	_, err = svc.TrashMemo(ctx, a.ID)
	require.NoError(t, err)
	_, err = svc.EmptyTrash(ctx, false)
	assert.ErrorIs(t, err, ErrConfirmationRequired)
	n, err := svc.EmptyTrash(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries, err := svc.ListTrash(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestServiceCategories(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	m, err := svc.CreateMemo(ctx, CreateOptions{Category: strp("Work")})
	require.NoError(t, err)
	for _, name := range []string{"A", "B", "C"} {
		added, err := svc.AddCategory(ctx, name)
		require.NoError(t, err)
		assert.True(t, added)
	}
	_, err = svc.AddCategory(ctx, "  ")
	assert.Error(t, err)

	order, err := svc.ReorderCategories(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, order)
	_, err = svc.ReorderCategories(ctx, 0, 5)
	assert.Error(t, err)

	moved, err := svc.DeleteCategory(ctx, "Work", "A")
	require.NoError(t, err)
	assert.Equal(t, 1, moved)

	got, err := svc.GetMemo(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", got.Category)

	dto, err := svc.MoveMemo(ctx, m.ID, "B")
	require.NoError(t, err)
	assert.Equal(t, "B", dto.Category)

	summaries, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []app.CategorySummary{
		{Name: "B", Count: 1, Declared: true, Position: 0},
		{Name: "C", Declared: true, Position: 1},
		{Name: "A", Declared: true, Position: 2},
	}, summaries)
}

func TestServiceNotConfigured(t *testing.T) {
	var svc *Service
	_, err := svc.ListMemos(context.Background(), ListOptions{Category: memo.AllCategories().Encode()})
	assert.Error(t, err)
}
