package app

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/memo/pkg/memo"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(ms int64) *fakeClock {
	return &fakeClock{now: time.UnixMilli(ms)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestService(t *testing.T, st State) (*Service, *fakeClock) {
	t.Helper()
	clock := newFakeClock(1_000)
	return New(st, WithClock(clock.Now)), clock
}

func ids(memos []memo.Memo) []int64 {
	out := make([]int64, 0, len(memos))
	for _, m := range memos {
		out = append(out, m.ID)
	}
	return out
}

func trashIDs(entries []memo.TrashEntry) []int64 {
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func assertConsistent(t *testing.T, st State) {
	t.Helper()
	require.NotEmpty(t, st.Memos, "live collection must never be empty")
	live := memo.IDsOf(st.Memos)
	assert.Len(t, live, len(st.Memos), "duplicate live ids")
	seen := make(map[int64]struct{})
	for _, e := range st.Trash {
		_, dup := seen[e.ID]
		assert.False(t, dup, "duplicate trash id %d", e.ID)
		seen[e.ID] = struct{}{}
		assert.False(t, live.Has(e.ID), "id %d is both live and trashed", e.ID)
	}
	sel, ok := st.Selection.SelectedID()
	require.True(t, ok, "selection must be set")
	assert.True(t, live.Has(sel), "selection %d must be live", sel)
}

func TestNewSynthesizesBlankMemo(t *testing.T) {
	svc, _ := newTestService(t, State{})
	st := svc.State()

	require.Len(t, st.Memos, 1)
	assert.Equal(t, memo.Memo{ID: 1_000}, st.Memos[0])
	assertConsistent(t, st)
}

func TestNewDropsDuplicatesAndShadowedTrash(t *testing.T) {
	svc, _ := newTestService(t, State{
		Memos: []memo.Memo{{ID: 1, Title: "a"}, {ID: 1, Title: "b"}, {ID: 2}},
		Trash: []memo.TrashEntry{{Memo: memo.Memo{ID: 2}}, {Memo: memo.Memo{ID: 3}}},
	})
	st := svc.State()

	assert.Equal(t, []int64{1, 2}, ids(st.Memos))
	assert.Equal(t, "a", st.Memos[0].Title)
	assert.Equal(t, []int64{3}, trashIDs(st.Trash))
	assertConsistent(t, st)
}

func TestSoftDeleteScenario(t *testing.T) {
	svc, clock := newTestService(t, State{Memos: []memo.Memo{
		{ID: 1, Category: "A"},
		{ID: 2, Category: "A"},
		{ID: 3},
	}})

	require.True(t, svc.SoftDelete(1))
	st := svc.State()
	assert.Equal(t, []int64{2, 3}, ids(st.Memos))
	require.Len(t, st.Trash, 1)
	assert.Equal(t, memo.TrashEntry{Memo: memo.Memo{ID: 1, Category: "A"}, DeletedAt: 1_000}, st.Trash[0])

	clock.Advance(time.Second)
	require.True(t, svc.SoftDelete(2))
	require.True(t, svc.SoftDelete(3))

	st = svc.State()
	require.Len(t, st.Memos, 1)
	assert.Equal(t, "", st.Memos[0].Title)
	assert.NotContains(t, []int64{1, 2, 3}, st.Memos[0].ID)
	assert.Len(t, st.Trash, 3)
	assertConsistent(t, st)
}

func TestSoftDeleteMovesSelectionToFirst(t *testing.T) {
	svc, _ := newTestService(t, State{Memos: []memo.Memo{{ID: 1}, {ID: 2}, {ID: 3}}})
	require.True(t, svc.Select(2))

	require.True(t, svc.SoftDelete(2))
	sel, _ := svc.State().Selection.SelectedID()
	assert.Equal(t, int64(1), sel)

	require.True(t, svc.SoftDelete(3))
	sel, _ = svc.State().Selection.SelectedID()
	assert.Equal(t, int64(1), sel, "unselected delete keeps selection")
}

func TestCreateAndDeleteNeverEmpty(t *testing.T) {
	svc, clock := newTestService(t, State{})
	for i := 0; i < 20; i++ {
		if i%3 == 0 {
			svc.Create(memo.AllCategories())
		} else {
			m, _ := svc.Selected()
			svc.SoftDelete(m.ID)
		}
		if i%5 == 0 {
			clock.Advance(time.Millisecond)
		}
		assertConsistent(t, svc.State())
	}
}

func TestCreateResolvesCategoryAndSelects(t *testing.T) {
	svc, _ := newTestService(t, State{Memos: []memo.Memo{{ID: 1}}})
	svc.SetTrashView(true)

	work := svc.Create(memo.Named("Work"))
	assert.Equal(t, "Work", work.Category)
	assert.False(t, work.Pinned)

	loose := svc.Create(memo.Uncategorized())
	assert.Equal(t, "", loose.Category)
	assert.NotEqual(t, work.ID, loose.ID)

	st := svc.State()
	assert.Equal(t, []int64{loose.ID, work.ID, 1}, ids(st.Memos))
	sel, _ := st.Selection.SelectedID()
	assert.Equal(t, loose.ID, sel)
	assert.False(t, st.Selection.TrashView)
}

func TestCreateAvoidsTrashedIDs(t *testing.T) {
	svc, _ := newTestService(t, State{
		Memos: []memo.Memo{{ID: 5}},
		Trash: []memo.TrashEntry{{Memo: memo.Memo{ID: 1_000}}},
	})
	m := svc.Create(memo.AllCategories())
	assert.Equal(t, int64(1_001), m.ID)
}

func TestRestoreRoundTrip(t *testing.T) {
	original := memo.Memo{ID: 7, Title: "t", Content: "c", Category: "Home", Pinned: true}
	svc, _ := newTestService(t, State{Memos: []memo.Memo{{ID: 1}, original}})
	svc.SetTrashView(true)

	require.True(t, svc.SoftDelete(7))
	restored, ok := svc.Restore(7)
	require.True(t, ok)
	assert.Equal(t, original, restored)

	st := svc.State()
	assert.Equal(t, []int64{7, 1}, ids(st.Memos))
	assert.Empty(t, st.Trash)
	sel, _ := st.Selection.SelectedID()
	assert.Equal(t, int64(7), sel)
	assert.False(t, st.Selection.TrashView)

	_, ok = svc.Restore(7)
	assert.False(t, ok, "restoring twice is a no-op")
}

func TestUpdateTogglePinAndMissingIDs(t *testing.T) {
	svc, _ := newTestService(t, State{Memos: []memo.Memo{{ID: 1, Title: "old", Category: "A"}}})

	require.True(t, svc.Update(memo.Memo{ID: 1, Title: "new"}))
	m, _ := svc.Get(1)
	assert.Equal(t, memo.Memo{ID: 1, Title: "new"}, m, "update overwrites every field")

	require.True(t, svc.TogglePin(1))
	m, _ = svc.Get(1)
	assert.True(t, m.Pinned)

	assert.False(t, svc.Update(memo.Memo{ID: 99}))
	assert.False(t, svc.TogglePin(99))
	assert.False(t, svc.SoftDelete(99))
	assert.False(t, svc.Purge(99))
	assert.False(t, svc.ReassignCategory(99, "x"))
	assert.False(t, svc.Select(99))
}

func TestPurgeAndEmptyTrash(t *testing.T) {
	svc, _ := newTestService(t, State{Memos: []memo.Memo{{ID: 1}, {ID: 2}, {ID: 3}}})
	svc.SoftDelete(1)
	svc.SoftDelete(2)

	require.True(t, svc.Purge(1))
	assert.Equal(t, []int64{2}, trashIDs(svc.State().Trash))

	assert.Equal(t, 1, svc.EmptyTrash())
	assert.Empty(t, svc.State().Trash)
}

func TestDeleteCategoryReassignsAndResetsFilter(t *testing.T) {
	svc, _ := newTestService(t, State{
		Memos: []memo.Memo{
			{ID: 1, Category: "Work"},
			{ID: 2, Category: "Home"},
			{ID: 3, Category: "Work"},
		},
		CustomCategories: []string{"Work", "Ideas"},
	})
	svc.SelectCategory(memo.Named("Work"))

	moved, ok := svc.DeleteCategory("Work", "")
	require.True(t, ok)
	assert.Equal(t, 2, moved)

	st := svc.State()
	for _, m := range st.Memos {
		assert.NotEqual(t, "Work", m.Category)
	}
	assert.Equal(t, 2, st.Counts()[""])
	assert.Equal(t, []string{"Ideas"}, st.CustomCategories)
	assert.Equal(t, memo.AllCategories(), st.Selection.Category)
}

func TestDeleteCategoryToTarget(t *testing.T) {
	svc, _ := newTestService(t, State{Memos: []memo.Memo{{ID: 1, Category: "Old"}}})

	moved, ok := svc.DeleteCategory("Old", " New ")
	require.True(t, ok)
	assert.Equal(t, 1, moved)
	m, _ := svc.Get(1)
	assert.Equal(t, "New", m.Category)

	_, ok = svc.DeleteCategory("", "x")
	assert.False(t, ok, "uncategorized cannot be deleted")
	_, ok = svc.DeleteCategory("Missing", "")
	assert.False(t, ok)
}

func TestCategoryRegistryOperations(t *testing.T) {
	svc, _ := newTestService(t, State{
		Memos:            []memo.Memo{{ID: 1, Category: "B"}, {ID: 2, Category: "X"}},
		CustomCategories: []string{"A", "B", "C"},
	})

	assert.True(t, svc.AddCategory("  D "))
	assert.False(t, svc.AddCategory("D"))
	assert.False(t, svc.AddCategory("   "))

	require.True(t, svc.ReorderCategories(0, 2))
	st := svc.State()
	assert.Equal(t, []string{"B", "C", "A", "D"}, st.CustomCategories)
	assert.Equal(t, []string{"B", "X", "C", "A", "D"}, st.Categories())

	assert.False(t, svc.ReorderCategories(1, 1))
	assert.False(t, svc.ReorderCategories(-1, 0))
	assert.False(t, svc.ReorderCategories(0, 4))
}

func TestReassignCategoryKeepsRegistry(t *testing.T) {
	svc, _ := newTestService(t, State{
		Memos:            []memo.Memo{{ID: 1, Title: "keep", Category: "A"}},
		CustomCategories: []string{"A"},
	})
	require.True(t, svc.ReassignCategory(1, "B"))

	st := svc.State()
	assert.Equal(t, memo.Memo{ID: 1, Title: "keep", Category: "B"}, st.Memos[0])
	assert.Equal(t, []string{"A"}, st.CustomCategories)
	assert.Equal(t, []string{"B", "A"}, st.Categories())
}

func TestSelectionRepairAfterCategorySelect(t *testing.T) {
	svc, _ := newTestService(t, State{Memos: []memo.Memo{{ID: 4}, {ID: 5}}})
	require.True(t, svc.Select(5))

	svc.SelectCategory(memo.Uncategorized())
	sel, ok := svc.State().Selection.SelectedID()
	require.True(t, ok)
	assert.Equal(t, int64(4), sel)
}

func TestCommitHookSeesEveryMutation(t *testing.T) {
	svc, _ := newTestService(t, State{Memos: []memo.Memo{{ID: 1}}})
	var got []State
	svc.OnCommit(func(st State) { got = append(got, st) })

	m := svc.Create(memo.AllCategories())
	svc.TogglePin(m.ID)
	svc.Update(memo.Memo{ID: 404})

	require.Len(t, got, 2, "no-ops do not commit")
	assert.Len(t, got[0].Memos, 2)
	assert.True(t, got[1].Memos[0].Pinned)

	got[1].Memos[0].Title = "mutated"
	current, _ := svc.Get(m.ID)
	assert.Equal(t, "", current.Title, "hook state is detached")
}
