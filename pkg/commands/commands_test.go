package commands

import (
	"bytes"
	"encoding/json"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tableflip.dev/memo/pkg/app"
	"tableflip.dev/memo/pkg/memo"
	"tableflip.dev/memo/pkg/persist"
	"tableflip.dev/memo/pkg/runner/session"
	"tableflip.dev/memo/pkg/store"
)

func init() {
	color.NoColor = true
}

type harness struct {
	t  *testing.T
	kv *store.Memory
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{t: t, kv: store.NewMemory()}

	var mu sync.Mutex
	now := time.UnixMilli(1_700_000_000_000)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}

	prev := opener
	opener = func() (*session.Session, error) {
		return session.New(h.kv, store.StaticConfig{}, zap.NewNop(), session.WithClock(clock)), nil
	}
	t.Cleanup(func() { opener = prev })
	return h
}

func (h *harness) run(args ...string) string {
	h.t.Helper()
	out, err := h.try(args...)
	require.NoError(h.t, err, out)
	return out
}

func (h *harness) try(args ...string) (string, error) {
	h.t.Helper()
	root := New()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// state reads the store the way the next process would.
func (h *harness) state() app.State {
	return persist.New(h.kv).Load(time.Now)
}

func (h *harness) newMemo(args ...string) memo.Memo {
	h.t.Helper()
	out := h.run(append([]string{"new", "--json"}, args...)...)
	var m memo.Memo
	require.NoError(h.t, json.Unmarshal([]byte(out), &m), out)
	return m
}

func id(m memo.Memo) string {
	return strconv.FormatInt(m.ID, 10)
}

func TestNewAndList(t *testing.T) {
	h := newHarness(t)

	groceries := h.newMemo("groceries", "--content", "milk", "-c", "home")
	h.newMemo("standup", "-c", "work", "--pin")

	out := h.run("list", "--json")
	var listed []memo.Memo
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 3, "the blank first memo stays")
	assert.Equal(t, "standup", listed[0].Title, "pinned first")
	assert.True(t, listed[0].Pinned)

	out = h.run("list", "--filter", "home")
	assert.Contains(t, out, "groceries")
	assert.NotContains(t, out, "standup")

	out = h.run("show", id(groceries))
	assert.Contains(t, out, "milk")
	assert.Contains(t, out, "home")
}

func TestListSearchIgnoresCase(t *testing.T) {
	h := newHarness(t)
	h.newMemo("Groceries")
	h.newMemo("ideas")

	out := h.run("list", "--search", "  GROC ")
	assert.Contains(t, out, "Groceries")
	assert.NotContains(t, out, "ideas")

	out = h.run("list", "--search", "GROC", "--case-sensitive")
	assert.NotContains(t, out, "Groceries")
}

func TestFilterIsSavedAndUsedByNew(t *testing.T) {
	h := newHarness(t)

	h.run("filter", "work")
	assert.Equal(t, memo.Named("work"), h.state().Selection.Category)

	m := h.newMemo("standup")
	assert.Equal(t, "work", m.Category)

	h.run("filter", "all")
	assert.Equal(t, memo.AllCategories(), h.state().Selection.Category)
}

func TestEditPinSelect(t *testing.T) {
	h := newHarness(t)
	m := h.newMemo("draft")

	h.run("edit", id(m), "--title", "final", "--content", "body")
	h.run("pin", id(m))

	st := h.state()
	got, ok := findMemo(st.Memos, m.ID)
	require.True(t, ok)
	assert.Equal(t, "final", got.Title)
	assert.Equal(t, "body", got.Content)
	assert.True(t, got.Pinned)

	other := st.Memos[len(st.Memos)-1]
	h.run("select", id(other))
	sel, ok := h.state().Selection.SelectedID()
	require.True(t, ok)
	assert.Equal(t, other.ID, sel)

	_, err := h.try("edit", "nope", "--title", "x")
	assert.Error(t, err)
}

func TestTrashLifecycle(t *testing.T) {
	h := newHarness(t)
	a := h.newMemo("a")
	b := h.newMemo("b")

	h.run("rm", id(a), id(b))
	st := h.state()
	require.Len(t, st.Trash, 2)
	assert.Len(t, st.Memos, 1)

	out := h.run("trash")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")

	h.run("restore", id(a))
	st = h.state()
	assert.Len(t, st.Trash, 1)
	assert.Equal(t, a.ID, st.Memos[0].ID)

	out = h.run("empty-trash")
	assert.Contains(t, out, "trash kept", "no terminal declines")
	assert.Len(t, h.state().Trash, 1)

	h.run("purge", "--yes", id(b))
	assert.Empty(t, h.state().Trash)

	out = h.run("empty-trash", "--yes")
	assert.Contains(t, out, "trash is empty")
}

func TestCategoryCommands(t *testing.T) {
	h := newHarness(t)
	m := h.newMemo("standup", "-c", "work")

	h.run("category", "add", "home")
	h.run("category", "add", "errands")
	assert.Equal(t, []string{"home", "errands"}, h.state().CustomCategories)

	h.run("category", "reorder", "1", "0")
	assert.Equal(t, []string{"errands", "home"}, h.state().CustomCategories)

	out := h.run("category", "list", "--json")
	assert.Contains(t, out, `"work"`)

	h.run("filter", "work")
	out = h.run("category", "delete", "work", "--to", "home")
	assert.Contains(t, out, "moved 1 to home")

	st := h.state()
	got, ok := findMemo(st.Memos, m.ID)
	require.True(t, ok)
	assert.Equal(t, "home", got.Category)
	assert.Equal(t, memo.AllCategories(), st.Selection.Category)

	h.run("category", "move", id(m), "")
	got, _ = findMemo(h.state().Memos, m.ID)
	assert.Empty(t, got.Category)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	out := h.run("version", "-o", "json")
	assert.Contains(t, out, "dev")
}

func TestMatchCategories(t *testing.T) {
	st := app.State{
		Memos:            []memo.Memo{{ID: 1, Category: "work"}},
		CustomCategories: []string{"weekend", "home"},
	}
	assert.Equal(t, []string{`"work"`, `"weekend"`}, matchCategories(st, "w"))
	assert.Empty(t, matchCategories(st, "x"))
}

func findMemo(memos []memo.Memo, id int64) (memo.Memo, bool) {
	for _, m := range memos {
		if m.ID == id {
			return m, true
		}
	}
	return memo.Memo{}, false
}
