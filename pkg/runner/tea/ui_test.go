package teaui

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/memo/pkg/app"
	"tableflip.dev/memo/pkg/memo"
	"tableflip.dev/memo/pkg/persist"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

type recordingFlusher struct {
	mu      sync.Mutex
	reasons []persist.ExitReason
}

func (f *recordingFlusher) Flush(reason persist.ExitReason) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reasons = append(f.reasons, reason)
}

func (f *recordingFlusher) Saving() bool { return false }

func (f *recordingFlusher) Reasons() []persist.ExitReason {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]persist.ExitReason(nil), f.reasons...)
}

func newTestModel(t *testing.T, memos ...memo.Memo) (Model, *app.Service, *recordingFlusher) {
	t.Helper()
	var mu sync.Mutex
	now := time.UnixMilli(10_000)
	clock := func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Millisecond)
		return now
	}
	svc := app.New(app.State{Memos: memos}, app.WithClock(clock))
	f := &recordingFlusher{}
	// A long settle delay keeps commits under the test's control.
	m := New(svc, f, Options{SettleDelay: time.Hour})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model), svc, f
}

func keys(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	switch msg := cmd().(type) {
	case tea.QuitMsg:
		return true
	case tea.BatchMsg:
		for _, c := range msg {
			if isQuit(c) {
				return true
			}
		}
	}
	return false
}

func TestNewMemoEditCommitsOnEsc(t *testing.T) {
	m, svc, _ := newTestModel(t, memo.Memo{ID: 1, Title: "old"})

	m, _ = send(t, m, keys("n")...)
	require.Equal(t, modeEditTitle, m.mode)
	created, ok := svc.Selected()
	require.True(t, ok)
	require.NotEqual(t, int64(1), created.ID)

	m, _ = send(t, m, keys("hello")...)
	got, _ := svc.Get(created.ID)
	assert.Empty(t, got.Title, "edit must wait for the settle delay")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, modeEditContent, m.mode)
	m, _ = send(t, m, keys("body")...)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, modeNormal, m.mode)
	got, _ = svc.Get(created.ID)
	assert.Equal(t, "hello", got.Title)
	assert.Equal(t, "body", got.Content)
}

func TestEscCommitsThenMoveSelects(t *testing.T) {
	m, svc, _ := newTestModel(t, memo.Memo{ID: 2, Title: "b"}, memo.Memo{ID: 1, Title: "a"})

	m, _ = send(t, m, keys("i")...)
	m, _ = send(t, m, keys("!")...)
	require.Equal(t, modeEditTitle, m.mode)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = send(t, m, keys("j")...)

	first, _ := svc.Get(2)
	assert.Equal(t, "b!", first.Title)
	sel, ok := svc.State().Selection.SelectedID()
	require.True(t, ok)
	assert.Equal(t, int64(1), sel)
}

func TestBlurFlushesHidden(t *testing.T) {
	m, svc, f := newTestModel(t, memo.Memo{ID: 1})

	m, _ = send(t, m, keys("i")...)
	m, _ = send(t, m, keys("draft")...)
	_, _ = send(t, m, tea.BlurMsg{})

	got, _ := svc.Get(1)
	assert.Equal(t, "draft", got.Title)
	assert.Equal(t, []persist.ExitReason{persist.ExitHidden}, f.Reasons())
}

func TestQuitFlushesUnload(t *testing.T) {
	m, _, f := newTestModel(t, memo.Memo{ID: 1})

	_, cmd := send(t, m, keys("q")...)
	assert.True(t, isQuit(cmd))
	assert.Equal(t, []persist.ExitReason{persist.ExitUnload}, f.Reasons())
}

func TestCommandQuit(t *testing.T) {
	m, _, f := newTestModel(t, memo.Memo{ID: 1})

	m, _ = send(t, m, keys(":")...)
	require.Equal(t, modeInput, m.mode)
	m, _ = send(t, m, keys("q")...)
	_, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, isQuit(cmd))
	assert.Equal(t, []persist.ExitReason{persist.ExitUnload}, f.Reasons())
}

func TestPinAndSoftDelete(t *testing.T) {
	m, svc, _ := newTestModel(t, memo.Memo{ID: 2, Title: "b"}, memo.Memo{ID: 1, Title: "a"})

	m, _ = send(t, m, keys("p")...)
	got, _ := svc.Get(2)
	assert.True(t, got.Pinned)

	// A single d does nothing.
	m, _ = send(t, m, keys("d")...)
	require.Len(t, svc.State().Trash, 0)

	_, _ = send(t, m, keys("d")...)
	st := svc.State()
	require.Len(t, st.Trash, 1)
	assert.Equal(t, int64(2), st.Trash[0].ID)
	assert.Len(t, st.Memos, 1)
}

func TestTrashPurgeNeedsConfirmation(t *testing.T) {
	m, svc, _ := newTestModel(t, memo.Memo{ID: 2, Title: "b"}, memo.Memo{ID: 1, Title: "a"})

	m, _ = send(t, m, keys("dd")...)
	m, _ = send(t, m, keys("t")...)
	require.True(t, m.trashView)

	m, _ = send(t, m, keys("x")...)
	require.Equal(t, modeConfirm, m.mode)
	m, _ = send(t, m, keys("n")...)
	assert.Equal(t, modeNormal, m.mode)
	require.Len(t, svc.State().Trash, 1)

	m, _ = send(t, m, keys("xy")...)
	assert.Empty(t, svc.State().Trash)
	assert.Equal(t, modeNormal, m.mode)
}

func TestTrashRestore(t *testing.T) {
	m, svc, _ := newTestModel(t, memo.Memo{ID: 2, Title: "b"}, memo.Memo{ID: 1, Title: "a"})

	m, _ = send(t, m, keys("dd")...)
	m, _ = send(t, m, keys("t")...)
	_, _ = send(t, m, keys("r")...)

	st := svc.State()
	assert.Empty(t, st.Trash)
	assert.Len(t, st.Memos, 2)
	assert.False(t, st.Selection.TrashView)
}

func TestEmptyTrash(t *testing.T) {
	m, svc, _ := newTestModel(t,
		memo.Memo{ID: 3, Title: "c"},
		memo.Memo{ID: 2, Title: "b"},
		memo.Memo{ID: 1, Title: "a"},
	)

	m, _ = send(t, m, keys("dd")...)
	m, _ = send(t, m, keys("dd")...)
	require.Len(t, svc.State().Trash, 2)

	m, _ = send(t, m, keys("t")...)
	_, _ = send(t, m, keys("Xy")...)
	assert.Empty(t, svc.State().Trash)
}

func TestSearchNarrowsList(t *testing.T) {
	m, svc, _ := newTestModel(t,
		memo.Memo{ID: 2, Title: "Groceries"},
		memo.Memo{ID: 1, Title: "Ideas"},
	)

	m, _ = send(t, m, keys("/")...)
	m, _ = send(t, m, keys("groc")...)
	assert.Len(t, m.memoList.Items(), 1)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "groc", svc.State().Selection.Search)

	m, _ = send(t, m, keys("/")...)
	_, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, svc.State().Selection.Search)
}

func TestCategoryPane(t *testing.T) {
	m, svc, _ := newTestModel(t,
		memo.Memo{ID: 2, Title: "b", Category: "work"},
		memo.Memo{ID: 1, Title: "a"},
	)

	m, _ = send(t, m, keys("a")...)
	m, _ = send(t, m, keys("home")...)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"home"}, svc.State().CustomCategories)

	// All, Uncategorized, work, home
	m, _ = send(t, m, keys("h")...)
	require.Equal(t, focusCategories, m.focus)
	m, _ = send(t, m, keys("jj")...)
	assert.Equal(t, memo.Named("work"), svc.State().Selection.Category)
	assert.Len(t, m.memoList.Items(), 1)

	m, _ = send(t, m, keys("Dy")...)
	st := svc.State()
	assert.Equal(t, memo.AllCategories(), st.Selection.Category)
	moved, _ := svc.Get(2)
	assert.Empty(t, moved.Category)
}

func TestCreateUsesActiveCategory(t *testing.T) {
	m, svc, _ := newTestModel(t, memo.Memo{ID: 1, Category: "work"})

	svc.SelectCategory(memo.Named("work"))
	m, _ = send(t, m, tickMsg(time.Now()))
	m, _ = send(t, m, keys("l")...)
	_, _ = send(t, m, keys("n")...)

	created, ok := svc.Selected()
	require.True(t, ok)
	assert.Equal(t, "work", created.Category)
}

func TestView(t *testing.T) {
	m, _, _ := newTestModel(t, memo.Memo{ID: 1, Title: "Shopping", Content: "milk and eggs"})

	out := m.View()
	assert.Contains(t, out, "Categories")
	assert.Contains(t, out, "Shopping")
	assert.Contains(t, out, "milk and eggs")
	assert.True(t, strings.Contains(out, "[memos]"), out)
}

func TestCreateWhileSearchingEditsNewMemo(t *testing.T) {
	m, svc, _ := newTestModel(t,
		memo.Memo{ID: 2, Title: "other"},
		memo.Memo{ID: 1, Title: "foo note"},
	)
	svc.SetSearch("foo")
	m, _ = send(t, m, tickMsg(time.Now()))
	require.Len(t, m.memoList.Items(), 1)

	m, _ = send(t, m, keys("n")...)
	created, ok := svc.Selected()
	require.True(t, ok)
	require.Equal(t, created.ID, m.editing.ID)

	m, _ = send(t, m, keys("X")...)
	_, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	got, _ := svc.Get(created.ID)
	assert.Equal(t, "X", got.Title)
	untouched, _ := svc.Get(1)
	assert.Equal(t, "foo note", untouched.Title)
	assert.Empty(t, svc.State().Selection.Search)
}

func TestDiscardDropsUnsettledEdit(t *testing.T) {
	m, svc, _ := newTestModel(t, memo.Memo{ID: 1, Title: "keep"})

	m, _ = send(t, m, keys("i")...)
	m, _ = send(t, m, keys("zz")...)
	_, pending := m.draft.Pending()
	require.True(t, pending)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, modeNormal, m.mode)
	_, pending = m.draft.Pending()
	assert.False(t, pending)

	// Leaving the memo afterwards has nothing left to commit.
	_, _ = send(t, m, tea.BlurMsg{})
	got, _ := svc.Get(1)
	assert.Equal(t, "keep", got.Title)
}

func TestShutdownFlushesDraftThenUnloads(t *testing.T) {
	m, svc, f := newTestModel(t, memo.Memo{ID: 1})

	m, _ = send(t, m, keys("i")...)
	m, _ = send(t, m, keys("late")...)
	_, cmd := send(t, m, shutdownMsg{})

	assert.True(t, isQuit(cmd))
	got, _ := svc.Get(1)
	assert.Equal(t, "late", got.Title)
	assert.Equal(t, []persist.ExitReason{persist.ExitUnload}, f.Reasons())
}

func TestShutdownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	sent := make(chan tea.Msg, 1)
	finished := make(chan struct{})
	go func() {
		shutdownOnCancel(ctx, make(chan struct{}), func(msg tea.Msg) { sent <- msg })
		close(finished)
	}()

	cancel()
	select {
	case msg := <-sent:
		assert.IsType(t, shutdownMsg{}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("cancel did not ask the UI to shut down")
	}
	<-finished

	// Once the program is done nothing is sent.
	done := make(chan struct{})
	close(done)
	shutdownOnCancel(context.Background(), done, func(tea.Msg) {
		t.Error("sent after the program finished")
	})
}
