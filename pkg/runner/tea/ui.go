package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/memo/pkg/app"
	"tableflip.dev/memo/pkg/memo"
	"tableflip.dev/memo/pkg/persist"
	"tableflip.dev/memo/pkg/runner/tea/internal/bottombar"
	"tableflip.dev/memo/pkg/runner/tea/internal/theme"
)

// Model states and actions
type mode int

const (
	modeNormal mode = iota
	modeEditTitle
	modeEditContent
	modeInput
	modeConfirm
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionSearch
	actionCommand
	actionAddCategory
	actionMove
)

const (
	focusCategories = 0
	focusMemos      = 1

	refreshInterval = 250 * time.Millisecond
	normalHelp      = "n new · i/e edit · p pin · dd trash · / search · t trash · ? help"
)

// Flusher is the persistence side the UI talks to on exit triggers.
type Flusher interface {
	Flush(reason persist.ExitReason)
	Saving() bool
}

// category item for left list
type categoryItem struct {
	filter memo.CategoryFilter
	label  string
	count  int
}

func (c categoryItem) Title() string       { return fmt.Sprintf("%s (%d)", c.label, c.count) }
func (c categoryItem) Description() string { return "" }
func (c categoryItem) FilterValue() string { return c.label }

// memo item for right list, either live or trashed
type memoItem struct {
	m       memo.Memo
	deleted *time.Time
}

func (it memoItem) Title() string {
	pin := "  "
	if it.m.Pinned {
		pin = "★ "
	}
	title := it.m.DisplayTitle()
	if it.m.Category != "" {
		title += " · " + it.m.Category
	}
	return pin + title
}
func (it memoItem) Description() string { return "" }
func (it memoItem) FilterValue() string { return it.m.Title }

type confirmation struct {
	prompt string
	run    func() string
}

// shutdownMsg asks the UI to save and exit, as when the process is told to
// terminate.
type shutdownMsg struct{}

// tickMsg refreshes the view so commits made by the settle timer and the
// saving indicator show up.
type tickMsg time.Time

// Options tunes the UI.
type Options struct {
	SettleDelay   time.Duration
	CaseSensitive bool
}

// Model contains UI state
type Model struct {
	svc     *app.Service
	persist Flusher
	draft   *app.Draft
	opts    Options

	mode   mode
	action action
	focus  int

	catList  list.Model
	memoList list.Model

	title   textinput.Model
	content textarea.Model
	input   textinput.Model

	footer bottombar.Model
	theme  theme.Theme

	editing   memo.Memo
	confirm   *confirmation
	trashView bool

	awaitingDD bool
	lastDTime  time.Time

	termWidth  int
	termHeight int

	focusDel list.DefaultDelegate
	blurDel  list.DefaultDelegate
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service, p Flusher, opts Options) Model {
	dFocus := list.NewDefaultDelegate()
	dBlur := list.NewDefaultDelegate()
	// Unfocused list should not visually highlight the selected item
	dBlur.Styles.SelectedTitle = dBlur.Styles.NormalTitle
	dBlur.Styles.SelectedDesc = dBlur.Styles.NormalDesc
	dFocus.ShowDescription = false
	dBlur.ShowDescription = false
	dFocus.SetSpacing(0)
	dBlur.SetSpacing(0)

	l1 := list.New([]list.Item{}, dBlur, 24, 20)
	l1.Title = "Categories"
	l1.SetShowHelp(false)
	l1.SetShowStatusBar(false)
	l1.SetFilteringEnabled(false)

	l2 := list.New([]list.Item{}, dFocus, 60, 12)
	l2.Title = "Memos"
	l2.SetShowHelp(false)
	l2.SetShowStatusBar(false)
	l2.SetFilteringEnabled(false)

	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""
	title.CharLimit = 256

	content := textarea.New()
	content.Placeholder = "Write something…"
	content.ShowLineNumbers = false
	content.CharLimit = 0

	in := textinput.New()
	in.CharLimit = 256

	footer := bottombar.New()
	footer.SetHelp(normalHelp)
	footer.SetCommandDefinitions([]bottombar.CommandOption{
		{Name: "new", Description: "Create a memo"},
		{Name: "trash", Description: "Show the trash"},
		{Name: "memos", Description: "Show memos"},
		{Name: "empty", Description: "Empty the trash"},
		{Name: "filter", Description: "Filter by category: all, none or a name"},
		{Name: "category", Description: "Declare a category"},
		{Name: "quit", Description: "Save and exit"},
	})

	m := Model{
		svc:      svc,
		persist:  p,
		draft:    svc.NewDraft(opts.SettleDelay),
		opts:     opts,
		mode:     modeNormal,
		focus:    focusMemos,
		catList:  l1,
		memoList: l2,
		title:    title,
		content:  content,
		input:    in,
		footer:   footer,
		theme:    theme.Default(),
		focusDel: dFocus,
		blurDel:  dBlur,
	}
	m.updateFocusHeaders()
	m.refresh()
	return m
}

// Init starts the refresh ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// refresh rebuilds both lists from the Service.
func (m *Model) refresh() {
	st := m.svc.State()
	m.trashView = st.Selection.TrashView

	counts := st.Counts()
	cats := []list.Item{
		categoryItem{filter: memo.AllCategories(), label: "All", count: len(st.Memos)},
		categoryItem{filter: memo.Uncategorized(), label: "Uncategorized", count: counts[""]},
	}
	for _, name := range st.Categories() {
		cats = append(cats, categoryItem{filter: memo.Named(name), label: name, count: counts[name]})
	}
	m.catList.SetItems(cats)
	for i, it := range cats {
		if it.(categoryItem).filter == st.Selection.Category {
			m.catList.Select(i)
			break
		}
	}

	var items []list.Item
	if m.trashView {
		for _, e := range st.Trash {
			deleted := e.Deleted()
			items = append(items, memoItem{m: e.Memo, deleted: &deleted})
		}
		m.memoList.Title = fmt.Sprintf("Trash (%d)", len(st.Trash))
		m.footer.SetView("trash")
	} else {
		visible := st.Visible(m.opts.CaseSensitive)
		for _, vm := range visible {
			items = append(items, memoItem{m: vm})
		}
		m.memoList.Title = "Memos"
		if st.Selection.Search != "" {
			m.memoList.Title = fmt.Sprintf("Memos matching %q", strings.TrimSpace(st.Selection.Search))
		}
		m.footer.SetView("memos")
	}
	idx := m.memoList.Index()
	m.memoList.SetItems(items)
	if !m.trashView {
		if sel, ok := st.Selection.SelectedID(); ok {
			for i, it := range items {
				if it.(memoItem).m.ID == sel {
					idx = i
					break
				}
			}
		}
	}
	if idx >= len(items) {
		idx = len(items) - 1
	}
	if idx >= 0 {
		m.memoList.Select(idx)
	}
	m.updateFocusHeaders()
	if m.persist != nil {
		m.footer.SetSaving(m.persist.Saving())
	}
}

func (m *Model) currentMemo() (memoItem, bool) {
	if len(m.memoList.Items()) == 0 {
		return memoItem{}, false
	}
	it, ok := m.memoList.SelectedItem().(memoItem)
	return it, ok
}

func (m *Model) currentCategory() (categoryItem, bool) {
	if len(m.catList.Items()) == 0 {
		return categoryItem{}, false
	}
	it, ok := m.catList.SelectedItem().(categoryItem)
	return it, ok
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case tickMsg:
		m.refresh()
		cmds = append(cmds, tick())
	case shutdownMsg:
		return m, m.quit()
	case tea.BlurMsg:
		m.draft.Flush()
		if m.persist != nil {
			m.persist.Flush(persist.ExitHidden)
		}
		m.refresh()
	case tea.FocusMsg:
		m.refresh()
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.quit()
		}
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeConfirm:
			m.handleConfirm(msg)
		case modeEditTitle, modeEditContent:
			cmds = append(cmds, m.handleEdit(msg))
		case modeInput:
			cmds = append(cmds, m.handleInput(msg))
		case modeNormal:
			cmds = append(cmds, m.handleNormal(msg))
		}
	}

	m.syncFooter()
	return m, tea.Batch(cmds...)
}

func (m *Model) handleNormal(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key != "d" {
		m.awaitingDD = false
	}

	switch key {
	case "q":
		return m.quit()
	case "?":
		m.mode = modeHelp
	case ":":
		return m.enterInput(actionCommand, "", "command")

	// pane focus
	case "h", "left":
		m.focus = focusCategories
		m.updateFocusHeaders()
	case "l", "right", "enter":
		if m.focus == focusMemos && key == "enter" {
			return m.startEdit(modeEditTitle)
		}
		m.focus = focusMemos
		m.updateFocusHeaders()
	case "tab":
		m.focus = 1 - m.focus
		m.updateFocusHeaders()

	// movement
	case "j", "down":
		m.move(1)
	case "k", "up":
		m.move(-1)
	case "g":
		m.moveTo(0)
	case "G":
		if m.focus == focusCategories {
			m.moveTo(len(m.catList.Items()) - 1)
		} else {
			m.moveTo(len(m.memoList.Items()) - 1)
		}

	case "/":
		return m.enterInput(actionSearch, m.svc.State().Selection.Search, "search")
	case "t":
		m.draft.Flush()
		m.svc.SetTrashView(!m.trashView)
		m.memoList.Select(0)
		m.refresh()
	case "a":
		return m.enterInput(actionAddCategory, "", "new category")
	}

	if m.focus == focusCategories {
		m.handleCategoryKey(key)
		return nil
	}
	if m.trashView {
		m.handleTrashKey(key)
		return nil
	}
	return m.handleMemoKey(key)
}

func (m *Model) handleMemoKey(key string) tea.Cmd {
	switch key {
	case "n", "o":
		m.draft.Flush()
		// A blank memo never matches a search, so clear it to keep the
		// new memo in the list.
		if m.svc.State().Selection.Search != "" {
			m.svc.SetSearch("")
		}
		created := m.svc.Create(m.svc.State().Selection.Category)
		m.refresh()
		m.footer.SetStatus("Created")
		return m.editMemo(modeEditTitle, created)
	case "i":
		return m.startEdit(modeEditTitle)
	case "e":
		return m.startEdit(modeEditContent)
	case "p":
		if it, ok := m.currentMemo(); ok {
			m.svc.TogglePin(it.m.ID)
			m.refresh()
		}
	case "c":
		if it, ok := m.currentMemo(); ok {
			return m.enterInput(actionMove, it.m.Category, "move to category")
		}
	case "d":
		it, ok := m.currentMemo()
		if !ok {
			return nil
		}
		if m.awaitingDD && time.Since(m.lastDTime) < 600*time.Millisecond {
			m.draft.Flush()
			m.svc.SoftDelete(it.m.ID)
			m.footer.SetStatus(fmt.Sprintf("Trashed %q", it.m.DisplayTitle()))
			m.awaitingDD = false
			m.refresh()
		} else {
			m.awaitingDD = true
			m.lastDTime = time.Now()
		}
	}
	return nil
}

func (m *Model) handleTrashKey(key string) {
	switch key {
	case "r":
		if it, ok := m.currentMemo(); ok {
			m.svc.Restore(it.m.ID)
			m.footer.SetStatus(fmt.Sprintf("Restored %q", it.m.DisplayTitle()))
			m.refresh()
		}
	case "x":
		if it, ok := m.currentMemo(); ok {
			id := it.m.ID
			m.askConfirm(fmt.Sprintf("Permanently delete %q?", it.m.DisplayTitle()), func() string {
				if m.svc.Purge(id) {
					return "Purged"
				}
				return "Already gone"
			})
		}
	case "X":
		m.confirmEmpty()
	}
}

func (m *Model) handleCategoryKey(key string) {
	it, ok := m.currentCategory()
	if !ok || it.filter.Kind != memo.FilterNamed {
		return
	}
	switch key {
	case "D":
		name := it.filter.Name
		m.askConfirm(fmt.Sprintf("Delete category %q? Its memos become uncategorized.", name), func() string {
			moved, _ := m.svc.DeleteCategory(name, "")
			return fmt.Sprintf("Deleted %q, moved %d", name, moved)
		})
	case "J", "K":
		custom := m.svc.State().CustomCategories
		from := -1
		for i, c := range custom {
			if c == it.filter.Name {
				from = i
			}
		}
		to := from + 1
		if key == "K" {
			to = from - 1
		}
		if from < 0 || !m.svc.ReorderCategories(from, to) {
			m.footer.SetStatus("Only declared categories can be reordered")
			return
		}
		m.refresh()
	}
}

func (m *Model) move(delta int) {
	if m.focus == focusCategories {
		m.moveTo(m.catList.Index() + delta)
		return
	}
	m.moveTo(m.memoList.Index() + delta)
}

func (m *Model) moveTo(i int) {
	if m.focus == focusCategories {
		n := len(m.catList.Items())
		if n == 0 || i < 0 || i >= n {
			return
		}
		m.catList.Select(i)
		if it, ok := m.currentCategory(); ok {
			m.draft.Flush()
			m.svc.SelectCategory(it.filter)
			m.memoList.Select(0)
			m.refresh()
		}
		return
	}
	n := len(m.memoList.Items())
	if n == 0 || i < 0 || i >= n {
		return
	}
	m.memoList.Select(i)
	if it, ok := m.currentMemo(); ok && !m.trashView {
		m.draft.Flush()
		m.svc.Select(it.m.ID)
	}
}

func (m *Model) startEdit(md mode) tea.Cmd {
	if m.trashView {
		return nil
	}
	it, ok := m.currentMemo()
	if !ok {
		return nil
	}
	return m.editMemo(md, it.m)
}

// editMemo opens the editor on mm regardless of where the list cursor is.
func (m *Model) editMemo(md mode, mm memo.Memo) tea.Cmd {
	m.editing = mm
	m.mode = md
	m.focus = focusMemos
	m.updateFocusHeaders()
	m.title.SetValue(mm.Title)
	m.title.CursorEnd()
	m.content.SetValue(mm.Content)
	return m.focusEditor()
}

func (m *Model) focusEditor() tea.Cmd {
	if m.mode == modeEditTitle {
		m.content.Blur()
		return m.title.Focus()
	}
	m.title.Blur()
	return m.content.Focus()
}

func (m *Model) handleEdit(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.finishEdit()
		return nil
	case "ctrl+r":
		m.discardEdit()
		return nil
	case "tab":
		if m.mode == modeEditTitle {
			m.mode = modeEditContent
		} else {
			m.mode = modeEditTitle
		}
		return m.focusEditor()
	case "enter":
		if m.mode == modeEditTitle {
			m.mode = modeEditContent
			return m.focusEditor()
		}
	}

	var cmd tea.Cmd
	if m.mode == modeEditTitle {
		m.title, cmd = m.title.Update(msg)
		if v := m.title.Value(); v != m.editing.Title {
			m.editing.Title = v
			m.draft.Edit(m.editing)
		}
		return cmd
	}
	m.content, cmd = m.content.Update(msg)
	if v := m.content.Value(); v != m.editing.Content {
		m.editing.Content = v
		m.draft.Edit(m.editing)
	}
	return cmd
}

// finishEdit is the editor losing focus: the pending edit commits now.
func (m *Model) finishEdit() {
	m.draft.Flush()
	m.title.Blur()
	m.content.Blur()
	m.mode = modeNormal
	m.refresh()
}

// discardEdit drops the edit still waiting for the settle delay and leaves
// the editor. Edits that already settled stay.
func (m *Model) discardEdit() {
	if _, ok := m.draft.Pending(); ok {
		m.draft.Cancel()
		m.footer.SetStatus("Discarded unsaved edit")
	} else {
		m.footer.SetStatus("Nothing to discard")
	}
	m.title.Blur()
	m.content.Blur()
	m.mode = modeNormal
	m.refresh()
}

func (m *Model) enterInput(a action, value, placeholder string) tea.Cmd {
	m.mode = modeInput
	m.action = a
	m.input.Reset()
	m.input.Placeholder = placeholder
	m.input.SetValue(value)
	m.input.CursorEnd()
	switch a {
	case actionCommand:
		m.input.Prompt = ":"
	case actionSearch:
		m.input.Prompt = "/"
	default:
		m.input.Prompt = placeholder + ": "
	}
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) leaveInput() {
	m.mode = modeNormal
	m.action = actionNone
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) handleInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		value := strings.TrimSpace(m.input.Value())
		a := m.action
		m.leaveInput()
		return m.submit(a, value)
	case "esc":
		if m.action == actionSearch {
			m.svc.SetSearch("")
			m.refresh()
		}
		m.leaveInput()
		m.footer.SetStatus("Cancelled")
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	switch m.action {
	case actionSearch:
		m.svc.SetSearch(m.input.Value())
		m.memoList.Select(0)
		m.refresh()
	case actionCommand:
		m.footer.UpdateCommandInput(m.input.Value(), m.input.View())
	}
	return cmd
}

func (m *Model) submit(a action, value string) tea.Cmd {
	switch a {
	case actionSearch:
		m.svc.SetSearch(value)
	case actionAddCategory:
		if m.svc.AddCategory(value) {
			m.footer.SetStatus(fmt.Sprintf("Added %q", value))
		}
	case actionMove:
		if it, ok := m.currentMemo(); ok {
			m.draft.Flush()
			m.svc.ReassignCategory(it.m.ID, value)
			m.footer.SetStatus("Moved")
		}
	case actionCommand:
		return m.runCommand(value)
	}
	m.refresh()
	return nil
}

func (m *Model) runCommand(input string) tea.Cmd {
	name, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)
	switch name {
	case "q", "quit", "exit", "wq":
		return m.quit()
	case "":
	case "new":
		m.focus = focusMemos
		return m.handleMemoKey("n")
	case "trash":
		m.svc.SetTrashView(true)
	case "memos":
		m.svc.SetTrashView(false)
	case "empty":
		m.confirmEmpty()
	case "filter":
		m.svc.SelectCategory(memo.FilterFromFlag(arg))
	case "category":
		if m.svc.AddCategory(arg) {
			m.footer.SetStatus(fmt.Sprintf("Added %q", arg))
		}
	default:
		m.footer.SetStatus(fmt.Sprintf("Unknown command: %s", input))
	}
	m.refresh()
	return nil
}

func (m *Model) confirmEmpty() {
	n := len(m.svc.State().Trash)
	if n == 0 {
		m.footer.SetStatus("Trash is empty")
		return
	}
	m.askConfirm(fmt.Sprintf("Permanently delete %d trashed memos?", n), func() string {
		return fmt.Sprintf("Purged %d", m.svc.EmptyTrash())
	})
}

func (m *Model) askConfirm(prompt string, run func() string) {
	m.confirm = &confirmation{prompt: prompt, run: run}
	m.mode = modeConfirm
}

func (m *Model) handleConfirm(msg tea.KeyMsg) {
	c := m.confirm
	m.confirm = nil
	m.mode = modeNormal
	if c == nil {
		return
	}
	switch msg.String() {
	case "y", "Y":
		m.footer.SetStatus(c.run())
		m.refresh()
	default:
		m.footer.SetStatus("Cancelled")
	}
}

// quit flushes the pending edit and the store before exiting.
func (m *Model) quit() tea.Cmd {
	m.draft.Flush()
	if m.persist != nil {
		m.persist.Flush(persist.ExitUnload)
	}
	return tea.Quit
}

func (m *Model) syncFooter() {
	switch m.mode {
	case modeConfirm:
		m.footer.SetMode(bottombar.ModeConfirm)
		if m.confirm != nil {
			m.footer.SetStatus(m.confirm.prompt)
		}
	case modeInput:
		if m.action == actionCommand {
			m.footer.SetMode(bottombar.ModeCommand)
			m.footer.UpdateCommandInput(m.input.Value(), m.input.View())
		} else {
			m.footer.SetMode(bottombar.ModeSearch)
		}
	case modeEditTitle, modeEditContent:
		m.footer.SetMode(bottombar.ModeEdit)
		m.footer.SetHelp("esc done · tab title/content · ctrl+r discard")
	case modeHelp:
		m.footer.SetMode(bottombar.ModeHelp)
	default:
		m.footer.SetMode(bottombar.ModeNormal)
		if m.trashView {
			m.footer.SetHelp("r restore · x purge · X empty · t memos · q quit")
		} else {
			m.footer.SetHelp(normalHelp)
		}
	}
}

// View renders the category pane, the memo pane with its detail, and the
// footer.
func (m Model) View() string {
	left := m.paneStyle(focusCategories).Render(m.catList.View())
	right := lipgloss.JoinVertical(lipgloss.Left,
		m.paneStyle(focusMemos).Render(m.memoList.View()),
		m.detailView(),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	if m.mode == modeHelp {
		help := "Keys: h/l panes, j/k move, g/G top/bottom, n new, enter/i edit title, e edit content, ctrl+r discard unsaved edit, p pin, dd trash, c move, / search, t trash view, r restore, x purge, X empty, a add category, D delete category, J/K reorder, :q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Width(m.detailWidth()).Render(help)
	}

	footer, _ := m.footer.View()
	if m.mode == modeInput && m.action != actionCommand {
		footer = m.input.View()
	}
	return body + "\n" + footer
}

func (m Model) paneStyle(pane int) lipgloss.Style {
	if m.focus == pane {
		return m.theme.Pane.Focused
	}
	return m.theme.Pane.Blurred
}

func (m Model) detailView() string {
	th := m.theme.Memo
	width := m.detailWidth()

	if m.mode == modeEditTitle || m.mode == modeEditContent {
		return lipgloss.JoinVertical(lipgloss.Left,
			th.Title.Render(m.title.View()),
			m.content.View(),
		)
	}

	it, ok := m.currentMemo()
	if !ok {
		return th.Placeholder.Render("nothing here")
	}

	title := th.Title.Render(truncate.StringWithTail(it.m.DisplayTitle(), uint(width), "…"))
	if it.deleted != nil {
		title = th.Deleted.Render(it.m.DisplayTitle())
	}

	meta := []string{it.m.Created().Local().Format("2006-01-02 15:04")}
	if it.m.Category != "" {
		meta = append(meta, lipgloss.NewStyle().Foreground(theme.CategoryColor(it.m.Category)).Render(it.m.Category))
	}
	if it.m.Pinned {
		meta = append(meta, "pinned")
	}
	if it.deleted != nil {
		meta = append(meta, "deleted "+it.deleted.Local().Format("2006-01-02 15:04"))
	}

	body := th.Placeholder.Render("empty")
	if strings.TrimSpace(it.m.Content) != "" {
		body = th.Body.Render(wordwrap.String(it.m.Content, width))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		th.Meta.Render(strings.Join(meta, " · ")),
		"",
		body,
	)
}

func (m Model) detailWidth() int {
	w := m.memoList.Width()
	if w < 20 {
		return 60
	}
	return w
}

// applySizes recalculates list sizes based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	// Allocate ~1/4 for categories with sensible bounds.
	left := m.termWidth / 4
	if left < 20 {
		left = 20
	}
	if left > 32 {
		left = 32
	}
	// Space for gap and borders
	right := m.termWidth - left - 5
	if right < 20 {
		right = 20
	}
	// Leave room for borders and footer
	height := m.termHeight - 3
	if height < 8 {
		height = 8
	}
	listHeight := height / 2
	m.catList.SetSize(left, height)
	m.memoList.SetSize(right, listHeight)
	m.title.Width = right
	m.content.SetWidth(right)
	m.content.SetHeight(height - listHeight - 4)
}

// updateFocusHeaders updates pane delegates to reflect which pane is focused.
func (m *Model) updateFocusHeaders() {
	if m.focus == focusCategories {
		m.catList.SetDelegate(m.focusDel)
		m.memoList.SetDelegate(m.blurDel)
	} else {
		m.catList.SetDelegate(m.blurDel)
		m.memoList.SetDelegate(m.focusDel)
	}
}

// Run starts the UI and blocks until it exits. Focus reporting is enabled
// so losing the terminal's focus flushes pending edits. Cancelling ctx makes
// the UI save and quit the same way the quit key does.
func Run(ctx context.Context, svc *app.Service, p Flusher, opts Options) error {
	prog := tea.NewProgram(New(svc, p, opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	done := make(chan struct{})
	defer close(done)
	go shutdownOnCancel(ctx, done, prog.Send)

	_, err := prog.Run()
	return err
}

func shutdownOnCancel(ctx context.Context, done <-chan struct{}, send func(tea.Msg)) {
	select {
	case <-ctx.Done():
		send(shutdownMsg{})
	case <-done:
	}
}
