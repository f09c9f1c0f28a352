package app

import "tableflip.dev/memo/pkg/memo"

// State is a detached copy of everything the Service owns. Commit hooks and
// readers get a State; mutating it has no effect on the Service.
type State struct {
	Memos            []memo.Memo
	Trash            []memo.TrashEntry
	CustomCategories []string
	Selection        Selection
}

// Selected returns the selected live memo.
func (s State) Selected() (memo.Memo, bool) {
	id, ok := s.Selection.SelectedID()
	if !ok {
		return memo.Memo{}, false
	}
	for _, m := range s.Memos {
		if m.ID == id {
			return m, true
		}
	}
	return memo.Memo{}, false
}

// Categories is the effective category list.
func (s State) Categories() []string {
	return EffectiveCategories(s.Memos, s.CustomCategories)
}

// Counts is the per-category memo count.
func (s State) Counts() map[string]int {
	return CategoryCounts(s.Memos)
}

// Visible is the filtered, sorted memo list for the current selection.
func (s State) Visible(caseSensitive bool) []memo.Memo {
	return memo.Visible(s.Memos, memo.Query{
		Filter:        s.Selection.Category,
		Search:        s.Selection.Search,
		CaseSensitive: caseSensitive,
	})
}

// CategorySummary is one effective category with its memo count. Declared
// categories also carry their position in the declared list.
type CategorySummary struct {
	Name     string `json:"name"`
	Count    int    `json:"count"`
	Declared bool   `json:"declared"`
	Position int    `json:"position,omitempty"`
}

// Summaries describes every effective category in display order.
func (s State) Summaries() []CategorySummary {
	pos := make(map[string]int, len(s.CustomCategories))
	for i, name := range s.CustomCategories {
		pos[name] = i
	}
	counts := s.Counts()
	names := s.Categories()
	out := make([]CategorySummary, 0, len(names))
	for _, name := range names {
		i, ok := pos[name]
		out = append(out, CategorySummary{Name: name, Count: counts[name], Declared: ok, Position: i})
	}
	return out
}
