package app

import (
	"strings"

	"tableflip.dev/memo/pkg/memo"
)

// CategoryRegistry holds the categories the user declared explicitly. The
// effective set also includes every category used by a memo.
type CategoryRegistry struct {
	custom []string
}

// NewCategoryRegistry adopts custom, trimming names and dropping blanks and
// duplicates.
func NewCategoryRegistry(custom []string) *CategoryRegistry {
	r := &CategoryRegistry{}
	for _, name := range custom {
		r.Add(name)
	}
	return r
}

// Custom returns a copy of the declared categories in order.
func (r *CategoryRegistry) Custom() []string {
	return append([]string(nil), r.custom...)
}

// Add declares a category. Blank names and names already declared are
// ignored.
func (r *CategoryRegistry) Add(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" || r.index(name) >= 0 {
		return false
	}
	r.custom = append(r.custom, name)
	return true
}

// Remove forgets a declared category. Memos using it are not touched.
func (r *CategoryRegistry) Remove(name string) bool {
	i := r.index(name)
	if i < 0 {
		return false
	}
	r.custom = append(r.custom[:i:i], r.custom[i+1:]...)
	return true
}

// Reorder moves the entry at from to to, splice style: remove first, then
// insert at to in the shortened list.
func (r *CategoryRegistry) Reorder(from, to int) bool {
	n := len(r.custom)
	if from == to || from < 0 || from >= n || to < 0 || to >= n {
		return false
	}
	name := r.custom[from]
	rest := append(r.custom[:from:from], r.custom[from+1:]...)
	out := make([]string, 0, n)
	out = append(out, rest[:to]...)
	out = append(out, name)
	out = append(out, rest[to:]...)
	r.custom = out
	return true
}

// ListEffective returns categories used by memos in first-seen order,
// followed by declared categories not already listed.
func (r *CategoryRegistry) ListEffective(memos []memo.Memo) []string {
	return EffectiveCategories(memos, r.custom)
}

// EffectiveCategories is ListEffective for an arbitrary custom list.
func EffectiveCategories(memos []memo.Memo, custom []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	add := func(c string) {
		if c == "" {
			return
		}
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	for _, m := range memos {
		add(m.Category)
	}
	for _, c := range custom {
		add(c)
	}
	return out
}

// CategoryCounts counts memos per category, "" included.
func CategoryCounts(memos []memo.Memo) map[string]int {
	counts := make(map[string]int)
	for _, m := range memos {
		counts[m.Category]++
	}
	return counts
}

func (r *CategoryRegistry) index(name string) int {
	for i, c := range r.custom {
		if c == name {
			return i
		}
	}
	return -1
}
