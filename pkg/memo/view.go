package memo

import (
	"sort"
	"strings"
)

// Query describes the derived, filtered view of the memo list.
type Query struct {
	Filter        CategoryFilter
	Search        string
	CaseSensitive bool
}

// MatchesSearch reports whether the query occurs in the title or content.
// The query is trimmed first; an empty query matches everything.
func MatchesSearch(m Memo, query string, caseSensitive bool) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return true
	}
	title, content := m.Title, m.Content
	if !caseSensitive {
		q = strings.ToLower(q)
		title = strings.ToLower(title)
		content = strings.ToLower(content)
	}
	return strings.Contains(title, q) || strings.Contains(content, q)
}

// Visible filters memos by q and orders them pinned first, then newest id
// first. The input slice is not modified.
func Visible(memos []Memo, q Query) []Memo {
	out := make([]Memo, 0, len(memos))
	for _, m := range memos {
		if q.Filter.Matches(m) && MatchesSearch(m, q.Search, q.CaseSensitive) {
			out = append(out, m)
		}
	}
	SortMemos(out)
	return out
}

// SortMemos orders memos pinned first, then by id descending.
func SortMemos(memos []Memo) {
	sort.SliceStable(memos, func(i, j int) bool {
		if memos[i].Pinned != memos[j].Pinned {
			return memos[i].Pinned
		}
		return memos[i].ID > memos[j].ID
	})
}
