package memo

import (
	"fmt"
	"strings"
)

// FilterKind tags the three category filter cases.
type FilterKind int

const (
	// FilterAll matches every memo.
	FilterAll FilterKind = iota
	// FilterUncategorized matches memos with an empty category.
	FilterUncategorized
	// FilterNamed matches memos whose category equals Name.
	FilterNamed
)

// uncategorizedToken is the persisted form of FilterUncategorized. The
// match-all filter persists as the empty string.
const uncategorizedToken = "__uncategorized__"

// CategoryFilter selects which memos are visible by category.
type CategoryFilter struct {
	Kind FilterKind
	Name string
}

// AllCategories matches every memo.
func AllCategories() CategoryFilter {
	return CategoryFilter{Kind: FilterAll}
}

// Uncategorized matches memos without a category.
func Uncategorized() CategoryFilter {
	return CategoryFilter{Kind: FilterUncategorized}
}

// Named matches memos in the given category. An empty name is the same as
// Uncategorized.
func Named(name string) CategoryFilter {
	if name == "" {
		return Uncategorized()
	}
	return CategoryFilter{Kind: FilterNamed, Name: name}
}

// ParseCategoryFilter decodes the persisted form produced by Encode.
func ParseCategoryFilter(s string) CategoryFilter {
	switch s {
	case "":
		return AllCategories()
	case uncategorizedToken:
		return Uncategorized()
	default:
		return Named(s)
	}
}

// Encode returns the raw string stored for the filter.
func (f CategoryFilter) Encode() string {
	switch f.Kind {
	case FilterUncategorized:
		return uncategorizedToken
	case FilterNamed:
		return f.Name
	default:
		return ""
	}
}

// Matches reports whether m passes the filter.
func (f CategoryFilter) Matches(m Memo) bool {
	switch f.Kind {
	case FilterUncategorized:
		return m.Category == ""
	case FilterNamed:
		return m.Category == f.Name
	default:
		return true
	}
}

// Resolve returns the category a memo created under this filter gets.
func (f CategoryFilter) Resolve() string {
	if f.Kind == FilterNamed {
		return f.Name
	}
	return ""
}

// IsNamed reports whether the filter selects exactly the category name.
func (f CategoryFilter) IsNamed(name string) bool {
	return f.Kind == FilterNamed && f.Name == name
}

func (f CategoryFilter) String() string {
	switch f.Kind {
	case FilterUncategorized:
		return "uncategorized"
	case FilterNamed:
		return fmt.Sprintf("category %q", f.Name)
	default:
		return "all"
	}
}

// FilterFromFlag turns user input into a filter: "all" and "" match all,
// "none" and "uncategorized" match uncategorized, anything else is a name.
func FilterFromFlag(s string) CategoryFilter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return AllCategories()
	case "none", "uncategorized":
		return Uncategorized()
	default:
		return Named(strings.TrimSpace(s))
	}
}
