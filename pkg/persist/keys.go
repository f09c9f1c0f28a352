package persist

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/memo/pkg/app"
	"tableflip.dev/memo/pkg/memo"
)

// Keys the snapshot is written under.
const (
	KeyMemos            = "memos"
	KeyTrash            = "trash"
	KeySelectedMemoID   = "selectedMemoId"
	KeySelectedCategory = "selectedCategory"
	KeyCustomCategories = "customCategories"
)

// Keys lists every snapshot key in write order.
var Keys = []string{
	KeyMemos,
	KeyTrash,
	KeySelectedMemoID,
	KeySelectedCategory,
	KeyCustomCategories,
}

const nullID = "null"

type record struct {
	key   string
	value string
}

// encode renders st as one value per key. Memos and trash are de-duplicated
// first.
func encode(st app.State) ([]record, error) {
	memos, err := json.Marshal(nonNil(memo.DedupeMemos(st.Memos)))
	if err != nil {
		return nil, err
	}
	trash, err := json.Marshal(nonNil(memo.DedupeTrash(st.Trash)))
	if err != nil {
		return nil, err
	}
	custom, err := json.Marshal(nonNil(st.CustomCategories))
	if err != nil {
		return nil, err
	}
	selected := nullID
	if id, ok := st.Selection.SelectedID(); ok {
		selected = strconv.FormatInt(id, 10)
	}
	return []record{
		{KeyMemos, string(memos)},
		{KeyTrash, string(trash)},
		{KeySelectedMemoID, selected},
		{KeySelectedCategory, st.Selection.Category.Encode()},
		{KeyCustomCategories, string(custom)},
	}, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// decodeMemos parses the memos value. Anything unusable, including an empty
// list, yields a single blank memo.
func decodeMemos(raw string, ok bool, now time.Time) ([]memo.Memo, bool) {
	var memos []memo.Memo
	if ok {
		if err := json.Unmarshal([]byte(raw), &memos); err == nil && len(memos) > 0 {
			return memo.DedupeMemos(memos), true
		}
	}
	return []memo.Memo{memo.New(memo.AllocateID(nil, now), "")}, false
}

func decodeTrash(raw string, ok bool) ([]memo.TrashEntry, bool) {
	if !ok {
		return nil, false
	}
	var entries []memo.TrashEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil, false
	}
	return memo.DedupeTrash(entries), true
}

func decodeSelectedID(raw string, ok bool) (*int64, bool) {
	if !ok {
		return nil, false
	}
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}

func decodeCategory(raw string, ok bool) memo.CategoryFilter {
	if !ok {
		return memo.AllCategories()
	}
	return memo.ParseCategoryFilter(raw)
}

func decodeCustomCategories(raw string, ok bool) ([]string, bool) {
	if !ok {
		return nil, false
	}
	var custom []string
	if err := json.Unmarshal([]byte(raw), &custom); err != nil {
		return nil, false
	}
	return custom, true
}

// Count reports the number of elements in a stored JSON list value.
func Count(raw string) (int, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return 0, false
	}
	return len(items), true
}
