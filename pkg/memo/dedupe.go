package memo

// DedupeByID keeps the first occurrence of every id and drops the rest,
// preserving the relative order of what is kept.
func DedupeByID[T any](items []T, id func(T) int64) []T {
	seen := make(map[int64]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := id(item)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, item)
	}
	return out
}

// DedupeMemos is DedupeByID for memos.
func DedupeMemos(memos []Memo) []Memo {
	return DedupeByID(memos, func(m Memo) int64 { return m.ID })
}

// DedupeTrash is DedupeByID for trash entries.
func DedupeTrash(entries []TrashEntry) []TrashEntry {
	return DedupeByID(entries, func(e TrashEntry) int64 { return e.ID })
}
