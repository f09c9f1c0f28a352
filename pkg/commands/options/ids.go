package options

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseID reads a memo id as printed by --show-id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid memo id %q", s)
	}
	return id, nil
}

// ParseIDs reads every argument as a memo id.
func ParseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := ParseID(a)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
