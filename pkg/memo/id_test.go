package memo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllocateIDSkipsTakenIDs(t *testing.T) {
	now := time.UnixMilli(1_700_000_000_000)
	T := now.UnixMilli()
	existing := IDSet{T: {}, T + 1: {}, T + 2: {}}

	assert.Equal(t, T+3, AllocateID(existing, now))
}

func TestAllocateIDUsesClockWhenFree(t *testing.T) {
	now := time.UnixMilli(42)
	assert.Equal(t, int64(42), AllocateID(IDSet{41: {}, 43: {}}, now))
	assert.Equal(t, int64(42), AllocateID(nil, now))
}

func TestIDsOfIncludesTrash(t *testing.T) {
	set := IDsOf([]Memo{{ID: 1}, {ID: 2}}).AddTrash([]TrashEntry{{Memo: Memo{ID: 9}}})
	assert.True(t, set.Has(1))
	assert.True(t, set.Has(9))
	assert.False(t, set.Has(3))
}
