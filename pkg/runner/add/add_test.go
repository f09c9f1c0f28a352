package add

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/memo/pkg/memo"
	"tableflip.dev/memo/pkg/runner/session"
	"tableflip.dev/memo/pkg/store"
)

func init() {
	color.NoColor = true
}

func TestAddUsesActiveFilter(t *testing.T) {
	s := session.New(store.NewMemory(), nil, nil)
	s.Service.SelectCategory(memo.Named("Work"))

	buf := &bytes.Buffer{}
	a := &Add{Session: s, Title: "standup", Pin: true, Out: buf}
	require.NoError(t, a.Do(context.Background()))

	m, ok := s.Service.Selected()
	require.True(t, ok)
	assert.Equal(t, "standup", m.Title)
	assert.Equal(t, "Work", m.Category)
	assert.True(t, m.Pinned)
	assert.Contains(t, buf.String(), "standup")
}

func TestAddCategoryOverride(t *testing.T) {
	s := session.New(store.NewMemory(), nil, nil)
	s.Service.SelectCategory(memo.Uncategorized())

	cat := "Home"
	buf := &bytes.Buffer{}
	a := &Add{Session: s, Category: &cat, JSON: true, Out: buf}
	require.NoError(t, a.Do(context.Background()))

	var got memo.Memo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "Home", got.Category)
	assert.Equal(t, "", got.Title)
}

func TestAddRequiresSession(t *testing.T) {
	assert.Error(t, (&Add{}).Do(context.Background()))
}
