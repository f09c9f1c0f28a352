package options

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/memo/pkg/memo"
)

func TestParseIDs(t *testing.T) {
	ids, err := ParseIDs([]string{"12", " 7 "})
	require.NoError(t, err)
	assert.Equal(t, []int64{12, 7}, ids)

	_, err = ParseIDs([]string{"12", "nope"})
	assert.Error(t, err)

	_, err = ParseID("-3")
	assert.Error(t, err)
}

func TestCategoryOnlyWhenChanged(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	o := &CategoryOptions{}
	AddCategoryArg(cmd, o)
	assert.Nil(t, o.Get())

	require.NoError(t, cmd.Flags().Parse([]string{"--category", ""}))
	got := o.Get()
	require.NotNil(t, got)
	assert.Equal(t, "", *got)
}

func TestFilter(t *testing.T) {
	cases := map[string]memo.CategoryFilter{
		"all":  memo.AllCategories(),
		"none": memo.Uncategorized(),
		"work": memo.Named("work"),
	}
	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			cmd := &cobra.Command{Use: "x"}
			o := &FilterOptions{}
			AddFilterArg(cmd, o)
			require.NoError(t, cmd.Flags().Parse([]string{"--filter", in}))
			got := o.Get()
			require.NotNil(t, got)
			assert.Equal(t, want, *got)
		})
	}
}

func TestSearch(t *testing.T) {
	cmd := &cobra.Command{Use: "x"}
	o := &SearchOptions{}
	AddSearchArgs(cmd, o)
	assert.Nil(t, o.Get())

	require.NoError(t, cmd.Flags().Parse([]string{"-s", "milk", "--case-sensitive"}))
	require.NotNil(t, o.Get())
	assert.Equal(t, "milk", *o.Get())
	assert.True(t, o.CaseSensitive)
}

func TestGetMonth(t *testing.T) {
	now := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

	o := &MonthOptions{}
	got, err := o.GetMonth(now)
	require.NoError(t, err)
	assert.Nil(t, got)

	o.MonthString = "2026-02"
	got, err = o.GetMonth(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), *got)

	o.MonthString = "3"
	got, err = o.GetMonth(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), *got)

	o.MonthString = "march"
	_, err = o.GetMonth(now)
	assert.Error(t, err)
}
