package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutMonth      = "2006-01"
	layoutMonthShort = "1"
)

// MonthOptions
type MonthOptions struct {
	MonthString string
}

func AddMonthArg(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.MonthString, "month", "",
		`Show a calendar for a month, example: --month="2026-02" or --month="2".`)
}

// GetMonth returns the first day of the requested month, or nil when the
// flag is unset.
func (o *MonthOptions) GetMonth(now time.Time) (*time.Time, error) {
	if o.MonthString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutMonth, o.MonthString, now.Location())
	if err != nil {
		// Let the year be the same.
		short, serr := time.ParseInLocation(layoutMonthShort, o.MonthString, now.Location())
		if serr != nil {
			return nil, fmt.Errorf("invalid month %q, expected YYYY-MM or M", o.MonthString)
		}
		t = time.Date(now.Year(), short.Month(), 1, 0, 0, 0, 0, now.Location())
	}
	return &t, nil
}
