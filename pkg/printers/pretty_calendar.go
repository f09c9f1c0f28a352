package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/memo/pkg/memo"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints the month containing then, highlighting days a memo was
// created on.
func (pp *PrettyPrint) Month(then time.Time, memos ...memo.Memo) {
	days := DaysIn(then)

	count := make([]int, days)

	for _, m := range memos {
		c := m.Created().In(then.Location())
		if c.Year() == then.Year() && c.Month() == then.Month() {
			count[c.Day()-1]++
		}
	}

	pp.MonthCount(then, count)
}

// MonthCount prints a month grid; days with a non-zero count are bold.
func (pp *PrettyPrint) MonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	_, _ = fmt.Fprint(pp.out(), strings.Repeat("   ", int(d)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(pp.out(), "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(pp.out(), "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprintln(pp.out(), "")
		}
	}
	if d != time.Sunday {
		_, _ = fmt.Fprintln(pp.out(), "")
	}
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, then.Location()).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, then.Location()).Weekday()
}
