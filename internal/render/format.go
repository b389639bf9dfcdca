package render

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mrussa/orderview/internal/order"
)

// LocaleLayout is the default en-US date-time rendering, e.g. "11/14/2023, 10:13:20 PM".
const LocaleLayout = "1/2/2006, 3:04:05 PM"

const invalidDate = "Invalid Date"

// Zoned layouts are parsed as-is, local ones in the display location.
var (
	zonedLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04Z07:00"}
	localLayouts = []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04", "2006-01-02 15:04:05"}
)

// Money renders minor units as dollars with exactly two decimals.
func Money(minor int64) string {
	return fmt.Sprintf("$%.2f", float64(minor)/100)
}

func Sale(pct int64) string {
	return strconv.FormatInt(pct, 10) + "%"
}

func Address(d order.Delivery) string {
	return d.City + ", " + d.Address + ", " + d.Region + " " + d.Zip
}

// Clock formats timestamps in a fixed display location.
type Clock struct {
	loc *time.Location
}

func NewClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return Clock{loc: loc}
}

// Created parses the textual creation timestamp. Unparsable input renders as
// "Invalid Date" rather than failing the whole order.
func (c Clock) Created(s string) string {
	t, ok := c.parse(s)
	if !ok {
		return invalidDate
	}
	return t.In(c.loc).Format(LocaleLayout)
}

// Paid renders payment_dt, which is stored in epoch seconds.
func (c Clock) Paid(sec int64) string {
	return time.UnixMilli(sec * 1000).In(c.loc).Format(LocaleLayout)
}

func (c Clock) parse(s string) (time.Time, bool) {
	for _, l := range zonedLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	for _, l := range localLayouts {
		if t, err := time.ParseInLocation(l, s, c.loc); err == nil {
			return t, true
		}
	}
	// date-only forms are UTC
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}
