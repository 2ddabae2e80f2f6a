package domain

import (
	"fmt"
	"strings"
	"time"
)

// LocalTime is a timestamp without a timezone, as stored in the order
// collection ("2024-01-01T10:30:00"). No timezone conversion is performed
// anywhere: the nominal local clock value is used as-is for date and hour
// derivations.
type LocalTime struct {
	time.Time
}

const localTimeLayout = "2006-01-02T15:04:05"

// Accepted on input, in order. The first layout is the canonical output form.
var localTimeLayouts = []string{
	localTimeLayout,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseLocalTime parses a naive timestamp in any of the accepted layouts.
func ParseLocalTime(s string) (LocalTime, error) {
	for _, layout := range localTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return LocalTime{Time: t}, nil
		}
	}
	return LocalTime{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// ParseLocalDate parses a bare calendar date ("2006-01-02").
func ParseLocalDate(s string) (LocalTime, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return LocalTime{}, fmt.Errorf("unrecognized date %q", s)
	}
	return LocalTime{Time: t}, nil
}

// Date returns the calendar date portion, the grouping key for all daily
// aggregates.
func (t LocalTime) Date() string { return t.Format("2006-01-02") }

// EndOfDay returns 23:59:59 of the same calendar date. End-date filter
// bounds are inclusive through end of day, not midnight.
func (t LocalTime) EndOfDay() LocalTime {
	y, m, d := t.Time.Date()
	return LocalTime{Time: time.Date(y, m, d, 23, 59, 59, 0, t.Location())}
}

func (t LocalTime) String() string { return t.Format(localTimeLayout) }

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(localTimeLayout) + `"`), nil
}

func (t *LocalTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		return nil
	}
	parsed, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
