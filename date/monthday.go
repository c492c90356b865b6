package date

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var monthDayRE = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})$`)

// MonthDay is a recurring yearly date, like a card anniversary. The zero
// value means "not set".
type MonthDay struct {
	m time.Month
	d int
}

// NewMonthDay returns the MonthDay for the given month and day.
func NewMonthDay(month time.Month, day int) MonthDay { return MonthDay{month, day} }

// ParseMonthDay parses the "MM-DD" form (a single digit month or day is
// accepted).
func ParseMonthDay(str string) (MonthDay, error) {
	matches := monthDayRE.FindStringSubmatch(str)
	if matches == nil {
		return MonthDay{}, fmt.Errorf("invalid month-day %q want format \"MM-DD\"", str)
	}
	m, _ := strconv.Atoi(matches[1])
	d, _ := strconv.Atoi(matches[2])
	if m < 1 || m > 12 {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: month %d out of range", str, m)
	}
	if d < 1 || d > 31 {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: day %d out of range", str, d)
	}
	return MonthDay{time.Month(m), d}, nil
}

// MustParseMonthDay parses the "MM-DD" form and panics on error. Reserved
// for hardcoded values.
func MustParseMonthDay(str string) MonthDay {
	md, err := ParseMonthDay(str)
	if err != nil {
		panic(err)
	}
	return md
}

// IsZero reports whether the month-day is not set.
func (md MonthDay) IsZero() bool { return md == MonthDay{} }

// Month returns the month part.
func (md MonthDay) Month() time.Month { return md.m }

// Day returns the day part.
func (md MonthDay) Day() int { return md.d }

// On returns the date of this month-day in the given year.
func (md MonthDay) On(year int) Date { return New(year, md.m, md.d) }

// String formats the month-day in its "MM-DD" storage form.
func (md MonthDay) String() string { return fmt.Sprintf("%02d-%02d", int(md.m), md.d) }

// Display formats the month-day for humans, like "Mar 15".
func (md MonthDay) Display() string { return fmt.Sprintf("%s %d", md.m.String()[:3], md.d) }

func (md MonthDay) MarshalJSON() ([]byte, error) {
	str := md.String()
	return json.Marshal(&str)
}

func (md *MonthDay) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseMonthDay(str)
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}

var _ json.Marshaler = (*MonthDay)(nil)
var _ json.Unmarshaler = (*MonthDay)(nil)
