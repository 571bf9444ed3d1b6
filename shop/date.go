package shop

import (
	"cmp"
	"fmt"
	"time"

	"go.llib.dev/shopquery/port/predicate"
)

const DateLayout = "2006-01-02"

// Date is a calendar date without a time component.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

var _ predicate.Comparable[Date] = Date{}

// NewDate normalises its arguments the way time.Date does, so NewDate(2021, 2, 29) is 2021-03-01.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func ParseDate(raw string) (Date, error) {
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", raw, err)
	}
	return DateOf(t), nil
}

func MustParseDate(raw string) Date {
	d, err := ParseDate(raw)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) Compare(oth Date) int {
	if c := cmp.Compare(d.Year, oth.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(d.Month, oth.Month); c != 0 {
		return c
	}
	return cmp.Compare(d.Day, oth.Day)
}

func (d Date) Before(oth Date) bool { return d.Compare(oth) < 0 }

func (d Date) After(oth Date) bool { return 0 < d.Compare(oth) }

func (d Date) Equal(oth Date) bool { return d == oth }

// Between reports whether the date falls into the closed interval [from, to].
func (d Date) Between(from, to Date) bool {
	return 0 <= d.Compare(from) && d.Compare(to) <= 0
}

func (d Date) IsZero() bool { return d == Date{} }

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	v, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
