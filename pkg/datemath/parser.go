package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	numericDateRe = regexp.MustCompile(`\b(\d{1,2})[/-](\d{1,2})[/-](\d{4})\b`)
	isoDateRe     = regexp.MustCompile(`\b(\d{4})-(\d{1,2})-(\d{1,2})\b`)
)

// Parser does calendar-date arithmetic in a fixed timezone.
type Parser struct {
	location *time.Location
	order    DateOrder
}

// NewParser creates a new date parser for the given IANA timezone string
// and day/month order used for ambiguous numeric dates.
func NewParser(timezone string, order DateOrder) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	if order == "" {
		order = OrderDMY
	}
	if order != OrderDMY && order != OrderMDY {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDateOrder, order)
	}
	return &Parser{location: loc, order: order}, nil
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// CalendarDate re-anchors a stored date (year, month, day as written) at midnight in
// the parser's timezone without shifting it across a day boundary.
func (p *Parser) CalendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// WeekBounds returns the Monday and Sunday (both start of day) of the week containing t.
func (p *Parser) WeekBounds(t time.Time) (time.Time, time.Time) {
	day := p.StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	monday := day.AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// SameMonth reports whether a and b fall in the same month of the same year.
func (p *Parser) SameMonth(a, b time.Time) bool {
	a, b = a.In(p.location), b.In(p.location)
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// InRange reports whether t's calendar date lies within [from, to] inclusive.
func (p *Parser) InRange(t, from, to time.Time) bool {
	day := p.StartOfDay(t)
	return !day.Before(p.StartOfDay(from)) && !day.After(p.StartOfDay(to))
}

// FindDate looks for an explicit calendar date inside free text.
// ISO YYYY-MM-DD is always read year-month-day. For D/M/Y-shaped dates the parser's
// DateOrder decides, unless one component is above 12 and only one reading is valid.
func (p *Parser) FindDate(text string) (time.Time, bool) {
	if m := isoDateRe.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		if t, ok := p.build(year, month, day); ok {
			return t, true
		}
	}

	m := numericDateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}
	first, _ := strconv.Atoi(m[1])
	second, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])

	day, month := first, second
	if p.order == OrderMDY {
		day, month = second, first
	}
	switch {
	case first > 12 && second <= 12:
		day, month = first, second
	case second > 12 && first <= 12:
		day, month = second, first
	}
	return p.build(year, month, day)
}

// ParseDate parses a stored due date in DateLayout form as a UTC calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

// Label formats a date for user-facing text, e.g. "February 06, 2026".
func (p *Parser) Label(t time.Time) string {
	return t.In(p.location).Format(LabelLayout)
}

func (p *Parser) build(year, month, day int) (time.Time, bool) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
	// time.Date normalizes 31 February into March; reject that.
	if t.Day() != day || int(t.Month()) != month {
		return time.Time{}, false
	}
	return t, true
}
