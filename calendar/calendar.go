// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// KeyLayout is the storage form of a day.
const KeyLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// Clock supplies the current instant.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// Date is a calendar day in a Resolver's zone.
type Date struct {
	Start   time.Time
	Weekday int
}

// Key returns the day as YYYY-MM-DD.
func (d Date) Key() string {
	return d.Start.Format(KeyLayout)
}

func (d Date) String() string {
	return d.Key()
}

type Resolver struct {
	loc   *time.Location
	clock Clock
}

// NewResolver returns a resolver for loc. A nil loc means UTC and a nil
// clock means the system clock.
func NewResolver(loc *time.Location, clock Clock) *Resolver {
	if loc == nil {
		loc = time.UTC
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Resolver{loc: loc, clock: clock}
}

func (r *Resolver) Location() *time.Location {
	return r.loc
}

// Now returns the clock's instant in the resolver's zone.
func (r *Resolver) Now() time.Time {
	return r.clock.Now().In(r.loc)
}

func (r *Resolver) Today() Date {
	return r.Resolve(r.clock.Now())
}

// Resolve maps an instant to the day containing it in the resolver's zone.
func (r *Resolver) Resolve(t time.Time) Date {
	local := t.In(r.loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, r.loc)
	return Date{Start: start, Weekday: int(start.Weekday())}
}

// FromKey rebuilds a Date from its YYYY-MM-DD form.
func (r *Resolver) FromKey(key string) (Date, error) {
	t, err := time.ParseInLocation(KeyLayout, key, r.loc)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, key)
	}
	return r.Resolve(t), nil
}

// isoShape matches inputs that claim to be ISO-8601 dates or date-times:
// YYYY-MM, YYYY-MM-DD, optionally followed by a time part.
var isoShape = regexp.MustCompile(`^[0-9]{4}-[0-9]{1,2}(-[0-9]{1,2})?([T ].*)?$`)

// isoLayouts are tried in order for inputs with the ISO shape. Forms
// without an offset are read in the resolver's zone.
var isoLayouts = []string{
	time.RFC3339Nano,
	KeyLayout,
	"2006-1-2",
	"2006-01",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// Parse resolves a client-supplied date.
//
// ISO-8601 input is parsed strictly: an impossible date such as
// 2025-02-30 is ErrInvalidDate rather than a neighbouring day. Four and
// eight digit numbers are an ISO year and basic date; longer numbers are
// epoch milliseconds. Anything else goes through natural-language parsing.
func (r *Resolver) Parse(input string) (Date, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") || strings.EqualFold(input, "today") {
		return r.Today(), nil
	}

	if isoShape.MatchString(input) {
		for _, layout := range isoLayouts {
			if t, err := time.ParseInLocation(layout, input, r.loc); err == nil {
				return r.Resolve(t), nil
			}
		}
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}

	if isDigits(input) {
		return r.parseNumeric(input)
	}

	cfg := &dateparser.Configuration{
		CurrentTime: r.Now(),
	}
	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}
	return r.Resolve(result.Time), nil
}

func (r *Resolver) parseNumeric(input string) (Date, error) {
	var layout string
	switch len(input) {
	case 4:
		layout = "2006"
	case 8:
		layout = "20060102"
	}
	if layout != "" {
		t, err := time.ParseInLocation(layout, input, r.loc)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
		}
		return r.Resolve(t), nil
	}

	ms, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}
	return r.Resolve(time.UnixMilli(ms)), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
