// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package calendar resolves timestamps to calendar days.

# Resolver

A Resolver is bound to one time zone and one clock:

	res := calendar.NewResolver(loc, calendar.SystemClock{})
	today := res.Today()

Every timestamp is converted into the resolver's zone before it is
truncated to midnight, so the weekday of a day never depends on the
host's local time.

# Dates

Date carries the start-of-day instant and its weekday index:

	d, err := res.Parse("2025-03-10")
	d.Key()     // "2025-03-10"
	d.Weekday   // 1 (Monday)

Weekdays count from Sunday = 0 to Saturday = 6.

# Parsing

Parse accepts RFC 3339 timestamps, YYYY-MM-DD dates, epoch
milliseconds and natural-language expressions ("yesterday",
"last monday"). Anything else fails with ErrInvalidDate.
*/
package calendar
