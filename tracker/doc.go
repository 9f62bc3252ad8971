// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tracker implements habit creation, daily completion and history.

	svc := tracker.NewService(st, resolver)

# Habits

CreateHabit takes a title and the weekdays (0 = Sunday .. 6 = Saturday)
the habit repeats on. Duplicate weekdays collapse; out-of-range ones are
rejected with ErrValidation. A habit is due on a date when the date's
weekday is one of its weekdays and the habit existed by then.

# Completion

Toggle flips today's completion for one habit. The Day row for today is
created on the first completion and never removed. Unknown habits fail
with ErrNotFound before anything is written.

# History

Summary returns, per stored day, the completed count and the number of
habits that were due, using the same due rule as DueHabits.

# Errors

	ErrValidation  malformed input (400)
	ErrNotFound    unknown habit (404)

Anything else is a storage failure.
*/
package tracker
