// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateHabitRequest: title, weekDays

# Response Types

Types for JSON responses:

  - CreateHabitResponse: id
  - DayResponse: possibleHabits, completedHabits
  - ToggleHabitResponse: habit_id, date, completed
  - ErrorResponse: error, message

# Domain Types

  - Habit: a recurring task and its weekdays
  - Day: a date on which at least one habit was ever completed
  - DayHabit: completion of one habit on one day
  - SummaryDay: completed vs. due counts for a day

# Constants

Weekday range (Sunday = 0):

	MinWeekDay = 0
	MaxWeekDay = 6

Title limit:

	MaxTitleLength = 200
*/
package models
