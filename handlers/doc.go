// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the habits API.

HabitHandler wraps a tracker.Service:

	habitHandler := handlers.NewHabitHandler(svc)

# Endpoints

	POST  /habits             → CreateHabit (returns id)
	GET   /habits             → ListHabits
	GET   /habits/{id}        → GetHabit
	PATCH /habits/{id}/toggle → ToggleHabit (today only)
	GET   /day?date=...       → GetDay (possibleHabits, completedHabits)
	GET   /summary            → GetSummary

# Errors

Validation failures and unparsable dates return 400, unknown habits 404.
Any other failure is logged and returned as 500 "Database error".
*/
package handlers
