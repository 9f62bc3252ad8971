// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/danielhkuo/habits/calendar"
	"github.com/danielhkuo/habits/models"
)

var ErrNotFound = errors.New("not found")

// Store is the persistence boundary for habits, days and completions.
type Store interface {
	// CreateHabit stores a habit and its weekdays atomically and returns its id.
	CreateHabit(ctx context.Context, title string, createdAt calendar.Date, weekDays []int) (string, error)
	GetHabit(ctx context.Context, id string) (models.Habit, error)
	ListHabits(ctx context.Context) ([]models.Habit, error)
	// LockHabit fails with ErrNotFound for unknown ids. Inside InTx it also
	// holds the habit's row until the transaction ends, where the backend
	// supports row locks.
	LockHabit(ctx context.Context, id string) error

	// FindHabitsDueOn lists habits created on or before date that have a
	// weekday membership matching date.
	FindHabitsDueOn(ctx context.Context, date calendar.Date) ([]models.Habit, error)

	// FindDayByDate returns the day with its completions, or ErrNotFound.
	FindDayByDate(ctx context.Context, date calendar.Date) (models.Day, error)
	// CreateDay returns the day for date, inserting it if needed.
	CreateDay(ctx context.Context, date calendar.Date) (models.Day, error)

	FindDayHabit(ctx context.Context, dayID, habitID string) (models.DayHabit, error)
	CreateDayHabit(ctx context.Context, dayID, habitID string) (models.DayHabit, error)
	DeleteDayHabit(ctx context.Context, id string) error

	// AggregateSummary reports, for every stored day in date order, how many
	// habits were completed and how many were due.
	AggregateSummary(ctx context.Context) ([]models.SummaryDay, error)

	// InTx runs fn against a Store bound to a single transaction. fn's
	// error rolls the transaction back.
	InTx(ctx context.Context, fn func(Store) error) error
}
