// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/habits/calendar"
	"github.com/danielhkuo/habits/ids"
	"github.com/danielhkuo/habits/models"
	"github.com/danielhkuo/habits/store"
)

// DayStatus is what a client sees for one date.
type DayStatus struct {
	Date calendar.Date
	// Possible lists the habits due on Date.
	Possible []models.Habit
	// Completed holds ids of habits marked complete on Date.
	Completed []string
}

// CreateHabit validates and stores a habit. It becomes due from today.
func (s *Service) CreateHabit(ctx context.Context, title string, weekDays []int) (models.Habit, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Habit{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if utf8.RuneCountInString(title) > models.MaxTitleLength {
		return models.Habit{}, fmt.Errorf("%w: title must be at most %d characters", ErrValidation, models.MaxTitleLength)
	}

	days, err := normalizeWeekDays(weekDays)
	if err != nil {
		return models.Habit{}, err
	}

	today := s.resolver.Today()
	id, err := s.store.CreateHabit(ctx, title, today, days)
	if err != nil {
		return models.Habit{}, err
	}

	return models.Habit{
		ID:        id,
		Title:     title,
		CreatedAt: today.Start,
		WeekDays:  days,
	}, nil
}

// normalizeWeekDays range-checks, de-duplicates and sorts weekdays.
func normalizeWeekDays(weekDays []int) ([]int, error) {
	if len(weekDays) == 0 {
		return nil, fmt.Errorf("%w: weekDays must contain at least one day", ErrValidation)
	}

	seen := make(map[int]bool, len(weekDays))
	days := make([]int, 0, len(weekDays))
	for _, wd := range weekDays {
		if wd < models.MinWeekDay || wd > models.MaxWeekDay {
			return nil, fmt.Errorf("%w: week day %d must be between %d and %d",
				ErrValidation, wd, models.MinWeekDay, models.MaxWeekDay)
		}
		if seen[wd] {
			continue
		}
		seen[wd] = true
		days = append(days, wd)
	}
	sort.Ints(days)
	return days, nil
}

func (s *Service) GetHabit(ctx context.Context, habitID string) (models.Habit, error) {
	id, err := ids.Parse(habitID)
	if err != nil {
		return models.Habit{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	h, err := s.store.GetHabit(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.Habit{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return h, err
}

func (s *Service) ListHabits(ctx context.Context) ([]models.Habit, error) {
	return s.store.ListHabits(ctx)
}

// DueHabits lists habits created on or before date whose weekdays include
// date's weekday.
func (s *Service) DueHabits(ctx context.Context, date calendar.Date) ([]models.Habit, error) {
	return s.store.FindHabitsDueOn(ctx, date)
}

// Day reports the due habits for date and which of them were completed.
func (s *Service) Day(ctx context.Context, date calendar.Date) (DayStatus, error) {
	status := DayStatus{Date: date, Completed: []string{}}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		possible, err := s.store.FindHabitsDueOn(gctx, date)
		if err != nil {
			return err
		}
		status.Possible = possible
		return nil
	})

	var completed []string
	g.Go(func() error {
		day, err := s.store.FindDayByDate(gctx, date)
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		for _, dh := range day.DayHabits {
			completed = append(completed, dh.HabitID)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return DayStatus{}, err
	}
	if completed != nil {
		status.Completed = completed
	}
	return status, nil
}
