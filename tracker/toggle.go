// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tracker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/danielhkuo/habits/calendar"
	"github.com/danielhkuo/habits/ids"
	"github.com/danielhkuo/habits/store"
)

type ToggleResult struct {
	HabitID   string
	Date      calendar.Date
	Completed bool
}

// Toggle flips a habit's completion for today. Only today can be toggled.
//
// Concurrent calls for the same habit share one execution and all receive
// its result, so a burst of toggles from one process changes state once.
func (s *Service) Toggle(ctx context.Context, habitID string) (ToggleResult, error) {
	id, err := ids.Parse(habitID)
	if err != nil {
		return ToggleResult{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	today := s.resolver.Today()
	key := today.Key() + "|" + id

	v, err, shared := s.toggles.Do(key, func() (any, error) {
		// Detached so one caller giving up does not fail the others.
		return s.toggle(context.WithoutCancel(ctx), id, today)
	})
	if err != nil {
		return ToggleResult{}, err
	}
	if shared {
		slog.Debug("toggle coalesced", "habit_id", id, "date", today.Key())
	}
	return v.(ToggleResult), nil
}

func (s *Service) toggle(ctx context.Context, habitID string, today calendar.Date) (ToggleResult, error) {
	result := ToggleResult{HabitID: habitID, Date: today}

	err := s.store.InTx(ctx, func(tx store.Store) error {
		if err := tx.LockHabit(ctx, habitID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrNotFound, habitID)
			}
			return err
		}

		// Days are created lazily on their first completion and kept
		// afterwards, even when every completion is toggled off again.
		day, err := tx.FindDayByDate(ctx, today)
		if errors.Is(err, store.ErrNotFound) {
			day, err = tx.CreateDay(ctx, today)
		}
		if err != nil {
			return err
		}

		dh, err := tx.FindDayHabit(ctx, day.ID, habitID)
		switch {
		case err == nil:
			result.Completed = false
			return tx.DeleteDayHabit(ctx, dh.ID)
		case errors.Is(err, store.ErrNotFound):
			result.Completed = true
			_, err = tx.CreateDayHabit(ctx, day.ID, habitID)
			return err
		default:
			return err
		}
	})
	if err != nil {
		return ToggleResult{}, err
	}

	return result, nil
}
