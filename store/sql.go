// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/danielhkuo/habits/calendar"
	"github.com/danielhkuo/habits/db"
	"github.com/danielhkuo/habits/ids"
	"github.com/danielhkuo/habits/models"
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type SQLStore struct {
	conn     *sql.DB
	q        querier
	inTx     bool
	dialect  db.Dialect
	resolver *calendar.Resolver
}

// New returns a Store over conn. Stored date keys are read back in the
// resolver's zone.
func New(conn *sql.DB, dialect db.Dialect, resolver *calendar.Resolver) *SQLStore {
	return &SQLStore{
		conn:     conn,
		q:        conn,
		dialect:  dialect,
		resolver: resolver,
	}
}

// duePredicate is the single definition of "habit h is due on a day".
// Both the due-habit listing and the summary use it so their counts agree.
func duePredicate(dateExpr, weekDayExpr string) string {
	return `h.created_at <= ` + dateExpr + ` AND EXISTS (
			SELECT 1 FROM habit_week_days hwd
			WHERE hwd.habit_id = h.id AND hwd.week_day = ` + weekDayExpr + `
		)`
}

var (
	dueHabitsQuery = `
		SELECT h.id, h.title, h.created_at
		FROM habits h
		WHERE ` + duePredicate("$1", "$2") + `
		ORDER BY h.created_at, h.title, h.id
	`

	summaryQuery = `
		SELECT d.id, d.date,
		(
			SELECT COUNT(*)
			FROM day_habits dh
			WHERE dh.day_id = d.id
		) AS completed,
		(
			SELECT COUNT(*)
			FROM habits h
			WHERE ` + duePredicate("d.date", "d.week_day") + `
		) AS amount
		FROM days d
		ORDER BY d.date
	`
)

func (s *SQLStore) InTx(ctx context.Context, fn func(Store) error) error {
	if s.inTx {
		return fn(s)
	}

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txStore := &SQLStore{
		conn:     s.conn,
		q:        tx,
		inTx:     true,
		dialect:  s.dialect,
		resolver: s.resolver,
	}

	if err := fn(txStore); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback failed: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (s *SQLStore) CreateHabit(ctx context.Context, title string, createdAt calendar.Date, weekDays []int) (string, error) {
	habitID := ids.New()

	days := append([]int(nil), weekDays...)
	sort.Ints(days)

	err := s.InTx(ctx, func(st Store) error {
		tx := st.(*SQLStore)

		_, err := tx.q.ExecContext(ctx, `
			INSERT INTO habits (id, title, created_at)
			VALUES ($1, $2, $3)
		`, habitID, title, createdAt.Key())
		if err != nil {
			return fmt.Errorf("failed to insert habit: %w", err)
		}

		for _, wd := range days {
			_, err := tx.q.ExecContext(ctx, `
				INSERT INTO habit_week_days (habit_id, week_day)
				VALUES ($1, $2)
			`, habitID, wd)
			if err != nil {
				return fmt.Errorf("failed to insert week day %d: %w", wd, err)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	return habitID, nil
}

func (s *SQLStore) GetHabit(ctx context.Context, id string) (models.Habit, error) {
	var h models.Habit
	var createdAt string
	err := s.q.QueryRowContext(ctx, `
		SELECT id, title, created_at FROM habits WHERE id = $1
	`, id).Scan(&h.ID, &h.Title, &createdAt)
	if err == sql.ErrNoRows {
		return models.Habit{}, ErrNotFound
	}
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to query habit: %w", err)
	}

	if h.CreatedAt, err = s.startOf(createdAt); err != nil {
		return models.Habit{}, err
	}

	habits := []models.Habit{h}
	if err := s.attachWeekDays(ctx, habits, `h.id = $1`, id); err != nil {
		return models.Habit{}, err
	}
	return habits[0], nil
}

func (s *SQLStore) ListHabits(ctx context.Context) ([]models.Habit, error) {
	habits, err := s.queryHabits(ctx, `
		SELECT id, title, created_at FROM habits h
		ORDER BY h.created_at, h.title, h.id
	`)
	if err != nil {
		return nil, err
	}
	if err := s.attachWeekDays(ctx, habits, `1 = 1`); err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *SQLStore) LockHabit(ctx context.Context, id string) error {
	query := `SELECT id FROM habits WHERE id = $1`
	if s.inTx && s.dialect == db.Postgres {
		query += ` FOR UPDATE`
	}

	var found string
	err := s.q.QueryRowContext(ctx, query, id).Scan(&found)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to lock habit: %w", err)
	}
	return nil
}

func (s *SQLStore) FindHabitsDueOn(ctx context.Context, date calendar.Date) ([]models.Habit, error) {
	habits, err := s.queryHabits(ctx, dueHabitsQuery, date.Key(), date.Weekday)
	if err != nil {
		return nil, err
	}
	err = s.attachWeekDays(ctx, habits, duePredicate("$1", "$2"), date.Key(), date.Weekday)
	if err != nil {
		return nil, err
	}
	return habits, nil
}

func (s *SQLStore) FindDayByDate(ctx context.Context, date calendar.Date) (models.Day, error) {
	day, err := s.dayByKey(ctx, date.Key())
	if err != nil {
		return models.Day{}, err
	}

	rows, err := s.q.QueryContext(ctx, `
		SELECT id, day_id, habit_id
		FROM day_habits
		WHERE day_id = $1
		ORDER BY habit_id
	`, day.ID)
	if err != nil {
		return models.Day{}, fmt.Errorf("failed to query day habits: %w", err)
	}
	defer rows.Close()

	day.DayHabits = []models.DayHabit{}
	for rows.Next() {
		var dh models.DayHabit
		if err := rows.Scan(&dh.ID, &dh.DayID, &dh.HabitID); err != nil {
			return models.Day{}, fmt.Errorf("failed to scan day habit: %w", err)
		}
		day.DayHabits = append(day.DayHabits, dh)
	}
	if err := rows.Err(); err != nil {
		return models.Day{}, fmt.Errorf("failed to read day habits: %w", err)
	}

	return day, nil
}

func (s *SQLStore) CreateDay(ctx context.Context, date calendar.Date) (models.Day, error) {
	// ON CONFLICT lets concurrent first completions of a date converge on
	// one row instead of failing the unique index.
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO days (id, date, week_day)
		VALUES ($1, $2, $3)
		ON CONFLICT (date) DO NOTHING
	`, ids.New(), date.Key(), date.Weekday)
	if err != nil {
		return models.Day{}, fmt.Errorf("failed to insert day: %w", err)
	}

	return s.dayByKey(ctx, date.Key())
}

func (s *SQLStore) FindDayHabit(ctx context.Context, dayID, habitID string) (models.DayHabit, error) {
	var dh models.DayHabit
	err := s.q.QueryRowContext(ctx, `
		SELECT id, day_id, habit_id
		FROM day_habits
		WHERE day_id = $1 AND habit_id = $2
	`, dayID, habitID).Scan(&dh.ID, &dh.DayID, &dh.HabitID)
	if err == sql.ErrNoRows {
		return models.DayHabit{}, ErrNotFound
	}
	if err != nil {
		return models.DayHabit{}, fmt.Errorf("failed to query day habit: %w", err)
	}
	return dh, nil
}

func (s *SQLStore) CreateDayHabit(ctx context.Context, dayID, habitID string) (models.DayHabit, error) {
	dh := models.DayHabit{ID: ids.New(), DayID: dayID, HabitID: habitID}
	_, err := s.q.ExecContext(ctx, `
		INSERT INTO day_habits (id, day_id, habit_id)
		VALUES ($1, $2, $3)
	`, dh.ID, dh.DayID, dh.HabitID)
	if err != nil {
		return models.DayHabit{}, fmt.Errorf("failed to insert day habit: %w", err)
	}
	return dh, nil
}

func (s *SQLStore) DeleteDayHabit(ctx context.Context, id string) error {
	res, err := s.q.ExecContext(ctx, `DELETE FROM day_habits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete day habit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete day habit: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) AggregateSummary(ctx context.Context) ([]models.SummaryDay, error) {
	rows, err := s.q.QueryContext(ctx, summaryQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary: %w", err)
	}
	defer rows.Close()

	summary := []models.SummaryDay{}
	for rows.Next() {
		var sd models.SummaryDay
		var date string
		if err := rows.Scan(&sd.ID, &date, &sd.Completed, &sd.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		if sd.Date, err = s.startOf(date); err != nil {
			return nil, err
		}
		summary = append(summary, sd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read summary: %w", err)
	}

	return summary, nil
}

func (s *SQLStore) dayByKey(ctx context.Context, key string) (models.Day, error) {
	var day models.Day
	var date string
	err := s.q.QueryRowContext(ctx, `
		SELECT id, date, week_day FROM days WHERE date = $1
	`, key).Scan(&day.ID, &date, &day.WeekDay)
	if err == sql.ErrNoRows {
		return models.Day{}, ErrNotFound
	}
	if err != nil {
		return models.Day{}, fmt.Errorf("failed to query day: %w", err)
	}

	if day.Date, err = s.startOf(date); err != nil {
		return models.Day{}, err
	}
	return day, nil
}

// queryHabits scans id, title, created_at rows. The rows are closed before
// it returns so callers can issue follow-up queries on the same connection.
func (s *SQLStore) queryHabits(ctx context.Context, query string, args ...any) ([]models.Habit, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		var createdAt string
		if err := rows.Scan(&h.ID, &h.Title, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		if h.CreatedAt, err = s.startOf(createdAt); err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read habits: %w", err)
	}

	return habits, nil
}

// attachWeekDays fills WeekDays for each habit in place. habitFilter is a
// condition on habits h selecting the same rows as the parent query, so the
// membership lookup binds a fixed number of arguments however many habits
// there are.
func (s *SQLStore) attachWeekDays(ctx context.Context, habits []models.Habit, habitFilter string, args ...any) error {
	if len(habits) == 0 {
		return nil
	}

	index := make(map[string]int, len(habits))
	for i, h := range habits {
		index[h.ID] = i
		habits[i].WeekDays = []int{}
	}

	rows, err := s.q.QueryContext(ctx, `
		SELECT m.habit_id, m.week_day
		FROM habit_week_days m
		WHERE m.habit_id IN (
			SELECT h.id FROM habits h WHERE `+habitFilter+`
		)
		ORDER BY m.habit_id, m.week_day
	`, args...)
	if err != nil {
		return fmt.Errorf("failed to query week days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var habitID string
		var wd int
		if err := rows.Scan(&habitID, &wd); err != nil {
			return fmt.Errorf("failed to scan week day: %w", err)
		}
		if i, ok := index[habitID]; ok {
			habits[i].WeekDays = append(habits[i].WeekDays, wd)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read week days: %w", err)
	}
	return nil
}

// startOf turns a stored YYYY-MM-DD key into its midnight instant.
func (s *SQLStore) startOf(key string) (time.Time, error) {
	d, err := s.resolver.FromKey(key)
	if err != nil {
		return time.Time{}, fmt.Errorf("corrupt stored date: %w", err)
	}
	return d.Start, nil
}
