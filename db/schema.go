// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Dates are stored as YYYY-MM-DD text in the configured zone, so ordering
// and <= comparisons behave the same on SQLite and PostgreSQL.
const schema = `
-- Habits
CREATE TABLE IF NOT EXISTS habits (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_habits_created_at ON habits(created_at);

-- Weekday memberships
CREATE TABLE IF NOT EXISTS habit_week_days (
    habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
    week_day INTEGER NOT NULL CHECK (week_day >= 0 AND week_day <= 6),
    PRIMARY KEY (habit_id, week_day)
);

CREATE INDEX IF NOT EXISTS idx_habit_week_days_week_day ON habit_week_days(week_day);

-- Days with at least one recorded completion
CREATE TABLE IF NOT EXISTS days (
    id TEXT PRIMARY KEY,
    date TEXT NOT NULL UNIQUE,
    week_day INTEGER NOT NULL CHECK (week_day >= 0 AND week_day <= 6)
);

-- Completions
CREATE TABLE IF NOT EXISTS day_habits (
    id TEXT PRIMARY KEY,
    day_id TEXT NOT NULL REFERENCES days(id) ON DELETE CASCADE,
    habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
    UNIQUE (day_id, habit_id)
);

CREATE INDEX IF NOT EXISTS idx_day_habits_habit_id ON day_habits(habit_id);
`
