// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the database and creates its schema.

# Drivers

Two backends are supported:

  - sqlite: modernc.org/sqlite (pure Go), the default
  - postgres: github.com/lib/pq

	conn, err := db.Open(ctx, db.SQLite, "/var/lib/habits/habits.db")

SQLite connections are opened with foreign keys enforced and a 5s busy
timeout, and the pool is limited to one connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - habits: id, title, created_at (YYYY-MM-DD)
  - habit_week_days: weekday memberships (0 = Sunday .. 6 = Saturday)
  - days: one row per date with at least one completion, plus its weekday
  - day_habits: completion of a habit on a day

# Relationships

	habits 1──* habit_week_days
	habits 1──* day_habits *──1 days

All foreign keys use ON DELETE CASCADE.

# Constraints

  - habit_week_days (habit_id, week_day) primary key: no duplicate weekdays
  - days.date unique
  - day_habits (day_id, habit_id) unique
*/
package db
