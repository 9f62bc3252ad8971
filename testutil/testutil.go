// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/habits/calendar"
	"github.com/danielhkuo/habits/cliparse"
	"github.com/danielhkuo/habits/db"
	"github.com/danielhkuo/habits/ids"
)

// PostgresURLEnv names the variable that enables PostgreSQL-backed tests
const PostgresURLEnv = "HABITS_TEST_POSTGRES_URL"

// Monday is 2025-03-10 12:00 UTC, a convenient fixed "now"
var Monday = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// SetupTestDB creates a fresh SQLite database file with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "habits_test.db")
	conn, err := db.Open(context.Background(), db.SQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// SetupPostgresTestDB connects to the database named by HABITS_TEST_POSTGRES_URL,
// drops existing tables and recreates the schema. Skips when the variable is unset.
func SetupPostgresTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(PostgresURLEnv)
	if url == "" {
		t.Skipf("%s not set", PostgresURLEnv)
	}

	conn, err := db.Open(context.Background(), db.Postgres, url)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	// Clean up tables before each test
	_, err = conn.Exec(`
		DROP TABLE IF EXISTS day_habits CASCADE;
		DROP TABLE IF EXISTS days CASCADE;
		DROP TABLE IF EXISTS habit_week_days CASCADE;
		DROP TABLE IF EXISTS habits CASCADE;
	`)
	if err != nil {
		t.Fatalf("Failed to clean database: %v", err)
	}

	if err := db.CreateSchema(context.Background(), conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3333,
		DatabaseURL:  "habits_test.db",
		DatabaseType: cliparse.DatabaseSQLite,
		Timezone:     "UTC",
		Location:     time.UTC,
		LogLevel:     "info",
		LogFormat:    "text",
	}
}

// Clock is a settable calendar.Clock
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(now time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Set(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}

// Advance moves the clock forward by whole days
func (c *Clock) Advance(days int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.AddDate(0, 0, days)
}

// NewResolver returns a UTC resolver driven by clock
func NewResolver(clock *Clock) *calendar.Resolver {
	return calendar.NewResolver(time.UTC, clock)
}

// CreateTestHabit inserts a habit created on createdAt (YYYY-MM-DD) and returns its ID
func CreateTestHabit(t *testing.T, conn *sql.DB, title, createdAt string, weekDays ...int) string {
	t.Helper()

	habitID := ids.New()
	_, err := conn.Exec(`
		INSERT INTO habits (id, title, created_at)
		VALUES ($1, $2, $3)
	`, habitID, title, createdAt)
	if err != nil {
		t.Fatalf("Failed to create test habit: %v", err)
	}

	for _, wd := range weekDays {
		_, err := conn.Exec(`
			INSERT INTO habit_week_days (habit_id, week_day)
			VALUES ($1, $2)
		`, habitID, wd)
		if err != nil {
			t.Fatalf("Failed to create test week day: %v", err)
		}
	}

	return habitID
}

// CreateTestCompletion marks habitID complete on date, creating the day row if needed.
// Returns the day ID.
func CreateTestCompletion(t *testing.T, conn *sql.DB, date calendar.Date, habitID string) string {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO days (id, date, week_day)
		VALUES ($1, $2, $3)
		ON CONFLICT (date) DO NOTHING
	`, ids.New(), date.Key(), date.Weekday)
	if err != nil {
		t.Fatalf("Failed to create test day: %v", err)
	}

	var dayID string
	if err := conn.QueryRow(`SELECT id FROM days WHERE date = $1`, date.Key()).Scan(&dayID); err != nil {
		t.Fatalf("Failed to read test day: %v", err)
	}

	_, err = conn.Exec(`
		INSERT INTO day_habits (id, day_id, habit_id)
		VALUES ($1, $2, $3)
	`, ids.New(), dayID, habitID)
	if err != nil {
		t.Fatalf("Failed to create test completion: %v", err)
	}

	return dayID
}

// CountRows returns SELECT COUNT(*) for the given query
func CountRows(t *testing.T, conn *sql.DB, query string, args ...any) int {
	t.Helper()

	var n int
	if err := conn.QueryRow(query, args...).Scan(&n); err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
