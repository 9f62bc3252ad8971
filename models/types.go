package models

import "time"

// Weekday bounds; 0 is Sunday
const (
	MinWeekDay = 0
	MaxWeekDay = 6
)

// MaxTitleLength caps habit titles (in characters)
const MaxTitleLength = 200

// Request types

type CreateHabitRequest struct {
	Title    string `json:"title"`
	WeekDays []int  `json:"weekDays"`
}

// Response types

type CreateHabitResponse struct {
	ID string `json:"id"`
}

type DayResponse struct {
	PossibleHabits  []Habit  `json:"possibleHabits"`
	CompletedHabits []string `json:"completedHabits"`
}

type ToggleHabitResponse struct {
	HabitID   string    `json:"habit_id"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

// Domain types

type Habit struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	WeekDays  []int     `json:"weekDays,omitempty"`
}

type Day struct {
	ID        string     `json:"id"`
	Date      time.Time  `json:"date"`
	WeekDay   int        `json:"week_day"`
	DayHabits []DayHabit `json:"day_habits,omitempty"`
}

type DayHabit struct {
	ID      string `json:"id"`
	DayID   string `json:"day_id"`
	HabitID string `json:"habit_id"`
}

// SummaryDay is one row of the completion history. Amount counts the
// habits that were due that day.
type SummaryDay struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Completed int       `json:"completed"`
	Amount    int       `json:"amount"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
