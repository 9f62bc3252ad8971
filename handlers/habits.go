// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/habits/calendar"
	"github.com/danielhkuo/habits/ids"
	"github.com/danielhkuo/habits/middleware"
	"github.com/danielhkuo/habits/models"
	"github.com/danielhkuo/habits/tracker"
)

type HabitHandler struct {
	svc *tracker.Service
}

func NewHabitHandler(svc *tracker.Service) *HabitHandler {
	return &HabitHandler{svc: svc}
}

// CreateHabit handles POST /habits
func (h *HabitHandler) CreateHabit(w http.ResponseWriter, r *http.Request) {
	var req models.CreateHabitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	habit, err := h.svc.CreateHabit(r.Context(), req.Title, req.WeekDays)
	if err != nil {
		writeError(w, "failed to create habit", err)
		return
	}

	slog.Info("habit created", "habit_id", habit.ID, "week_days", habit.WeekDays)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateHabitResponse{
		ID: habit.ID,
	})
}

// ListHabits handles GET /habits
func (h *HabitHandler) ListHabits(w http.ResponseWriter, r *http.Request) {
	habits, err := h.svc.ListHabits(r.Context())
	if err != nil {
		writeError(w, "failed to list habits", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, habits)
}

// GetHabit handles GET /habits/{id}
func (h *HabitHandler) GetHabit(w http.ResponseWriter, r *http.Request) {
	habitID := r.PathValue("id")
	if habitID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "habit id is required")
		return
	}

	habit, err := h.svc.GetHabit(r.Context(), habitID)
	if err != nil {
		writeError(w, "failed to get habit", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, habit)
}

// GetDay handles GET /day?date=...
func (h *HabitHandler) GetDay(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date is required")
		return
	}

	date, err := h.svc.Resolver().Parse(raw)
	if err != nil {
		writeError(w, "failed to parse date", err)
		return
	}

	status, err := h.svc.Day(r.Context(), date)
	if err != nil {
		writeError(w, "failed to load day", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DayResponse{
		PossibleHabits:  status.Possible,
		CompletedHabits: status.Completed,
	})
}

// ToggleHabit handles PATCH /habits/{id}/toggle
func (h *HabitHandler) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	habitID := r.PathValue("id")
	if habitID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "habit id is required")
		return
	}

	res, err := h.svc.Toggle(r.Context(), habitID)
	if err != nil {
		writeError(w, "failed to toggle habit", err)
		return
	}

	slog.Info("habit toggled", "habit_id", res.HabitID, "date", res.Date.Key(), "completed", res.Completed)

	middleware.JSONResponse(w, http.StatusOK, models.ToggleHabitResponse{
		HabitID:   res.HabitID,
		Date:      res.Date.Start,
		Completed: res.Completed,
	})
}

// GetSummary handles GET /summary
func (h *HabitHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		writeError(w, "failed to build summary", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, summary)
}

// writeError maps service errors onto status codes. Anything unrecognised
// is a storage failure.
func writeError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, tracker.ErrValidation),
		errors.Is(err, calendar.ErrInvalidDate),
		errors.Is(err, ids.ErrInvalidID):
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, tracker.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "Habit not found")
	default:
		slog.Error(msg, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
