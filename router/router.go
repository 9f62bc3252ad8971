// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/habits/handlers"
	"github.com/danielhkuo/habits/middleware"
	"github.com/danielhkuo/habits/tracker"
)

func NewRouter(svc *tracker.Service) *http.ServeMux {
	mux := http.NewServeMux()

	habitHandler := handlers.NewHabitHandler(svc)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Habits
	mux.HandleFunc("POST /habits", middleware.WithLogging(habitHandler.CreateHabit))
	mux.HandleFunc("GET /habits", middleware.WithLogging(habitHandler.ListHabits))
	mux.HandleFunc("GET /habits/{id}", middleware.WithLogging(habitHandler.GetHabit))
	mux.HandleFunc("PATCH /habits/{id}/toggle", middleware.WithLogging(habitHandler.ToggleHabit))

	// Daily view and history
	mux.HandleFunc("GET /day", middleware.WithLogging(habitHandler.GetDay))
	mux.HandleFunc("GET /summary", middleware.WithLogging(habitHandler.GetSummary))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("habits API v1"))
	})

	return mux
}
