// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the habits API server.

The server tracks recurring habits: each habit is due on a fixed set of
weekdays, can be marked complete for the current day, and contributes to a
per-day completion summary.

# Starting the Server

With no configuration the server uses an SQLite file under the XDG data
directory and listens on port 3333:

	go run .

PostgreSQL:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3333 -t postgres -d "postgres://..." -tz America/Sao_Paulo

A .env file (or the file named by ENV_FILE) is loaded first; real
environment variables and flags take precedence.

# Configuration

  - PORT (-p): Server port (default: 3333)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): PostgreSQL connection string or SQLite path
  - TIMEZONE (-tz): IANA zone that defines "today" (default: UTC)
  - LOG_LEVEL, LOG_FORMAT, LOG_FILE: see package logging

# Architecture

  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - tracker: Habit, toggle and summary operations
  - store: Persistence over database/sql
  - calendar: Day and weekday resolution in the configured zone
  - ids: Identifier generation and validation
  - models: Domain and request/response types
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing
  - logging: slog setup

See package documentation for each component.
*/
package main
