package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/habits/calendar"
	"github.com/danielhkuo/habits/cliparse"
	"github.com/danielhkuo/habits/db"
	"github.com/danielhkuo/habits/logging"
	"github.com/danielhkuo/habits/middleware"
	"github.com/danielhkuo/habits/router"
	"github.com/danielhkuo/habits/store"
	"github.com/danielhkuo/habits/tracker"
)

const shutdownTimeout = 5 * time.Second

func main() {
	var err error

	// Load .env before flags so the file can supply defaults
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := cliparse.LoadEnvFile(envFile); err != nil {
		slog.Error("Error loading env file", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logCloser, err := logging.Setup(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})
	if err != nil {
		slog.Error("logging setup failed", "error", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	server, dbConn, err := newServer(context.Background(), cfg)
	if err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "error", err)
		os.Exit(1)
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	// Start server
	slog.Info("Listening", "port", cfg.Port, "database", cfg.DatabaseType, "timezone", cfg.Timezone)
	if err := serve(server, ln, ctrlc); err != nil {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}

// serve runs server on ln until stop fires, then drains in-flight requests.
// It returns only after Shutdown has finished, so callers may release
// resources such as the database afterwards.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal) error {
	done := make(chan struct{})
	var shutdownErr error

	go func() {
		defer close(done)
		// Wait for Ctrl-C signal
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown failed", "error", err)
			shutdownErr = err
		}
	}()

	err := server.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done
	return shutdownErr
}

// newServer opens the database, creates the schema and wires the HTTP stack.
// The caller owns the returned connection.
func newServer(ctx context.Context, cfg cliparse.Config) (*http.Server, *sql.DB, error) {
	dialect, err := db.ParseDialect(cfg.DatabaseType)
	if err != nil {
		return nil, nil, err
	}

	dbConn, err := db.Open(ctx, dialect, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}

	// Create schema (tables)
	if err := db.CreateSchema(ctx, dbConn); err != nil {
		dbConn.Close()
		return nil, nil, fmt.Errorf("schema creation failed: %w", err)
	}
	slog.Info("Database schema ready", "database", dialect)

	resolver := calendar.NewResolver(cfg.Location, calendar.SystemClock{})
	svc := tracker.NewService(store.New(dbConn, dialect, resolver), resolver)

	server := &http.Server{
		Handler:           middleware.CORS(router.NewRouter(svc)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server, dbConn, nil
}
