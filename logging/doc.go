// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package logging configures the process-wide slog logger.

Handlers and services log through the log/slog top-level functions.
Setup replaces the default logger with one backed by
charmbracelet/log, which renders colored text, JSON or logfmt:

	closer, err := logging.Setup(logging.Options{Level: "debug", Format: "text"})
	if err != nil {
		...
	}
	defer closer.Close()

When Options.File is set, every line is also appended to that file,
rotated by size (10 MB, 3 backups, 28 days, gzip).
*/
package logging
