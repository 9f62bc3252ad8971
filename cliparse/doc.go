// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles configuration parsing from CLI flags and environment variables.

# Usage

	if err := cliparse.LoadEnvFile(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

# Configuration Priority

CLI flags take precedence over environment variables, which take
precedence over a .env file:

	PORT=9000 ./habits -p 8080  # Uses port 8080

# Available Options

	Flag          Env Variable    Default
	-p            PORT            3333
	-t            DATABASE_TYPE   sqlite
	-d            DATABASE_URL    $XDG_DATA_HOME/habits/habits.db (sqlite only)
	-tz           TIMEZONE        UTC
	-log-level    LOG_LEVEL       info
	-log-format   LOG_FORMAT      text
	-log-file     LOG_FILE        (stderr only)

DATABASE_URL is required when DATABASE_TYPE is postgres.

# Time Zone

Every "today" and every weekday is computed in TIMEZONE. Set it to the
zone your users live in; a client at local midnight in another zone
will otherwise land on the neighbouring day.
*/
package cliparse
