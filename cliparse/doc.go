// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string; file path for sqlite (default: quickly-spin.db)
  - AdminKeySalt: Secret for admin key HMAC (required)
  - WheelConfigPath: Optional YAML file with wheel tuning
  - LogLevel: slog level (default: info)
  - Wheel: Loaded wheel tuning (palette, seed options, turns, landing window)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-admin-salt   Admin key salt
	-c            Wheel config YAML
	-env          Env file (default: .env, ignored when missing)
	-log-level    debug, info, warn or error

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	ADMIN_KEY_SALT → -admin-salt
	WHEEL_CONFIG   → -c
	LOG_LEVEL      → -log-level

CLI flags take precedence over environment variables, and variables already
set take precedence over the env file.

# Wheel Config

	palette: ["#FF6B6B", "#4ECDC4"]
	seed_options: [Pizza, Tacos, Sushi]
	min_turns: 5
	max_turns: 8
	landing_low: 0.4
	landing_high: 0.6

Keys left out keep their defaults. The result is validated before use.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
