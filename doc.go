// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Spin API server.

Quickly Spin is a spinner wheel: a list of weighted, colored options drawn
as slices, spun with an eased animation that lands on a weighted random pick.

# Starting the Server

The server runs on an embedded SQLite file by default:

	ADMIN_KEY_SALT=... go run .

Or against PostgreSQL with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

A .env file in the working directory is loaded when present.

# Configuration

Required settings:

  - ADMIN_KEY_SALT (--admin-salt): Secret for admin key HMAC
  - DATABASE_URL (-d): Only when DATABASE_TYPE is postgres

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - WHEEL_CONFIG (-c): YAML file with palette, seed options and spin feel
  - LOG_LEVEL (--log-level): debug, info, warn or error

# Architecture

  - wheel: Selection, spin planning, option editing and layout
  - store: Per-wheel KV persistence over SQL
  - transfer: Configuration export and import
  - chime: Winner sound synthesis
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, request ids, logging, JSON and validation helpers
  - models: Request/response types
  - auth: ID and admin key generation
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
