// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections and schema creation.

# Connecting

Open picks the driver from the database type and pings the connection:

	conn, err := db.Open(db.TypeSQLite, "quickly-spin.db")
	if err != nil {
		log.Fatal(err)
	}

SQLite (modernc.org/sqlite, pure Go) is the default. PostgreSQL goes through
lib/pq. SQLite connections are limited to one open connection.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
The same DDL runs on both databases.

# Tables

  - wheel: Wheel metadata (id, name, created_at)
  - kv: Persisted wheel state as (namespace, key) -> value text

A wheel's state lives in the kv namespace equal to its id, under the keys
spinnerOptions, spinnerSettings and spinnerRotation.
*/
package db
