// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported values for the database type setting
const (
	TypeSQLite   = "sqlite"
	TypePostgres = "postgres"
)

// DriverName maps a database type to its database/sql driver.
func DriverName(dbType string) (string, error) {
	switch dbType {
	case TypeSQLite, "":
		return "sqlite", nil
	case TypePostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unsupported database type %q", dbType)
	}
}

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	driver, err := DriverName(dbType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	// SQLite serializes writers; a single connection avoids SQLITE_BUSY
	if driver == "sqlite" {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return conn, nil
}
