// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"path/filepath"
	"testing"
)

func TestDriverName(t *testing.T) {
	tests := []struct {
		dbType  string
		want    string
		wantErr bool
	}{
		{"sqlite", "sqlite", false},
		{"", "sqlite", false},
		{"postgres", "postgres", false},
		{"mysql", "", true},
	}

	for _, tt := range tests {
		got, err := DriverName(tt.dbType)
		if (err != nil) != tt.wantErr {
			t.Errorf("DriverName(%q) error = %v, wantErr %v", tt.dbType, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("DriverName(%q) = %q, want %q", tt.dbType, got, tt.want)
		}
	}
}

func TestCreateSchemaIdempotent(t *testing.T) {
	conn, err := Open(TypeSQLite, filepath.Join(t.TempDir(), "schema.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer conn.Close()

	for i := range 2 {
		if err := CreateSchema(conn); err != nil {
			t.Fatalf("CreateSchema run %d failed: %v", i+1, err)
		}
	}

	for _, table := range []string{"wheel", "kv"} {
		var name string
		err := conn.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}
