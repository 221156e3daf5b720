// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-spin/auth"
	"github.com/danielhkuo/quickly-spin/cliparse"
	"github.com/danielhkuo/quickly-spin/db"
	"github.com/danielhkuo/quickly-spin/store"
	"github.com/danielhkuo/quickly-spin/wheel"
)

// SetupTestDB creates a fresh sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         3318,
		DatabaseType: db.TypeSQLite,
		AdminKeySalt: "test-admin-salt",
		Wheel:        wheel.DefaultConfig(),
	}
}

// NewTestStore wraps conn in a store using the test configuration
func NewTestStore(conn *sql.DB, cfg cliparse.Config) *store.Store {
	return store.New(conn, cfg.DatabaseType, cfg.Wheel)
}

// CreateTestWheel creates a wheel and returns its ID and admin key.
// When labels are given they replace the seeded options.
func CreateTestWheel(t *testing.T, conn *sql.DB, cfg cliparse.Config, labels ...string) (wheelID, adminKey string) {
	t.Helper()

	wheelID, _ = auth.GenerateID(8)
	adminKey = auth.GenerateAdminKey(wheelID, cfg.AdminKeySalt)

	st := NewTestStore(conn, cfg)
	ctx := context.Background()
	if _, err := st.CreateWheel(ctx, wheelID, "Test Wheel"); err != nil {
		t.Fatalf("Failed to create test wheel: %v", err)
	}

	if labels != nil {
		opts := make([]wheel.Option, len(labels))
		for i, l := range labels {
			opts[i] = wheel.Option{Label: l, Weight: wheel.DefaultWeight}
		}
		if err := st.SaveOptions(ctx, wheelID, opts); err != nil {
			t.Fatalf("Failed to save test options: %v", err)
		}
	}

	return wheelID, adminKey
}

// SetTestOptions replaces a wheel's option list
func SetTestOptions(t *testing.T, conn *sql.DB, cfg cliparse.Config, wheelID string, opts []wheel.Option) {
	t.Helper()

	if err := NewTestStore(conn, cfg).SaveOptions(context.Background(), wheelID, opts); err != nil {
		t.Fatalf("Failed to save test options: %v", err)
	}
}

// AdminHeaders returns the header map carrying adminKey
func AdminHeaders(adminKey string) map[string]string {
	return map[string]string{auth.AdminKeyHeader: adminKey}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
