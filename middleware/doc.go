// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote, request_id) and completion
(duration_ms).

# Server Stack

Stack wraps the router with chi's RequestID and Recoverer middleware and
go-chi/cors:

	server := http.Server{
		Handler: middleware.Stack(mux),
	}

CORS allows methods GET, POST, PUT, DELETE, OPTIONS from any origin with
headers Content-Type, Authorization, X-Admin-Key, and exposes
Content-Disposition for export downloads.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse and validate JSON request bodies:

	var req models.AddOptionRequest
	if err := middleware.ParseAndValidate(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

Validation uses go-playground/validator struct tags and reports failures as
"field Label is required" style messages.

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used in request logs.
*/
package middleware
