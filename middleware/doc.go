// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /summary", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).
The remote address comes from GetClientIP, which honours X-Forwarded-For
and X-Real-IP.

# CORS Middleware

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Every response carries Access-Control-Allow-Origin: * and no credentials
header. Preflight requests (OPTIONS with Access-Control-Request-Method)
get 204 with methods GET, POST, PATCH, OPTIONS and the Content-Type header.

# JSON Helpers

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

	var req models.CreateHabitRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
