// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the habits API.

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(svc)

# Endpoints

	GET   /health             - Health check
	GET   /                   - API banner
	POST  /habits             - Create habit
	GET   /habits             - List habits
	GET   /habits/{id}        - Get habit
	PATCH /habits/{id}/toggle - Toggle today's completion
	GET   /day?date=...       - Due and completed habits for a date
	GET   /summary            - Completion history

Every API route is wrapped in middleware.WithLogging. CORS is applied by
the caller around the whole mux.
*/
package router
