package middleware

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/xy-planning-network/ginger/http/params"
)

// CORS sets "Access-Control-Allowed" style headers on a response.
// The handler including this middleware must also handle the http.MethodOptions method
// and not just the HTTP method it's designed for.
//
// Requests may carry an OAuth token in Authorization
// and an API key in params.DefaultAPIKeyHeader or any of apiKeyHeaders.
//
// If origin is empty, NoopAdapter returns and this middleware does nothing.
func CORS(origin string, apiKeyHeaders ...string) Adapter {
	if origin == "" {
		return NoopAdapter
	}

	allowed := []string{
		"Authorization",
		"Content-Type",
		params.DefaultAPIKeyHeader,
	}
	allowed = append(allowed, apiKeyHeaders...)

	return handlers.CORS(
		handlers.AllowedHeaders(allowed),
		handlers.AllowedOrigins([]string{origin}),
		handlers.AllowedMethods([]string{
			http.MethodDelete,
			http.MethodGet,
			http.MethodHead,
			http.MethodOptions,
			http.MethodPost,
			http.MethodPut,
		}),
	)
}
