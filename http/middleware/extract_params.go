package middleware

import (
	"net/http"

	"github.com/xy-planning-network/ginger/http/params"
)

// ExtractParams extracts the request's parameters with params.FromRequest
// and stashes them, along with their params.Settings, in the request context.
//
// prefix is the part of the path consumed by routing.
// A handler downstream retrieves them with params.FromContext or params.SettingsFromContext.
func ExtractParams(prefix string, opts ...params.Option) Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p := params.FromRequest(r, prefix, opts...)
			h.ServeHTTP(w, r.WithContext(params.NewContext(r.Context(), p)))
		})
	}
}
