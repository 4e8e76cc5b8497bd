package adapter

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/http/params"
)

// Echo extracts parameters from the request an echo.Context handles.
//
// prefix is the part of the path consumed by routing.
// If prefix is empty, Echo uses the StaticPrefix of the matched route.
//
// The client IP comes from echo.Context.RealIP, unless opts set params.WithIPResolver.
func Echo(prefix string, opts ...params.Option) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			pre := prefix
			if pre == "" {
				pre = StaticPrefix(c.Path())
			}

			r := c.Request()
			ip := params.WithIPResolver(func(*http.Request) string { return c.RealIP() })
			p := params.FromRequest(r, pre, append([]params.Option{ip}, opts...)...)

			c.Set(string(ginger.ParamsKey), p)
			c.Set(string(ginger.SettingsKey), p.Settings())
			c.SetRequest(r.WithContext(params.NewContext(r.Context(), p)))

			return next(c)
		}
	}
}

// FromEcho retrieves the *params.Parameters stashed by Echo.
func FromEcho(c echo.Context) (*params.Parameters, bool) {
	if p, ok := c.Get(string(ginger.ParamsKey)).(*params.Parameters); ok && p != nil {
		return p, true
	}

	return params.FromContext(c.Request().Context())
}
