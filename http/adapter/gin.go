package adapter

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/http/params"
)

// Gin extracts parameters from the request a *gin.Context handles.
//
// prefix is the part of the path consumed by routing.
// If prefix is empty, Gin uses the StaticPrefix of the matched route.
//
// The client IP comes from *gin.Context.ClientIP, unless opts set params.WithIPResolver.
func Gin(prefix string, opts ...params.Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		pre := prefix
		if pre == "" {
			pre = StaticPrefix(c.FullPath())
		}

		ip := params.WithIPResolver(func(*http.Request) string { return c.ClientIP() })
		p := params.FromRequest(c.Request, pre, append([]params.Option{ip}, opts...)...)

		c.Set(string(ginger.ParamsKey), p)
		c.Set(string(ginger.SettingsKey), p.Settings())
		c.Request = c.Request.WithContext(params.NewContext(c.Request.Context(), p))

		c.Next()
	}
}

// FromGin retrieves the *params.Parameters stashed by Gin.
func FromGin(c *gin.Context) (*params.Parameters, bool) {
	if val, ok := c.Get(string(ginger.ParamsKey)); ok {
		p, ok := val.(*params.Parameters)
		return p, ok && p != nil
	}

	return params.FromContext(c.Request.Context())
}
