package ranger

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/http/middleware"
	"github.com/xy-planning-network/ginger/http/params"
	"github.com/xy-planning-network/ginger/http/router"
	"github.com/xy-planning-network/ginger/logger"
	"golang.org/x/time/rate"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Parameter extraction defaults
	apiKeyHeaderEnvVar = "API_KEY_HEADER"
	corsOriginEnvVar   = "CORS_ORIGIN"
	maxBodyBytesEnvVar = "MAX_BODY_BYTES"
	trustProxyEnvVar   = "TRUST_PROXY"

	// Rate limit defaults
	rateLimitEnvVar      = "RATE_LIMIT"
	rateLimitBurstEnvVar = "RATE_LIMIT_BURST"
	defaultRateBurst     = 20

	// Web server defaults
	DefaultHost               = "localhost"
	DefaultPort               = ":3000"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	shutdownTimeout = 5 * time.Second
)

var defaultBaseURL = "http://" + DefaultHost + DefaultPort

// defaultParamOpts reads how parameters are extracted from the environment.
//
// defaultParamOpts relies on these env vars:
//   - API_KEY_HEADER
//   - MAX_BODY_BYTES
//   - TRUST_PROXY
func defaultParamOpts(l logger.Logger) []params.Option {
	opts := []params.Option{
		params.WithAPIKeyHeader(ginger.EnvVarOrString(apiKeyHeaderEnvVar, params.DefaultAPIKeyHeader)),
		params.WithLogger(l),
	}

	if n := ginger.EnvVarOrInt64(maxBodyBytesEnvVar, 0); n > 0 {
		opts = append(opts, params.WithMaxBodyBytes(n))
	}

	if ginger.EnvVarOrBool(trustProxyEnvVar, false) {
		opts = append(opts, params.WithIPResolver(middleware.ClientIP))
	}

	return opts
}

// defaultMiddlewares constructs the stack every request passes through
// before its parameters are extracted.
func defaultMiddlewares(l logger.Logger) []middleware.Adapter {
	mws := []middleware.Adapter{middleware.RequestID()}
	if ginger.EnvVarOrBool(trustProxyEnvVar, false) {
		mws = append(mws, middleware.InjectIPAddress())
	}

	apiKeyHeader := ginger.EnvVarOrString(apiKeyHeaderEnvVar, params.DefaultAPIKeyHeader)
	mws = append(
		mws,
		middleware.LogRequest(l),
		middleware.CORS(ginger.EnvVarOrString(corsOriginEnvVar, ""), apiKeyHeader),
	)

	return mws
}

// defaultVisitors constructs the *middleware.Visitors rate limiting routes,
// or nil if RATE_LIMIT is not a positive number of requests per second.
func defaultVisitors() *middleware.Visitors {
	limit := ginger.EnvVarOrInt(rateLimitEnvVar, 0)
	if limit <= 0 {
		return nil
	}

	return middleware.NewVisitorsWithLimit(rate.Limit(limit), ginger.EnvVarOrInt(rateLimitBurstEnvVar, defaultRateBurst))
}

// defaultRouter constructs a [*router.Router] to be used by the web server.
func defaultRouter(env ginger.Environment, l logger.Logger, paramOpts []params.Option) *router.Router {
	route := router.New(env, middleware.LogRequest(l), paramOpts...)
	route.OnEveryRequest(defaultMiddlewares(l)...)
	route.HandleNotFound(func(wx http.ResponseWriter, rx *http.Request) {
		wx.WriteHeader(http.StatusNotFound)
	})

	return route
}

// defaultServer constructs a default [*http.Server] listening on the port of u.
func defaultServer(ctx context.Context, u *url.URL) *http.Server {
	port := DefaultPort
	if u != nil && u.Port() != "" {
		port = ":" + u.Port()
	}

	srv := &http.Server{
		Addr:         port,
		IdleTimeout:  ginger.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  ginger.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: ginger.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}
