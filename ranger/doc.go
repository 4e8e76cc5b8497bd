/*
Package ranger initializes and manages a ginger app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type, constructed with [New].
A [Ranger] embeds a [*router.Router] whose every route extracts request parameters,
so handlers registered on it find them with params.FromContext.

[*Ranger.Guide] begins a ginger app's web server.
By default, [*Ranger.Guide] listens on the port of BASE_URL, or [DefaultPort] (:3000).

Upon calling [*Ranger.Guide], all routes configured up to that point are now active.
Stop that web server with [*Ranger.Shutdown],
cancel the context passed in with [WithContext],
or send a signal [*Ranger.Guide] listens for.

# Configuration

A developer configures a ginger app through environment variables
and by passing [RangerOption] to [New].

Environment variables can be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - API_KEY_HEADER: the header an API key is read from; default: X-Api-Key
  - BASE_URL: the base URL the application runs on; default: http://localhost:3000
  - CORS_ORIGIN: the origin allowed to make cross-origin requests; default: none
  - ENVIRONMENT: the environment the application is running in; cf. [ginger.Environment]
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - MAX_BODY_BYTES: the most bytes of a PUT or DELETE body read; default: 10MiB
  - RATE_LIMIT: requests per second each visitor may make; default: 0, no limit
  - RATE_LIMIT_BURST: requests each visitor may make in a burst; default: 20
  - SENTRY_DSN: reports errors and panics to Sentry when set
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - TRUST_PROXY: whether to read the client IP from X-Forwarded-For and X-Real-Ip; default: false
*/
package ranger
