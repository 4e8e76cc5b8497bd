/*
Package logger provides logging functionality to a ginger app by defining the required behavior in [Logger]
and providing an implementation of it with [GingerLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An implementation of Logger may be initialized at a certain [LogLevel]
and only emit messages at or above that level of importance.
For example, if [GingerLogger] is initialized with [LogLevelWarn],
only [*GingerLogger.Warn], [*GingerLogger.Error], and [*GingerLogger.Fatal] produce messages.

# GingerLogger

Log messages emitted by [GingerLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/04/28 15:55:21 [WARN] params/extract.go:96 'failed reading body' log_context: {"error":"unexpected EOF"}

The log context is a JSON-encoded [LogContext].
Credentials carried by the request in a LogContext are masked before being written.

# SentryLogger

When SENTRY_DSN is set, [New] returns a [SentryLogger],
which additionally reports [LogContext.Error] to Sentry for warnings and above.
*/
package logger
