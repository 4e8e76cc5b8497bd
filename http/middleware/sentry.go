package middleware

import (
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/xy-planning-network/ginger"
)

// ReportPanic recovers and reports panics to Sentry using sentryhttp,
// outside the development environment.
//
// In development, NoopAdapter returns and panics propagate.
func ReportPanic(env ginger.Environment) Adapter {
	if env.IsDevelopment() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return sh.Handle
}
