package logger

import (
	"encoding"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"runtime"

	"github.com/xy-planning-network/ginger"
)

var (
	_ encoding.TextMarshaler = LogContext{}

	// maskedHeaders are never logged in the clear.
	maskedHeaders = []string{"Authorization", "X-Api-Key", "Cookie"}

	// maskedParams are query or form keys never logged in the clear.
	maskedParams = []string{"oauth_token", "password"}
)

// A LogContext provides additional information and configuration
// for a [Logger] method that cannot be tersely captured in the message itself.
type LogContext struct {
	// Caller overrides the caller file and line number with the provided value.
	//
	// Caller is not logged in the text of a LogContext.
	//
	// Caller helps goroutines identify the callers of the process that spawned it.
	Caller string

	// Data is any information pertinent at the time of the logging event.
	Data map[string]any

	// Error is the error that may or may not have instigated a logging event.
	Error error

	// MaskedHeaders names headers of Request never logged in the clear,
	// in addition to Authorization, X-Api-Key and Cookie;
	// e.g., an API key header set with params.WithAPIKeyHeader.
	MaskedHeaders []string

	// Request is the *http.Request that may or may not have been open during the logging event.
	Request *http.Request
}

// MarshalText converts LogContext into a JSON representation,
// eliminating zero-value fields or fields not requiring logging.
//
// Credentials found in headers, query params or form values are masked.
//
// Values in LogContext.Data that cannot be represented in JSON will cause an error to be thrown.
//
// MarshalText implements [encoding.TextMarshaler].
func (lc LogContext) MarshalText() ([]byte, error) {
	m := make(map[string]any)
	if lc.Data != nil {
		m["data"] = lc.Data
	}

	if lc.Error != nil {
		m["error"] = lc.Error.Error()
	}

	if lc.Request != nil {
		r := make(map[string]any)
		r["method"] = lc.Request.Method
		r["url"] = maskURL(lc.Request.URL).String()
		r["header"] = lc.maskHeader(lc.Request.Header)

		if lc.Request.PostForm != nil {
			form := make(url.Values)
			for k, v := range lc.Request.PostForm {
				form[k] = v
			}

			for _, key := range maskedParams {
				ginger.Mask(form, key)
			}

			r["form"] = form
		}

		m["request"] = r
	}

	return json.Marshal(m)
}

// String stringifies LogContext as a JSON representation of it.
func (lc LogContext) String() string {
	b, err := lc.MarshalText()
	if err != nil {
		return fmt.Sprintf(`{"error":%q}`, err)
	}

	return string(b)
}

// CurrentCaller retrieves the caller for the caller of CurrentCaller,
// formatted for using as a value in LogContext.Caller.
//
//	myFunc() {		<- returns this caller
//		func() {
//			CurrentCaller()
//		}()
//	}
func CurrentCaller() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf(callerTmpl, immediateFilepath(file), line)
}

// maskHeader clones hm with the default maskedHeaders and lc.MaskedHeaders hidden.
func (lc LogContext) maskHeader(hm http.Header) http.Header {
	names := append(append([]string(nil), maskedHeaders...), lc.MaskedHeaders...)
	return ginger.MaskHeader(hm, names...)
}

// maskedRequest clones lc.Request with credentials in its headers, path and query hidden.
// maskedRequest returns nil if lc.Request is nil.
func (lc LogContext) maskedRequest() *http.Request {
	if lc.Request == nil {
		return nil
	}

	r := lc.Request.Clone(lc.Request.Context())
	r.Header = lc.maskHeader(r.Header)
	r.URL = maskURL(r.URL)
	r.RequestURI = r.URL.RequestURI()

	return r
}

// maskURL copies u with maskedParams hidden in its path and query.
func maskURL(u *url.URL) *url.URL {
	if u == nil {
		return new(url.URL)
	}

	masked := *u
	if path := ginger.MaskPath(u.Path, maskedParams...); path != u.Path {
		masked.Path = path
		masked.RawPath = ""
	}

	q := u.Query()
	if len(q) == 0 {
		return &masked
	}

	for _, key := range maskedParams {
		ginger.Mask(q, key)
	}

	masked.RawQuery = q.Encode()

	return &masked
}
