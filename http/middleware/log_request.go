package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/felixge/httpsnoop"
	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/logger"
)

// maskedQueryParams never appear in a logged URI, whether in the query or the path.
var maskedQueryParams = []string{"oauth_token", "password"}

// A LogRequestRecord describes a request once it has been served.
type LogRequestRecord struct {
	BodySize  int64         `json:"bodySize"`
	Duration  time.Duration `json:"duration"`
	ID        string        `json:"id,omitempty"`
	IPAddr    string        `json:"ipAddr,omitempty"`
	Method    string        `json:"method"`
	Path      string        `json:"path"`
	Status    int           `json:"status"`
	URI       string        `json:"uri"`
	UserAgent string        `json:"userAgent,omitempty"`
}

// LogRequest logs the request's originating IP address, method and requested URL
// using the enclosed implementation of logger.Logger, once the request has been served.
//
// LogRequest scrubs the values for the following keys,
// in the query string or as a path segment:
// - oauth_token
// - password
//
// if logger.Logger is nil, NoopAdapter returns and this middleware does nothing.
func LogRequest(ls logger.Logger) Adapter {
	if ls == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m := httpsnoop.CaptureMetrics(h, w, r)

			rec := newLogRequestRecord(r)
			rec.BodySize = m.Written
			rec.Duration = m.Duration
			rec.Status = m.Code

			strs := []string{rec.Method, rec.URI}
			if rec.IPAddr != "" {
				strs = append([]string{rec.IPAddr}, strs...)
			}

			ls.Info(strings.Join(strs, " "), &logger.LogContext{Data: map[string]any{"request": rec}})
		})
	}
}

func newLogRequestRecord(r *http.Request) LogRequestRecord {
	path := ginger.MaskPath(r.URL.Path, maskedQueryParams...)
	uri := path
	q := r.URL.Query()
	for _, key := range maskedQueryParams {
		ginger.Mask(q, key)
	}

	if query := q.Encode(); query != "" {
		uri += "?" + query
	}

	rec := LogRequestRecord{
		Method:    r.Method,
		Path:      path,
		URI:       uri,
		UserAgent: r.UserAgent(),
	}

	if id, ok := r.Context().Value(ginger.RequestIDKey).(string); ok {
		rec.ID = id
	}

	if ip, ok := r.Context().Value(ginger.IpAddrKey).(string); ok {
		rec.IPAddr = ip
	}

	return rec
}
