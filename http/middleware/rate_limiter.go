package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultRate  rate.Limit = 5
	defaultBurst            = 20

	visitorTTL      = 60 * time.Minute
	cleanupInterval = time.Minute
)

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	burst       int
	lastCleanup time.Time
	limit       rate.Limit
	val         map[string]Visitor
	sync.Mutex
}

// NewVisitors constructs a Visitors whose new visitors
// are limited to 5 requests every second with bursts of up to 20.
func NewVisitors() *Visitors { return NewVisitorsWithLimit(defaultRate, defaultBurst) }

// NewVisitorsWithLimit constructs a Visitors whose new visitors
// are limited to limit requests every second with bursts of up to burst.
func NewVisitorsWithLimit(limit rate.Limit, burst int) *Visitors {
	return &Visitors{
		burst:       burst,
		lastCleanup: time.Now().UTC(),
		limit:       limit,
		val:         make(map[string]Visitor),
	}
}

// Fetch retrieves the Visitor for the given key creating a new Visitor if not seen.
func (vs *Visitors) Fetch(key string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[key]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[key] = v
	return v
}

// Len reports how many visitors are tracked.
func (vs *Visitors) Len() int {
	vs.Lock()
	defer vs.Unlock()
	return len(vs.val)
}

// cleanup deletes a Visitor from Visitors if they have not been seen in over an hour.
// cleanup runs at most once a minute.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()

	if time.Since(vs.lastCleanup) < cleanupInterval {
		return
	}

	vs.lastCleanup = time.Now().UTC()
	for key, v := range vs.val {
		if time.Since(v.LastSeen) > visitorTTL {
			delete(vs.val, key)
		}
	}
}

// RateLimit encloses the Visitors map and serves the http.Handler
//
// Visitors are told apart by ClientIP.
// An API key a client sends is not verified, so it never picks the bucket.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
//
// If we need anything more sophisticated, https://github.com/didip/tollbooth is
// likely a better option.
func RateLimit(visitors *Visitors) Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !visitors.Fetch(VisitorKey(r)).Limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			visitors.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}

// VisitorKey identifies who made r for rate limiting.
func VisitorKey(r *http.Request) string { return "ip:" + ClientIP(r) }
