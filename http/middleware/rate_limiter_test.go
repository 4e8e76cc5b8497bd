package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/ginger/http/middleware"
	"github.com/xy-planning-network/ginger/http/params"
)

func TestVisitorFetch(t *testing.T) {
	t.Run("Serial", func(t *testing.T) {
		// Arrange
		vs := middleware.NewVisitors()

		// Act
		v1 := vs.Fetch("127.0.0.1")
		time.Sleep(1 * time.Millisecond)
		v2 := vs.Fetch("127.0.0.1")

		// Assert
		require.Equal(t, v1.Limiter, v2.Limiter)
		require.True(t, v1.LastSeen.Before(v2.LastSeen))
		require.Equal(t, 1, vs.Len())
	})

	t.Run("Concurrent", func(t *testing.T) {
		// Arrange
		var wg sync.WaitGroup
		vs := middleware.NewVisitors()
		for i := 0; i < 100; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()

				// Act
				vs.Fetch("127.0.0.1")
			}()
		}

		wg.Wait()

		// Assert
		require.Equal(t, 1, vs.Len())
	})
}

func TestVisitorKey(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.7:1234"

	// Act + Assert
	require.Equal(t, "ip:203.0.113.7", middleware.VisitorKey(r))

	// Arrange
	r = r.WithContext(params.NewSettingsContext(r.Context(), &params.Settings{APIKey: "k1"}))

	// Act + Assert
	require.Equal(t, "ip:203.0.113.7", middleware.VisitorKey(r))
}

func TestRateLimit(t *testing.T) {
	// Arrange
	vs := middleware.NewVisitorsWithLimit(0, 2)
	h := middleware.RateLimit(vs)(NoopHandler())

	serve := func(remote string) int {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = remote
		h.ServeHTTP(w, r)
		return w.Code
	}

	// Act + Assert
	require.Equal(t, http.StatusOK, serve("203.0.113.7:1"))
	require.Equal(t, http.StatusOK, serve("203.0.113.7:2"))
	require.Equal(t, http.StatusTooManyRequests, serve("203.0.113.7:3"))
	require.Equal(t, http.StatusOK, serve("198.51.100.1:1"))
}

func TestRateLimitIgnoresAPIKey(t *testing.T) {
	// Arrange
	vs := middleware.NewVisitorsWithLimit(0, 1)
	h := middleware.Chain(NoopHandler(), middleware.ExtractParams("/"), middleware.RateLimit(vs))

	allowed := 0
	for i := 0; i < 50; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = "203.0.113.7:1234"
		r.Header.Set(params.DefaultAPIKeyHeader, fmt.Sprintf("key-%d", i))

		// Act
		h.ServeHTTP(w, r)
		if w.Code == http.StatusOK {
			allowed++
		}
	}

	// Assert
	require.Equal(t, 1, allowed)
	require.Equal(t, 1, vs.Len())
}
