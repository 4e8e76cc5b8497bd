package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/http/middleware"
)

func TestRequestID(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	var seen string

	// Act
	middleware.RequestID()(http.HandlerFunc(func(wx http.ResponseWriter, rx *http.Request) {
		val, ok := rx.Context().Value(ginger.RequestIDKey).(string)
		require.True(t, ok)
		seen = val
	})).ServeHTTP(w, r)

	// Assert
	_, err := uuid.Parse(seen)
	require.Nil(t, err)
	require.Equal(t, seen, w.Header().Get(middleware.RequestIDHeader))
}
