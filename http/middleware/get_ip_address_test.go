package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/http/middleware"
)

func TestGetIPAddress(t *testing.T) {
	header := func(name, val string) http.Header {
		h := make(http.Header)
		h.Set(name, val)
		return h
	}

	tcs := []struct {
		name     string
		hm       http.Header
		expected string
	}{
		{"No-Match", make(http.Header), "0.0.0.0"},
		{"Only-Private-IP", header("X-Forwarded-For", "192.168.0.0"), "0.0.0.0"},
		{"Private-Range-End", header("X-Forwarded-For", "10.255.255.255"), "0.0.0.0"},
		{"Private-IPv6", header("X-Forwarded-For", "fd00::1"), "0.0.0.0"},
		{"Only-Public-IP", header("X-Forwarded-For", "1.1.1.1"), "1.1.1.1"},
		{"Public-IPv6", header("X-Forwarded-For", "2606:4700::1111"), "2606:4700::1111"},
		{"Get-Before-Proxy", header("X-Real-Ip", "10.0.0.1,1.1.1.1"), "1.1.1.1"},
		{"Get-First-Public", header("X-Real-Ip", "10.255.255.255,8.8.8.8,1.1.1.1,172.16.0.0"), "1.1.1.1"},
		{"Garbage", header("X-Forwarded-For", "not-an-ip"), "0.0.0.0"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, middleware.GetIPAddress(tc.hm))
		})
	}
}

func TestInjectIPAddress(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "8.8.8.8, 10.0.0.2")

	// Act + Assert
	middleware.InjectIPAddress()(http.HandlerFunc(func(w http.ResponseWriter, rx *http.Request) {
		require.Equal(t, "8.8.8.8", rx.Context().Value(ginger.IpAddrKey))
	})).ServeHTTP(httptest.NewRecorder(), r)
}

func TestClientIP(t *testing.T) {
	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.7:5555"

	// Act + Assert
	require.Equal(t, "203.0.113.7", middleware.ClientIP(r))

	// Arrange
	r = r.Clone(context.WithValue(r.Context(), ginger.IpAddrKey, "0.0.0.0"))

	// Act + Assert
	require.Equal(t, "203.0.113.7", middleware.ClientIP(r))

	// Arrange
	r = r.Clone(context.WithValue(r.Context(), ginger.IpAddrKey, "8.8.8.8"))

	// Act + Assert
	require.Equal(t, "8.8.8.8", middleware.ClientIP(r))

	// Arrange
	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "@"

	// Act + Assert
	require.Equal(t, "@", middleware.ClientIP(r))
}
