package logger_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/logger"
)

func TestLogContextMarshalText(t *testing.T) {
	// Arrange
	lc := logger.LogContext{}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, []byte("{}"), b)

	// Arrange
	lc = logger.LogContext{Data: map[string]any{"test": "data"}}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"data":{"test":"data"}}`, string(b))

	// Arrange
	lc = logger.LogContext{Error: errors.New("test")}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	require.Equal(t, `{"error":"test"}`, string(b))

	// Arrange
	expected := map[string]any{
		"request": map[string]any{
			"method": http.MethodGet,
			"url":    "https://example.com/users/id/1?_limit=10&oauth_token=" + ginger.LogMaskVal,
			"header": map[string]any{
				"Authorization": []any{ginger.LogMaskVal},
				"X-Api-Key":     []any{ginger.LogMaskVal},
			},
		},
	}

	r := httptest.NewRequest(http.MethodGet, "https://example.com/users/id/1?oauth_token=secret&_limit=10", nil)
	r.Header.Set("Authorization", "oauth_token secret")
	r.Header.Set("X-Api-Key", "key")
	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m := make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)
	require.Equal(t, "oauth_token secret", r.Header.Get("Authorization"))

	// Arrange
	expected = map[string]any{
		"request": map[string]any{
			"method": http.MethodPost,
			"url":    "https://example.com/test",
			"header": map[string]any{
				"Content-Type": []any{"application/x-www-form-urlencoded"},
			},
			"form": map[string]any{
				"name":        []any{"Edmund Husserl"},
				"oauth_token": []any{ginger.LogMaskVal},
			},
		},
	}

	form := url.Values{}
	form.Set("name", "Edmund Husserl")
	form.Set("oauth_token", "secret")

	r = httptest.NewRequest(http.MethodPost, "https://example.com/test", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.Nil(t, r.ParseForm())

	lc = logger.LogContext{Request: r}

	// Act
	b, err = lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m = make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)
	require.Equal(t, "secret", r.PostForm.Get("oauth_token"))
}

func TestLogContextMarshalTextMasksPathAndHeaders(t *testing.T) {
	// Arrange
	expected := map[string]any{
		"request": map[string]any{
			"method": http.MethodGet,
			"url":    "https://example.com/api/oauth_token/" + ginger.LogMaskVal + "/name/ann",
			"header": map[string]any{
				"X-Client-Key": []any{ginger.LogMaskVal},
			},
		},
	}

	r := httptest.NewRequest(http.MethodGet, "https://example.com/api/oauth_token/SECRET/name/ann", nil)
	r.Header.Set("X-Client-Key", "topsecret")
	lc := logger.LogContext{Request: r, MaskedHeaders: []string{"X-Client-Key"}}

	// Act
	b, err := lc.MarshalText()

	// Assert
	require.Nil(t, err)
	m := make(map[string]any)
	require.Nil(t, json.Unmarshal(b, &m))
	require.Equal(t, expected, m)
	require.Equal(t, "/api/oauth_token/SECRET/name/ann", r.URL.Path)
	require.Equal(t, "topsecret", r.Header.Get("X-Client-Key"))
}

func TestLogContextString(t *testing.T) {
	require.Equal(t, `{"data":{"a":1}}`, logger.LogContext{Data: map[string]any{"a": 1}}.String())
	require.Contains(t, logger.LogContext{Data: map[string]any{"ch": make(chan int)}}.String(), `"error"`)
}

func TestCurrentCaller(t *testing.T) {
	var caller string
	func() {
		caller = logger.CurrentCaller()
	}()

	require.Regexp(t, `logger/context_test\.go:\d+$`, caller)
}
