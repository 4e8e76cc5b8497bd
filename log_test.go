package ginger_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/ginger"
)

func TestMask(t *testing.T) {
	for _, tc := range []struct {
		name string
		vals url.Values
		key  string
		want url.Values
	}{
		{"zero", url.Values{}, "", url.Values{}},
		{
			"mismatch",
			url.Values{"oauth_token": []string{"hunter2"}},
			"oauth_tkoen",
			url.Values{"oauth_token": []string{"hunter2"}},
		},
		{
			"match",
			url.Values{"oauth_token": []string{"hunter2"}},
			"oauth_token",
			url.Values{"oauth_token": []string{ginger.LogMaskVal}},
		},
		{
			"squash-multiple",
			url.Values{"password": []string{"hunter2", "hunter3"}},
			"password",
			url.Values{"password": []string{ginger.LogMaskVal}},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ginger.Mask(tc.vals, tc.key)
			require.Equal(t, tc.want, tc.vals)
		})
	}
}

func TestMaskHeader(t *testing.T) {
	// Arrange
	require.Nil(t, ginger.MaskHeader(nil, "Authorization"))

	hm := make(http.Header)
	hm.Set("Authorization", "oauth_token abc")
	hm.Set("Content-Type", "text/plain")

	// Act
	actual := ginger.MaskHeader(hm, "Authorization", "X-Api-Key")

	// Assert
	require.Equal(t, ginger.LogMaskVal, actual.Get("Authorization"))
	require.Equal(t, "text/plain", actual.Get("Content-Type"))
	require.Empty(t, actual.Get("X-Api-Key"))
	require.Equal(t, "oauth_token abc", hm.Get("Authorization"))
}

func TestMaskPath(t *testing.T) {
	keys := []string{"oauth_token", "password"}

	for _, tc := range []struct {
		name string
		path string
		want string
	}{
		{"zero", "", ""},
		{"no-keys", "/users/id/1", "/users/id/1"},
		{"value", "/api/oauth_token/SECRET", "/api/oauth_token/" + ginger.LogMaskVal},
		{"value-then-pair", "/api/password/hunter2/name/ann", "/api/password/" + ginger.LogMaskVal + "/name/ann"},
		{"key-as-value", "/api/oauth_token/password/x", "/api/oauth_token/" + ginger.LogMaskVal + "/x"},
		{"trailing-key", "/api/oauth_token", "/api/oauth_token"},
		{"trailing-slash", "/api/oauth_token/", "/api/oauth_token/"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ginger.MaskPath(tc.path, keys...))
		})
	}
}
