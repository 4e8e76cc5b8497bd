package params_test

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/ginger/http/params"
)

func TestBodyReadAll(t *testing.T) {
	// Arrange
	var nilBody *params.Body

	// Act
	b, err := nilBody.ReadAll()

	// Assert
	require.Nil(t, err)
	require.Empty(t, b)
	require.False(t, nilBody.Consumed())

	// Arrange
	body := params.NewBody(strings.NewReader("a=1"))

	// Act
	b, err = body.ReadAll()

	// Assert
	require.Nil(t, err)
	require.Equal(t, "a=1", string(b))
	require.True(t, body.Consumed())

	// Act
	b, err = body.ReadAll()

	// Assert
	require.ErrorIs(t, err, params.ErrBodyConsumed)
	require.Nil(t, b)

	// Arrange
	body = params.NewBody(nil)

	// Act
	b, err = body.ReadAll()

	// Assert
	require.Nil(t, err)
	require.Empty(t, b)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("connection reset") }

func TestParseBody(t *testing.T) {
	form := url.Values{"name": []string{"ann"}, "tags": []string{"a", "b"}}

	for _, tc := range []struct {
		name     string
		method   string
		form     url.Values
		body     string
		expected map[string]string
	}{
		{"Get", http.MethodGet, form, "a=1", map[string]string{}},
		{"Patch", http.MethodPatch, form, "a=1", map[string]string{}},
		{"Post", http.MethodPost, form, "a=1", map[string]string{"name": "ann", "tags": "b"}},
		{"Post-Nil-Form", http.MethodPost, nil, "", map[string]string{}},
		{"Put", http.MethodPut, form, "a=1&b=2", map[string]string{"a": "1", "b": "2"}},
		{"Delete", http.MethodDelete, nil, "id=9", map[string]string{"id": "9"}},
		{"Lowercase-Method", "put", nil, "a=1", map[string]string{"a": "1"}},
		{"Put-Decoded", http.MethodPut, nil, "q=hello+world&r=%2F", map[string]string{"q": "hello world", "r": "/"}},
		{"Put-Repeated-Key", http.MethodPut, nil, "a=1&a=2", map[string]string{"a": "2"}},
		{"Put-Malformed-Pair-Dropped", http.MethodPut, nil, "a=%zz&b=2", map[string]string{"b": "2"}},
		{"Put-Empty", http.MethodPut, nil, "", map[string]string{}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			actual, err := params.ParseBody(tc.method, tc.form, params.NewBody(strings.NewReader(tc.body)))

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expected, actual)
		})
	}

	t.Run("Read-Error", func(t *testing.T) {
		// Act
		actual, err := params.ParseBody(http.MethodPut, nil, params.NewBody(failingReader{}))

		// Assert
		require.NotNil(t, err)
		require.Empty(t, actual)
	})

	t.Run("Too-Large", func(t *testing.T) {
		// Act
		actual, err := params.ParseBody(http.MethodPut, nil, params.NewLimitedBody(strings.NewReader("amount=123456"), 9))

		// Assert
		require.ErrorIs(t, err, params.ErrBodyTooLarge)
		require.Empty(t, actual)

		// Act
		actual, err = params.ParseBody(http.MethodDelete, nil, params.NewLimitedBody(strings.NewReader("amount=12"), 9))

		// Assert
		require.Nil(t, err)
		require.Equal(t, map[string]string{"amount": "12"}, actual)
	})

	t.Run("Read-Once", func(t *testing.T) {
		// Arrange
		body := params.NewBody(strings.NewReader("a=1"))
		_, err := params.ParseBody(http.MethodPut, nil, body)
		require.Nil(t, err)

		// Act
		actual, err := params.ParseBody(http.MethodPut, nil, body)

		// Assert
		require.ErrorIs(t, err, params.ErrBodyConsumed)
		require.Empty(t, actual)
	})
}
