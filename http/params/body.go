package params

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// defaultMaxBodyBytes matches the cap net/http puts on form bodies.
const defaultMaxBodyBytes int64 = 10 << 20

var (
	// ErrBodyConsumed is returned when a Body is read a second time.
	ErrBodyConsumed = errors.New("params: body already consumed")

	// ErrBodyTooLarge is returned when a Body holds more than its cap.
	ErrBodyTooLarge = errors.New("params: body too large")
)

// A Body is a request body that can be read only once.
//
// A nil *Body reads as empty.
type Body struct {
	r        io.Reader
	max      int64
	consumed bool
}

// NewBody wraps r, refusing a body longer than the net/http form limit.
func NewBody(r io.Reader) *Body {
	return &Body{r: r, max: defaultMaxBodyBytes}
}

// NewLimitedBody wraps r, refusing a body longer than limit bytes.
// A limit of 0 or less reads r in full.
func NewLimitedBody(r io.Reader, limit int64) *Body {
	return &Body{r: r, max: limit}
}

// ReadAll reads the entire body.
// A body longer than its cap is not returned at all; ReadAll reports ErrBodyTooLarge instead.
// Every call after the first returns ErrBodyConsumed.
func (b *Body) ReadAll() ([]byte, error) {
	if b == nil {
		return nil, nil
	}

	if b.consumed {
		return nil, ErrBodyConsumed
	}

	b.consumed = true
	if b.r == nil {
		return nil, nil
	}

	if b.max <= 0 {
		return io.ReadAll(b.r)
	}

	// NOTE: one byte past the cap tells a full body from a cut off one.
	buf, err := io.ReadAll(io.LimitReader(b.r, b.max+1))
	if err != nil {
		return nil, err
	}

	if int64(len(buf)) > b.max {
		return nil, fmt.Errorf("%w: over %d bytes", ErrBodyTooLarge, b.max)
	}

	return buf, nil
}

// Consumed reports whether ReadAll has been called.
func (b *Body) Consumed() bool { return b != nil && b.consumed }

// ParseBody gathers the raw data parameters sent with a request using method.
//
// POST uses form, the fields the server already decoded.
// PUT and DELETE read body and decode it as form-urlencoded;
// malformed pairs are dropped and the rest kept.
// Any other method has no data parameters.
//
// A key repeated in the source takes its last value.
func ParseBody(method string, form url.Values, body *Body) (map[string]string, error) {
	data := make(map[string]string)

	switch strings.ToUpper(method) {
	case http.MethodPost:
		MergeQuery(data, form)

	case http.MethodPut, http.MethodDelete:
		b, err := body.ReadAll()
		if err != nil {
			return data, err
		}

		// NOTE: url.ParseQuery keeps every well-formed pair
		// and reports only the first malformed one, which is ignored here.
		vals, _ := url.ParseQuery(string(b))
		MergeQuery(data, vals)
	}

	return data, nil
}
