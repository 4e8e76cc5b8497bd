package params

import (
	"context"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/logger"
)

// DefaultAPIKeyHeader is the header an API key is read from, unless WithAPIKeyHeader says otherwise.
const DefaultAPIKeyHeader = "X-Api-Key"

// An Input is everything about a request parameters are extracted from.
type Input struct {
	// Prefix is the part of Path consumed by routing.
	Prefix string

	// Path is the escaped request path.
	Path string

	Query url.Values

	Method string

	// Form holds the fields the server decoded from a POST body.
	Form url.Values

	// Body is read for PUT and DELETE requests.
	Body *Body

	Header http.Header

	// RemoteAddr is the client address, with or without a port.
	RemoteAddr string
}

// Parameters are the parameters extracted from one request.
type Parameters struct {
	filter   Map
	data     Map
	settings *Settings
}

// Filter returns a copy of the parameters from the path and query string.
// Reserved parameters are never included.
func (p *Parameters) Filter() Map { return p.filter.clone() }

// Data returns a copy of the parameters from the request body.
// An OAuth token is never included.
func (p *Parameters) Data() Map { return p.data.clone() }

// Settings returns the values swept out of reserved parameters and headers.
func (p *Parameters) Settings() *Settings { return p.settings }

// An Option configures extraction.
type Option func(*config)

type config struct {
	apiKeyHeader string
	ipResolver   func(*http.Request) string
	log          logger.Logger
	maxBodyBytes int64
}

func newConfig(opts []Option) *config {
	c := &config{
		apiKeyHeader: DefaultAPIKeyHeader,
		maxBodyBytes: defaultMaxBodyBytes,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithAPIKeyHeader reads the API key from the named header.
func WithAPIKeyHeader(name string) Option {
	return func(c *config) {
		if name != "" {
			c.apiKeyHeader = name
		}
	}
}

// WithIPResolver determines the client IP of an *http.Request with fn,
// instead of using *http.Request.RemoteAddr.
func WithIPResolver(fn func(*http.Request) string) Option {
	return func(c *config) {
		c.ipResolver = fn
	}
}

// WithLogger reports problems reading a request with l.
func WithLogger(l logger.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// WithMaxBodyBytes caps how much of a PUT or DELETE body, or a multipart POST body,
// FromRequest reads.
// A PUT or DELETE body over the cap yields no data parameters.
// A value of 0 or less removes the PUT and DELETE cap.
func WithMaxBodyBytes(n int64) Option {
	return func(c *config) {
		c.maxBodyBytes = n
	}
}

// Extract builds Parameters from in.
//
// Filter parameters come from the path after in.Prefix, overlaid by the query string.
// Data parameters come from the body, according to in.Method.
// Both are run through Coerce.
// Reserved parameters are then moved into Settings,
// along with an OAuth token from the Authorization header,
// the API key header and the client IP.
//
// Extract never fails: input it cannot make sense of is left as text or dropped.
func Extract(in Input, opts ...Option) *Parameters {
	return newConfig(opts).extract(in, nil)
}

// FromRequest builds Parameters from r, given the prefix of r's path consumed by routing.
//
// FromRequest parses r's form for POST requests
// and reads r.Body for PUT and DELETE requests,
// so r.Body cannot be read again afterwards.
func FromRequest(r *http.Request, prefix string, opts ...Option) *Parameters {
	c := newConfig(opts)

	in := Input{
		Prefix:     prefix,
		Path:       r.URL.EscapedPath(),
		Query:      r.URL.Query(),
		Method:     r.Method,
		Header:     r.Header,
		RemoteAddr: r.RemoteAddr,
	}

	if c.ipResolver != nil {
		in.RemoteAddr = c.ipResolver(r)
	}

	switch r.Method {
	case http.MethodPost:
		if err := parseForm(r, c.maxBodyBytes); err != nil && c.log != nil {
			c.log.Warn("failed parsing form", c.logContext(err, r))
		}

		in.Form = r.PostForm

	case http.MethodPut, http.MethodDelete:
		in.Body = NewLimitedBody(r.Body, c.maxBodyBytes)
	}

	return c.extract(in, r)
}

func (c *config) extract(in Input, r *http.Request) *Parameters {
	raw := ParsePath(in.Path, in.Prefix)
	MergeQuery(raw, in.Query)
	filter := CoerceAll(raw)

	rawData, err := ParseBody(in.Method, in.Form, in.Body)
	if err != nil && c.log != nil {
		c.log.Warn("failed reading body", c.logContext(err, r))
	}

	data := CoerceAll(rawData)

	s := new(Settings)
	s.sweep(filter, data, in, c.apiKeyHeader)

	return &Parameters{filter: filter, data: data, settings: s}
}

// logContext describes a failure reading r, keeping its API key header out of the log.
func (c *config) logContext(err error, r *http.Request) *logger.LogContext {
	return &logger.LogContext{Error: err, Request: r, MaskedHeaders: []string{c.apiKeyHeader}}
}

// parseForm fills r.PostForm, from a multipart body if r has one.
func parseForm(r *http.Request, maxBytes int64) error {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if ct == "multipart/form-data" {
		if maxBytes <= 0 {
			maxBytes = defaultMaxBodyBytes
		}

		return r.ParseMultipartForm(maxBytes)
	}

	return r.ParseForm()
}

// hostOf strips any port from addr.
func hostOf(addr string) string {
	addr = strings.TrimSpace(addr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}

	return addr
}

// NewContext stashes p, and its Settings, in ctx.
func NewContext(ctx context.Context, p *Parameters) context.Context {
	ctx = context.WithValue(ctx, ginger.ParamsKey, p)
	return NewSettingsContext(ctx, p.Settings())
}

// FromContext retrieves the *Parameters stashed by NewContext.
func FromContext(ctx context.Context) (*Parameters, bool) {
	p, ok := ctx.Value(ginger.ParamsKey).(*Parameters)
	return p, ok && p != nil
}
