package ranger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/http/middleware"
	"github.com/xy-planning-network/ginger/http/params"
	"github.com/xy-planning-network/ginger/http/router"
	"github.com/xy-planning-network/ginger/logger"
)

// A RangerOption configures a *Ranger either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some RangerOptions require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithEnv is an example of the first.
// An unexported field on the passed in *Ranger is updated with the enclosed value.
//
// WithRouter is an example of the second.
// The *Ranger's Router is replaced only when the closure it returns is called,
// once the *http.Server it is attached to is known.
type RangerOption func(rng *Ranger) (OptFollowup, error)
type OptFollowup func() error

// WithContext exposes the provided context.Context to the ginger app.
// Guide stops when ctx is done.
func WithContext(ctx context.Context) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if ctx == nil {
			return nil, fmt.Errorf("%w: nil context", ginger.ErrMissingData)
		}

		rng.ctx = ctx
		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is set to Development.
func WithEnv(env string) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		e := ginger.Environment(env)
		if err := e.Valid(); err != nil {
			e = ginger.EnvVarOrEnv(environmentEnvVar, ginger.Development)
		}

		rng.env = e
		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the ginger app.
func WithLogger(l logger.Logger) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if l == nil {
			return nil, fmt.Errorf("%w: nil logger", ginger.ErrMissingData)
		}

		rng.l = l
		return nil, nil
	}
}

// WithParamOptions appends opts to those every route extracts parameters with.
//
// WithParamOptions has no effect on a router passed in with WithRouter.
func WithParamOptions(opts ...params.Option) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.paramOpts = append(rng.paramOpts, opts...)
		return nil, nil
	}
}

// WithRateLimit limits each visitor of the routes registered on the *Ranger
// with vs.
// A nil vs turns rate limiting off.
func WithRateLimit(vs *middleware.Visitors) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		rng.visitors = vs
		return nil, nil
	}
}

// WithRouter constructs a followup option that, when called,
// exposes the *router.Router to the ginger app.
func WithRouter(r *router.Router) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if r == nil {
			return nil, fmt.Errorf("%w: nil router", ginger.ErrMissingData)
		}

		return func() error {
			rng.Router = r
			rng.srv.Handler = r
			rng.l.Debug(fmt.Sprintf("using router %T", r), nil)

			return nil
		}, nil
	}
}

// WithServer exposes the *http.Server to the ginger app.
// The *Ranger sets the server's Handler.
func WithServer(s *http.Server) RangerOption {
	return func(rng *Ranger) (OptFollowup, error) {
		if s == nil {
			return nil, fmt.Errorf("%w: nil server", ginger.ErrMissingData)
		}

		rng.srv = s
		return nil, nil
	}
}
