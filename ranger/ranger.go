package ranger

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"
	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/http/middleware"
	"github.com/xy-planning-network/ginger/http/params"
	"github.com/xy-planning-network/ginger/http/router"
	"github.com/xy-planning-network/ginger/logger"
)

// A Ranger manages and exposes all components of a ginger app to one another.
type Ranger struct {
	*router.Router

	cancel    context.CancelFunc
	ctx       context.Context
	env       ginger.Environment
	l         logger.Logger
	paramOpts []params.Option
	srv       *http.Server
	url       *url.URL
	visitors  *middleware.Visitors
}

// New constructs a Ranger from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(opts ...RangerOption) (*Ranger, error) {
	r := &Ranger{url: ginger.EnvVarOrURL(BaseURLEnvVar, defaultBaseURL)}
	followups := make([]OptFollowup, 0)

	// NOTE: calling an option configures the *Ranger under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Ranger
	// until either (1) user supplied RangerOptions or (2) default RangerOptions
	// configure the *Ranger first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ginger.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	if r.l == nil {
		r.l = logger.New(logger.WithEnv(r.env))
	}

	if r.ctx == nil {
		r.ctx = context.Background()
	}
	r.ctx, r.cancel = context.WithCancel(r.ctx)

	if r.srv == nil {
		r.srv = defaultServer(r.ctx, r.url)
	}

	r.Router = defaultRouter(r.env, r.l, append(defaultParamOpts(r.l), r.paramOpts...))
	r.srv.Handler = r.Router

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", ginger.ErrBadConfig, err)
		}
	}

	r.l.Debug(fmt.Sprintf("ranger configured for %s at %s", r.env, r.url), nil)

	return r, nil
}

// defaultOpts are the RangerOptions applied before those passed to New.
func defaultOpts() []RangerOption {
	return []RangerOption{
		WithEnv(""),
		WithRateLimit(defaultVisitors()),
	}
}

// Env returns the Environment the ginger app runs in.
func (r *Ranger) Env() ginger.Environment { return r.env }

// EmitLogger returns the logger.Logger the ginger app uses.
func (r *Ranger) EmitLogger() logger.Logger { return r.l }

// URL returns the base URL the ginger app runs on.
func (r *Ranger) URL() *url.URL { return r.url }

// Handle applies the router.Route to the *Ranger,
// rate limiting it if the *Ranger is configured to.
func (r *Ranger) Handle(route router.Route) {
	r.HandleRoutes([]router.Route{route})
}

// HandleRoutes registers the set of router.Route on the *Ranger,
// rate limiting them if the *Ranger is configured to.
func (r *Ranger) HandleRoutes(routes []router.Route, middlewares ...middleware.Adapter) {
	if r.visitors != nil {
		middlewares = append([]middleware.Adapter{middleware.RateLimit(r.visitors)}, middlewares...)
	}

	r.Router.HandleRoutes(routes, middlewares...)
}

// Guide begins the web server.
//
// These, and (*Ranger).Shutdown, stop Guide:
//
// - os.Interrupt
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
//
// Guide returns an error if the web server cannot listen.
func (r *Ranger) Guide() error {
	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	defer signal.Stop(ch)

	go func() {
		select {
		case s := <-ch:
			r.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
			r.cancel()
		case <-r.ctx.Done():
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		r.l.Info(fmt.Sprintf("running web server at %s", r.srv.Addr), nil)
		if err := r.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			err = fmt.Errorf("could not listen: %w", err)
			r.l.Error(err.Error(), nil)
			errCh <- err
			r.cancel()
		}
	}()

	<-r.ctx.Done()
	if err := r.Shutdown(); err != nil {
		return err
	}

	select {
	case err := <-errCh:
		return err
	default:
		return nil
	}
}

// Shutdown shutdowns the web server.
func (r *Ranger) Shutdown() error {
	r.cancel()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	r.l.Info("shutting down web server", nil)
	err := r.srv.Shutdown(shutdownCtx)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	r.l.Info("web server shutdown successfully", nil)
	return nil
}
