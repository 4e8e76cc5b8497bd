package router

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/http/middleware"
	"github.com/xy-planning-network/ginger/http/params"
)

// A Route maps a path prefix and HTTP method to an [http.HandlerFunc].
// Additional [middleware.Adapter] can be called when a server handles
// a request matching the Route.
//
// Path matches itself and anything below it:
// a Route for "/users" handles "/users", "/users/42" and "/users/name/ann".
// An empty Method matches every method.
type Route struct {
	Path        string
	Method      string
	Handler     http.HandlerFunc
	Middlewares []middleware.Adapter
}

// Router routes requests to Routes, extracting their parameters along the way.
type Router struct {
	Env           ginger.Environment
	everyReqStack []middleware.Adapter
	logReq        middleware.Adapter
	paramOpts     []params.Option
	prefix        string
	r             *mux.Router
}

// New constructs a [*Router] for the given environment.
//
// opts configure how every Route extracts parameters.
//
// Paths are routed as sent: repeated slashes are not cleaned away,
// since they are significant to params.ParsePath.
func New(env ginger.Environment, logReq middleware.Adapter, opts ...params.Option) *Router {
	return &Router{Env: env, logReq: logReq, paramOpts: opts, r: mux.NewRouter().SkipClean(true)}
}

// CatchAll sets up a handler for all routes to funnel to for e.g. maintenance mode.
func (r *Router) CatchAll(handler http.HandlerFunc) {
	mws := append([]middleware.Adapter{middleware.ReportPanic(r.Env)}, r.everyReqStack...)
	mws = append(mws, middleware.ExtractParams(r.prefix, r.paramOpts...))
	r.r.PathPrefix("/").Handler(middleware.Chain(handler, mws...))
}

// Handle applies the [Route] to the [*Router].
func (r *Router) Handle(route Route) {
	r.HandleRoutes([]Route{route})
}

// HandleNotFound sets the provided [http.HandlerFunc] as the default function
// for when no other registered Route is matched.
func (r *Router) HandleNotFound(handler http.HandlerFunc) {
	r.r.NotFoundHandler = middleware.Chain(
		handler,
		middleware.ReportPanic(r.Env),
		r.logReq,
	)
}

// HandleRoutes registers the set of Routes on the Router
// and includes all the [middleware.Adapter] on each Route.
//
// Every Route first runs the stack set by OnEveryRequest,
// then middleware.ExtractParams for the Route's full prefix,
// then middlewares, and last of all the Route's own Middlewares.
func (r *Router) HandleRoutes(routes []Route, middlewares ...middleware.Adapter) {
	for _, route := range routes {
		prefix := r.FullPath(route.Path)

		mws := append([]middleware.Adapter{middleware.ReportPanic(r.Env)}, r.everyReqStack...)
		mws = append(mws, middleware.ExtractParams(prefix, r.paramOpts...))
		mws = append(mws, middlewares...)
		mws = append(mws, route.Middlewares...)
		handler := middleware.Chain(route.Handler, mws...)

		for _, mr := range r.match(route.Path) {
			mr.Handler(handler)
			if route.Method != "" {
				mr.Methods(route.Method)
			}
		}
	}
}

// FullPath joins the Router's prefix with path.
func (r *Router) FullPath(path string) string {
	if path == "" || path == "/" {
		if r.prefix == "" {
			return "/"
		}

		return r.prefix
	}

	return r.prefix + path
}

// OnEveryRequest appends the middlewares to the existing stack
// that the [*Router] will apply to every request.
func (r *Router) OnEveryRequest(middlewares ...middleware.Adapter) {
	r.everyReqStack = append(r.everyReqStack, middlewares...)
}

// ServeHTTP responds to an HTTP request.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.r.ServeHTTP(w, req)
}

// Subrouter constructs a [Router] that handles requests to endpoints matching the prefix.
//
// e.g., r.Subrouter("/api/v1") handles requests to endpoints like /api/v1/users
func (r *Router) Subrouter(prefix string) *Router {
	prefix = "/" + strings.Trim(prefix, "/")

	return &Router{
		Env:           r.Env,
		everyReqStack: append([]middleware.Adapter(nil), r.everyReqStack...),
		logReq:        r.logReq,
		paramOpts:     r.paramOpts,
		prefix:        r.prefix + prefix,
		r:             r.r.PathPrefix(prefix).Subrouter(),
	}
}

// match creates the mux routes matching path and everything below it.
func (r *Router) match(path string) []*mux.Route {
	path = strings.TrimSuffix(path, "/")
	if path == "" {
		return []*mux.Route{r.r.PathPrefix("/")}
	}

	return []*mux.Route{
		r.r.Path(path),
		r.r.PathPrefix(path + "/"),
	}
}
