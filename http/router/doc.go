/*
Package router registers handlers for path prefixes,
extracting the parameters of every request before it reaches them.

A [Router] leverages a standardized data model - a [Route] -
when registering how requests should be routed.
A path prefix and an HTTP method comprise a [Route].
Whatever follows the prefix is read as parameters by [params.ParsePath],
so a Route for "/users" serves "/users/42" with a Filter of {"id": 42}.
[*Router] utilizes [mux.Router] for its implementation,
and so functions as thin wrapper around that package.

Before a request gets to a handler,
the middlewares added with OnEveryRequest are called,
then [middleware.ExtractParams] for the Route's full prefix,
then any middlewares added to the Route in the order they appear.

A [Router] made with Subrouter carries its prefix into the Routes it registers:

	api := r.Subrouter("/api/v1")
	api.Handle(router.Route{Path: "/users", Method: http.MethodGet, Handler: listUsers})

extracts parameters following "/api/v1/users".
*/
package router
