/*
The middleware package defines what a middleware is in ginger and a set of basic middlewares.

The available middlewares are:
- CORS
- ExtractParams
- InjectIPAddress
- LogRequest
- RateLimit
- ReportPanic
- RequestID

Since ExtractParams depends on the prefix a route is registered under,
http/router adds it to each route itself.
The rest of a chain can be copy-pasted:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.ReportPanic(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.CORS(origin),
	}

RateLimit keys on ClientIP; put it after InjectIPAddress when behind a proxy.
*/
package middleware
