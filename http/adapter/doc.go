/*
Package adapter extracts request parameters inside gin and echo applications.

Gin and Echo work like [middleware.ExtractParams],
stashing the [*params.Parameters] in both the framework's context and the request's context.Context,
so handlers using either framework or net/http can retrieve them.

Routes are best registered with a catch-all wildcard,
leaving the rest of the path for params.ParsePath:

	g := gin.New()
	g.GET("/users/*rest", adapter.Gin(""), listUsers)

	e := echo.New()
	e.GET("/users/*", listUsers, adapter.Echo(""))

Given an empty prefix, both use the static part of the matched route, "/users" above.
*/
package adapter
