/*
Package req provides ergonomics for handling an HTTP request.

Package req decodes the parameters package params extracts from a request
into a pointer to a struct.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, matching keys in the parameters to fields on the struct, using "schema" tags.
Second, for validating the parameters meet requirements, using "validate" tags.

Coerced values are decoded by their text form:
a list fills a slice field with its items,
and a boolean such as "on" decodes as true.

By leveraging req, handlers can get data out of an HTTP request into its application specific structs.
Notably, the parade of errors that may propagate from such a task
are translated to ginger sentinel errors in order to provide a consistent interface.
*/
package req
