/*
Package ginger holds the pieces shared across a ginger app:
sentinel errors, context keys, environments and helpers for reading configuration from environment variables.

The request parameter extractor lives in package params, under http/params.
*/
package ginger
