// Command ginger extracts request parameters from the command line or over HTTP.
//
//	ginger parse --prefix /users --method PUT --body 'age=30' 'http://localhost/users/name/ann?_limit=5'
//	ginger serve --prefix /api
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
