package main

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xy-planning-network/ginger/http/params"
	"github.com/xy-planning-network/ginger/http/router"
	"github.com/xy-planning-network/ginger/ranger"
)

func newServeCommand(v *viper.Viper) *cobra.Command {
	var (
		env    string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve requests by responding with the parameters extracted from them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			rng, err := ranger.New(
				ranger.WithContext(ctx),
				ranger.WithEnv(env),
				ranger.WithParamOptions(paramOptions(v)...),
			)
			if err != nil {
				return err
			}

			rng.Handle(router.Route{Path: prefix, Handler: echoParams})

			return rng.Guide()
		},
	}

	cmd.Flags().StringVarP(&env, "env", "e", "", "environment to run in; defaults to ENVIRONMENT")
	cmd.Flags().StringVarP(&prefix, "prefix", "p", "/", "path prefix to serve")

	return cmd
}

// echoParams responds with the parameters extracted from the request.
func echoParams(w http.ResponseWriter, r *http.Request) {
	p, ok := params.FromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = writeJSON(w, p)
}
