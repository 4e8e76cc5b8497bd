package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/http/params"
)

// Config keys, each settable by flag, environment variable or config file.
const (
	apiKeyHeaderKey = "api-key-header"
	maxBodyBytesKey = "max-body-bytes"
	outputKey       = "output"
)

func newRootCommand() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "ginger",
		Short: "ginger extracts request parameters",
		Long: `ginger reads filter parameters from a request's path and query string,
data parameters from its body, and settings from reserved parameters and headers.

Flags take precedence over environment variables (API_KEY_HEADER, MAX_BODY_BYTES),
which take precedence over the file passed to --config.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			return loadConfig(v, path)
		},
	}

	pflags := cmd.PersistentFlags()
	pflags.String(apiKeyHeaderKey, params.DefaultAPIKeyHeader, "header the API key is read from")
	pflags.Int64(maxBodyBytesKey, 0, "most bytes of a body to read; 0 keeps the default")
	pflags.StringP(outputKey, "o", string(outputJSON), "output format (json, yaml)")
	pflags.String("config", "", "config file (toml, yaml or json)")

	_ = v.BindPFlag(apiKeyHeaderKey, pflags.Lookup(apiKeyHeaderKey))
	_ = v.BindPFlag(maxBodyBytesKey, pflags.Lookup(maxBodyBytesKey))
	_ = v.BindPFlag(outputKey, pflags.Lookup(outputKey))
	_ = v.BindEnv(apiKeyHeaderKey, "API_KEY_HEADER")
	_ = v.BindEnv(maxBodyBytesKey, "MAX_BODY_BYTES")

	cmd.AddCommand(newParseCommand(v), newServeCommand(v))

	return cmd
}

// loadConfig reads the config file at path into v.
// An empty path reads nothing.
func loadConfig(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("%w: %s", ginger.ErrBadConfig, err)
	}

	return nil
}

// paramOptions builds the params.Option the config in v describes.
func paramOptions(v *viper.Viper) []params.Option {
	opts := []params.Option{params.WithAPIKeyHeader(v.GetString(apiKeyHeaderKey))}
	if n := v.GetInt64(maxBodyBytesKey); n > 0 {
		opts = append(opts, params.WithMaxBodyBytes(n))
	}

	return opts
}
