package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/http/params"
)

type parseFlags struct {
	body       string
	headers    []string
	method     string
	prefix     string
	remoteAddr string
}

func newParseCommand(v *viper.Viper) *cobra.Command {
	f := new(parseFlags)

	cmd := &cobra.Command{
		Use:   "parse URL",
		Short: "Print the parameters extracted from a request to URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := f.request(args[0])
			if err != nil {
				return err
			}

			p := params.FromRequest(r, f.prefix, paramOptions(v)...)

			return writeOutput(cmd.OutOrStdout(), outputFormat(v.GetString(outputKey)), p)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.body, "body", "d", "", "url-encoded request body")
	flags.StringArrayVarP(&f.headers, "header", "H", nil, `request header as "Name: value"; repeatable`)
	flags.StringVarP(&f.method, "method", "X", http.MethodGet, "request method")
	flags.StringVarP(&f.prefix, "prefix", "p", "", "path prefix consumed by routing")
	flags.StringVar(&f.remoteAddr, "remote-addr", "127.0.0.1", "client address")

	return cmd
}

// request builds the *http.Request the flags describe.
func (f *parseFlags) request(target string) (*http.Request, error) {
	method := strings.ToUpper(f.method)

	r, err := http.NewRequest(method, target, strings.NewReader(f.body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ginger.ErrBadFormat, err)
	}

	r.RemoteAddr = f.remoteAddr
	if method == http.MethodPost && f.body != "" {
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	for _, h := range f.headers {
		name, val, ok := strings.Cut(h, ":")
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("%w: header %q is not Name: value", ginger.ErrBadFormat, h)
		}

		r.Header.Add(strings.TrimSpace(name), strings.TrimSpace(val))
	}

	return r, nil
}
