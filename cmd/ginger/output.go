package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/xy-planning-network/ginger"
	"github.com/xy-planning-network/ginger/http/params"
	"gopkg.in/yaml.v3"
)

type outputFormat string

const (
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

// output is the representation of extracted parameters.
type output struct {
	Filter   params.Map       `json:"filter" yaml:"filter"`
	Data     params.Map       `json:"data" yaml:"data"`
	Settings *params.Settings `json:"settings" yaml:"settings"`
}

func newOutput(p *params.Parameters) output {
	return output{Filter: p.Filter(), Data: p.Data(), Settings: p.Settings()}
}

// writeOutput writes p to w in format.
func writeOutput(w io.Writer, format outputFormat, p *params.Parameters) error {
	switch format {
	case outputJSON, "":
		return writeJSON(w, p)

	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newOutput(p)); err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}

		return enc.Close()

	default:
		return fmt.Errorf("%w: output format %q", ginger.ErrNotValid, format)
	}
}

func writeJSON(w io.Writer, p *params.Parameters) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newOutput(p))
}
