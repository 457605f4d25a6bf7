package config

import (
	"fmt"
	"os"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

// Job is a saved fence job: customer name, parameter edits and unit prices.
// Values are kept as edit strings so they pass through the same validation
// as interactive edits.
type Job struct {
	Customer string
	Params   map[string]string
	Prices   map[string]string
}

type jobFile struct {
	Customer string         `yaml:"customer"`
	Params   map[string]any `yaml:"params"`
	Prices   map[string]any `yaml:"prices"`
}

// LoadJob reads a YAML job file.
func LoadJob(path string) (*Job, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read job file: %w", err)
	}
	return ParseJob(raw)
}

// ParseJob decodes YAML job content. Numeric scalars are accepted and turned
// back into strings.
func ParseJob(raw []byte) (*Job, error) {
	var jf jobFile
	if err := yaml.Unmarshal(raw, &jf); err != nil {
		return nil, fmt.Errorf("decode job file: %w", err)
	}

	params, err := stringMap(jf.Params)
	if err != nil {
		return nil, fmt.Errorf("params: %w", err)
	}
	prices, err := stringMap(jf.Prices)
	if err != nil {
		return nil, fmt.Errorf("prices: %w", err)
	}

	return &Job{
		Customer: jf.Customer,
		Params:   params,
		Prices:   prices,
	}, nil
}

func stringMap(in map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for k, v := range in {
		if v == nil {
			out[k] = ""
			continue
		}
		s, err := cast.ToStringE(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}
		out[k] = s
	}
	return out, nil
}
