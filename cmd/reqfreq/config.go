package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// config holds the settings that can come from a YAML file. Flags given on
// the command line take precedence.
type config struct {
	Policy  string   `yaml:"policy"`
	Exec    string   `yaml:"exec"`
	JQ      string   `yaml:"jq"`
	Match   []string `yaml:"match"`
	Reject  []string `yaml:"reject"`
	Top     int      `yaml:"top"`
	Verbose bool     `yaml:"verbose"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Top < 0 {
		return cfg, fmt.Errorf("config %s: top must not be negative", path)
	}
	return cfg, nil
}
