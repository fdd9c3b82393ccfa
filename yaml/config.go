// Package yaml loads lecturekit configuration files with gopkg.in/yaml.v3.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/lecturekit"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the configuration file at path. An empty path returns
// the defaults. Unknown keys are rejected so typos in the image table do
// not go unnoticed.
func LoadConfig(path string) (*lecturekit.Config, error) {
	if path == "" {
		return lecturekit.DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, lecturekit.Errorf(lecturekit.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration and fills in defaults.
func ParseConfig(data []byte) (*lecturekit.Config, error) {
	var cfg lecturekit.Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, lecturekit.Errorf(lecturekit.EINVALID, "invalid config: %v", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
