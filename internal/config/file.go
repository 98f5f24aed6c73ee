package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when --config is not given.
const DefaultFile = "reseq.yaml"

// ErrInvalidYAML indicates the config file could not be parsed.
var ErrInvalidYAML = errors.New("config: invalid YAML")

// LoadFile overlays the YAML file at path onto cfg. Keys absent from the file
// keep their current values. Returns (true, nil) if the file was found and
// parsed, (false, nil) if it does not exist, or (false, error) on failure.
// Unknown keys are rejected so typos don't silently fall back to defaults.
func LoadFile(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil // empty file
		}
		return false, fmt.Errorf("parse %s: %w: %v", path, ErrInvalidYAML, err)
	}
	return true, nil
}
