// SPDX-License-Identifier: MIT
// Package: dpforge/config
//
// load.go - YAML config file loading.
//
// Contract:
//   - LoadFile starts from Default() and overlays the file's keys, so a
//     partial file is valid (last-wins over defaults, like option
//     resolution elsewhere in the repo).
//   - Unknown keys are rejected: a typoed weight name silently falling back
//     to its default would change the generated design without warning.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML configuration file on top of the defaults. The
// result is NOT validated; callers run Validate after applying any further
// overrides (e.g. command-line flags).
func LoadFile(path string) (Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("LoadFile(%s): %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		// io.EOF means an empty file, which is just "all defaults".
		return Config{}, fmt.Errorf("LoadFile(%s): %w", path, err)
	}
	return cfg, nil
}
