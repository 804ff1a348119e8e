// Copyright © 2024 Galvanized Logic Inc.

package maxscene

// configfile.go reads decoder configuration from disk, the same way
// load/shd.go reads shader descriptions: a small YAML document mapped
// directly onto a struct, no schema validation beyond what decoding
// already gives for free.

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the options Config exposes. Only the
// settings meaningful outside of process-supplied callbacks (Logger is a
// func value and has no serializable form) are here.
type fileConfig struct {
	Strict bool `yaml:"strict"`
}

// LoadConfigFile reads strict-mode configuration from a YAML file and
// returns it as an Attr, ready to pass to Decode alongside any
// process-supplied options such as Logger.
func LoadConfigFile(path string) (Attr, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("maxscene: reading config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, fmt.Errorf("maxscene: parsing config: %w", err)
	}
	return func(c *Config) {
		if fc.Strict {
			c.strict = true
		}
	}, nil
}
