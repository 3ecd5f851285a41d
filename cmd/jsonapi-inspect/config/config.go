// Package config decodes cmd/jsonapi-inspect's runtime options from the
// environment.
package config

import "github.com/joeshaw/envdecode"

// Config controls how jsonapi-inspect reads and re-encodes a document.
type Config struct {
	// ManifestPath points at a YAML resource manifest declaring the
	// resource types a document may reference. ENV: JSONAPI_MANIFEST
	ManifestPath string `env:"JSONAPI_MANIFEST,default=manifest.yaml"`
	// Strict makes an unreadable manifest or an undeclared resource type
	// abort the run instead of being logged as a warning. ENV: JSONAPI_STRICT
	Strict bool `env:"JSONAPI_STRICT,default=false"`
	// Indent controls re-encoded output indentation width. ENV: JSONAPI_INDENT
	Indent int `env:"JSONAPI_INDENT,default=2"`
}

// Load decodes Config from the environment, applying the defaults in the
// struct tags for anything unset.
func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
