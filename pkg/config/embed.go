package config

import (
	_ "embed"
	"errors"
	"strings"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

//go:embed embedded/canonical.hubl
var canonicalBlock string

// GetDefaultsContent returns the embedded default configuration file.
func GetDefaultsContent() string {
	return string(defaultConfig)
}

// DefaultCanonical returns the built-in canonical constants block.
func DefaultCanonical() string {
	return strings.TrimRight(canonicalBlock, "\r\n")
}

// rawBytesProvider implements koanf provider for raw bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}
