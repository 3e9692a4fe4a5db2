package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/hedgehog-cloud/hublfix/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
)

var log = logging.GetLogger("config")

// Load returns the validated configuration for root, the directory that
// holds the project config and against which templates.dir is resolved.
// overrides take precedence over every other layer.
func Load(root string, overrides map[string]interface{}) (*Config, error) {
	if root == "" {
		root = "."
	}

	k, sources, err := newKoanf(root, overrides)
	if err != nil {
		return nil, err
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	cfg.Root = root
	cfg.Sources = sources

	canonical, err := loadCanonical(root, cfg.Inline.CanonicalFile)
	if err != nil {
		return nil, err
	}
	cfg.Canonical = canonical

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Debug().
		Str("root", root).
		Strs("sources", sources).
		Str("templates_dir", cfg.Templates.Dir).
		Msg("Configuration loaded")

	return &cfg, nil
}

// Default returns the embedded defaults without reading any file or the
// environment.
func Default() *Config {
	cfg, err := decode(defaultConfig)
	if err != nil {
		// The embedded defaults are part of the binary.
		panic(err)
	}
	cfg.Root = "."
	cfg.Canonical = DefaultCanonical()
	return cfg
}

func decode(data []byte) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse configuration")
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

func loadCanonical(root, path string) (string, error) {
	if path == "" {
		return DefaultCanonical(), nil
	}
	full := resolve(root, path)
	data, err := os.ReadFile(full)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to read canonical block from %s", full).
			WithDetail("path", full)
	}
	text := strings.TrimRight(string(data), "\r\n")
	if strings.TrimSpace(text) == "" {
		return "", errors.Newf(errors.ErrConfigValid, "canonical block file %s is empty", full).
			WithDetail("path", full)
	}
	return text, nil
}

// Validate checks values that cannot be decoded wrong but can still be
// unusable, such as patterns that do not compile.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Templates.Dir) == "" {
		return invalid("templates.dir", "must not be empty")
	}
	if c.Templates.Glob == "" {
		return invalid("templates.glob", "must not be empty")
	}
	if _, err := filepath.Match(c.Templates.Glob, ""); err != nil {
		return invalid("templates.glob", err.Error())
	}

	patterns := map[string]string{
		"scan.marker":        c.Scan.Marker,
		"scan.closing":       c.Scan.Closing,
		"annotation.pattern": c.Annotation.Pattern,
		"inline.pattern":     c.Inline.Pattern,
	}
	for key, pattern := range patterns {
		if pattern == "" {
			return invalid(key, "must not be empty")
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return invalid(key, err.Error())
		}
		if key == "scan.marker" && re.MatchString("") {
			return invalid(key, "must not match an empty string")
		}
	}

	if c.Annotation.Lookback < 0 {
		return invalid("annotation.lookback", "must not be negative")
	}
	if c.Consolidate.Keep < 0 {
		return invalid("consolidate.keep", "must not be negative")
	}
	if len(c.Inline.AllowedNames) == 0 {
		return invalid("inline.allowed_names", "must name at least one variable")
	}

	switch c.Output.Format {
	case FormatAuto, FormatTerm, FormatText, FormatJSON:
	default:
		return invalid("output.format", "must be one of auto, term, text, json")
	}

	if strings.TrimSpace(c.Canonical) == "" {
		return invalid("inline.canonical_file", "canonical block is empty")
	}
	return nil
}

func invalid(key, reason string) error {
	return errors.Newf(errors.ErrConfigValid, "invalid %s: %s", key, reason).WithDetail("key", key)
}

func resolve(root, path string) string {
	if filepath.IsAbs(path) || root == "" {
		return path
	}
	return filepath.Join(root, path)
}
