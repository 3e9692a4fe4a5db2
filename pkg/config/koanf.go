package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/hedgehog-cloud/hublfix/pkg/errors"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// EnvPrefix prefixes environment overrides, e.g. HUBLFIX_TEMPLATES_DIR.
	EnvPrefix = "HUBLFIX_"
	// AppName names the user config directory.
	AppName = "hublfix"
)

// ProjectConfigNames are tried in order in the working root.
var ProjectConfigNames = []string{".hublfix.toml", "hublfix.toml"}

// UserConfigPath returns the user configuration file location.
func UserConfigPath() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, AppName, "config.toml")
}

// newKoanf merges every configuration layer for root. overrides use dotted
// keys such as "templates.dir". It also returns the files that were read.
func newKoanf(root string, overrides map[string]interface{}) (*koanf.Koanf, []string, error) {
	k := koanf.New(".")
	var sources []string

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config
	userPath := UserConfigPath()
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load user config from %s", userPath).
				WithDetail("path", userPath)
		}
		sources = append(sources, userPath)
	}

	// 3. Project config, first name found wins
	for _, filename := range ProjectConfigNames {
		path := filepath.Join(root, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load project config from %s", path).
					WithDetail("path", path)
			}
			sources = append(sources, path)
			break
		}
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Flags
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	return k, sources, nil
}

// envKey maps HUBLFIX_INLINE_ALLOWED_NAMES to inline.allowed_names. Only the
// first underscore separates the section, since keys contain underscores.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
