package config

// Config is the effective hublfix configuration.
type Config struct {
	Templates   Templates   `koanf:"templates" toml:"templates"`
	Scan        Scan        `koanf:"scan" toml:"scan"`
	Annotation  Annotation  `koanf:"annotation" toml:"annotation"`
	Inline      Inline      `koanf:"inline" toml:"inline"`
	Consolidate Consolidate `koanf:"consolidate" toml:"consolidate"`
	Output      Output      `koanf:"output" toml:"output"`

	// Root is the directory relative paths are resolved against.
	Root string `koanf:"-" toml:"-"`
	// Canonical is the replacement block text, read once at load time.
	Canonical string `koanf:"-" toml:"-"`
	// Sources lists the configuration files that were merged, in order.
	Sources []string `koanf:"-" toml:"-"`
}

// Templates selects the documents to work on.
type Templates struct {
	Dir     string   `koanf:"dir" toml:"dir"`
	Files   []string `koanf:"files" toml:"files"`
	Glob    string   `koanf:"glob" toml:"glob"`
	Exclude []string `koanf:"exclude" toml:"exclude"`
}

// Scan configures block detection.
type Scan struct {
	Marker  string `koanf:"marker" toml:"marker"`
	Closing string `koanf:"closing" toml:"closing"`
}

// Annotation configures the comment attached to a block.
type Annotation struct {
	Pattern  string `koanf:"pattern" toml:"pattern"`
	Lookback int    `koanf:"lookback" toml:"lookback"`
}

// Inline configures legacy statement substitution.
type Inline struct {
	Pattern       string   `koanf:"pattern" toml:"pattern"`
	AllowedNames  []string `koanf:"allowed_names" toml:"allowed_names"`
	CanonicalFile string   `koanf:"canonical_file" toml:"canonical_file"`
}

// Consolidate configures duplicate removal.
type Consolidate struct {
	Keep int `koanf:"keep" toml:"keep"`
}

// Output configures reporting.
type Output struct {
	Format string `koanf:"format" toml:"format"`
}

// Output formats accepted by output.format.
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
)

// TemplatesDir returns templates.dir resolved against Root.
func (c *Config) TemplatesDir() string {
	return resolve(c.Root, c.Templates.Dir)
}
