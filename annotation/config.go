package annotation

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	applog "github.com/lewtec/photocheck/internal/log"
)

// ConfigFileName is the project configuration file looked up by FindProjectRoot.
const ConfigFileName = "photocheck.yaml"

// DefaultExtensions are the image file extensions recognized by ImportFolder.
var DefaultExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".gif", ".tif", ".tiff"}

type Config struct {
	// Database is the database path, relative to the project root unless absolute.
	Database   string        `yaml:"database"`
	Extensions []string      `yaml:"extensions"`
	Recursive  bool          `yaml:"recursive"`
	Logging    LoggingConfig `yaml:"logging"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Database:   "Data/photo.db",
		Extensions: append([]string(nil), DefaultExtensions...),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads filename over DefaultConfig and validates the result.
func LoadConfig(filename string) (*Config, error) {
	ret := DefaultConfig()
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("while parsing config %q: %w", filename, err)
	}
	if err := ret.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", filename, err)
	}
	return ret, nil
}

// Validate checks the config and lower-cases the extensions in place.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Database) == "" {
		return fmt.Errorf("database path is empty")
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("no image extensions configured")
	}
	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("extension %q must start with a dot", c.Extensions[i])
		}
		c.Extensions[i] = ext
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}

// LogOptions converts the logging section for log.Init.
func (c *Config) LogOptions() applog.Options {
	return applog.Options{
		Level:     c.Logging.Level,
		Format:    c.Logging.Format,
		AddSource: c.Logging.Source,
		File:      c.Logging.File,
	}
}

// SaveConfig writes cfg to filename as YAML.
func SaveConfig(filename string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("while encoding config: %w", err)
	}
	return WriteFileAtomic(filename, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}
