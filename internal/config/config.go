// Package config loads server settings from the environment and an
// optional TOML file.
//
// Every key can be set through an IMAGE_STYLE_ prefixed environment
// variable (IMAGE_STYLE_LOG_LEVEL, IMAGE_STYLE_OUTPUT_DIR, ...). Environment
// values take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "IMAGE_STYLE"

// DefaultFileName is looked up in the working directory when no explicit
// config file is given.
const DefaultFileName = "image-style-mcp"

// Config holds the validated server settings.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// OutputDir receives stylized images.
	OutputDir string

	// MaxConcurrent bounds the number of images processed at once.
	MaxConcurrent int

	// MaxInputBytes rejects larger source files before decoding.
	MaxInputBytes int64
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("output_dir", filepath.Join(os.TempDir(), "image-style-mcp"))
	v.SetDefault("max_concurrent", runtime.NumCPU())
	v.SetDefault("max_input_bytes", 50<<20)
}

// Load reads the configuration. If path is empty, image-style-mcp.toml in
// the working directory is used when present; a missing default file is
// not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultFileName)
		v.SetConfigType("toml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{
		LogLevel:      strings.ToLower(v.GetString("log_level")),
		OutputDir:     v.GetString("output_dir"),
		MaxConcurrent: v.GetInt("max_concurrent"),
		MaxInputBytes: v.GetInt64("max_input_bytes"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("max_concurrent must be at least 1, got %d", c.MaxConcurrent)
	}
	if c.MaxInputBytes < 1 {
		return fmt.Errorf("max_input_bytes must be positive, got %d", c.MaxInputBytes)
	}
	return nil
}

// Level maps LogLevel to a zerolog level.
func (c *Config) Level() (zerolog.Level, error) {
	switch c.LogLevel {
	case "debug":
		return zerolog.DebugLevel, nil
	case "info", "":
		return zerolog.InfoLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}
