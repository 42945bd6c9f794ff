package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the environment variable prefix, e.g. STRLOG_LOG_LEVEL.
const EnvPrefix = "STRLOG_"

// LogConfig selects how the process logs.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // DEBUG, INFO, WARN, ERROR
	Format string `mapstructure:"format"` // json, text
	Source bool   `mapstructure:"source"`
}

// OutputConfig selects how snapshots are printed.
type OutputConfig struct {
	Format string `mapstructure:"format"` // text, json, nano
}

// Config holds process-wide settings.
type Config struct {
	Log      LogConfig    `mapstructure:"log"`
	Output   OutputConfig `mapstructure:"output"`
	Capacity int          `mapstructure:"capacity"`
}

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatNano = "nano"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:      LogConfig{Level: "INFO", Format: "text"},
		Output:   OutputConfig{Format: FormatText},
		Capacity: 64,
	}
}

// Load reads configuration from an optional .env file and STRLOG_ environment
// variables on top of Default.
func Load() (Config, error) {
	return LoadFrom(".env", os.Environ())
}

// LoadFrom is Load with an explicit env file path and environment.
func LoadFrom(envFile string, environ []string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.source", def.Log.Source)
	v.SetDefault("output.format", def.Output.Format)
	v.SetDefault("capacity", def.Capacity)

	// 1. Optional .env file
	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
				return Config{}, fmt.Errorf("failed to read %s: %w", envFile, err)
			}
		}
		// Keys in a .env file keep their prefix: STRLOG_LOG_LEVEL -> strlog_log_level
		for _, key := range v.AllKeys() {
			if propKey, ok := envKey(key); ok {
				v.Set(propKey, v.Get(key))
			}
		}
	}

	// 2. Environment variables win over the file
	for _, envStr := range environ {
		pair := strings.SplitN(envStr, "=", 2)
		if len(pair) != 2 {
			continue
		}
		if propKey, ok := envKey(pair[0]); ok {
			v.Set(propKey, pair[1])
		}
	}

	// 3. Unmarshal into struct
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envKey maps STRLOG_LOG_LEVEL to log.level.
func envKey(key string) (string, bool) {
	upper := strings.ToUpper(key)
	if !strings.HasPrefix(upper, EnvPrefix) {
		return "", false
	}
	propKey := strings.TrimPrefix(upper, EnvPrefix)
	propKey = strings.ToLower(strings.ReplaceAll(propKey, "_", "."))
	propKey = strings.TrimPrefix(propKey, ".")
	return propKey, propKey != ""
}

// Validate checks enumerated settings.
func (c Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case FormatText, FormatJSON, FormatNano:
	default:
		return fmt.Errorf("invalid output format %q", c.Output.Format)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	return nil
}
