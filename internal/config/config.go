// Package config loads settings from config.yaml, CSSMASTERY_* environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tsotne01/css-animation-mastery/internal/llm"
	"github.com/tsotne01/css-animation-mastery/internal/logging"
	"github.com/tsotne01/css-animation-mastery/internal/store"
)

// EnvPrefix is prepended to every environment override, so storage.backend
// becomes CSSMASTERY_STORAGE_BACKEND.
const EnvPrefix = "CSSMASTERY"

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Preview PreviewConfig `mapstructure:"preview"`
	Log     LogConfig     `mapstructure:"log"`
	Tutor   llm.Config    `mapstructure:"tutor"`
}

type StorageConfig struct {
	// Backend is sqlite, file or memory.
	Backend string `mapstructure:"backend"`
	// Path overrides the default location of the sqlite or file backend.
	Path string `mapstructure:"path"`
}

type PreviewConfig struct {
	// Enabled starts the loopback preview server with the TUI.
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
}

type LogConfig struct {
	// Level is the console level: none, normal or debug.
	Level string `mapstructure:"level"`
	// FileLevel is the level written to File.
	FileLevel string `mapstructure:"file_level"`
	File      string `mapstructure:"file"`
}

// New returns a viper instance with defaults, env binding and the config
// file search path set up.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("storage.backend", string(store.KindSQLite))
	v.SetDefault("storage.path", "")
	v.SetDefault("preview.enabled", true)
	v.SetDefault("preview.host", "127.0.0.1")
	v.SetDefault("preview.port", 0)
	v.SetDefault("log.level", logging.LevelNone)
	v.SetDefault("log.file_level", logging.LevelNormal)
	v.SetDefault("log.file", "")

	def := llm.DefaultConfig()
	v.SetDefault("tutor.provider", def.Provider)
	for name, pc := range map[string]llm.ProviderConfig{
		llm.ProviderAnthropic:  def.Anthropic,
		llm.ProviderOpenAI:     def.OpenAI,
		llm.ProviderGemini:     def.Gemini,
		llm.ProviderOpenRouter: def.OpenRouter,
	} {
		v.SetDefault("tutor."+name+".api_key", pc.APIKey)
		v.SetDefault("tutor."+name+".model", pc.Model)
		v.SetDefault("tutor."+name+".base_url", pc.BaseURL)
	}
	v.SetDefault("tutor.retry.max_attempts", def.Retry.MaxAttempts)
	v.SetDefault("tutor.retry.initial_wait", def.Retry.InitialWait)
	v.SetDefault("tutor.retry.max_wait", def.Retry.MaxWait)
	v.SetDefault("tutor.retry.multiplier", def.Retry.Multiplier)
	v.SetDefault("tutor.timeout", def.Timeout)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if dir, err := store.DataDir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	return v
}

// BindFlags ties the persistent command-line flags to their keys.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for key, flag := range map[string]string{
		"storage.path":    "db",
		"storage.backend": "backend",
		"preview.port":    "preview-port",
		"log.level":       "log-level",
		"tutor.provider":  "tutor",
	} {
		if f := flags.Lookup(flag); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind --%s: %w", flag, err)
			}
		}
	}
	return nil
}

// Load reads the config file, if any, and returns the merged settings.
// file names an explicit config file; empty searches the default paths.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	// Discover a provider from conventional API key variables when none
	// is configured.
	if cfg.Tutor.Provider == "" {
		if found, ok := cfg.Tutor.Discover(); ok {
			cfg.Tutor = found
		}
	}
	if cfg.Log.File == "" {
		if dir, err := store.DataDir(); err == nil {
			cfg.Log.File = filepath.Join(dir, "cssmastery.log")
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that cannot be repaired with a default.
func (c *Config) Validate() error {
	var errs []string
	switch store.Kind(c.Storage.Backend) {
	case store.KindSQLite, store.KindFile, store.KindMemory:
	default:
		errs = append(errs, fmt.Sprintf("storage.backend %q: use sqlite, file or memory", c.Storage.Backend))
	}
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		errs = append(errs, fmt.Sprintf("preview.port %d out of range", c.Preview.Port))
	}
	if !logging.ValidLevel(c.Log.Level) {
		errs = append(errs, fmt.Sprintf("log.level %q: use none, normal or debug", c.Log.Level))
	}
	if !logging.ValidLevel(c.Log.FileLevel) {
		errs = append(errs, fmt.Sprintf("log.file_level %q: use none, normal or debug", c.Log.FileLevel))
	}
	if err := c.Tutor.Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// StoragePath returns the configured backend path or the default for the
// backend kind.
func (c *Config) StoragePath() (string, error) {
	if c.Storage.Path != "" {
		return c.Storage.Path, nil
	}
	switch store.Kind(c.Storage.Backend) {
	case store.KindFile:
		return store.DefaultFilePath()
	case store.KindMemory:
		return "", nil
	default:
		return store.DefaultDBPath()
	}
}

// Logging returns the logger settings.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Console:  c.Log.Level,
		File:     c.Log.FileLevel,
		FilePath: c.Log.File,
		Append:   true,
	}
}
