package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".config/pdx"
	envPrefix  = "PDX"

	KeyAPIBaseURL     = "api.base_url"
	KeyAPITimeout     = "api.timeout"
	KeyAPIConcurrency = "api.concurrency"
	KeyPageLimit      = "page.limit"
	KeySpritesBaseURL = "sprites.base_url"
	KeyLogLevel       = "log.level"

	DefaultAPIBaseURL     = "https://pokeapi.co/api/v2"
	DefaultAPITimeout     = 15 * time.Second
	DefaultAPIConcurrency = 8
	DefaultPageLimit      = 20
	DefaultSpritesBaseURL = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon"
	DefaultLogLevel       = "warn"
)

var (
	ErrInvalidSettings  = errors.New("invalid settings")
	ErrSettingsNotFound = errors.New("settings file not found")
)

type Settings struct {
	API     APISettings
	Page    PageSettings
	Sprites SpriteSettings
	Log     LogSettings
}

type APISettings struct {
	BaseURL     string
	Timeout     time.Duration
	Concurrency int
}

type PageSettings struct {
	Limit int
}

type SpriteSettings struct {
	BaseURL string
}

type LogSettings struct {
	Level string
}

func Defaults() Settings {
	return Settings{
		API: APISettings{
			BaseURL:     DefaultAPIBaseURL,
			Timeout:     DefaultAPITimeout,
			Concurrency: DefaultAPIConcurrency,
		},
		Page:    PageSettings{Limit: DefaultPageLimit},
		Sprites: SpriteSettings{BaseURL: DefaultSpritesBaseURL},
		Log:     LogSettings{Level: DefaultLogLevel},
	}
}

// DefaultPath is the config file read when no explicit path is given.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir, configName+"."+configType), nil
}

// Load layers defaults, the TOML file at path (or the default location) and
// PDX_* environment variables, in increasing precedence. A missing file is not
// an error.
func Load(cfg *viper.Viper, path string) (Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	defaults := Defaults()
	cfg.SetDefault(KeyAPIBaseURL, defaults.API.BaseURL)
	cfg.SetDefault(KeyAPITimeout, defaults.API.Timeout)
	cfg.SetDefault(KeyAPIConcurrency, defaults.API.Concurrency)
	cfg.SetDefault(KeyPageLimit, defaults.Page.Limit)
	cfg.SetDefault(KeySpritesBaseURL, defaults.Sprites.BaseURL)
	cfg.SetDefault(KeyLogLevel, defaults.Log.Level)

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetConfigType(configType)
	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return Settings{}, err
		}
		path = defaultPath
	}
	cfg.SetConfigFile(path)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	settings := Settings{
		API: APISettings{
			BaseURL:     strings.TrimRight(strings.TrimSpace(cfg.GetString(KeyAPIBaseURL)), "/"),
			Timeout:     cfg.GetDuration(KeyAPITimeout),
			Concurrency: cfg.GetInt(KeyAPIConcurrency),
		},
		Page:    PageSettings{Limit: cfg.GetInt(KeyPageLimit)},
		Sprites: SpriteSettings{BaseURL: strings.TrimRight(strings.TrimSpace(cfg.GetString(KeySpritesBaseURL)), "/")},
		Log:     LogSettings{Level: strings.ToLower(strings.TrimSpace(cfg.GetString(KeyLogLevel)))},
	}

	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

func (s Settings) Validate() error {
	switch {
	case s.API.BaseURL == "":
		return fmt.Errorf("%w: %s is empty", ErrInvalidSettings, KeyAPIBaseURL)
	case s.API.Timeout <= 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalidSettings, KeyAPITimeout)
	case s.API.Concurrency <= 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalidSettings, KeyAPIConcurrency)
	case s.Page.Limit <= 0:
		return fmt.Errorf("%w: %s must be positive", ErrInvalidSettings, KeyPageLimit)
	}

	if _, err := s.Log.ZapLevel(); err != nil {
		return err
	}

	return nil
}

func (l LogSettings) ZapLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return zapcore.InvalidLevel, fmt.Errorf("%w: %s: %w", ErrInvalidSettings, KeyLogLevel, err)
	}

	return level, nil
}
