// Package config loads runtime configuration from flags, environment,
// an optional config file and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/abhisek/umlstudy/internal/i18n"
)

// EnvPrefix prefixes every environment variable, e.g. UMLSTUDY_LANGUAGE.
const EnvPrefix = "UMLSTUDY"

// LanguageAuto resolves the language from the POSIX locale environment.
const LanguageAuto = "auto"

// Keys.
const (
	KeyLanguage = "language"
	KeyLogFile  = "log.file"
	KeyLogLevel = "log.level"
	KeyUISplash = "ui.splash"
)

// Config holds the resolved application configuration.
type Config struct {
	Language i18n.Language
	Log      Log
	UI       UI
}

// Log configures the file logger. The TUI owns stdout, so logs never go there.
type Log struct {
	File  string // empty disables file logging
	Level string // zerolog level name
}

// UI groups presentation options.
type UI struct {
	Splash bool // show the welcome animation on start
}

// NewViper returns a viper instance with defaults, environment binding and
// config file search paths set up.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if dir, err := configDir(); err == nil {
		v.AddConfigPath(dir)
	}

	v.SetDefault(KeyLanguage, LanguageAuto)
	v.SetDefault(KeyLogFile, defaultLogFile())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyUISplash, true)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file and resolves v into a Config.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	lang, err := resolveLanguage(v.GetString(KeyLanguage))
	if err != nil {
		return nil, err
	}

	return &Config{
		Language: lang,
		Log: Log{
			File:  expandHome(v.GetString(KeyLogFile)),
			Level: strings.ToLower(v.GetString(KeyLogLevel)),
		},
		UI: UI{
			Splash: v.GetBool(KeyUISplash),
		},
	}, nil
}

// LoadDotEnv loads variables from a .env file into the process environment.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// resolveLanguage parses the configured language. "auto" consults LC_ALL,
// LC_MESSAGES and LANG in that order and falls back to the default.
func resolveLanguage(s string) (i18n.Language, error) {
	if strings.EqualFold(strings.TrimSpace(s), LanguageAuto) || strings.TrimSpace(s) == "" {
		for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
			if lang, err := i18n.ParseLanguage(os.Getenv(env)); err == nil {
				return lang, nil
			}
		}
		return i18n.DefaultLanguage, nil
	}
	lang, err := i18n.ParseLanguage(s)
	if err != nil {
		return "", fmt.Errorf("config %s: %w", KeyLanguage, err)
	}
	return lang, nil
}

// configDir returns $XDG_CONFIG_HOME/umlstudy or the platform equivalent.
func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "umlstudy"), nil
}

// defaultLogFile returns $XDG_STATE_HOME/umlstudy/umlstudy.log, falling back
// to the user cache directory.
func defaultLogFile() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "umlstudy", "umlstudy.log")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "umlstudy", "umlstudy.log")
	}
	if cache, err := os.UserCacheDir(); err == nil {
		return filepath.Join(cache, "umlstudy", "umlstudy.log")
	}
	return ""
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
