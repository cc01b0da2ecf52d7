// Package config loads taskboard settings from defaults, a TOML file and
// the environment. CLI flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the configuration directory name.
	AppName = "taskboard"

	// ConfigFile is the TOML config filename.
	ConfigFile = "config.toml"

	// LogFile is the default developer log filename.
	LogFile = "taskboard.log"

	// PrefsFile is the default local preferences database filename.
	PrefsFile = "prefs.sqlite"

	// DefaultAPIURL is the task collection used when nothing else is set.
	DefaultAPIURL = "http://localhost:8000/api/todo/"
)

// Config holds resolved settings.
type Config struct {
	// APIURL is the task collection base address, always ending in "/".
	APIURL string `toml:"api_url"`

	// LogFile receives the developer log. "-" means stderr.
	LogFile string `toml:"log_file"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// LogFormat is one of text, json, logfmt.
	LogFormat string `toml:"log_format"`

	// PrefsFile is the SQLite key-value store holding the theme.
	PrefsFile string `toml:"prefs_file"`

	// Dir is the configuration directory. Not read from the file.
	Dir string `toml:"-"`
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/taskboard or
// $HOME/.config/taskboard.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// Defaults returns the settings used before any file or environment.
func Defaults(dir string) *Config {
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		APIURL:    DefaultAPIURL,
		LogFile:   filepath.Join(dir, LogFile),
		LogLevel:  "info",
		LogFormat: "text",
		PrefsFile: filepath.Join(dir, PrefsFile),
		Dir:       dir,
	}
}

// Load resolves settings in priority order:
//  1. defaults
//  2. the TOML file at path (or <dir>/config.toml when path is empty);
//     a missing default file is not an error, a missing explicit one is
//  3. TASKBOARD_* environment variables
//
// The result is normalized but not validated; call Validate after applying
// flag overrides.
func Load(path string) (*Config, error) {
	dir := DefaultConfigDir()
	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, ConfigFile)
	} else {
		dir = filepath.Dir(path)
	}

	cfg := Defaults(dir)

	if err := loadFile(cfg, path); err != nil && (explicit || !errors.Is(err, os.ErrNotExist)) {
		return nil, fmt.Errorf("loading config file %s: %w", path, err)
	}

	loadFromEnv(cfg)
	cfg.normalize()
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

func loadFromEnv(cfg *Config) {
	if v := os.Getenv("TASKBOARD_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("TASKBOARD_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TASKBOARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TASKBOARD_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("TASKBOARD_PREFS_FILE"); v != "" {
		cfg.PrefsFile = v
	}
}

func (c *Config) normalize() {
	c.APIURL = strings.TrimSpace(c.APIURL)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.LogFile = expandHome(strings.TrimSpace(c.LogFile))
	c.PrefsFile = expandHome(strings.TrimSpace(c.PrefsFile))
	if c.APIURL != "" && !strings.HasSuffix(c.APIURL, "/") {
		c.APIURL += "/"
	}
}

// Override applies non-empty flag values and re-normalizes.
func (c *Config) Override(apiURL, logFile, logLevel, prefsFile string) {
	if apiURL != "" {
		c.APIURL = apiURL
	}
	if logFile != "" {
		c.LogFile = logFile
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
	if prefsFile != "" {
		c.PrefsFile = prefsFile
	}
	c.normalize()
}

// Validate checks the resolved settings.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("api_url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("api_url %q: must be an absolute http(s) URL", c.APIURL)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level %q: want debug, info, warn or error", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log_format %q: want text, json or logfmt", c.LogFormat)
	}
	if c.PrefsFile == "" {
		return errors.New("prefs_file is empty")
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return p
		}
		return filepath.Join(home, strings.TrimPrefix(p[1:], "/"))
	}
	return p
}
