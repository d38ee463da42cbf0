package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key looked up in the environment
const EnvPrefix = "PORTFOLIO"

const (
	KeyOwner         = "owner"
	KeyCategoriesDir = "categories-dir"
	KeyExclude       = "exclude"
	KeyTimeout       = "timeout"
	KeyConcurrency   = "concurrency"
	KeyLogLevel      = "log-level"
	KeyNameOverrides = "name-overrides"
	KeyGitHubToken   = "github-token"
	KeyAPIURL        = "api-url"
)

const (
	DefaultCategoriesDir = "categories"
	DefaultTimeout       = 30 * time.Second
	DefaultConcurrency   = 8
	DefaultLogLevel      = "info"
)

// tokenEnvVars are checked in order for the GitHub token
var tokenEnvVars = []string{"GITHUB_TOKEN", "GH_TOKEN", "API_TOKEN_GITHUB"}

// Config resolves settings from flags, PORTFOLIO_* environment variables and an optional config file
type Config struct{ v *viper.Viper }

func New() *Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyCategoriesDir, DefaultCategoriesDir)
	v.SetDefault(KeyTimeout, DefaultTimeout)
	v.SetDefault(KeyConcurrency, DefaultConcurrency)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)

	// BindEnv only errors without a key
	_ = v.BindEnv(append([]string{KeyGitHubToken}, tokenEnvVars...)...)

	return &Config{v: v}
}

// LoadDotEnv loads environment files without overriding variables already set.
// Missing files are ignored. Without paths, ".env" is loaded.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
	}
	return nil
}

// BindCommand makes the command's flags take precedence over environment and file values
func (c *Config) BindCommand(cmd *cobra.Command) error {
	if err := c.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	return nil
}

// ReadFile reads a YAML, JSON or TOML config file. Keys match the flag names.
func (c *Config) ReadFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	slog.Debug("Loaded config file", "path", path)
	return nil
}

func (c *Config) Set(key string, value any) { c.v.Set(key, value) }

// Owner is the account to collate. Empty means the authenticated account.
func (c *Config) Owner() string { return strings.TrimSpace(c.v.GetString(KeyOwner)) }

func (c *Config) CategoriesDir() string {
	if dir := c.v.GetString(KeyCategoriesDir); dir != "" {
		return dir
	}
	return DefaultCategoriesDir
}

// Exclude returns additional repository names to skip. Comma separated values are split.
func (c *Config) Exclude() []string {
	var result []string
	for _, value := range c.v.GetStringSlice(KeyExclude) {
		for _, name := range strings.Split(value, ",") {
			if name = strings.TrimSpace(name); name != "" {
				result = append(result, name)
			}
		}
	}
	return result
}

// Timeout bounds each GitHub API call
func (c *Config) Timeout() time.Duration {
	if d := c.v.GetDuration(KeyTimeout); d > 0 {
		return d
	}
	return DefaultTimeout
}

func (c *Config) Concurrency() int {
	if n := c.v.GetInt(KeyConcurrency); n > 0 {
		return n
	}
	return DefaultConcurrency
}

// NameOverrides maps repository slugs to display names, from the config file
func (c *Config) NameOverrides() map[string]string {
	return c.v.GetStringMapString(KeyNameOverrides)
}

// APIURL is the GitHub API root, empty for the public API
func (c *Config) APIURL() string { return c.v.GetString(KeyAPIURL) }

// GitHubToken returns the first token set among GITHUB_TOKEN, GH_TOKEN and API_TOKEN_GITHUB
func (c *Config) GitHubToken() string {
	return strings.TrimSpace(c.v.GetString(KeyGitHubToken))
}

// LogLevel returns the configured level, falling back to info for unknown values.
func (c *Config) LogLevel() slog.Level {
	level, err := ParseLogLevel(c.v.GetString(KeyLogLevel))
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel accepts debug, info, warn (or warning) and error, case-insensitively.
func ParseLogLevel(s string) (slog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level: %q", s)
	}
	return level, nil
}
