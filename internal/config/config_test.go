package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := New()

	require.Empty(t, c.Owner())
	require.Equal(t, DefaultCategoriesDir, c.CategoriesDir())
	require.Empty(t, c.Exclude())
	require.Equal(t, DefaultTimeout, c.Timeout())
	require.Equal(t, DefaultConcurrency, c.Concurrency())
	require.Equal(t, slog.LevelInfo, c.LogLevel())
}

func TestEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_OWNER", "octo")
	t.Setenv("PORTFOLIO_CATEGORIES_DIR", "config/cats")
	t.Setenv("PORTFOLIO_EXCLUDE", "dotfiles, scratch")
	t.Setenv("PORTFOLIO_TIMEOUT", "5s")
	t.Setenv("PORTFOLIO_CONCURRENCY", "2")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "DEBUG")

	c := New()
	require.Equal(t, "octo", c.Owner())
	require.Equal(t, "config/cats", c.CategoriesDir())
	require.Equal(t, []string{"dotfiles", "scratch"}, c.Exclude())
	require.Equal(t, 5*time.Second, c.Timeout())
	require.Equal(t, 2, c.Concurrency())
	require.Equal(t, slog.LevelDebug, c.LogLevel())
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PORTFOLIO_OWNER", "from-env")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String(KeyOwner, "", "")
	cmd.Flags().Int(KeyConcurrency, DefaultConcurrency, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--owner", "from-flag"}))

	c := New()
	require.NoError(t, c.BindCommand(cmd))
	require.Equal(t, "from-flag", c.Owner())
	require.Equal(t, DefaultConcurrency, c.Concurrency())
}

func TestGitHubToken_Order(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GH_TOKEN", "")
	t.Setenv("API_TOKEN_GITHUB", "")
	require.Empty(t, New().GitHubToken())

	t.Setenv("API_TOKEN_GITHUB", "third")
	require.Equal(t, "third", New().GitHubToken())

	t.Setenv("GH_TOKEN", "second")
	require.Equal(t, "second", New().GitHubToken())

	t.Setenv("GITHUB_TOKEN", "first")
	require.Equal(t, "first", New().GitHubToken())
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	content := `owner: octo
exclude:
  - dotfiles
  - scratch
name-overrides:
  my-app: "My Wonderful App"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c := New()
	require.NoError(t, c.ReadFile(path))
	require.Equal(t, "octo", c.Owner())
	require.Equal(t, []string{"dotfiles", "scratch"}, c.Exclude())
	require.Equal(t, map[string]string{"my-app": "My Wonderful App"}, c.NameOverrides())

	require.Error(t, New().ReadFile(filepath.Join(dir, "missing.yaml")))
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORTFOLIO_TEST_DOTENV=loaded\nPORTFOLIO_TEST_PRESET=from-file\n"), 0644))

	t.Setenv("PORTFOLIO_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("PORTFOLIO_TEST_DOTENV"))
	t.Setenv("PORTFOLIO_TEST_PRESET", "from-env")

	require.NoError(t, LoadDotEnv(path, filepath.Join(dir, "missing.env")))
	require.Equal(t, "loaded", os.Getenv("PORTFOLIO_TEST_DOTENV"))
	require.Equal(t, "from-env", os.Getenv("PORTFOLIO_TEST_PRESET"))
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseLogLevel("loud")
	require.Error(t, err)
}
