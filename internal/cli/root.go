package cli

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jakoblorz/go-portfolio/internal/categories"
	"github.com/jakoblorz/go-portfolio/internal/collator"
	"github.com/jakoblorz/go-portfolio/internal/config"
	"github.com/jakoblorz/go-portfolio/internal/filesystem"
	"github.com/jakoblorz/go-portfolio/internal/github"
)

// LogLevel is adjusted from --log-level before any command runs
var LogLevel = new(slog.LevelVar)

// ClientFactory creates the GitHub client once configuration is resolved
type ClientFactory func(cfg *config.Config) (github.GitHubClient, error)

// NewGitHubClient builds the real API client from the configured token and API root.
// Each HTTP request is bounded by the configured timeout.
func NewGitHubClient(cfg *config.Config) (github.GitHubClient, error) {
	opts := []github.ClientOption{
		github.WithHTTPClient(&http.Client{Timeout: cfg.Timeout()}),
	}
	if url := cfg.APIURL(); url != "" {
		opts = append(opts, github.WithBaseURL(url))
	}
	client, err := github.NewClient(cfg.GitHubToken(), opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// app carries what every subcommand needs
type app struct {
	fs        filesystem.FileSystem
	cfg       *config.Config
	newClient ClientFactory
}

func (a *app) client() (github.GitHubClient, error) {
	client, err := a.newClient(a.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}
	return client, nil
}

func (a *app) loadCategories() (*categories.Set, error) {
	return categories.NewLoader(a.fs, a.cfg.CategoriesDir()).Load()
}

func (a *app) collator(client github.GitHubClient, cats *categories.Set, skipFailed bool) *collator.Collator {
	return collator.New(client, a.cfg.Owner(), cats,
		collator.WithExclude(a.cfg.Exclude()...),
		collator.WithNameOverrides(a.cfg.NameOverrides()),
		collator.WithTimeout(a.cfg.Timeout()),
		collator.WithConcurrency(a.cfg.Concurrency()),
		collator.WithSkipFailedLanguages(skipFailed),
	)
}

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, newClient ClientFactory) *cobra.Command {
	a := &app{fs: fs, cfg: config.New(), newClient: newClient}

	rootCmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Collate GitHub repositories into portfolio data",
		Long: `A CLI tool that turns the repositories of a GitHub account into portfolio data.

Repository topics are mapped to a project type and to platform, framework and
skill display names using the tables in the categories directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(config.KeyOwner, "", "GitHub account to collate (default: the authenticated account) [$PORTFOLIO_OWNER]")
	flags.String(config.KeyCategoriesDir, config.DefaultCategoriesDir, "Directory holding platforms, frameworks and tech_skills tables [$PORTFOLIO_CATEGORIES_DIR]")
	flags.StringSlice(config.KeyExclude, nil, "Additional repository names to skip [$PORTFOLIO_EXCLUDE]")
	flags.Duration(config.KeyTimeout, config.DefaultTimeout, "Timeout for each GitHub API call [$PORTFOLIO_TIMEOUT]")
	flags.Int(config.KeyConcurrency, config.DefaultConcurrency, "Repositories processed in parallel [$PORTFOLIO_CONCURRENCY]")
	flags.String(config.KeyLogLevel, config.DefaultLogLevel, "Log level: debug, info, warn or error [$PORTFOLIO_LOG_LEVEL]")
	flags.String(config.KeyAPIURL, "", "GitHub API root for GitHub Enterprise [$PORTFOLIO_API_URL]")
	flags.String("config", "", "Config file (yaml, json or toml)")
	flags.StringSlice("env-file", nil, "Environment files to load (default .env)")

	rootCmd.AddCommand(newBuildCommand(a))
	rootCmd.AddCommand(newTaglineCommand(a))
	rootCmd.AddCommand(newCategoriesCommand(a))

	return rootCmd
}

func (a *app) configure(cmd *cobra.Command) error {
	envFiles, _ := cmd.Flags().GetStringSlice("env-file")
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return err
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		if err := a.cfg.ReadFile(path); err != nil {
			return err
		}
	}

	if err := a.cfg.BindCommand(cmd); err != nil {
		return err
	}

	LogLevel.Set(a.cfg.LogLevel())
	return nil
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()
	rootCmd := NewRootCommand(fs, NewGitHubClient)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}
