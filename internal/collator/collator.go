package collator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jakoblorz/go-portfolio/internal/categories"
	"github.com/jakoblorz/go-portfolio/internal/github"
	"github.com/jakoblorz/go-portfolio/internal/models"
)

const (
	DefaultTimeout     = 30 * time.Second
	DefaultConcurrency = 8
)

// ErrUpstream marks failures of the hosting API (listing, languages, account lookup)
var ErrUpstream = errors.New("upstream API error")

// Collator assembles the project list of one account
type Collator struct {
	client      github.GitHubClient
	owner       string
	categories  *categories.Set
	names       *NameFormatter
	exclude     []string
	timeout     time.Duration
	concurrency int
	skipFailed  bool
}

// Option configures a Collator
type Option func(*Collator)

// WithExclude drops repositories with the given names, compared case-insensitively.
func WithExclude(names ...string) Option {
	return func(c *Collator) { c.exclude = append(c.exclude, names...) }
}

// WithNameOverrides adds slug to display-name overrides on top of the built-in ones.
func WithNameOverrides(overrides map[string]string) Option {
	return func(c *Collator) { c.names = NewNameFormatter(overrides) }
}

// WithTimeout bounds every single API call.
func WithTimeout(d time.Duration) Option {
	return func(c *Collator) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithConcurrency limits how many repositories are processed at once.
func WithConcurrency(n int) Option {
	return func(c *Collator) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithSkipFailedLanguages keeps a project with an empty language list when its
// language lookup fails, instead of failing the whole build.
func WithSkipFailedLanguages(skip bool) Option {
	return func(c *Collator) { c.skipFailed = skip }
}

// New creates a Collator for owner. An empty owner means the authenticated account.
func New(client github.GitHubClient, owner string, cats *categories.Set, opts ...Option) *Collator {
	if cats == nil {
		cats = &categories.Set{}
	}
	c := &Collator{
		client:      client,
		owner:       owner,
		categories:  cats,
		names:       NewNameFormatter(nil),
		timeout:     DefaultTimeout,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Collate lists the account's repositories and turns each into a Project,
// sorted by type rank and otherwise in listing order.
func (c *Collator) Collate(ctx context.Context) ([]*models.Project, error) {
	owner, err := c.resolveOwner(ctx)
	if err != nil {
		return nil, err
	}
	return c.collate(ctx, owner)
}

// Tagline returns the account bio, empty if it has none.
func (c *Collator) Tagline(ctx context.Context) (string, error) {
	owner, err := c.resolveOwner(ctx)
	if err != nil {
		return "", err
	}
	return c.tagline(ctx, owner)
}

// Build collates the projects and fetches the tagline in one go.
func (c *Collator) Build(ctx context.Context) (*models.Portfolio, error) {
	owner, err := c.resolveOwner(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := c.collate(ctx, owner)
	if err != nil {
		return nil, err
	}

	tagline, err := c.tagline(ctx, owner)
	if err != nil {
		return nil, err
	}

	return models.NewPortfolio(owner, tagline, projects), nil
}

func (c *Collator) resolveOwner(ctx context.Context) (string, error) {
	if c.owner != "" {
		return c.owner, nil
	}

	user, err := c.getUser(ctx, "")
	if err != nil {
		return "", err
	}
	if user.Login == "" {
		return "", fmt.Errorf("%w: authenticated account has no login", ErrUpstream)
	}
	slog.DebugContext(ctx, "Resolved owner from authenticated account", "owner", user.Login)
	return user.Login, nil
}

func (c *Collator) collate(ctx context.Context, owner string) ([]*models.Project, error) {
	start := time.Now()

	repos, err := c.listRepositories(ctx, owner)
	if err != nil {
		return nil, err
	}

	kept := make([]*github.Repository, 0, len(repos))
	for _, repo := range repos {
		if c.isExcluded(owner, repo.Name) {
			slog.DebugContext(ctx, "Skipping excluded repository", "repo", repo.Name)
			continue
		}
		kept = append(kept, repo)
	}

	projects := make([]*models.Project, len(kept))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, repo := range kept {
		i, repo := i, repo
		g.Go(func() error {
			project, err := c.collateRepository(gctx, owner, repo)
			if err != nil {
				return err
			}
			projects[i] = project
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	SortProjects(projects)

	slog.InfoContext(ctx, "Collated projects",
		"owner", owner,
		"projects", len(projects),
		"excluded", len(repos)-len(kept),
		"duration", time.Since(start))

	return projects, nil
}

func (c *Collator) collateRepository(ctx context.Context, owner string, repo *github.Repository) (*models.Project, error) {
	class := Classify(repo.Topics, c.categories)

	langs, err := c.languages(ctx, owner, repo)
	if err != nil {
		if !c.skipFailed || ctx.Err() != nil {
			return nil, err
		}
		slog.WarnContext(ctx, "Skipping languages of repository", "repo", repo.Name, "error", err)
		langs = []string{}
	}

	project := models.NewProject(c.names.Format(repo.Name), repo.Name, repo.Description, repo.URL, class.Type)
	project.Languages = langs
	project.Platforms = class.Platforms
	project.Frameworks = class.Frameworks
	project.Skills = class.Skills
	return project, nil
}

func (c *Collator) listRepositories(ctx context.Context, owner string) ([]*github.Repository, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	repos, err := c.client.ListOwnerRepositories(callCtx, owner)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return repos, nil
}

func (c *Collator) languages(ctx context.Context, owner string, repo *github.Repository) ([]string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	repoOwner := repo.Owner
	if repoOwner == "" {
		repoOwner = owner
	}

	breakdown, err := c.client.ListLanguages(callCtx, repoOwner, repo.Name)
	if err != nil {
		return nil, fmt.Errorf("%w: languages of %s/%s: %w", ErrUpstream, repoOwner, repo.Name, err)
	}
	return ReduceLanguages(breakdown), nil
}

func (c *Collator) tagline(ctx context.Context, owner string) (string, error) {
	user, err := c.getUser(ctx, owner)
	if err != nil {
		return "", err
	}
	return user.Bio, nil
}

func (c *Collator) getUser(ctx context.Context, login string) (*github.User, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	user, err := c.client.GetUser(callCtx, login)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: empty account response", ErrUpstream)
	}
	return user, nil
}

func (c *Collator) isExcluded(owner, name string) bool {
	if strings.EqualFold(name, owner) {
		return true
	}
	for _, excluded := range c.exclude {
		if strings.EqualFold(name, excluded) {
			return true
		}
	}
	return false
}

// SortProjects orders projects by type rank, keeping the relative order within a type.
func SortProjects(projects []*models.Project) {
	sort.SliceStable(projects, func(i, j int) bool {
		return projects[i].Type.Rank() < projects[j].Type.Rank()
	})
}
