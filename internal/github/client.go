package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const reposPerPage = 100

// Client implements GitHubClient using the real GitHub API
type Client struct {
	client  *github.Client
	limiter *rate.Limiter
}

type clientOptions struct {
	baseURL    string
	limiter    *rate.Limiter
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*clientOptions)

// WithBaseURL points the client at a different API root (GitHub Enterprise, test servers).
func WithBaseURL(baseURL string) ClientOption {
	return func(o *clientOptions) { o.baseURL = baseURL }
}

// WithLimiter sets the rate limiter every API call waits on.
func WithLimiter(l *rate.Limiter) ClientOption {
	return func(o *clientOptions) { o.limiter = l }
}

// WithHTTPClient sets the underlying HTTP client used for unauthenticated requests,
// or as the base transport for authenticated ones. Its Timeout applies in both cases.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(o *clientOptions) { o.httpClient = c }
}

// NewClient creates a new GitHub API client. An empty token yields an
// unauthenticated client with the lower rate limit.
func NewClient(token string, opts ...ClientOption) (*Client, error) {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if token != "" {
		ctx := context.Background()
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		authClient := oauth2.NewClient(ctx, ts)
		if o.httpClient != nil {
			authClient.Timeout = o.httpClient.Timeout
		}
		httpClient = authClient
		slog.Info("Using authenticated GitHub client")
	} else {
		slog.Warn("Using unauthenticated GitHub client (rate limited)")
	}

	gh := github.NewClient(httpClient)
	if o.baseURL != "" {
		base := o.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub API base URL %q: %w", o.baseURL, err)
		}
		gh.BaseURL = u
	}

	limiter := o.limiter
	if limiter == nil {
		limiter = NewLimiter(token != "")
	}

	return &Client{client: gh, limiter: limiter}, nil
}

func (c *Client) wait(ctx context.Context) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}
	return nil
}

// ListOwnerRepositories lists every repository owned by the account, following pagination.
func (c *Client) ListOwnerRepositories(ctx context.Context, owner string) ([]*Repository, error) {
	opts := &github.RepositoryListByUserOptions{
		Type:        "owner",
		ListOptions: github.ListOptions{PerPage: reposPerPage},
	}

	var result []*Repository
	for {
		if err := c.wait(ctx); err != nil {
			return nil, err
		}

		repos, resp, err := c.client.Repositories.ListByUser(ctx, owner, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to list repositories for %s: %w", owner, err)
		}

		for _, r := range repos {
			result = append(result, convertRepository(r))
		}

		slog.DebugContext(ctx, "Listed repository page", "owner", owner, "page", opts.Page, "count", len(repos))

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return result, nil
}

// ListLanguages returns the language breakdown of a repository in bytes of code.
func (c *Client) ListLanguages(ctx context.Context, owner, repo string) (map[string]int, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	langs, _, err := c.client.Repositories.ListLanguages(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to list languages for %s/%s: %w", owner, repo, err)
	}
	if langs == nil {
		langs = map[string]int{}
	}
	return langs, nil
}

// GetUser fetches an account. An empty login fetches the authenticated user.
func (c *Client) GetUser(ctx context.Context, login string) (*User, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	user, _, err := c.client.Users.Get(ctx, login)
	if err != nil {
		if login == "" {
			return nil, fmt.Errorf("failed to get authenticated user: %w", err)
		}
		return nil, fmt.Errorf("failed to get user %s: %w", login, err)
	}
	return convertUser(user), nil
}

func convertRepository(r *github.Repository) *Repository {
	topics := make([]string, 0, len(r.Topics))
	topics = append(topics, r.Topics...)

	return &Repository{
		Owner:       r.GetOwner().GetLogin(),
		Name:        r.GetName(),
		Description: r.GetDescription(),
		URL:         r.GetHTMLURL(),
		Topics:      topics,
	}
}

func convertUser(u *github.User) *User {
	return &User{
		Login: u.GetLogin(),
		Name:  u.GetName(),
		Bio:   u.GetBio(),
	}
}
