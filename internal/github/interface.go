package github

import (
	"context"
)

// GitHubClient provides an abstraction over the GitHub API operations a portfolio build uses
type GitHubClient interface {
	// Repository operations
	ListOwnerRepositories(ctx context.Context, owner string) ([]*Repository, error)
	ListLanguages(ctx context.Context, owner, repo string) (map[string]int, error)

	// User operations
	GetUser(ctx context.Context, login string) (*User, error)
}

// Repository represents a GitHub repository
type Repository struct {
	Owner       string
	Name        string
	Description string
	URL         string
	Topics      []string
}

// User represents a GitHub account
type User struct {
	Login string
	Name  string
	Bio   string
}
