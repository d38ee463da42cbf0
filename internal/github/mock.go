package github

import (
	"context"
	"fmt"
	"maps"
	"strings"
	"sync"
	"time"
)

// MockClient implements GitHubClient for testing
type MockClient struct {
	mu           sync.RWMutex
	repositories map[string][]*Repository  // key: owner
	languages    map[string]map[string]int // key: "owner/repo"
	users        map[string]*User          // key: login
	languageErrs map[string]error          // key: "owner/repo"
	calls        map[string]int            // key: method name

	// AuthenticatedLogin is returned by GetUser when called with an empty login
	AuthenticatedLogin string

	// LanguagesDelay holds every ListLanguages call for this long, or until ctx is done
	LanguagesDelay time.Duration

	// Hooks for testing error scenarios
	ListOwnerRepositoriesError error
	ListLanguagesError         error
	GetUserError               error
}

// NewMockClient creates a new MockClient
func NewMockClient() *MockClient {
	return &MockClient{
		repositories: make(map[string][]*Repository),
		languages:    make(map[string]map[string]int),
		users:        make(map[string]*User),
		languageErrs: make(map[string]error),
		calls:        make(map[string]int),
	}
}

func repoKey(owner, repo string) string {
	return fmt.Sprintf("%s/%s", strings.ToLower(owner), strings.ToLower(repo))
}

// AddRepository adds a repository owned by owner, in listing order
func (m *MockClient) AddRepository(owner, name, description string, topics ...string) *Repository {
	m.mu.Lock()
	defer m.mu.Unlock()

	repo := &Repository{
		Owner:       owner,
		Name:        name,
		Description: description,
		URL:         fmt.Sprintf("https://github.com/%s/%s", owner, name),
		Topics:      topics,
	}
	key := strings.ToLower(owner)
	m.repositories[key] = append(m.repositories[key], repo)
	return repo
}

// SetLanguages sets the language breakdown of a repository
func (m *MockClient) SetLanguages(owner, repo string, langs map[string]int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.languages[repoKey(owner, repo)] = langs
}

// SetLanguagesError makes ListLanguages fail for a single repository
func (m *MockClient) SetLanguagesError(owner, repo string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.languageErrs[repoKey(owner, repo)] = err
}

// SetUser adds an account to the mock
func (m *MockClient) SetUser(login, name, bio string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[strings.ToLower(login)] = &User{Login: login, Name: name, Bio: bio}
}

// Calls returns how often a method was invoked (helper for testing)
func (m *MockClient) Calls(method string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[method]
}

func (m *MockClient) record(method string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls[method]++
}

func (m *MockClient) ListOwnerRepositories(ctx context.Context, owner string) ([]*Repository, error) {
	m.record("ListOwnerRepositories")
	if m.ListOwnerRepositoriesError != nil {
		return nil, m.ListOwnerRepositoriesError
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	repos := m.repositories[strings.ToLower(owner)]
	result := make([]*Repository, 0, len(repos))
	for _, r := range repos {
		copied := *r
		copied.Topics = append([]string(nil), r.Topics...)
		result = append(result, &copied)
	}
	return result, nil
}

func (m *MockClient) ListLanguages(ctx context.Context, owner, repo string) (map[string]int, error) {
	m.record("ListLanguages")
	if m.ListLanguagesError != nil {
		return nil, m.ListLanguagesError
	}
	if m.LanguagesDelay > 0 {
		select {
		case <-time.After(m.LanguagesDelay):
		case <-ctx.Done():
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	key := repoKey(owner, repo)
	if err, ok := m.languageErrs[key]; ok {
		return nil, err
	}
	langs, exists := m.languages[key]
	if !exists {
		return map[string]int{}, nil
	}
	return maps.Clone(langs), nil
}

func (m *MockClient) GetUser(ctx context.Context, login string) (*User, error) {
	m.record("GetUser")
	if m.GetUserError != nil {
		return nil, m.GetUserError
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if login == "" {
		login = m.AuthenticatedLogin
	}
	user, exists := m.users[strings.ToLower(login)]
	if !exists {
		return nil, fmt.Errorf("user %s not found", login)
	}
	copied := *user
	return &copied, nil
}

// Reset clears all data from the mock (helper for testing)
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.repositories = make(map[string][]*Repository)
	m.languages = make(map[string]map[string]int)
	m.users = make(map[string]*User)
	m.languageErrs = make(map[string]error)
	m.calls = make(map[string]int)
	m.AuthenticatedLogin = ""
	m.LanguagesDelay = 0
	m.ListOwnerRepositoriesError = nil
	m.ListLanguagesError = nil
	m.GetUserError = nil
}
