package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"devconnect/internal/cache"
	"devconnect/internal/models"
	"devconnect/internal/observability"
)

const githubAPIBase = "https://api.github.com"

// GithubRepo is the subset of the GitHub repository payload the profile
// page renders.
type GithubRepo struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stargazers  int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
}

// GithubService proxies repository lookups to the GitHub API so the
// server-side access token never reaches a client.
type GithubService struct {
	client  *http.Client
	baseURL string
	token   string
}

func NewGithubService(token string) *GithubService {
	return &GithubService{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: githubAPIBase,
		token:   token,
	}
}

// NewGithubServiceWithBase is used by tests to point at a fake upstream.
func NewGithubServiceWithBase(token, baseURL string) *GithubService {
	s := NewGithubService(token)
	s.baseURL = baseURL
	return s
}

// GetRepos returns the user's five oldest public repositories. Every
// upstream failure, including an unknown username, collapses into the same
// not-found answer; nothing about the upstream error is exposed.
func (s *GithubService) GetRepos(ctx context.Context, username string) ([]GithubRepo, error) {
	var repos []GithubRepo
	err := cache.Aside(ctx, cache.GithubKey(username), &repos, cache.GithubTTL, func() error {
		fetched, err := s.fetchRepos(ctx, username)
		if err != nil {
			observability.GithubProxyTotal.WithLabelValues("error").Inc()
			return models.NewUpstreamError("No Github profile found", err)
		}
		observability.GithubProxyTotal.WithLabelValues("ok").Inc()
		repos = fetched
		return nil
	})
	if err != nil {
		return nil, err
	}
	return repos, nil
}

func (s *GithubService) fetchRepos(ctx context.Context, username string) ([]GithubRepo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc",
		s.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github responded with status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var repos []GithubRepo
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}
