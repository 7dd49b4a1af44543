// Package repos loads the repository cards shown in the Open Source panel.
package repos

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v82/github"
)

const (
	// DefaultBaseURL is the public GitHub REST API.
	DefaultBaseURL = "https://api.github.com/"
	// PageSize caps how many repositories the panel shows.
	PageSize = 6
)

// Summary is the part of an upstream repository the panel renders.
type Summary struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	HTMLURL     string   `json:"html_url"`
	Description string   `json:"description,omitempty"`
	Stars       int      `json:"stargazers_count"`
	Language    string   `json:"language,omitempty"`
	Topics      []string `json:"topics,omitempty"`
}

// Fetcher lists the most recently updated repositories of a user.
type Fetcher interface {
	Recent(ctx context.Context, username string) ([]Summary, error)
}

// GitHub is an unauthenticated Fetcher backed by the GitHub REST API.
type GitHub struct {
	client *github.Client
}

// NewGitHub builds a Fetcher against baseURL. An empty baseURL targets
// api.github.com; timeout bounds each upstream call.
func NewGitHub(baseURL string, timeout time.Duration) (*GitHub, error) {
	client := github.NewClient(&http.Client{Timeout: timeout})

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("parsing GitHub API URL: %w", err)
		}
		client.BaseURL = u
	}

	return &GitHub{client: client}, nil
}

// Recent returns up to PageSize repositories of username, most recently
// updated first. Non-2xx answers, rate limits and bodies that are not a JSON
// array all come back as errors.
func (g *GitHub) Recent(ctx context.Context, username string) ([]Summary, error) {
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: PageSize},
	}

	list, _, err := g.client.Repositories.ListByUser(ctx, username, opts)
	if err != nil {
		return nil, fmt.Errorf("listing repositories of %q: %w", username, err)
	}

	summaries := make([]Summary, 0, len(list))
	for _, r := range list {
		if r == nil {
			continue
		}
		summaries = append(summaries, toSummary(r))
	}
	return summaries, nil
}

func toSummary(r *github.Repository) Summary {
	s := Summary{
		ID:          r.GetID(),
		Name:        r.GetName(),
		HTMLURL:     r.GetHTMLURL(),
		Description: r.GetDescription(),
		Stars:       r.GetStargazersCount(),
		Language:    r.GetLanguage(),
	}
	if len(r.Topics) > 0 {
		s.Topics = append([]string(nil), r.Topics...)
	}
	return s
}
