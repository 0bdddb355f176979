// Package gateway provides a gateway to the GitHub API,
// abstracting away the underlying REST client.
package gateway

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"

	"github.com/ysaito/ghfolio/internal/domain"
)

// maxPages bounds how many listing pages a single load cycle may request.
// It is a circuit breaker against unbounded traffic to the API, not a
// completeness guarantee: repositories beyond it are silently dropped.
const maxPages = 10

// Fetcher defines the behavior of a gateway for listing a user's public
// repositories.
type Fetcher interface {
	FetchRepositories(ctx context.Context, user string) ([]domain.Repository, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client  *github.Client
	perPage int
	logger  *log.Logger
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway.
// The token may be empty: listing public repositories needs no authentication,
// a token only raises the rate limit.
func NewGitHubGateway(token string, perPage int, logger *log.Logger) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	httpClient := &http.Client{Transport: rateLimitWaiter}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient.Transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: ts,
		}
	}
	return &GitHubGateway{
		client:  github.NewClient(httpClient),
		perPage: perPage,
		logger:  logger,
	}, nil
}

// FetchRepositories returns the full ordered union of the user's repositories,
// as if a single unbounded listing had been requested. Pages are fetched
// strictly sequentially, sorted by recency of update, until the first empty
// page or the maxPages cap. Any failing page aborts the whole fetch: no
// partial result is ever returned.
func (g *GitHubGateway) FetchRepositories(ctx context.Context, user string) ([]domain.Repository, error) {
	g.logger.Printf("Fetching public repositories for %s...", user)
	opts := &github.RepositoryListByUserOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: g.perPage},
	}

	var all []domain.Repository
	for page := 1; page <= maxPages; page++ {
		opts.Page = page
		repos, resp, err := g.client.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			if resp != nil {
				return nil, fmt.Errorf("failed to list repositories (page %d, status %d): %w", page, resp.StatusCode, err)
			}
			return nil, fmt.Errorf("failed to list repositories (page %d): %w", page, err)
		}
		if len(repos) == 0 {
			break
		}
		for _, repo := range repos {
			all = append(all, normalize(repo))
		}
		g.logger.Printf("  Fetched page %d (%d repositories)", page, len(repos))
	}

	g.logger.Printf("Completed fetching repositories: %d total.", len(all))
	return all, nil
}

// normalize converts an upstream record into the domain contract. Optional
// fields collapse to their zero values here so downstream stages never deal
// with pointers.
func normalize(repo *github.Repository) domain.Repository {
	return domain.Repository{
		Name:          repo.GetName(),
		FullName:      repo.GetFullName(),
		Description:   repo.GetDescription(),
		Homepage:      repo.GetHomepage(),
		HTMLURL:       repo.GetHTMLURL(),
		DefaultBranch: repo.GetDefaultBranch(),
		Language:      repo.GetLanguage(),
		Stars:         repo.GetStargazersCount(),
		Forks:         repo.GetForksCount(),
		UpdatedAt:     repo.GetUpdatedAt().Time,
		Fork:          repo.GetFork(),
		Private:       repo.GetPrivate(),
		HasPages:      repo.GetHasPages(),
	}
}
