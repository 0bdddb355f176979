package usecase

import (
	"context"
	"log"

	"github.com/ysaito/ghfolio/internal/domain"
	"github.com/ysaito/ghfolio/internal/gateway"
)

// Portfolio is the result of one load cycle: the eligible projects in fetch
// order plus the aggregate figures. It is replaced wholesale by the next
// cycle; re-sorting copies the project slice and never mutates it.
type Portfolio struct {
	Account  string              `json:"account"`
	Stats    domain.Stats        `json:"stats"`
	Projects []domain.Repository `json:"projects"`
}

// Loader owns the fetch → filter → aggregate sequence for an account.
type Loader struct {
	fetcher gateway.Fetcher
	logger  *log.Logger
}

// NewLoader creates a new Loader instance.
func NewLoader(fetcher gateway.Fetcher, logger *log.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Load runs one complete load cycle. A fetch failure propagates unchanged
// and no partial portfolio is produced.
func (l *Loader) Load(ctx context.Context, account string) (*Portfolio, error) {
	l.logger.Printf("Usecase: Starting load cycle for %s...", account)

	repos, err := l.fetcher.FetchRepositories(ctx, account)
	if err != nil {
		return nil, err
	}

	projects := FilterEligible(repos)
	aggregates := Aggregate(projects)

	l.logger.Printf("Usecase: Load cycle complete: %d eligible of %d fetched.", len(projects), len(repos))
	return &Portfolio{
		Account:  account,
		Stats:    aggregates,
		Projects: projects,
	}, nil
}
