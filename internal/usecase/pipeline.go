// Package usecase contains the business logic of the application:
// the filter, sort and aggregate pipeline over fetched repositories.
package usecase

import (
	"sort"

	"github.com/montanaflynn/stats"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ysaito/ghfolio/internal/domain"
)

// FilterEligible returns the subsequence of records eligible for display,
// preserving input order. A repository is eligible when it is not a fork,
// not private, and carries both a description and a homepage URL.
//
// Note the homepage requirement is deliberate even though the presenter can
// derive a pages URL from HasPages alone; see DESIGN.md.
func FilterEligible(repos []domain.Repository) []domain.Repository {
	eligible := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		if r.Fork || r.Private || r.Description == "" || r.Homepage == "" {
			continue
		}
		eligible = append(eligible, r)
	}
	return eligible
}

// SortProjects returns a new slice ordered by the given key. The input slice
// is never reordered in place; callers re-sort the same set repeatedly.
func SortProjects(projects []domain.Repository, key domain.SortKey) []domain.Repository {
	sorted := make([]domain.Repository, len(projects))
	copy(sorted, projects)

	switch key {
	case domain.SortPopularity:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Stars > sorted[j].Stars
		})
	case domain.SortName:
		c := collate.New(language.English)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	default:
		// SortRecency, and the fallback for anything unrecognized.
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
		})
	}
	return sorted
}

// Aggregate computes the portfolio figures over the eligible set. An empty
// set yields all zeroes.
func Aggregate(projects []domain.Repository) domain.Stats {
	result := domain.Stats{Count: len(projects)}
	starCounts := make([]float64, 0, len(projects))
	for _, p := range projects {
		result.TotalStars += p.Stars
		result.TotalForks += p.Forks
		starCounts = append(starCounts, float64(p.Stars))
	}
	if len(starCounts) > 0 {
		// stats.Mean only errors on empty input, which is guarded above.
		mean, _ := stats.Mean(starCounts)
		result.MeanStars = mean
	}
	return result
}
