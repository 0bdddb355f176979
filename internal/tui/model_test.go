package tui

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysaito/ghfolio/internal/domain"
	"github.com/ysaito/ghfolio/internal/presenter"
	"github.com/ysaito/ghfolio/internal/usecase"
)

// stubFetcher counts calls so tests can prove re-sorting never re-fetches.
type stubFetcher struct {
	repos []domain.Repository
	calls int
}

func (s *stubFetcher) FetchRepositories(ctx context.Context, user string) ([]domain.Repository, error) {
	s.calls++
	return s.repos, nil
}

func newTestModel(t *testing.T, fetcher *stubFetcher) *Model {
	t.Helper()
	logger := log.New(io.Discard, "", 0)
	loader := usecase.NewLoader(fetcher, logger)
	return New(loader, presenter.NewResolver(logger), "octocat", domain.SortRecency, logger)
}

func loadedMsg(projects []domain.Repository) loadResultMsg {
	return loadResultMsg{
		portfolio: &usecase.Portfolio{
			Account:  "octocat",
			Projects: projects,
			Stats:    usecase.Aggregate(projects),
		},
		thumbs: make([]presenter.Thumbnail, len(projects)),
	}
}

func projectsFixture() []domain.Repository {
	return []domain.Repository{
		{Name: "b", Description: "x", Homepage: "h", Stars: 5, UpdatedAt: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "a", Description: "x", Homepage: "h", Stars: 2, UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}
}

func TestModel_StartsLoading(t *testing.T) {
	m := newTestModel(t, &stubFetcher{})
	assert.Equal(t, stateLoading, m.state)
	assert.NotNil(t, m.Init())
	assert.Contains(t, m.View(), "Loading repositories for octocat")
}

func TestModel_SortKeyBeforeFirstLoadIsRecorded(t *testing.T) {
	m := newTestModel(t, &stubFetcher{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})

	assert.Nil(t, cmd, "changing sort while loading must not trigger work")
	assert.Equal(t, stateLoading, m.state)
	assert.Equal(t, domain.SortName, m.sortKey)

	// The recorded key applies as soon as the load completes.
	m.Update(loadedMsg(projectsFixture()))
	require.Len(t, m.visible, 2)
	assert.Equal(t, "a", m.visible[0].Name)
	assert.Equal(t, "b", m.visible[1].Name)
}

func TestModel_LoadFailureShowsErrorViewOnly(t *testing.T) {
	m := newTestModel(t, &stubFetcher{})

	_, cmd := m.Update(loadResultMsg{err: assert.AnError})

	assert.Nil(t, cmd)
	assert.Equal(t, stateError, m.state)
	assert.Nil(t, m.portfolio, "nothing may be partially rendered on failure")
	view := m.View()
	assert.Contains(t, view, "Failed to load portfolio")
	assert.Contains(t, view, "retry")
	assert.NotContains(t, view, "octocat — projects")
}

func TestModel_ResortDoesNotRefetch(t *testing.T) {
	fetcher := &stubFetcher{}
	m := newTestModel(t, fetcher)
	m.Update(loadedMsg(projectsFixture()))
	require.Equal(t, stateContent, m.state)

	// Default recency order: a (2024) before b (2023).
	assert.Equal(t, "a", m.visible[0].Name)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Equal(t, domain.SortPopularity, m.sortKey)
	assert.Equal(t, "b", m.visible[0].Name)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	assert.Equal(t, "a", m.visible[0].Name)

	assert.Equal(t, 0, fetcher.calls, "re-sorting must never hit the network")
	// The underlying portfolio order is untouched across re-sorts.
	assert.Equal(t, "b", m.portfolio.Projects[0].Name)
}

func TestModel_RetryRestartsLoadCycle(t *testing.T) {
	m := newTestModel(t, &stubFetcher{})
	m.Update(loadResultMsg{err: assert.AnError})
	require.Equal(t, stateError, m.state)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	assert.Equal(t, stateLoading, m.state)
	assert.Nil(t, m.err)
	assert.NotNil(t, cmd, "retry must kick off a new load cycle")
}

func TestModel_CounterAnimationRunsForOneSecond(t *testing.T) {
	m := newTestModel(t, &stubFetcher{})
	_, cmd := m.Update(loadedMsg(projectsFixture()))
	require.NotNil(t, cmd, "a successful load starts the counter animation")
	assert.Equal(t, 0.0, m.counterEased)

	// Mid-animation ticks keep scheduling the next frame.
	m.counterStart = time.Now().Add(-counterDuration / 2)
	_, cmd = m.Update(counterTickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Greater(t, m.counterEased, 0.0)
	assert.Less(t, m.counterEased, 1.0)

	// Once the duration elapses the counters pin to their targets and the
	// tick loop stops.
	m.counterStart = time.Now().Add(-2 * counterDuration)
	_, cmd = m.Update(counterTickMsg(time.Now()))
	assert.Nil(t, cmd)
	assert.Equal(t, 1.0, m.counterEased)
}

func TestModel_ContentViewShowsCards(t *testing.T) {
	m := newTestModel(t, &stubFetcher{})
	m.Update(loadedMsg(projectsFixture()))
	m.counterEased = 1

	view := m.View()
	assert.Contains(t, view, "octocat — projects")
	assert.Contains(t, view, "a")
	assert.Contains(t, view, "b")
	assert.Contains(t, view, "7") // total stars fully counted up

	// Empty portfolio renders the explicit empty state.
	m.Update(loadedMsg(nil))
	assert.Contains(t, m.View(), "No eligible projects to show")
}
