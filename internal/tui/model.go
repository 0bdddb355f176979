// Package tui implements the interactive portfolio view: mutually exclusive
// loading, error and content states, sortable project cards, and animated
// stat counters.
package tui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ysaito/ghfolio/internal/domain"
	"github.com/ysaito/ghfolio/internal/presenter"
	"github.com/ysaito/ghfolio/internal/usecase"
)

type viewState int

const (
	stateLoading viewState = iota
	stateError
	stateContent
)

// loadResultMsg carries the outcome of one load cycle back into the model.
type loadResultMsg struct {
	portfolio *usecase.Portfolio
	thumbs    []presenter.Thumbnail
	err       error
}

// Model is the bubbletea model for the portfolio view.
type Model struct {
	account string
	sortKey domain.SortKey

	loader   *usecase.Loader
	resolver *presenter.Resolver
	logger   *log.Logger

	state     viewState
	err       error
	portfolio *usecase.Portfolio
	thumbs    map[string]presenter.Thumbnail
	visible   []domain.Repository

	counterStart time.Time
	counterEased float64

	spinner spinner.Model
	keys    keyMap
	help    help.Model
	width   int
}

// New creates the portfolio model in its loading state.
func New(loader *usecase.Loader, resolver *presenter.Resolver, account string, sortKey domain.SortKey, logger *log.Logger) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &Model{
		account:  account,
		sortKey:  sortKey,
		loader:   loader,
		resolver: resolver,
		logger:   logger,
		state:    stateLoading,
		spinner:  s,
		keys:     defaultKeys,
		help:     help.New(),
	}
}

// Run launches the interactive portfolio TUI and blocks until it exits.
func Run(loader *usecase.Loader, resolver *presenter.Resolver, account string, sortKey domain.SortKey, logger *log.Logger) error {
	m := New(loader, resolver, account, sortKey, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadCmd())
}

// loadCmd runs one full load cycle off the update loop: fetch, filter,
// aggregate, then resolve thumbnails for the eligible set.
func (m *Model) loadCmd() tea.Cmd {
	loader, resolver, account := m.loader, m.resolver, m.account
	return func() tea.Msg {
		ctx := context.Background()
		portfolio, err := loader.Load(ctx, account)
		if err != nil {
			return loadResultMsg{err: err}
		}
		thumbs := resolver.ResolveAll(ctx, account, portfolio.Projects)
		return loadResultMsg{portfolio: portfolio, thumbs: thumbs}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case loadResultMsg:
		if msg.err != nil {
			m.state = stateError
			m.err = msg.err
			m.portfolio = nil
			m.visible = nil
			return m, nil
		}
		m.state = stateContent
		m.err = nil
		m.portfolio = msg.portfolio
		m.thumbs = make(map[string]presenter.Thumbnail, len(msg.thumbs))
		for i, p := range msg.portfolio.Projects {
			m.thumbs[p.Name] = msg.thumbs[i]
		}
		m.visible = usecase.SortProjects(m.portfolio.Projects, m.sortKey)
		m.counterStart = time.Now()
		m.counterEased = 0
		return m, counterTickCmd()

	case counterTickMsg:
		progress := float64(time.Since(m.counterStart)) / float64(counterDuration)
		if progress >= 1 {
			m.counterEased = 1
			return m, nil
		}
		m.counterEased = easeOutCubic(progress)
		return m, counterTickCmd()

	case spinner.TickMsg:
		if m.state == stateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Retry):
		// Retry re-runs the whole load cycle; nothing stale survives it.
		m.state = stateLoading
		m.err = nil
		m.portfolio = nil
		m.visible = nil
		return m, tea.Batch(m.spinner.Tick, m.loadCmd())
	case key.Matches(msg, m.keys.Recency):
		return m, m.setSortKey(domain.SortRecency)
	case key.Matches(msg, m.keys.Popularity):
		return m, m.setSortKey(domain.SortPopularity)
	case key.Matches(msg, m.keys.Name):
		return m, m.setSortKey(domain.SortName)
	}
	return m, nil
}

// setSortKey records the new key and re-sorts the already-loaded set. It
// never triggers a fetch; before the first load there is nothing to sort and
// the key simply takes effect on the next load result.
func (m *Model) setSortKey(sortKey domain.SortKey) tea.Cmd {
	m.sortKey = sortKey
	if m.portfolio != nil {
		m.visible = usecase.SortProjects(m.portfolio.Projects, sortKey)
	}
	return nil
}
