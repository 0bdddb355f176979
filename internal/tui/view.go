package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ysaito/ghfolio/internal/domain"
	"github.com/ysaito/ghfolio/internal/presenter"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6")).
			Padding(0, 1)

	statStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("3")).
			Padding(0, 2)

	statLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2"))

	cardMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	cardLinkStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Underline(true)

	activeSortStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2")).
			Padding(0, 2)

	inactiveSortStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("8")).
				Padding(0, 2)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("1"))
)

// View renders exactly one of the loading, error or content states.
func (m *Model) View() string {
	switch m.state {
	case stateLoading:
		return fmt.Sprintf("\n %s Loading repositories for %s...\n", m.spinner.View(), m.account)
	case stateError:
		return lipgloss.JoinVertical(lipgloss.Left,
			"",
			errorStyle.Render(fmt.Sprintf(" Failed to load portfolio: %v", m.err)),
			"",
			cardMetaStyle.Render(" Press r to retry, q to quit."),
		)
	}

	sections := []string{
		titleStyle.Render(fmt.Sprintf("%s — projects", m.account)),
		m.renderStats(),
		m.renderSortTabs(),
	}
	if len(m.visible) == 0 {
		sections = append(sections, cardMetaStyle.Render(" No eligible projects to show."))
	}
	for _, p := range m.visible {
		sections = append(sections, m.renderCard(p))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderStats draws the three aggregate counters at their current animated
// values.
func (m *Model) renderStats() string {
	s := m.portfolio.Stats
	counter := func(label string, target int) string {
		return statStyle.Render(fmt.Sprintf("%d", counterValue(target, m.counterEased))) +
			statLabelStyle.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		counter("projects", s.Count),
		counter("stars", s.TotalStars),
		counter("forks", s.TotalForks),
	)
}

func (m *Model) renderSortTabs() string {
	tabs := []struct {
		label string
		key   domain.SortKey
	}{
		{"RECENT", domain.SortRecency},
		{"STARS", domain.SortPopularity},
		{"NAME", domain.SortName},
	}
	var rendered []string
	for _, tab := range tabs {
		style := inactiveSortStyle
		if tab.key == m.sortKey {
			style = activeSortStyle
		}
		rendered = append(rendered, style.Render(tab.label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderCard(p domain.Repository) string {
	header := cardTitleStyle.Render(p.Name) +
		cardMetaStyle.Render(fmt.Sprintf("  ★ %d  ⑂ %d", p.Stars, p.Forks))

	var meta []string
	if p.Language != "" {
		meta = append(meta, p.Language)
	}
	meta = append(meta, "updated "+presenter.FormatUpdatedAt(p.UpdatedAt))

	lines := []string{
		header,
		p.Description,
		cardMetaStyle.Render(strings.Join(meta, " · ")),
		cardLinkStyle.Render(presenter.DemoURL(m.portfolio.Account, p)),
	}
	if thumb, ok := m.thumbs[p.Name]; ok && thumb.State != presenter.ThumbFailed && thumb.URL != "" {
		lines = append(lines, cardMetaStyle.Render("preview: "+thumb.URL))
	}

	width := m.width - 4
	if width < 40 {
		width = 40
	}
	return cardStyle.Width(width).Render(strings.Join(lines, "\n"))
}
