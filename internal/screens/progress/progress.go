package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ledgerdrill/internal/screen"
	"github.com/abhisek/ledgerdrill/internal/store"
	"github.com/abhisek/ledgerdrill/internal/ui/layout"
	"github.com/abhisek/ledgerdrill/internal/ui/theme"
)

// statsLoadedMsg carries the aggregated round stats from the store.
type statsLoadedMsg struct {
	Stats []store.RoundStat
	Err   error
}

// ProgressScreen shows per-round accuracy aggregated from the event log.
type ProgressScreen struct {
	events store.EventRepo

	loaded bool
	stats  []store.RoundStat
	err    error
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a progress screen backed by the event repo.
func New(events store.EventRepo) *ProgressScreen {
	return &ProgressScreen{events: events}
}

func (p *ProgressScreen) Init() tea.Cmd {
	return func() tea.Msg {
		stats, err := p.events.RoundStats(context.Background())
		return statsLoadedMsg{Stats: stats, Err: err}
	}
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		p.loaded = true
		p.stats = m.Stats
		p.err = m.Err
	}
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	switch {
	case !p.loaded:
		return centered(width, theme.Hint.Render("Loading..."))
	case p.err != nil:
		return centered(width, theme.Incorrect.Render("Could not load stats: "+p.err.Error()))
	case len(p.stats) == 0:
		return centered(width, theme.Hint.Render("No rounds drilled yet. Play one!"))
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-7s %-11s %-9s %-9s %-10s %s\n",
		"Round", "Questions", "Correct", "Hints", "Attempts", "Accuracy"))
	b.WriteString(strings.Repeat("─", 58))
	b.WriteString("\n")

	for _, st := range p.stats {
		b.WriteString(fmt.Sprintf("%-7d %-11d %-9d %-9d %-10d %.0f%%\n",
			st.RoundNo, st.Questions, st.Correct, st.Hints, st.Attempts,
			st.Accuracy()*100))
	}

	table := lipgloss.NewStyle().Foreground(theme.Text).
		Render(strings.TrimRight(b.String(), "\n"))
	return centered(width, table)
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
