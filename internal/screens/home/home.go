package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ledgerdrill/internal/coach"
	"github.com/abhisek/ledgerdrill/internal/router"
	"github.com/abhisek/ledgerdrill/internal/screen"
	"github.com/abhisek/ledgerdrill/internal/screens/placeholder"
	"github.com/abhisek/ledgerdrill/internal/screens/progress"
	"github.com/abhisek/ledgerdrill/internal/screens/rounds"
	"github.com/abhisek/ledgerdrill/internal/store"
	"github.com/abhisek/ledgerdrill/internal/ui/components"
	"github.com/abhisek/ledgerdrill/internal/ui/theme"
)

// HomeScreen is the application's entry screen.
type HomeScreen struct {
	menu components.Menu

	roundsPlayed int
	totalCorrect int
	totalAsked   int
	coachReady   bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. events may be nil (no persistence) and
// the coach may be unavailable; the menu degrades accordingly.
func New(events store.EventRepo, coachSvc *coach.Service) *HomeScreen {
	h := &HomeScreen{coachReady: coachSvc.Available()}

	if events != nil {
		if stats, err := events.RoundStats(context.Background()); err == nil {
			for _, st := range stats {
				h.roundsPlayed++
				h.totalCorrect += st.Correct
				h.totalAsked += st.Questions
			}
		}
	}

	items := []components.MenuItem{
		{Label: "START DRILL", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: rounds.New(events, coachSvc)}
			}
		}},
		{Label: "PROGRESS", Action: func() tea.Cmd {
			if events == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Progress")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: progress.New(events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, renderBanner())
	sections = append(sections, theme.Subtitle.Render("Double-entry bookkeeping drills"))
	sections = append(sections, h.renderStats())
	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderBanner() string {
	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("L E D G E R D R I L L")
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 4).
		Render(title)
}

func (h *HomeScreen) renderStats() string {
	if h.roundsPlayed == 0 {
		return theme.Hint.Render("Fresh ledger. Start your first round!")
	}

	accuracy := 0.0
	if h.totalAsked > 0 {
		accuracy = float64(h.totalCorrect) / float64(h.totalAsked)
	}
	line := fmt.Sprintf("Rounds drilled: %d        Overall accuracy: %.0f%%",
		h.roundsPlayed, accuracy*100)
	if h.coachReady {
		line += "        Coach: on"
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
