package rounds

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ledgerdrill/internal/coach"
	"github.com/abhisek/ledgerdrill/internal/quiz"
	"github.com/abhisek/ledgerdrill/internal/router"
	"github.com/abhisek/ledgerdrill/internal/screen"
	"github.com/abhisek/ledgerdrill/internal/screens/round"
	"github.com/abhisek/ledgerdrill/internal/store"
	"github.com/abhisek/ledgerdrill/internal/ui/components"
	"github.com/abhisek/ledgerdrill/internal/ui/layout"
	"github.com/abhisek/ledgerdrill/internal/ui/theme"
)

// tierBands describes the difficulty ladder shown beside the input.
var tierBands = []struct {
	rounds string
	tier   quiz.Tier
	blurb  string
}{
	{"1-4", quiz.TierFoundations, "cash, capital, everyday expenses"},
	{"5-8", quiz.TierCredit, "credit trading and returns"},
	{"9-12", quiz.TierVAT, "VAT splits, depreciation, discounts"},
	{"13-16", quiz.TierAdjustments, "accruals, prepayments, bad debts"},
	{"17-20", quiz.TierCorrections, "error correction and suspense"},
}

// RoundsScreen asks which round to play.
type RoundsScreen struct {
	events store.EventRepo
	coach  *coach.Service

	input    components.TextInput
	inputErr string
}

var _ screen.Screen = (*RoundsScreen)(nil)
var _ screen.KeyHintProvider = (*RoundsScreen)(nil)

// New creates a round picker.
func New(events store.EventRepo, coachSvc *coach.Service) *RoundsScreen {
	return &RoundsScreen{
		events: events,
		coach:  coachSvc,
		input:  components.NewTextInput("1", true, 2),
	}
}

func (r *RoundsScreen) Init() tea.Cmd {
	return r.input.Init()
}

func (r *RoundsScreen) Title() string {
	return "Choose Round"
}

func (r *RoundsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *RoundsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		n, err := r.input.NumericValue()
		if err != nil || n < 1 || n > quiz.MaxRound {
			r.inputErr = fmt.Sprintf("Pick a round between 1 and %d", quiz.MaxRound)
			r.input.Submit(false)
			return r, nil
		}
		r.inputErr = ""
		events, coachSvc := r.events, r.coach
		return r, func() tea.Msg {
			return router.PushScreenMsg{Screen: round.New(n, events, coachSvc)}
		}
	}

	var cmd tea.Cmd
	r.input, cmd = r.input.Update(msg)
	return r, cmd
}

func (r *RoundsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(centered(width, theme.Subtitle.Render("Higher rounds unlock harder transactions")))
	b.WriteString("\n\n")

	var table strings.Builder
	for _, band := range tierBands {
		table.WriteString(fmt.Sprintf("%6s   %-12s %s\n",
			band.rounds, band.tier.String(), band.blurb))
	}
	b.WriteString(centered(width, lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(strings.TrimRight(table.String(), "\n"))))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Round: ") +
		r.input.View()
	b.WriteString(centered(width, prompt))

	if r.inputErr != "" {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Incorrect.Render(r.inputErr)))
	}

	return b.String()
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
