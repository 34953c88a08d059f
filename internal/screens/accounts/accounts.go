package accounts

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ledgerdrill/internal/ledger"
	"github.com/abhisek/ledgerdrill/internal/screen"
	"github.com/abhisek/ledgerdrill/internal/ui/layout"
	"github.com/abhisek/ledgerdrill/internal/ui/theme"
)

// maxAccounts caps how many T-accounts render at once. A round never
// touches more, but a typed entry can invent new account names.
const maxAccounts = 18

// AccountsScreen shows the round's T-accounts and trial balance. The
// content usually exceeds one terminal page, so it scrolls.
type AccountsScreen struct {
	roundNo int
	lines   []string
	offset  int
}

var _ screen.Screen = (*AccountsScreen)(nil)
var _ screen.KeyHintProvider = (*AccountsScreen)(nil)

// New creates the accounts screen. The content is rendered once from the
// ledger at construction; postings made afterwards are not reflected.
func New(l *ledger.Ledger, roundNo int) *AccountsScreen {
	text := ledger.FormatAll(l, maxAccounts) + "\n\n" + ledger.FormatTrialBalance(l)
	return &AccountsScreen{
		roundNo: roundNo,
		lines:   strings.Split(text, "\n"),
	}
}

func (a *AccountsScreen) Init() tea.Cmd {
	return nil
}

func (a *AccountsScreen) Title() string {
	return fmt.Sprintf("Ledger — Round %d", a.roundNo)
}

func (a *AccountsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AccountsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch kmsg.String() {
	case "up", "k":
		a.scroll(-1)
	case "down", "j":
		a.scroll(1)
	case "pgup":
		a.scroll(-10)
	case "pgdown", " ":
		a.scroll(10)
	case "home", "g":
		a.offset = 0
	}
	return a, nil
}

func (a *AccountsScreen) scroll(delta int) {
	a.offset += delta
	if a.offset < 0 {
		a.offset = 0
	}
	if max := len(a.lines) - 1; a.offset > max {
		a.offset = max
	}
}

func (a *AccountsScreen) View(width, height int) string {
	visible := a.lines[a.offset:]
	if len(visible) > height {
		visible = visible[:height]
	}

	body := theme.Ledger.Render(strings.Join(visible, "\n"))
	return lipgloss.NewStyle().PaddingLeft(4).Render(body)
}
