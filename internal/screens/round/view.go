package round

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ledgerdrill/internal/drill"
	"github.com/abhisek/ledgerdrill/internal/journal"
	"github.com/abhisek/ledgerdrill/internal/quiz"
	"github.com/abhisek/ledgerdrill/internal/ui/theme"
)

func (r *RoundScreen) View(width, height int) string {
	switch r.state.Phase {
	case drill.PhaseQuestion:
		return r.renderQuestion(width)
	case drill.PhaseFeedback:
		return r.renderFeedback(width)
	}
	return ""
}

func (r *RoundScreen) renderQuestion(width int) string {
	q := r.state.Current()
	if q == nil {
		return ""
	}

	var b strings.Builder

	info := fmt.Sprintf("Question %d of %d        Attempt %d of %d",
		r.state.Index+1, len(r.state.Questions),
		r.state.Attempts+1, drill.MaxAttempts)
	b.WriteString(centered(width, theme.Subtitle.Render(info)))
	b.WriteString("\n")
	b.WriteString(centered(width, divider(width)))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(min(width-8, 70)).
		Render(q.Prompt)
	b.WriteString(centered(width, prompt))
	b.WriteString("\n\n")

	b.WriteString(centered(width, r.renderReference(q, width)))
	b.WriteString("\n\n")

	entry := lipgloss.NewStyle().Foreground(theme.TextDim).Render("Entry: ") +
		r.input.View()
	b.WriteString(centered(width, entry))

	if r.parseErr != nil {
		b.WriteString("\n\n")
		b.WriteString(centered(width, theme.Incorrect.Render(r.parseErr.Error())))
	}

	return b.String()
}

// renderReference shows the account names in play this round and the
// candidate amounts for the current question, as typing aids.
func (r *RoundScreen) renderReference(q *quiz.Question, width int) string {
	accounts := strings.Join(quiz.AccountOptions(r.state.RoundNo), " · ")

	rng := quiz.DistractorRNG(r.state.RoundNo, r.state.Index)
	opts := quiz.AmountOptions(q.Expected, rng)
	amounts := make([]string, 0, len(opts))
	for _, a := range opts {
		amounts = append(amounts, journal.FormatAmount(a))
	}

	body := "Accounts:  " + accounts + "\n\nAmounts:   " + strings.Join(amounts, "  ")
	return theme.Hint.Width(min(width-8, 70)).Render(body)
}

func (r *RoundScreen) renderFeedback(width int) string {
	var b strings.Builder

	b.WriteString(centered(width, r.renderBanner()))
	b.WriteString("\n\n")

	if r.lastPrompt != "" {
		prompt := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Width(min(width-8, 70)).
			Render(r.lastPrompt)
		b.WriteString(centered(width, prompt))
		b.WriteString("\n\n")
	}

	switch r.state.LastOutcome {
	case drill.OutcomeRejected:
		b.WriteString(centered(width, theme.Incorrect.Render(r.state.LastError.Error())))
		b.WriteString("\n")

	case drill.OutcomeRetry:
		b.WriteString(r.renderDiff(width))

	default:
		if r.state.LastJournal != "" {
			posted := theme.Card.Render(r.state.LastJournal)
			b.WriteString(centered(width, posted))
			b.WriteString("\n")
		}
	}

	if r.state.LastOutcome == drill.OutcomeExhausted {
		b.WriteString(r.renderCoach(width))
	}

	return b.String()
}

func (r *RoundScreen) renderBanner() string {
	switch r.state.LastOutcome {
	case drill.OutcomeCorrect:
		return theme.Correct.Render("✔ Correct — posted to the ledger")
	case drill.OutcomeRetry:
		return theme.Incorrect.Render("✘ Not quite — one more try")
	case drill.OutcomeExhausted:
		return theme.Incorrect.Render("✘ Out of attempts — model answer posted")
	case drill.OutcomeRevealed:
		return theme.Hint.Render("Model answer posted")
	case drill.OutcomeRejected:
		return theme.Incorrect.Render("Entry not accepted")
	}
	return ""
}

// renderDiff shows what the marking engine found: expected lines the
// student missed and submitted lines that don't belong.
func (r *RoundScreen) renderDiff(width int) string {
	v := r.state.LastVerdict
	if v == nil {
		return ""
	}

	var b strings.Builder
	if len(v.Missing) > 0 {
		b.WriteString(centered(width, theme.Subtitle.Render("Missing")))
		b.WriteString("\n")
		for _, l := range v.Missing {
			b.WriteString(centered(width, theme.Body.Render(formatLine(l))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	if len(v.Extra) > 0 {
		b.WriteString(centered(width, theme.Subtitle.Render("Not in the answer")))
		b.WriteString("\n")
		for _, l := range v.Extra {
			b.WriteString(centered(width, theme.Body.Render(formatLine(l))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if r.hintShown {
		hint := theme.Hint.Width(min(width-8, 70)).Render("Hint: " + v.Hint)
		b.WriteString(centered(width, hint))
		b.WriteString("\n")
	} else if r.hintAvailable() {
		b.WriteString(centered(width, theme.Subtitle.Render("Press H for a hint")))
		b.WriteString("\n")
	}

	return b.String()
}

func (r *RoundScreen) renderCoach(width int) string {
	if r.coachWaiting {
		return "\n" + centered(width, theme.Hint.Render("Coach is thinking..."))
	}
	if r.explanation == nil {
		return ""
	}

	e := r.explanation
	inner := min(width-12, 64)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(inner).Render(e.Walkthrough) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.Secondary).Width(inner).Render("Rule of thumb: "+e.RuleOfThumb) +
		"\n\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Width(inner).Render("Watch out for: "+e.CommonMistake)

	card := theme.Card.Render(
		lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(e.Title) +
			"\n\n" + body)
	return "\n" + centered(width, card)
}

func formatLine(l journal.Line) string {
	return fmt.Sprintf("%-2s  %s  %s", string(l.Side), l.Account, journal.FormatAmount(l.Amount))
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}

func divider(width int) string {
	return lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", min(width-8, 60)))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
