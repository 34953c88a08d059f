package round

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/abhisek/ledgerdrill/internal/coach"
	"github.com/abhisek/ledgerdrill/internal/drill"
	"github.com/abhisek/ledgerdrill/internal/journal"
	"github.com/abhisek/ledgerdrill/internal/router"
	"github.com/abhisek/ledgerdrill/internal/screen"
	"github.com/abhisek/ledgerdrill/internal/screens/accounts"
	"github.com/abhisek/ledgerdrill/internal/screens/summary"
	"github.com/abhisek/ledgerdrill/internal/store"
	"github.com/abhisek/ledgerdrill/internal/ui/components"
	"github.com/abhisek/ledgerdrill/internal/ui/layout"
)

// QuestionsPerRound is how many scenarios one round serves.
const QuestionsPerRound = 8

const (
	coachPollInterval = 300 * time.Millisecond
	coachWaitBudget   = 20 * time.Second
)

// RoundScreen plays one drill round: it collects journal entries, runs
// them through the drill engine, and shows the verdict after each
// submission. Entries are typed free-form ("DR Bank 500, CR Sales 500")
// and parsed before marking.
type RoundScreen struct {
	state  *drill.State
	events store.EventRepo
	coach  *coach.Service

	input    components.TextInput
	parseErr error

	// Feedback context for the question just marked. state.Index has
	// already advanced by the time feedback renders, so these are
	// captured at submission time.
	lastQuestionNo int
	lastPrompt     string

	hintShown     bool
	explanation   *coach.Explanation
	coachWaiting  bool
	coachDeadline time.Time
}

var _ screen.Screen = (*RoundScreen)(nil)
var _ screen.KeyHintProvider = (*RoundScreen)(nil)

// New creates a round screen. events and coachSvc may be nil; play works
// without persistence or a coach.
func New(roundNo int, events store.EventRepo, coachSvc *coach.Service) *RoundScreen {
	return &RoundScreen{
		state:  drill.NewState(roundNo, QuestionsPerRound, uuid.New().String()),
		events: events,
		coach:  coachSvc,
		input:  newEntryInput(),
	}
}

func newEntryInput() components.TextInput {
	return components.NewTextInput("Dr Bank 500; Cr Sales 500", false, 120)
}

func (r *RoundScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{r.input.Init()}
	if r.events != nil {
		s := r.state
		cmds = append(cmds, func() tea.Msg {
			err := r.events.AppendRoundEvent(context.Background(), store.RoundEventData{
				SessionID: s.SessionID,
				RoundNo:   s.RoundNo,
				Action:    "start",
			})
			return roundStartedMsg{Err: err}
		})
	}
	return tea.Batch(cmds...)
}

func (r *RoundScreen) Title() string {
	return fmt.Sprintf("Round %d", r.state.RoundNo)
}

// Status reports the round number and running score for the header.
func (r *RoundScreen) Status() (roundNo, score int) {
	return r.state.RoundNo, r.state.Score
}

func (r *RoundScreen) KeyHints() []layout.KeyHint {
	if r.state.Phase == drill.PhaseFeedback {
		hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
		if r.hintAvailable() {
			hints = append(hints, layout.KeyHint{Key: "H", Description: "Hint"})
		}
		return append(hints,
			layout.KeyHint{Key: "Ctrl+L", Description: "Ledger"},
			layout.KeyHint{Key: "Esc", Description: "Quit Round"},
		)
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+R", Description: "Reveal"},
		{Key: "Ctrl+L", Description: "Ledger"},
		{Key: "Esc", Description: "Quit Round"},
	}
}

func (r *RoundScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roundStartedMsg, answerLoggedMsg, hintLoggedMsg, roundEndedMsg:
		// Event writes are best-effort; a failed write never blocks play.
		return r, nil

	case coachPollMsg:
		return r, r.pollCoach()

	case tea.KeyMsg:
		return r.handleKey(msg)
	}

	if r.state.Phase == drill.PhaseQuestion {
		var cmd tea.Cmd
		r.input, cmd = r.input.Update(msg)
		return r, cmd
	}
	return r, nil
}

func (r *RoundScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "ctrl+l":
		l := r.state.Ledger
		n := r.state.RoundNo
		return r, func() tea.Msg {
			return router.PushScreenMsg{Screen: accounts.New(l, n)}
		}
	}

	switch r.state.Phase {
	case drill.PhaseQuestion:
		switch msg.String() {
		case "enter":
			return r, r.submitEntry()
		case "ctrl+r":
			return r, r.reveal()
		default:
			var cmd tea.Cmd
			r.input, cmd = r.input.Update(msg)
			return r, cmd
		}

	case drill.PhaseFeedback:
		switch msg.String() {
		case "enter":
			return r, r.advance()
		case "h":
			return r, r.showHint()
		}
	}

	return r, nil
}

// submitEntry parses the typed entry and feeds it to the engine. Parse
// failures stay on the question with an inline error; the engine is not
// invoked and no attempt is consumed.
func (r *RoundScreen) submitEntry() tea.Cmd {
	q := r.state.Current()
	if q == nil {
		return nil
	}

	postings, err := journal.ParseEntry(r.input.Value())
	if err != nil {
		r.parseErr = err
		r.input.Submit(false)
		return nil
	}
	r.parseErr = nil

	questionNo := r.state.Index + 1
	attempt := r.state.Attempts + 1
	elapsed := time.Since(r.state.QuestionStarted)
	prompt := q.Prompt
	expected := q.Expected

	drill.Submit(r.state, postings)

	r.lastQuestionNo = questionNo
	r.lastPrompt = prompt

	if r.state.LastOutcome == drill.OutcomeRejected {
		// Gate rejections are not marked attempts and are not recorded.
		return nil
	}

	var cmds []tea.Cmd
	if cmd := r.logAnswer(questionNo, prompt, expected, postings, attempt, elapsed); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if r.state.LastOutcome == drill.OutcomeExhausted && r.coach.Available() {
		cmds = append(cmds, r.requestExplanation(prompt, expected, postings))
	}
	return tea.Batch(cmds...)
}

func (r *RoundScreen) reveal() tea.Cmd {
	q := r.state.Current()
	if q == nil {
		return nil
	}

	questionNo := r.state.Index + 1
	attempt := r.state.Attempts + 1
	elapsed := time.Since(r.state.QuestionStarted)
	prompt := q.Prompt
	expected := q.Expected

	drill.Reveal(r.state)

	r.lastQuestionNo = questionNo
	r.lastPrompt = prompt
	r.parseErr = nil

	return r.logAnswer(questionNo, prompt, expected, nil, attempt, elapsed)
}

// advance leaves feedback: back to the same question after a retry,
// on to the next question, or out to the summary when the round is done.
func (r *RoundScreen) advance() tea.Cmd {
	drill.Continue(r.state)

	r.input = newEntryInput()
	r.parseErr = nil
	r.hintShown = false
	r.explanation = nil
	r.coachWaiting = false

	if r.state.Phase != drill.PhaseComplete {
		return r.input.Init()
	}

	sum := r.state.Summarize()
	ldg := r.state.Ledger

	var cmds []tea.Cmd
	if r.events != nil {
		cmds = append(cmds, func() tea.Msg {
			err := r.events.AppendRoundEvent(context.Background(), store.RoundEventData{
				SessionID:       sum.SessionID,
				RoundNo:         sum.RoundNo,
				Action:          "end",
				QuestionsServed: sum.Questions,
				CorrectAnswers:  sum.Score,
				DurationSecs:    int(sum.Duration.Seconds()),
			})
			return roundEndedMsg{Err: err}
		})
	}
	// The round screen is finished, so the summary takes its slot on the
	// stack and leaving the summary lands back on home.
	cmds = append(cmds, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, ldg)}
	})
	return tea.Batch(cmds...)
}

func (r *RoundScreen) hintAvailable() bool {
	return !r.hintShown &&
		r.state.LastOutcome == drill.OutcomeRetry &&
		r.state.LastVerdict != nil &&
		r.state.LastVerdict.Hint != ""
}

func (r *RoundScreen) showHint() tea.Cmd {
	if !r.hintAvailable() {
		return nil
	}
	r.hintShown = true
	if r.events == nil {
		return nil
	}

	s := r.state
	data := store.HintEventData{
		SessionID:  s.SessionID,
		RoundNo:    s.RoundNo,
		QuestionNo: r.lastQuestionNo,
		Prompt:     r.lastPrompt,
		HintText:   s.LastVerdict.Hint,
	}
	return func() tea.Msg {
		return hintLoggedMsg{Err: r.events.AppendHintEvent(context.Background(), data)}
	}
}

func (r *RoundScreen) logAnswer(questionNo int, prompt string, expected, submitted []journal.Posting, attempt int, elapsed time.Duration) tea.Cmd {
	if r.events == nil {
		return nil
	}

	s := r.state
	data := store.AnswerEventData{
		SessionID:     s.SessionID,
		RoundNo:       s.RoundNo,
		QuestionNo:    questionNo,
		Prompt:        prompt,
		ExpectedEntry: journal.Format(expected),
		Correct:       s.LastOutcome == drill.OutcomeCorrect,
		Attempt:       attempt,
		Outcome:       outcomeLabel(s.LastOutcome),
		TimeMs:        int(elapsed.Milliseconds()),
	}
	if submitted != nil {
		data.SubmittedEntry = journal.Format(submitted)
	}
	return func() tea.Msg {
		return answerLoggedMsg{Err: r.events.AppendAnswerEvent(context.Background(), data)}
	}
}

func outcomeLabel(o drill.Outcome) string {
	switch o {
	case drill.OutcomeCorrect:
		return "correct"
	case drill.OutcomeRetry:
		return "retry"
	case drill.OutcomeExhausted:
		return "exhausted"
	case drill.OutcomeRevealed:
		return "revealed"
	}
	return "unknown"
}

func (r *RoundScreen) requestExplanation(prompt string, expected, submitted []journal.Posting) tea.Cmd {
	r.coach.RequestExplanation(context.Background(), coach.ExplainInput{
		RoundNo:   r.state.RoundNo,
		Prompt:    prompt,
		Expected:  expected,
		Submitted: submitted,
		Hint:      r.hintText(),
	})
	r.coachWaiting = true
	r.coachDeadline = time.Now().Add(coachWaitBudget)
	return coachTick()
}

func (r *RoundScreen) hintText() string {
	if r.state.LastVerdict == nil {
		return ""
	}
	return r.state.LastVerdict.Hint
}

func (r *RoundScreen) pollCoach() tea.Cmd {
	if !r.coachWaiting {
		return nil
	}
	if expl, ok := r.coach.ConsumeExplanation(); ok {
		r.explanation = expl
		r.coachWaiting = false
		return nil
	}
	if time.Now().After(r.coachDeadline) {
		r.coachWaiting = false
		return nil
	}
	return coachTick()
}

func coachTick() tea.Cmd {
	return tea.Tick(coachPollInterval, func(t time.Time) tea.Msg {
		return coachPollMsg(t)
	})
}
