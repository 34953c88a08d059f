package round

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ledgerdrill/internal/drill"
	"github.com/abhisek/ledgerdrill/internal/journal"
	"github.com/abhisek/ledgerdrill/internal/router"
	"github.com/abhisek/ledgerdrill/internal/screens/summary"
	"github.com/abhisek/ledgerdrill/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	roundEvents  []store.RoundEventData
	answerEvents []store.AnswerEventData
	hintEvents   []store.HintEventData
}

func (m *mockEventRepo) AppendRoundEvent(_ context.Context, data store.RoundEventData) error {
	m.roundEvents = append(m.roundEvents, data)
	return nil
}
func (m *mockEventRepo) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	m.answerEvents = append(m.answerEvents, data)
	return nil
}
func (m *mockEventRepo) AppendHintEvent(_ context.Context, data store.HintEventData) error {
	m.hintEvents = append(m.hintEvents, data)
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) RoundStats(_ context.Context) ([]store.RoundStat, error) {
	return nil, nil
}
func (m *mockEventRepo) RoundAccuracy(_ context.Context, _ int) (float64, error) {
	return 0, nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequest, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int64) (*store.LLMRequest, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsage(_ context.Context) ([]store.LLMUsageRow, error) {
	return nil, nil
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func ctrlKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// typeEntry puts text straight into the entry input. The entry input is
// a single-line field that sanitizes newlines away, so multi-line entries
// (as produced by journal.Format) are joined with the equivalent ";"
// separator understood by ParseEntry.
func typeEntry(r *RoundScreen, text string) {
	r.input.Model.SetValue(strings.ReplaceAll(text, "\n", "; "))
}

func TestRoundScreen_TitleAndStatus(t *testing.T) {
	r := New(3, nil, nil)
	if r.Title() != "Round 3" {
		t.Errorf("Title = %q, want %q", r.Title(), "Round 3")
	}
	roundNo, score := r.Status()
	if roundNo != 3 || score != 0 {
		t.Errorf("Status = (%d, %d), want (3, 0)", roundNo, score)
	}
}

func TestRoundScreen_StartEventOnInit(t *testing.T) {
	repo := &mockEventRepo{}
	r := New(1, repo, nil)

	cmd := r.Init()
	if cmd == nil {
		t.Fatal("expected a command from Init")
	}
	drainBatch(t, cmd)

	if len(repo.roundEvents) != 1 {
		t.Fatalf("round events = %d, want 1", len(repo.roundEvents))
	}
	ev := repo.roundEvents[0]
	if ev.Action != "start" || ev.RoundNo != 1 || ev.SessionID == "" {
		t.Errorf("unexpected start event: %+v", ev)
	}
}

func TestRoundScreen_UnparsableEntryStaysOnQuestion(t *testing.T) {
	r := New(1, nil, nil)
	typeEntry(r, "this is not a journal entry")

	r.Update(enterKey())

	if r.state.Phase != drill.PhaseQuestion {
		t.Errorf("phase = %v, want PhaseQuestion", r.state.Phase)
	}
	if r.parseErr == nil {
		t.Error("expected a parse error")
	}
	if r.state.Attempts != 0 {
		t.Errorf("attempts = %d, want 0 (parse failures are free)", r.state.Attempts)
	}
}

func TestRoundScreen_CorrectEntryScoresAndAdvances(t *testing.T) {
	repo := &mockEventRepo{}
	r := New(1, repo, nil)

	q := r.state.Current()
	typeEntry(r, journal.Format(q.Expected))
	_, cmd := r.Update(enterKey())
	drainBatch(t, cmd)

	if r.state.LastOutcome != drill.OutcomeCorrect {
		t.Fatalf("outcome = %v, want OutcomeCorrect", r.state.LastOutcome)
	}
	if r.state.Score != 1 {
		t.Errorf("score = %d, want 1", r.state.Score)
	}
	if r.state.Phase != drill.PhaseFeedback {
		t.Errorf("phase = %v, want PhaseFeedback", r.state.Phase)
	}
	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}
	ev := repo.answerEvents[0]
	if !ev.Correct || ev.Outcome != "correct" || ev.QuestionNo != 1 || ev.Attempt != 1 {
		t.Errorf("unexpected answer event: %+v", ev)
	}

	// Continue moves to the next question.
	r.Update(enterKey())
	if r.state.Phase != drill.PhaseQuestion || r.state.Index != 1 {
		t.Errorf("after continue: phase %v index %d, want PhaseQuestion 1", r.state.Phase, r.state.Index)
	}
}

func TestRoundScreen_WrongEntryGetsRetry(t *testing.T) {
	repo := &mockEventRepo{}
	r := New(1, repo, nil)

	typeEntry(r, wrongEntryFor(r))
	_, cmd := r.Update(enterKey())
	drainBatch(t, cmd)

	if r.state.LastOutcome != drill.OutcomeRetry {
		t.Fatalf("outcome = %v, want OutcomeRetry", r.state.LastOutcome)
	}
	if r.state.Attempts != 1 {
		t.Errorf("attempts = %d, want 1", r.state.Attempts)
	}

	// Continue returns to the same question for the second try.
	r.Update(enterKey())
	if r.state.Phase != drill.PhaseQuestion || r.state.Index != 0 {
		t.Errorf("after continue: phase %v index %d, want PhaseQuestion 0", r.state.Phase, r.state.Index)
	}
}

func TestRoundScreen_SecondMissPostsModelAnswer(t *testing.T) {
	repo := &mockEventRepo{}
	r := New(1, repo, nil)

	for i := 0; i < 2; i++ {
		typeEntry(r, wrongEntryFor(r))
		_, cmd := r.Update(enterKey())
		drainBatch(t, cmd)
		if i == 0 {
			r.Update(enterKey()) // back to the question
		}
	}

	if r.state.LastOutcome != drill.OutcomeExhausted {
		t.Fatalf("outcome = %v, want OutcomeExhausted", r.state.LastOutcome)
	}
	if r.state.LastJournal == "" {
		t.Error("expected the model answer to be shown")
	}
	if len(repo.answerEvents) != 2 {
		t.Fatalf("answer events = %d, want 2", len(repo.answerEvents))
	}
	if repo.answerEvents[1].Outcome != "exhausted" || repo.answerEvents[1].Attempt != 2 {
		t.Errorf("unexpected second event: %+v", repo.answerEvents[1])
	}
}

func TestRoundScreen_RevealLogsEvent(t *testing.T) {
	repo := &mockEventRepo{}
	r := New(1, repo, nil)

	_, cmd := r.Update(ctrlKey('r'))
	drainBatch(t, cmd)

	if r.state.LastOutcome != drill.OutcomeRevealed {
		t.Fatalf("outcome = %v, want OutcomeRevealed", r.state.LastOutcome)
	}
	if len(repo.answerEvents) != 1 {
		t.Fatalf("answer events = %d, want 1", len(repo.answerEvents))
	}
	ev := repo.answerEvents[0]
	if ev.Outcome != "revealed" || ev.Correct || ev.SubmittedEntry != "" {
		t.Errorf("unexpected reveal event: %+v", ev)
	}
}

func TestRoundScreen_HintLogsEvent(t *testing.T) {
	repo := &mockEventRepo{}
	r := New(1, repo, nil)

	typeEntry(r, wrongEntryFor(r))
	_, cmd := r.Update(enterKey())
	drainBatch(t, cmd)

	if !r.hintAvailable() {
		t.Skip("no hint heuristic applies to this round's first question")
	}

	_, cmd = r.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	drainBatch(t, cmd)

	if !r.hintShown {
		t.Error("expected hint to be shown")
	}
	if len(repo.hintEvents) != 1 {
		t.Fatalf("hint events = %d, want 1", len(repo.hintEvents))
	}
	if repo.hintEvents[0].HintText == "" {
		t.Error("expected hint text in event")
	}
}

func TestRoundScreen_ViewRendersQuestionAndFeedback(t *testing.T) {
	r := New(1, nil, nil)

	view := r.View(100, 30)
	if view == "" {
		t.Fatal("expected non-empty question view")
	}

	typeEntry(r, wrongEntryFor(r))
	r.Update(enterKey())
	view = r.View(100, 30)
	if view == "" {
		t.Fatal("expected non-empty feedback view")
	}
}

// wrongEntryFor builds a balanced entry with the sides flipped, which is
// always wrong but passes the gate.
func wrongEntryFor(r *RoundScreen) string {
	q := r.state.Current()
	flipped := make([]journal.Posting, len(q.Expected))
	for i, p := range q.Expected {
		flipped[i] = journal.Posting{Account: p.Account, Side: p.Side.Opposite(), Amount: p.Amount}
	}
	return journal.Format(flipped)
}

// drainBatch executes a possibly batched command tree so event-append
// closures actually run.
func drainBatch(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drainBatch(t, c)
		}
	}
}

// collectMsgs executes a command tree and flattens the produced messages.
func collectMsgs(t *testing.T, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, collectMsgs(t, c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

func TestRoundScreen_CompletionSwapsInSummary(t *testing.T) {
	repo := &mockEventRepo{}
	r := New(1, repo, nil)

	var final []tea.Msg
	for i := 0; i < QuestionsPerRound; i++ {
		typeEntry(r, journal.Format(r.state.Current().Expected))
		_, cmd := r.Update(enterKey())
		drainBatch(t, cmd)

		_, cmd = r.Update(enterKey())
		final = collectMsgs(t, cmd)
	}

	if r.state.Phase != drill.PhaseComplete {
		t.Fatalf("phase = %v, want PhaseComplete", r.state.Phase)
	}

	var replaced *summary.SummaryScreen
	for _, msg := range final {
		if m, ok := msg.(router.ReplaceScreenMsg); ok {
			replaced, _ = m.Screen.(*summary.SummaryScreen)
		}
	}
	if replaced == nil {
		t.Fatal("expected the summary screen to replace the round screen")
	}

	var end *store.RoundEventData
	for i := range repo.roundEvents {
		if repo.roundEvents[i].Action == "end" {
			end = &repo.roundEvents[i]
		}
	}
	if end == nil {
		t.Fatal("expected an end round event")
	}
	if end.QuestionsServed != QuestionsPerRound || end.CorrectAnswers != QuestionsPerRound {
		t.Errorf("end event counters = %+v", end)
	}
}
