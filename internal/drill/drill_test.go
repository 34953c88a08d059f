package drill

import (
	"testing"

	"github.com/abhisek/ledgerdrill/internal/journal"
	"github.com/abhisek/ledgerdrill/internal/ledger"
)

func newTestState(t *testing.T) *State {
	t.Helper()
	s := NewState(1, 10, "test-session")
	if len(s.Questions) != 10 {
		t.Fatalf("questions = %d, want 10", len(s.Questions))
	}
	return s
}

func TestSubmitCorrectPostsAndAdvances(t *testing.T) {
	s := newTestState(t)
	q := s.Current()

	Submit(s, q.Expected)

	if s.LastOutcome != OutcomeCorrect {
		t.Fatalf("outcome = %d, want OutcomeCorrect", s.LastOutcome)
	}
	if s.Score != 1 {
		t.Errorf("score = %d, want 1", s.Score)
	}
	if s.Index != 1 {
		t.Errorf("index = %d, want 1", s.Index)
	}
	if s.Phase != PhaseFeedback {
		t.Errorf("phase = %d, want PhaseFeedback", s.Phase)
	}

	// Postings land in the ledger tagged with the question number.
	names := s.Ledger.UsedAccountNames()
	if len(names) == 0 {
		t.Fatal("ledger is empty after a correct submission")
	}
	acc := s.Ledger.Lookup(names[0])
	entries := append(append([]ledger.Entry{}, acc.Debits...), acc.Credits...)
	for _, e := range entries {
		if e.Note != "Q1" {
			t.Errorf("entry note = %q, want Q1", e.Note)
		}
	}
}

func TestSubmitUnbalancedRejectedWithoutMarking(t *testing.T) {
	s := newTestState(t)

	Submit(s, []journal.Posting{
		{Account: "Bank", Side: journal.Debit, Amount: 1000},
		{Account: "Capital", Side: journal.Credit, Amount: 900},
	})

	if s.LastOutcome != OutcomeRejected {
		t.Fatalf("outcome = %d, want OutcomeRejected", s.LastOutcome)
	}
	if s.LastError == nil {
		t.Fatal("rejection must carry the gate error")
	}
	if s.Attempts != 0 {
		t.Errorf("attempts = %d; rejection must not consume an attempt", s.Attempts)
	}
	if s.LastVerdict != nil {
		t.Error("marking must not run on a rejected candidate")
	}
	if len(s.Ledger.UsedAccountNames()) != 0 {
		t.Error("rejected entry must not reach the ledger")
	}
}

func TestSubmitEmptyRejected(t *testing.T) {
	s := newTestState(t)
	Submit(s, nil)
	if s.LastOutcome != OutcomeRejected {
		t.Fatalf("outcome = %d, want OutcomeRejected", s.LastOutcome)
	}
}

func TestSecondFailurePostsModelAnswer(t *testing.T) {
	s := newTestState(t)
	q := s.Current()

	// A balanced but wrong entry.
	wrong := []journal.Posting{
		{Account: "Drawings", Side: journal.Debit, Amount: 100},
		{Account: "Bank", Side: journal.Credit, Amount: 100},
	}

	Submit(s, wrong)
	if s.LastOutcome != OutcomeRetry {
		t.Fatalf("first failure outcome = %d, want OutcomeRetry", s.LastOutcome)
	}
	if s.Index != 0 || s.Attempts != 1 {
		t.Fatalf("index/attempts = %d/%d, want 0/1", s.Index, s.Attempts)
	}
	Continue(s)
	if s.Phase != PhaseQuestion {
		t.Fatalf("phase = %d, want PhaseQuestion after retry", s.Phase)
	}

	Submit(s, wrong)
	if s.LastOutcome != OutcomeExhausted {
		t.Fatalf("second failure outcome = %d, want OutcomeExhausted", s.LastOutcome)
	}
	if s.Index != 1 {
		t.Errorf("index = %d, want 1 after exhausting attempts", s.Index)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}

	// The model answer (not the wrong entry) was posted.
	for _, p := range q.Expected {
		if s.Ledger.Lookup(p.Account) == nil {
			t.Errorf("expected account %q missing from ledger", p.Account)
		}
	}
}

func TestRevealPostsModelAnswer(t *testing.T) {
	s := newTestState(t)
	q := s.Current()

	Reveal(s)

	if s.LastOutcome != OutcomeRevealed {
		t.Fatalf("outcome = %d, want OutcomeRevealed", s.LastOutcome)
	}
	if s.Score != 0 {
		t.Errorf("score = %d; reveal must not score", s.Score)
	}
	if s.Index != 1 {
		t.Errorf("index = %d, want 1", s.Index)
	}
	for _, p := range q.Expected {
		if s.Ledger.Lookup(p.Account) == nil {
			t.Errorf("account %q not posted", p.Account)
		}
	}
}

func TestRoundCompletion(t *testing.T) {
	s := newTestState(t)
	for s.Current() != nil {
		Submit(s, s.Current().Expected)
		Continue(s)
	}
	if s.Phase != PhaseComplete {
		t.Fatalf("phase = %d, want PhaseComplete", s.Phase)
	}
	if s.Score != len(s.Questions) {
		t.Errorf("score = %d, want %d", s.Score, len(s.Questions))
	}

	sum := s.Summarize()
	if sum.Score != s.Score || sum.Questions != 10 || sum.RoundNo != 1 {
		t.Errorf("summary = %+v", sum)
	}
}

func TestFullRoundTrialBalanceReconciles(t *testing.T) {
	// Answer some questions correctly, reveal others, fail one twice:
	// every path posts balanced entries, so the trial balance must
	// reconcile at the end.
	s := NewState(9, 10, "test") // VAT tier exercises three-leg entries
	wrong := []journal.Posting{
		{Account: "Drawings", Side: journal.Debit, Amount: 100},
		{Account: "Bank", Side: journal.Credit, Amount: 100},
	}

	for i := 0; s.Current() != nil; i++ {
		switch i % 3 {
		case 0:
			Submit(s, s.Current().Expected)
		case 1:
			Reveal(s)
		case 2:
			Submit(s, wrong)
			Continue(s)
			if s.Current() != nil {
				Submit(s, wrong) // exhausts attempts, posts model answer
			}
		}
		Continue(s)
	}

	rows := ledger.TrialBalance(s.Ledger)
	total := rows[len(rows)-1]
	if total.Debit != total.Credit {
		t.Errorf("trial balance totals %d != %d", total.Debit, total.Credit)
	}
}

func TestNewStateIsReproducible(t *testing.T) {
	a := NewState(4, 10, "a")
	b := NewState(4, 10, "b")
	for i := range a.Questions {
		if a.Questions[i].Prompt != b.Questions[i].Prompt {
			t.Fatalf("question %d differs between identically numbered rounds", i)
		}
	}
}
