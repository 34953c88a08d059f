// Package drill runs one round of the bookkeeping game: it gates and marks
// submissions, posts accepted entries to the round ledger, and tracks
// score and attempts. The interactive shell issues the calls; all rules
// live here so the flow is testable without a terminal.
package drill

import (
	"fmt"
	"time"

	"github.com/abhisek/ledgerdrill/internal/journal"
)

// Submit processes a candidate entry for the current question.
//
// The candidate first passes the gate (CheckCandidate); a rejection sets
// OutcomeRejected without consuming an attempt or invoking marking. A
// correct entry is posted to the ledger tagged with the question number
// and the round advances. A second failed attempt posts the model answer
// instead and advances.
func Submit(s *State, candidate []journal.Posting) {
	q := s.Current()
	if q == nil {
		return
	}

	cleaned, err := journal.CheckCandidate(candidate)
	if err != nil {
		s.LastOutcome = OutcomeRejected
		s.LastVerdict = nil
		s.LastError = err
		s.LastJournal = ""
		s.Phase = PhaseFeedback
		return
	}
	s.LastError = nil

	verdict := journal.Mark(cleaned, q.Expected)
	s.LastVerdict = &verdict

	if verdict.Correct {
		// Ledger postings carry the question tag so students can trace
		// each line back to its scenario.
		mustPost(s, journal.Tag(cleaned, questionTag(s)))
		s.Score++
		s.LastOutcome = OutcomeCorrect
		s.LastJournal = journal.Format(cleaned)
		advance(s)
		return
	}

	s.Attempts++
	if s.Attempts >= MaxAttempts {
		mustPost(s, journal.Tag(q.Expected, questionTag(s)))
		s.LastOutcome = OutcomeExhausted
		s.LastJournal = journal.Format(q.Expected)
		advance(s)
		return
	}

	s.LastOutcome = OutcomeRetry
	s.LastJournal = ""
	s.Phase = PhaseFeedback
}

// Reveal posts the model answer for the current question and advances.
// It does not score.
func Reveal(s *State) {
	q := s.Current()
	if q == nil {
		return
	}
	mustPost(s, journal.Tag(q.Expected, questionTag(s)))
	s.LastOutcome = OutcomeRevealed
	s.LastVerdict = nil
	s.LastError = nil
	s.LastJournal = journal.Format(q.Expected)
	advance(s)
}

// Continue leaves the feedback phase. After a retry it returns to the same
// question; otherwise the next question (or completion) is already set up.
func Continue(s *State) {
	if s.Phase != PhaseFeedback {
		return
	}
	if s.Index >= len(s.Questions) {
		s.Phase = PhaseComplete
		return
	}
	s.Phase = PhaseQuestion
	s.QuestionStarted = time.Now()
}

func advance(s *State) {
	s.Index++
	s.Attempts = 0
	s.Phase = PhaseFeedback
}

func questionTag(s *State) string {
	return fmt.Sprintf("Q%d", s.Index+1)
}

// mustPost applies generator- or marker-vetted postings; sides are valid
// by construction so a failure here is a programming error.
func mustPost(s *State, postings []journal.Posting) {
	if err := s.Ledger.PostMany(postings); err != nil {
		panic(fmt.Sprintf("post vetted entry: %v", err))
	}
}
