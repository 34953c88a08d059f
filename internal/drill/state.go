package drill

import (
	"time"

	"github.com/abhisek/ledgerdrill/internal/journal"
	"github.com/abhisek/ledgerdrill/internal/ledger"
	"github.com/abhisek/ledgerdrill/internal/quiz"
)

// MaxAttempts is how many tries a student gets before the model answer is
// posted and the round moves on.
const MaxAttempts = 2

// Phase is the state of a round in progress.
type Phase int

const (
	PhaseQuestion Phase = iota // collecting an entry for the current question
	PhaseFeedback              // showing verdict/diff for the last submission
	PhaseComplete              // all questions answered
)

// Outcome classifies how the last question was resolved, for feedback and
// event logging.
type Outcome int

const (
	OutcomeNone      Outcome = iota
	OutcomeCorrect           // marked correct, posted to the ledger
	OutcomeRetry             // wrong, attempts remain
	OutcomeExhausted         // wrong twice, model answer posted
	OutcomeRevealed          // student asked for the model answer
	OutcomeRejected          // gate rejection (empty or unbalanced), not marked
)

// State is the explicit session object for one round. All engine calls
// take it as an argument; there is no ambient session state. A State is
// single-writer and discarded when the round ends.
type State struct {
	RoundNo   int
	SessionID string
	Questions []quiz.Question

	// Index is the current question position; Score counts correct
	// first-or-second-try answers; Attempts counts failures on the
	// current question.
	Index    int
	Score    int
	Attempts int

	// Ledger accumulates the round's postings. Fresh per round, never
	// carried across rounds.
	Ledger *ledger.Ledger

	Phase   Phase
	Started time.Time

	// QuestionStarted tracks when the current question was presented,
	// for answer-time event logging.
	QuestionStarted time.Time

	// Last submission feedback.
	LastOutcome Outcome
	LastVerdict *journal.Verdict
	LastError   error  // gate rejection, when LastOutcome == OutcomeRejected
	LastJournal string // formatted entry that was posted, if any
}

// NewState builds a fresh round: deterministic questions, empty ledger.
func NewState(roundNo, questionCount int, sessionID string) *State {
	now := time.Now()
	return &State{
		RoundNo:         roundNo,
		SessionID:       sessionID,
		Questions:       quiz.BuildRound(roundNo, questionCount),
		Ledger:          ledger.New(),
		Phase:           PhaseQuestion,
		Started:         now,
		QuestionStarted: now,
	}
}

// Current returns the active question, or nil when the round is complete.
func (s *State) Current() *quiz.Question {
	if s.Index < 0 || s.Index >= len(s.Questions) {
		return nil
	}
	return &s.Questions[s.Index]
}

// Remaining returns how many questions are left including the current one.
func (s *State) Remaining() int {
	n := len(s.Questions) - s.Index
	if n < 0 {
		return 0
	}
	return n
}

// Summary condenses a finished round for the summary screen and the round
// end event.
type Summary struct {
	RoundNo   int
	SessionID string
	Questions int
	Score     int
	Duration  time.Duration
}

// Summarize builds the round summary.
func (s *State) Summarize() Summary {
	return Summary{
		RoundNo:   s.RoundNo,
		SessionID: s.SessionID,
		Questions: len(s.Questions),
		Score:     s.Score,
		Duration:  time.Since(s.Started),
	}
}
