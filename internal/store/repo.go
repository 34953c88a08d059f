package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// RoundEventData captures a round lifecycle event. Action is "start" or
// "end"; the counters are populated on end only.
type RoundEventData struct {
	SessionID       string
	RoundNo         int
	Action          string
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// AnswerEventData captures one marked attempt at a question. The journal
// entries are stored in their rendered form, one posting per line.
type AnswerEventData struct {
	SessionID      string
	RoundNo        int
	QuestionNo     int
	Prompt         string
	ExpectedEntry  string
	SubmittedEntry string
	Correct        bool
	Attempt        int
	Outcome        string
	TimeMs         int
}

// HintEventData captures a hint shown after a wrong attempt.
type HintEventData struct {
	SessionID  string
	RoundNo    int
	QuestionNo int
	Prompt     string
	HintText   string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequest is a stored LLM request event with its global position.
type LLMRequest struct {
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageRow aggregates LLM spend for one request purpose.
type LLMUsageRow struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// RoundStat aggregates answer history for one round number.
type RoundStat struct {
	RoundNo   int
	Attempts  int // marked attempts recorded
	Questions int // distinct first attempts
	Correct   int // attempts marked correct
	Hints     int // hints shown
}

// Accuracy returns the fraction of attempts marked correct, 0 when empty.
func (s RoundStat) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendRoundEvent records a round start or end.
	AppendRoundEvent(ctx context.Context, data RoundEventData) error

	// AppendAnswerEvent records a marked attempt.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendHintEvent records a hint shown to the learner.
	AppendHintEvent(ctx context.Context, data HintEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// RoundStats aggregates the answer history per round, ordered by
	// round number.
	RoundStats(ctx context.Context) ([]RoundStat, error)

	// RoundAccuracy returns the all-time accuracy for one round,
	// 0 when the round has never been played.
	RoundAccuracy(ctx context.Context, roundNo int) (float64, error)

	// QueryLLMEvents returns stored LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequest, error)

	// GetLLMEvent returns one LLM request event by sequence number.
	GetLLMEvent(ctx context.Context, sequence int64) (*LLMRequest, error)

	// LLMUsage aggregates LLM requests per purpose, ordered by purpose.
	LLMUsage(ctx context.Context) ([]LLMUsageRow, error)
}
