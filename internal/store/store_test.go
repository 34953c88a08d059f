package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seq, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	prev := int64(0)
	for i := 0; i < 5; i++ {
		n, err := seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if n <= prev {
			t.Errorf("sequence %d not monotonic: got %d after %d", i, n, prev)
		}
		prev = n
	}
}

func TestAppendAndRoundStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	answers := []AnswerEventData{
		{SessionID: "s1", RoundNo: 1, QuestionNo: 1, Prompt: "p1", ExpectedEntry: "e", SubmittedEntry: "a", Correct: true, Attempt: 1, Outcome: "correct", TimeMs: 1200},
		{SessionID: "s1", RoundNo: 1, QuestionNo: 2, Prompt: "p2", ExpectedEntry: "e", SubmittedEntry: "a", Correct: false, Attempt: 1, Outcome: "retry", TimeMs: 900},
		{SessionID: "s1", RoundNo: 1, QuestionNo: 2, Prompt: "p2", ExpectedEntry: "e", SubmittedEntry: "a", Correct: true, Attempt: 2, Outcome: "correct", TimeMs: 700},
		{SessionID: "s2", RoundNo: 3, QuestionNo: 1, Prompt: "p3", ExpectedEntry: "e", SubmittedEntry: "a", Correct: false, Attempt: 1, Outcome: "retry", TimeMs: 400},
	}
	for i, a := range answers {
		if err := repo.AppendAnswerEvent(ctx, a); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}

	err := repo.AppendHintEvent(ctx, HintEventData{
		SessionID: "s1", RoundNo: 1, QuestionNo: 2, Prompt: "p2", HintText: "check the sides",
	})
	if err != nil {
		t.Fatalf("append hint: %v", err)
	}

	stats, err := repo.RoundStats(ctx)
	if err != nil {
		t.Fatalf("round stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}

	r1 := stats[0]
	if r1.RoundNo != 1 || r1.Attempts != 3 || r1.Questions != 2 || r1.Correct != 2 || r1.Hints != 1 {
		t.Errorf("round 1 stat = %+v", r1)
	}
	r3 := stats[1]
	if r3.RoundNo != 3 || r3.Attempts != 1 || r3.Correct != 0 {
		t.Errorf("round 3 stat = %+v", r3)
	}
}

func TestRoundAccuracy(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	// Unplayed round.
	acc, err := repo.RoundAccuracy(ctx, 9)
	if err != nil {
		t.Fatalf("accuracy (empty): %v", err)
	}
	if acc != 0 {
		t.Errorf("accuracy = %v, want 0", acc)
	}

	for i, correct := range []bool{true, true, false, true} {
		err := repo.AppendAnswerEvent(ctx, AnswerEventData{
			SessionID: "s1", RoundNo: 2, QuestionNo: i + 1,
			Prompt: "p", ExpectedEntry: "e", SubmittedEntry: "a",
			Correct: correct, Attempt: 1, Outcome: "correct", TimeMs: 100,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	acc, err = repo.RoundAccuracy(ctx, 2)
	if err != nil {
		t.Fatalf("accuracy: %v", err)
	}
	if acc != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", acc)
	}
}

func TestRoundEventLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendRoundEvent(ctx, RoundEventData{
		SessionID: "s1", RoundNo: 4, Action: "start",
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}
	err = repo.AppendRoundEvent(ctx, RoundEventData{
		SessionID: "s1", RoundNo: 4, Action: "end",
		QuestionsServed: 5, CorrectAnswers: 4, DurationSecs: 120,
	})
	if err != nil {
		t.Fatalf("append end: %v", err)
	}

	count, err := s.Client().RoundEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("round events = %d, want 2", count)
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "test-model",
			Purpose:      "explain",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    int64(200 + i),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len(events) = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("expected descending sequence, got %d then %d",
			events[0].Sequence, events[1].Sequence)
	}
	if events[0].InputTokens != 102 {
		t.Errorf("input tokens = %d, want 102", events[0].InputTokens)
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "openai", Model: "test-model", Purpose: "explain",
		InputTokens: 80, OutputTokens: 40, LatencyMs: 150, Success: true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil || len(events) != 1 {
		t.Fatalf("query: %v (len %d)", err, len(events))
	}

	e, err := repo.GetLLMEvent(ctx, events[0].Sequence)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e.Provider != "openai" || e.InputTokens != 80 {
		t.Errorf("event = %+v", e)
	}

	if _, err := repo.GetLLMEvent(ctx, events[0].Sequence+999); err == nil {
		t.Error("expected error for unknown sequence")
	}
}

func TestLLMUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	requests := []LLMRequestEventData{
		{Provider: "anthropic", Model: "m", Purpose: "explain", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "anthropic", Model: "m", Purpose: "explain", InputTokens: 200, OutputTokens: 70, LatencyMs: 400, Success: false, ErrorMessage: "timeout"},
		{Provider: "anthropic", Model: "m", Purpose: "warmup", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true},
	}
	for i, r := range requests {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	rows, err := repo.LLMUsage(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}

	// Ordered by purpose.
	explain := rows[0]
	if explain.Purpose != "explain" {
		t.Fatalf("rows[0].Purpose = %q, want explain", explain.Purpose)
	}
	if explain.Requests != 2 || explain.Failures != 1 {
		t.Errorf("explain counts = %+v", explain)
	}
	if explain.InputTokens != 300 || explain.OutputTokens != 120 {
		t.Errorf("explain tokens = %+v", explain)
	}
	if explain.AvgLatencyMs != 300 {
		t.Errorf("explain avg latency = %d, want 300", explain.AvgLatencyMs)
	}
	if rows[1].Purpose != "warmup" || rows[1].Requests != 1 {
		t.Errorf("warmup row = %+v", rows[1])
	}
}
