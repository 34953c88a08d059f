package coach

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/ledgerdrill/internal/journal"
	"github.com/abhisek/ledgerdrill/internal/llm"
)

func validExplanationJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Owner Introduces Capital",
		"walkthrough": "The business receives money into its bank account, so Bank is debited. The owner is the source of the money, so Capital is credited.",
		"rule_of_thumb": "Debit what comes in, credit the source.",
		"common_mistake": "Swapping the sides: crediting Bank and debiting Capital."
	}`)
}

func testInput() ExplainInput {
	return ExplainInput{
		RoundNo: 1,
		Prompt:  "Owner pays £1,000 into the business bank account",
		Expected: []journal.Posting{
			journal.P("Bank", journal.Debit, 1000, ""),
			journal.P("Capital", journal.Credit, 1000, ""),
		},
		Submitted: []journal.Posting{
			journal.P("Bank", journal.Credit, 1000, ""),
			journal.P("Capital", journal.Debit, 1000, ""),
		},
		Hint: "Check which side each account is on.",
	}
}

func consume(t *testing.T, svc *Service) *Explanation {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if expl, ok := svc.ConsumeExplanation(); ok {
			return expl
		}
		time.Sleep(10 * time.Millisecond)
	}
	return nil
}

func TestService_GeneratesExplanation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	expl := consume(t, svc)
	if expl == nil {
		t.Fatal("expected explanation to be generated")
	}
	if expl.Title != "Owner Introduces Capital" {
		t.Errorf("title = %q", expl.Title)
	}
	if expl.Walkthrough == "" || expl.RuleOfThumb == "" || expl.CommonMistake == "" {
		t.Errorf("incomplete explanation: %+v", expl)
	}
}

func TestService_PromptIncludesBothEntries(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validExplanationJSON()})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())
	if consume(t, svc) == nil {
		t.Fatal("expected explanation")
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 LLM call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"Model entry:", "Learner's attempt:", "Bank", "Capital", "1,000"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
	if mock.Calls[0].Schema != ExplanationSchema {
		t.Error("expected explanation schema on request")
	}
}

func TestService_ProviderErrorYieldsNothing(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	svc.RequestExplanation(t.Context(), testInput())

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if expl, ok := svc.ConsumeExplanation(); ok || expl != nil {
		t.Fatalf("expected no explanation, got %+v", expl)
	}
}

func explanationJSONTitled(title string) json.RawMessage {
	return json.RawMessage(`{
		"title": "` + title + `",
		"walkthrough": "w",
		"rule_of_thumb": "r",
		"common_mistake": "m"
	}`)
}

// stallingProvider keys canned responses off a marker in the user
// message, blocking on that response's gate channel when one is set.
type stallingProvider struct {
	responses map[string]stalledResponse
}

type stalledResponse struct {
	gate    chan struct{}
	content json.RawMessage
}

func (p *stallingProvider) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	for marker, r := range p.responses {
		if strings.Contains(req.Messages[0].Content, marker) {
			if r.gate != nil {
				<-r.gate
			}
			return &llm.Response{Content: r.content, Model: "mock", StopReason: "end"}, nil
		}
	}
	return nil, &llm.ErrProviderUnavailable{}
}

func (p *stallingProvider) ModelID() string { return "mock" }

func inputWithPrompt(prompt string) ExplainInput {
	in := testInput()
	in.Prompt = prompt
	return in
}

func waitReady(t *testing.T, svc *Service) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		svc.mu.Lock()
		ready := svc.ready
		svc.mu.Unlock()
		if ready {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("explanation never became ready")
}

func TestService_NewRequestDiscardsUnconsumedResult(t *testing.T) {
	gate := make(chan struct{})
	provider := &stallingProvider{responses: map[string]stalledResponse{
		"question-one": {content: explanationJSONTitled("First")},
		"question-two": {gate: gate, content: explanationJSONTitled("Second")},
	}}
	svc := NewService(provider, DefaultConfig())

	// First request completes but is never consumed.
	svc.RequestExplanation(t.Context(), inputWithPrompt("question-one"))
	waitReady(t, svc)

	// Second request starts while the first result is still sitting there.
	svc.RequestExplanation(t.Context(), inputWithPrompt("question-two"))
	if expl, ok := svc.ConsumeExplanation(); ok {
		t.Fatalf("consumed stale explanation %q while a newer request is in flight", expl.Title)
	}

	close(gate)
	expl := consume(t, svc)
	if expl == nil {
		t.Fatal("expected second explanation")
	}
	if expl.Title != "Second" {
		t.Errorf("title = %q, want %q", expl.Title, "Second")
	}
}

func TestService_SupersededResultIsDropped(t *testing.T) {
	gate := make(chan struct{})
	provider := &stallingProvider{responses: map[string]stalledResponse{
		"question-one": {gate: gate, content: explanationJSONTitled("First")},
		"question-two": {content: explanationJSONTitled("Second")},
	}}
	svc := NewService(provider, DefaultConfig())

	// First request stalls; second supersedes it and completes.
	svc.RequestExplanation(t.Context(), inputWithPrompt("question-one"))
	svc.RequestExplanation(t.Context(), inputWithPrompt("question-two"))
	waitReady(t, svc)

	// Letting the first request finish must not overwrite or re-arm anything.
	close(gate)
	time.Sleep(50 * time.Millisecond)

	expl := consume(t, svc)
	if expl == nil || expl.Title != "Second" {
		t.Fatalf("explanation = %+v, want title %q", expl, "Second")
	}
	if expl, ok := svc.ConsumeExplanation(); ok {
		t.Errorf("unexpected second result %q from superseded request", expl.Title)
	}
}

func TestService_NilProviderIsInert(t *testing.T) {
	svc := NewService(nil, DefaultConfig())
	if svc.Available() {
		t.Fatal("expected unavailable service")
	}
	svc.RequestExplanation(t.Context(), testInput())
	if expl, ok := svc.ConsumeExplanation(); ok || expl != nil {
		t.Fatal("expected nothing from inert service")
	}
}
