package coach

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/abhisek/ledgerdrill/internal/llm"
)

// Service generates entry explanations asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	gen     uint64
	pending *Explanation
	err     error
	ready   bool
}

// NewService creates an explanation service. The provider may be nil, in
// which case RequestExplanation is a no-op and Consume never yields.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Available reports whether a provider is configured.
func (s *Service) Available() bool {
	return s != nil && s.provider != nil
}

// RequestExplanation starts async explanation generation. Only one
// explanation is live at a time: starting a new request discards any
// unconsumed result, and a superseded request's result is dropped when
// it eventually arrives.
func (s *Service) RequestExplanation(ctx context.Context, input ExplainInput) {
	if !s.Available() {
		return
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.pending = nil
	s.err = nil
	s.ready = false
	s.mu.Unlock()

	go func() {
		expl, err := s.generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen != gen {
			return
		}
		s.pending = expl
		s.err = err
		s.ready = true
	}()
}

// ConsumeExplanation returns the pending explanation if one is ready.
// Returns (nil, false) if nothing is ready yet. After consumption, the
// pending slot is cleared.
func (s *Service) ConsumeExplanation() (*Explanation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	expl := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return expl, expl != nil
}

type explanationOutput struct {
	Title         string `json:"title"`
	Walkthrough   string `json:"walkthrough"`
	RuleOfThumb   string `json:"rule_of_thumb"`
	CommonMistake string `json:"common_mistake"`
}

func (s *Service) generate(ctx context.Context, input ExplainInput) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, "explain")

	req := llm.Request{
		System: explainSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplainUserMessage(input)},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("explanation generation: %w", err)
	}

	var out explanationOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}

	return &Explanation{
		Title:         out.Title,
		Walkthrough:   out.Walkthrough,
		RuleOfThumb:   out.RuleOfThumb,
		CommonMistake: out.CommonMistake,
	}, nil
}
