package coach

import "github.com/abhisek/ledgerdrill/internal/journal"

// Explanation is an LLM-generated walkthrough of a model journal entry.
type Explanation struct {
	Title         string
	Walkthrough   string
	RuleOfThumb   string
	CommonMistake string
}

// ExplainInput holds all context needed to explain a marked question.
type ExplainInput struct {
	RoundNo   int
	Prompt    string
	Expected  []journal.Posting
	Submitted []journal.Posting
	Hint      string
}
