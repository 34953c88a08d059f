package coach

import "github.com/abhisek/ledgerdrill/internal/llm"

// ExplanationSchema defines the JSON schema for entry explanations.
var ExplanationSchema = &llm.Schema{
	Name:        "entry-explanation",
	Description: "A short walkthrough of why a journal entry is posted the way it is",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title naming the transaction type (3-8 words)",
			},
			"walkthrough": map[string]any{
				"type":        "string",
				"description": "Step-by-step reasoning for each posting: which account, which side, and why (3-6 sentences)",
			},
			"rule_of_thumb": map[string]any{
				"type":        "string",
				"description": "One memorable rule the learner can reuse, e.g. 'debit what comes in'",
			},
			"common_mistake": map[string]any{
				"type":        "string",
				"description": "The mistake the learner's own attempt shows, or the most common one for this entry type",
			},
		},
		"required":             []any{"title", "walkthrough", "rule_of_thumb", "common_mistake"},
		"additionalProperties": false,
	},
}
