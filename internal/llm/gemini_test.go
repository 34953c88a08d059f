package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"account": map[string]any{"type": "string"},
			"amount":  map[string]any{"type": "integer"},
			"outcome": map[string]any{"type": "string", "enum": []any{"correct", "retry", "exhausted"}},
			"amounts": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "integer"},
			},
		},
		"required": []any{"account", "amount"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["account"].Type != "STRING" {
		t.Fatalf("expected STRING for account, got %s", schema.Properties["account"].Type)
	}
	if schema.Properties["amount"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for amount, got %s", schema.Properties["amount"].Type)
	}
	if len(schema.Properties["outcome"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["outcome"].Enum))
	}
	if schema.Properties["amounts"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for amounts, got %s", schema.Properties["amounts"].Type)
	}
	if schema.Properties["amounts"].Items.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for amounts items, got %s", schema.Properties["amounts"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
