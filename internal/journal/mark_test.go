package journal

import (
	"errors"
	"strings"
	"testing"
)

func TestMarkCorrectIgnoresOrderAndNotes(t *testing.T) {
	expected := []Posting{
		P("Bank", Debit, 1000, "Owner"),
		P("Capital", Credit, 1000, "Owner"),
	}
	candidate := []Posting{
		P("Capital", Credit, 1000, ""),
		P("Bank", Debit, 1000, "something else"),
	}

	v := Mark(candidate, expected)
	if !v.Correct {
		t.Fatalf("Mark() = %+v, want correct", v)
	}
	if len(v.Missing) != 0 || len(v.Extra) != 0 {
		t.Errorf("correct verdict should carry no diff, got missing=%v extra=%v", v.Missing, v.Extra)
	}
}

func TestMarkMissingVATLine(t *testing.T) {
	expected := []Posting{
		P("Utilities expense", Debit, 500, ""),
		P("VAT input", Debit, 100, ""),
		P("Bank", Credit, 600, ""),
	}
	candidate := []Posting{
		P("Utilities expense", Debit, 500, ""),
		P("Bank", Credit, 600, ""),
	}

	v := Mark(candidate, expected)
	if v.Correct {
		t.Fatal("expected incorrect verdict")
	}
	if len(v.Missing) != 1 {
		t.Fatalf("missing = %v, want exactly one line", v.Missing)
	}
	want := Line{Account: "VAT input", Side: Debit, Amount: 100}
	if v.Missing[0] != want {
		t.Errorf("missing[0] = %v, want %v", v.Missing[0], want)
	}
	if len(v.Extra) != 0 {
		t.Errorf("extra = %v, want none", v.Extra)
	}
	if !strings.Contains(v.Hint, "VAT") {
		t.Errorf("hint = %q, want a VAT hint", v.Hint)
	}
}

func TestMarkWrongSideHint(t *testing.T) {
	expected := []Posting{
		P("Rent expense", Debit, 300, ""),
		P("Bank", Credit, 300, ""),
	}
	candidate := []Posting{
		P("Rent expense", Credit, 300, ""),
		P("Bank", Debit, 300, ""),
	}

	v := Mark(candidate, expected)
	if v.Correct {
		t.Fatal("expected incorrect verdict")
	}
	if !strings.Contains(v.Hint, "wrong side") {
		t.Errorf("hint = %q, want the wrong-side hint", v.Hint)
	}
}

func TestMarkAmountHint(t *testing.T) {
	expected := []Posting{
		P("Rent expense", Debit, 300, ""),
		P("Bank", Credit, 300, ""),
	}
	candidate := []Posting{
		P("Rent expense", Debit, 400, ""),
		P("Bank", Credit, 400, ""),
	}

	v := Mark(candidate, expected)
	if v.Correct {
		t.Fatal("expected incorrect verdict")
	}
	if !strings.Contains(v.Hint, "amounts") {
		t.Errorf("hint = %q, want the amounts hint", v.Hint)
	}
}

func TestMarkNoHintForUnrelatedAccounts(t *testing.T) {
	expected := []Posting{
		P("Rent expense", Debit, 300, ""),
		P("Bank", Credit, 300, ""),
	}
	candidate := []Posting{
		P("Wages expense", Debit, 300, ""),
		P("Capital", Credit, 300, ""),
	}

	v := Mark(candidate, expected)
	if v.Hint != "" {
		t.Errorf("hint = %q, want none", v.Hint)
	}
}

func TestMarkDiffSwapsWithArguments(t *testing.T) {
	a := []Posting{P("Bank", Debit, 100, ""), P("Sales", Credit, 100, "")}
	b := []Posting{P("Bank", Debit, 100, ""), P("Capital", Credit, 100, "")}

	v1 := Mark(a, b)
	v2 := Mark(b, a)

	if len(v1.Missing) != 1 || len(v1.Extra) != 1 {
		t.Fatalf("v1 diff = %+v, want one missing and one extra", v1)
	}
	if v1.Missing[0] != v2.Extra[0] || v1.Extra[0] != v2.Missing[0] {
		t.Errorf("diffs should swap when arguments swap: %+v vs %+v", v1, v2)
	}
}

func TestMarkDuplicateLinesAreCounted(t *testing.T) {
	// Two identical legs in the answer must both be supplied. Set
	// semantics would silently accept the single copy.
	expected := []Posting{
		P("Bank", Debit, 100, ""),
		P("Bank", Debit, 100, ""),
		P("Sales", Credit, 200, ""),
	}
	candidate := []Posting{
		P("Bank", Debit, 100, ""),
		P("Sales", Credit, 200, ""),
	}

	v := Mark(candidate, expected)
	if v.Correct {
		t.Fatal("one copy of a duplicated line must not be accepted")
	}
	want := Line{Account: "Bank", Side: Debit, Amount: 100}
	if len(v.Missing) != 1 || v.Missing[0] != want {
		t.Errorf("missing = %v, want [%v]", v.Missing, want)
	}
}

func TestCheckCandidate(t *testing.T) {
	tests := []struct {
		name      string
		candidate []Posting
		wantLen   int
		wantErr   string
	}{
		{
			name:      "empty",
			candidate: nil,
			wantErr:   "empty",
		},
		{
			name: "only zero amounts",
			candidate: []Posting{
				P("Bank", Debit, 0, ""),
			},
			wantErr: "empty",
		},
		{
			name: "unbalanced",
			candidate: []Posting{
				P("Bank", Debit, 500, ""),
				P("Sales", Credit, 400, ""),
			},
			wantErr: "unbalanced",
		},
		{
			name: "zero lines dropped before balancing",
			candidate: []Posting{
				P("Bank", Debit, 500, ""),
				P("Rent expense", Debit, 0, ""),
				P("Sales", Credit, 500, ""),
			},
			wantLen: 2,
		},
		{
			name: "balanced",
			candidate: []Posting{
				P("Bank", Debit, 500, ""),
				P("Sales", Credit, 500, ""),
			},
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned, err := CheckCandidate(tt.candidate)
			switch tt.wantErr {
			case "empty":
				if !errors.Is(err, ErrEmptyCandidate) {
					t.Fatalf("err = %v, want ErrEmptyCandidate", err)
				}
			case "unbalanced":
				var ub *UnbalancedError
				if !errors.As(err, &ub) {
					t.Fatalf("err = %v, want *UnbalancedError", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(cleaned) != tt.wantLen {
					t.Errorf("len(cleaned) = %d, want %d", len(cleaned), tt.wantLen)
				}
			}
		})
	}
}

func TestUnbalancedErrorDifference(t *testing.T) {
	e := &UnbalancedError{DebitTotal: 600, CreditTotal: 1000}
	if got := e.Difference(); got != 400 {
		t.Errorf("Difference() = %d, want 400", got)
	}
}

func TestCanonicalTrimsAndSorts(t *testing.T) {
	lines := Canonical([]Posting{
		{Account: " Sales ", Side: "cr", Amount: 100},
		{Account: "Bank", Side: Debit, Amount: 100},
	})
	if lines[0].Account != "Bank" || lines[1].Account != "Sales" {
		t.Errorf("lines not sorted by account: %v", lines)
	}
	if lines[1].Side != Credit {
		t.Errorf("side not normalized: %v", lines[1])
	}
}
