package journal

import (
	"sort"
	"strings"
)

// Line is the canonical projection of a posting used for marking:
// trimmed account, normalized side, amount. Notes never take part.
type Line struct {
	Account string
	Side    Side
	Amount  int64
}

// Verdict is the result of marking a candidate entry.
type Verdict struct {
	// Correct is true when the candidate matches the expected entry
	// line-for-line (order and notes ignored).
	Correct bool

	// Missing lists expected lines absent from the candidate, sorted.
	Missing []Line

	// Extra lists candidate lines not in the expected entry, sorted.
	Extra []Line

	// Hint is a best-effort nudge toward the mistake. Empty when no
	// heuristic applies.
	Hint string
}

// Canonical projects postings to sorted canonical lines. Sides are assumed
// already normalized by construction or by CheckCandidate; account names
// are trimmed here.
func Canonical(postings []Posting) []Line {
	lines := make([]Line, len(postings))
	for i, p := range postings {
		lines[i] = Line{
			Account: strings.TrimSpace(p.Account),
			Side:    Side(strings.ToUpper(strings.TrimSpace(string(p.Side)))),
			Amount:  p.Amount,
		}
	}
	sortLines(lines)
	return lines
}

func sortLines(lines []Line) {
	sort.Slice(lines, func(i, j int) bool {
		a, b := lines[i], lines[j]
		if a.Account != b.Account {
			return a.Account < b.Account
		}
		if a.Side != b.Side {
			return a.Side < b.Side
		}
		return a.Amount < b.Amount
	})
}

// CheckCandidate gates a submission before marking. Zero-amount lines are
// dropped; an empty or unbalanced remainder is rejected. On success it
// returns the cleaned candidate.
func CheckCandidate(candidate []Posting) ([]Posting, error) {
	cleaned := make([]Posting, 0, len(candidate))
	for _, p := range candidate {
		if p.Amount <= 0 || strings.TrimSpace(p.Account) == "" {
			continue
		}
		cleaned = append(cleaned, p)
	}
	if len(cleaned) == 0 {
		return nil, ErrEmptyCandidate
	}
	dr, cr := DebitTotal(cleaned), CreditTotal(cleaned)
	if dr != cr {
		return nil, &UnbalancedError{DebitTotal: dr, CreditTotal: cr}
	}
	return cleaned, nil
}

// Mark compares a candidate posting set against the expected set.
//
// The comparison is a multiset over canonical lines: order and notes are
// ignored, but duplicate identical lines must appear the right number of
// times. A candidate supplying one copy of a line the answer needs twice
// is marked wrong with the second copy reported missing.
func Mark(candidate, expected []Posting) Verdict {
	c := Canonical(candidate)
	e := Canonical(expected)

	if linesEqual(c, e) {
		return Verdict{Correct: true}
	}

	v := Verdict{
		Missing: diffLines(e, c),
		Extra:   diffLines(c, e),
	}
	v.Hint = hint(candidate, expected)
	return v
}

// linesEqual compares two sorted line slices.
func linesEqual(a, b []Line) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// diffLines returns the multiset difference a − b, sorted.
func diffLines(a, b []Line) []Line {
	counts := make(map[Line]int, len(b))
	for _, l := range b {
		counts[l]++
	}
	var out []Line
	for _, l := range a {
		if counts[l] > 0 {
			counts[l]--
			continue
		}
		out = append(out, l)
	}
	sortLines(out)
	return out
}

// hint applies a fixed priority list of pedagogical checks; the first
// matching case wins.
func hint(candidate, expected []Posting) string {
	cAccounts := accountSet(candidate)
	eAccounts := accountSet(expected)

	if setsEqual(cAccounts, eAccounts) {
		if !pairsEqual(candidate, expected) {
			return "You have the right accounts, but one or more are on the wrong side (Dr or Cr)."
		}
		return "The right accounts are there, but check the amounts and whether VAT or discounts are treated correctly."
	}

	if hasVATAccount(expected) && !hasVATAccount(candidate) {
		return "This looks like a VAT question. Are you missing VAT input or VAT output?"
	}

	return ""
}

func accountSet(postings []Posting) map[string]bool {
	set := make(map[string]bool, len(postings))
	for _, p := range postings {
		set[strings.TrimSpace(p.Account)] = true
	}
	return set
}

func setsEqual(a, b map[string]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

// pairsEqual compares the sorted (account, side) pairs of both sets.
func pairsEqual(candidate, expected []Posting) bool {
	type pair struct {
		account string
		side    Side
	}
	build := func(postings []Posting) []pair {
		out := make([]pair, len(postings))
		for i, p := range postings {
			out[i] = pair{strings.TrimSpace(p.Account), p.Side}
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].account != out[j].account {
				return out[i].account < out[j].account
			}
			return out[i].side < out[j].side
		})
		return out
	}
	c, e := build(candidate), build(expected)
	if len(c) != len(e) {
		return false
	}
	for i := range c {
		if c[i] != e[i] {
			return false
		}
	}
	return true
}

func hasVATAccount(postings []Posting) bool {
	for _, p := range postings {
		if strings.Contains(strings.ToUpper(p.Account), "VAT") {
			return true
		}
	}
	return false
}
