package journal

import (
	"fmt"
	"strings"
)

// Side is the side of a ledger entry a posting lands on.
type Side string

const (
	Debit  Side = "DR"
	Credit Side = "CR"
)

// NormalizeSide trims and uppercases a side string, accepting the common
// spellings ("dr", "Dr", "DEBIT", ...). Returns an error for anything else.
func NormalizeSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DR", "DEBIT":
		return Debit, nil
	case "CR", "CREDIT":
		return Credit, nil
	default:
		return "", &InvalidSideError{Side: s}
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Debit {
		return Credit
	}
	return Debit
}

// Posting is one leg of a journal entry: an account, a side, and an amount
// in minor currency units. Note is a free-form label carried through to the
// ledger but ignored when postings are compared.
type Posting struct {
	Account string
	Side    Side
	Amount  int64
	Note    string
}

// P is a shorthand constructor used by the question catalogs.
func P(account string, side Side, amount int64, note string) Posting {
	return Posting{Account: account, Side: side, Amount: amount, Note: note}
}

// DebitTotal sums the debit legs of a posting set.
func DebitTotal(postings []Posting) int64 {
	var total int64
	for _, p := range postings {
		if p.Side == Debit {
			total += p.Amount
		}
	}
	return total
}

// CreditTotal sums the credit legs of a posting set.
func CreditTotal(postings []Posting) int64 {
	var total int64
	for _, p := range postings {
		if p.Side == Credit {
			total += p.Amount
		}
	}
	return total
}

// Balanced reports whether debits equal credits over the set.
func Balanced(postings []Posting) bool {
	return DebitTotal(postings) == CreditTotal(postings)
}

// Tag returns a copy of postings with every note replaced, so ledger
// entries can be traced back to the question that produced them.
func Tag(postings []Posting, note string) []Posting {
	out := make([]Posting, len(postings))
	for i, p := range postings {
		out[i] = Posting{Account: p.Account, Side: p.Side, Amount: p.Amount, Note: note}
	}
	return out
}

// Format renders a posting set as journal lines for display,
// e.g. "Dr Bank 1,000".
func Format(postings []Posting) string {
	lines := make([]string, len(postings))
	for i, p := range postings {
		side := "Dr"
		if p.Side == Credit {
			side = "Cr"
		}
		lines[i] = fmt.Sprintf("%s %s %s", side, p.Account, FormatAmount(p.Amount))
	}
	return strings.Join(lines, "\n")
}

// FormatAmount renders an amount with thousands separators.
func FormatAmount(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
