package journal

import (
	"strconv"
	"strings"
)

// ParseEntry reads a free-text journal entry of the form
//
//	Dr Bank 1,200; Cr Sales £1,000; Cr VAT output 200
//
// Lines are separated by ";" or newlines. Each line is a side keyword,
// the account name, and an amount. A leading currency symbol and
// thousands separators in the amount are tolerated. The parsed entry is
// not balance-checked here; run the result through CheckCandidate.
func ParseEntry(text string) ([]Posting, error) {
	fragments := splitFragments(text)
	if len(fragments) == 0 {
		return nil, ErrEmptyCandidate
	}

	postings := make([]Posting, 0, len(fragments))
	for _, frag := range fragments {
		p, err := parseLine(frag)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	return postings, nil
}

func splitFragments(text string) []string {
	raw := strings.FieldsFunc(text, func(r rune) bool {
		return r == ';' || r == '\n'
	})
	var out []string
	for _, f := range raw {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseLine(frag string) (Posting, error) {
	fields := strings.Fields(frag)
	if len(fields) < 3 {
		return Posting{}, &ParseError{Fragment: frag, Reason: "expected side, account and amount"}
	}

	side, err := NormalizeSide(fields[0])
	if err != nil {
		return Posting{}, &ParseError{Fragment: frag, Reason: "first word must be Dr or Cr"}
	}

	amount, err := parseAmount(fields[len(fields)-1])
	if err != nil {
		return Posting{}, &ParseError{Fragment: frag, Reason: "last word must be an amount"}
	}
	if amount <= 0 {
		return Posting{}, &ParseError{Fragment: frag, Reason: "amount must be positive"}
	}

	account := strings.Join(fields[1:len(fields)-1], " ")
	return Posting{Account: account, Side: side, Amount: amount}, nil
}

// parseAmount reads an integer amount, stripping a leading currency
// symbol and comma thousands separators.
func parseAmount(s string) (int64, error) {
	s = strings.TrimPrefix(s, "£")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	return strconv.ParseInt(s, 10, 64)
}
