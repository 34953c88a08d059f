package journal

import (
	"errors"
	"fmt"
)

// ErrEmptyCandidate is returned when a submission has no usable lines.
var ErrEmptyCandidate = errors.New("no usable journal lines")

// InvalidSideError reports a side string that is neither debit nor credit.
type InvalidSideError struct {
	Side string
}

func (e *InvalidSideError) Error() string {
	return fmt.Sprintf("side must be DR or CR, got %q", e.Side)
}

// UnbalancedError reports a candidate whose debits and credits disagree.
// The entry is rejected before marking; it is not a crash.
type UnbalancedError struct {
	DebitTotal  int64
	CreditTotal int64
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("entry does not balance: debits %s, credits %s",
		FormatAmount(e.DebitTotal), FormatAmount(e.CreditTotal))
}

// Difference returns the absolute debit-minus-credit gap.
func (e *UnbalancedError) Difference() int64 {
	d := e.DebitTotal - e.CreditTotal
	if d < 0 {
		return -d
	}
	return d
}

// ParseError reports a malformed fragment in a free-text journal entry.
type ParseError struct {
	Fragment string
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot read journal line %q: %s", e.Fragment, e.Reason)
}
