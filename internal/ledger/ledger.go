// Package ledger accumulates postings per account over one drill round and
// derives the views the student studies afterwards: balanced T-accounts and
// a trial balance. A Ledger is session-scoped mutable state with a single
// writer; it is created fresh each round and never persisted.
package ledger

import (
	"sort"
	"strings"

	"github.com/abhisek/ledgerdrill/internal/journal"
)

// Entry is one recorded leg on an account: its note label and amount.
type Entry struct {
	Note   string
	Amount int64
}

// Account is one ledger line owned by a Ledger. Debits and credits are kept
// in posting order.
type Account struct {
	Name    string
	Debits  []Entry
	Credits []Entry
}

// Totals returns the debit and credit sums.
func (a *Account) Totals() (debit, credit int64) {
	for _, e := range a.Debits {
		debit += e.Amount
	}
	for _, e := range a.Credits {
		credit += e.Amount
	}
	return debit, credit
}

// Balance returns the side the account nets to and the magnitude.
// A fully offset account reports an empty side and zero.
func (a *Account) Balance() (journal.Side, int64) {
	dr, cr := a.Totals()
	switch {
	case dr > cr:
		return journal.Debit, dr - cr
	case cr > dr:
		return journal.Credit, cr - dr
	default:
		return "", 0
	}
}

// Ledger owns a set of accounts keyed by trimmed, case-preserving name.
// Accounts are created lazily on first post.
type Ledger struct {
	accounts map[string]*Account
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{accounts: make(map[string]*Account)}
}

// Account returns the named account, creating it if needed.
func (l *Ledger) Account(name string) *Account {
	key := strings.TrimSpace(name)
	acc, ok := l.accounts[key]
	if !ok {
		acc = &Account{Name: key}
		l.accounts[key] = acc
	}
	return acc
}

// Lookup returns the named account or nil without creating it.
func (l *Ledger) Lookup(name string) *Account {
	return l.accounts[strings.TrimSpace(name)]
}

// Post appends one entry to the matching side of the (lazily created)
// account. The side is normalized first; an unrecognized side fails the
// call without touching the ledger.
func (l *Ledger) Post(account string, side journal.Side, amount int64, note string) error {
	s, err := journal.NormalizeSide(string(side))
	if err != nil {
		return err
	}
	acc := l.Account(account)
	if s == journal.Debit {
		acc.Debits = append(acc.Debits, Entry{Note: note, Amount: amount})
	} else {
		acc.Credits = append(acc.Credits, Entry{Note: note, Amount: amount})
	}
	return nil
}

// PostMany applies Post for each posting in order. On failure the earlier
// postings stay applied; generator-produced entries are well formed so this
// path is not expected to fail in normal play.
func (l *Ledger) PostMany(postings []journal.Posting) error {
	for _, p := range postings {
		if err := l.Post(p.Account, p.Side, p.Amount, p.Note); err != nil {
			return err
		}
	}
	return nil
}

// UsedAccountNames returns the sorted names of accounts with at least one
// entry on either side.
func (l *Ledger) UsedAccountNames() []string {
	var names []string
	for name, acc := range l.accounts {
		if len(acc.Debits) > 0 || len(acc.Credits) > 0 {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
