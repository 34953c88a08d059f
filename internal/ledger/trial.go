package ledger

import (
	"fmt"
	"strings"

	"github.com/abhisek/ledgerdrill/internal/journal"
)

// TrialRow is one line of a trial balance: the account's net balance
// placed in the debit or credit column. Total marks the terminating row.
type TrialRow struct {
	Account string
	Debit   int64
	Credit  int64
	Total   bool
}

// TrialBalance reduces the ledger to one row per used account in name
// order, plus a totals row summing each column. When every posted entry
// was balanced, the two totals agree; that reconciliation is the point of
// the whole exercise.
func TrialBalance(l *Ledger) []TrialRow {
	var rows []TrialRow
	var drTotal, crTotal int64

	for _, name := range l.UsedAccountNames() {
		side, amt := l.Lookup(name).Balance()
		row := TrialRow{Account: name}
		switch side {
		case journal.Debit:
			row.Debit = amt
			drTotal += amt
		case journal.Credit:
			row.Credit = amt
			crTotal += amt
		}
		rows = append(rows, row)
	}

	rows = append(rows, TrialRow{Account: "Total", Debit: drTotal, Credit: crTotal, Total: true})
	return rows
}

// Trial balance text layout, matching the T-account column widths.
const (
	trialNameWidth = 34
	trialColWidth  = 14
)

// FormatTrialBalance renders the trial balance as a fixed-width table;
// the totals row is ruled off the way a hand-drawn one would be.
func FormatTrialBalance(l *Ledger) string {
	rule := strings.Repeat("-", trialNameWidth+2*trialColWidth+2)

	var b strings.Builder
	b.WriteString("Trial Balance\n")
	b.WriteString(fmt.Sprintf("%-*s %*s %*s\n", trialNameWidth, "Account", trialColWidth, "DR", trialColWidth, "CR"))
	b.WriteString(rule)
	b.WriteString("\n")

	for _, row := range TrialBalance(l) {
		if row.Total {
			b.WriteString(rule)
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%-*s %*s %*s\n",
			trialNameWidth, row.Account,
			trialColWidth, trialColumn(row.Debit),
			trialColWidth, trialColumn(row.Credit)))
	}
	b.WriteString(strings.Repeat("=", trialNameWidth+2*trialColWidth+2))
	return b.String()
}

// trialColumn leaves the unused column empty rather than printing a zero.
func trialColumn(amount int64) string {
	if amount == 0 {
		return ""
	}
	return journal.FormatAmount(amount)
}
