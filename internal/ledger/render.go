package ledger

import (
	"fmt"
	"strings"

	"github.com/abhisek/ledgerdrill/internal/journal"
)

// noteWidth is the label truncation width in rendered cells, sized for a
// fixed-width two-column layout.
const noteWidth = 10

// Cell is one side of a rendered T-account row. Present distinguishes a
// genuine zero from a blank cell on the shorter column.
type Cell struct {
	Label   string
	Amount  int64
	Present bool
}

// Row pairs a debit cell and a credit cell.
type Row struct {
	Debit  Cell
	Credit Cell
}

// RowKind classifies rendered rows so formatters can style them.
type RowKind int

const (
	RowEntry RowKind = iota
	RowCarriedDown
	RowTotal
	RowBroughtDown
)

// DisplayRow is a Row tagged with its kind.
type DisplayRow struct {
	Row
	Kind RowKind
}

// RenderAccount turns an account's accumulated postings into display rows.
// Entries are paired row by row; when the account carries a balance, a
// "Bal c/d" line on the side opposite the natural balance equalizes the
// two column totals, followed by the Total row and a "Bal b/d" line back
// on the natural side.
func RenderAccount(acc *Account) []DisplayRow {
	var rows []DisplayRow

	n := len(acc.Debits)
	if len(acc.Credits) > n {
		n = len(acc.Credits)
	}
	for i := 0; i < n; i++ {
		var r Row
		if i < len(acc.Debits) {
			r.Debit = entryCell(acc.Debits[i])
		}
		if i < len(acc.Credits) {
			r.Credit = entryCell(acc.Credits[i])
		}
		rows = append(rows, DisplayRow{Row: r, Kind: RowEntry})
	}

	drTotal, crTotal := acc.Totals()
	balSide, balAmt := acc.Balance()

	if balAmt > 0 {
		cd := Cell{Label: "Bal c/d", Amount: balAmt, Present: true}
		if balSide == journal.Debit {
			rows = append(rows, DisplayRow{Row: Row{Credit: cd}, Kind: RowCarriedDown})
			crTotal += balAmt
		} else {
			rows = append(rows, DisplayRow{Row: Row{Debit: cd}, Kind: RowCarriedDown})
			drTotal += balAmt
		}
	}

	rows = append(rows, DisplayRow{
		Row: Row{
			Debit:  Cell{Label: "Total", Amount: drTotal, Present: true},
			Credit: Cell{Label: "Total", Amount: crTotal, Present: true},
		},
		Kind: RowTotal,
	})

	if balAmt > 0 {
		bd := Cell{Label: "Bal b/d", Amount: balAmt, Present: true}
		if balSide == journal.Debit {
			rows = append(rows, DisplayRow{Row: Row{Debit: bd}, Kind: RowBroughtDown})
		} else {
			rows = append(rows, DisplayRow{Row: Row{Credit: bd}, Kind: RowBroughtDown})
		}
	}

	return rows
}

func entryCell(e Entry) Cell {
	label := strings.TrimSpace(e.Note)
	if len(label) > noteWidth {
		label = label[:noteWidth]
	}
	return Cell{Label: label, Amount: e.Amount, Present: true}
}

// Fixed-width text formatting, a swappable presentation over the row data.
const (
	formatWidth = 70
	leftWidth   = 34
	rightWidth  = 35
)

// FormatAccount renders one account as a fixed-width T-account.
func FormatAccount(acc *Account) string {
	title := " " + acc.Name + " "
	pad := formatWidth - len(title)
	if pad < 0 {
		pad = 0
	}
	top := strings.Repeat("=", pad/2) + title + strings.Repeat("=", pad-pad/2)

	var b strings.Builder
	b.WriteString(top)
	b.WriteString("\n")
	b.WriteString(padRight("DR", leftWidth) + "|" + padRight("CR", rightWidth))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", leftWidth) + "+" + strings.Repeat("-", rightWidth))
	b.WriteString("\n")

	for _, row := range RenderAccount(acc) {
		b.WriteString(padRight(formatCell(row.Debit), leftWidth))
		b.WriteString("|")
		b.WriteString(padRight(formatCell(row.Credit), rightWidth))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("=", formatWidth))
	return b.String()
}

// FormatAll renders every used account, capped at maxAccounts.
func FormatAll(l *Ledger, maxAccounts int) string {
	names := l.UsedAccountNames()
	if len(names) == 0 {
		return "(No postings yet)"
	}
	if len(names) > maxAccounts {
		names = names[:maxAccounts]
	}
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = FormatAccount(l.Lookup(name))
	}
	return strings.Join(parts, "\n\n")
}

func formatCell(c Cell) string {
	if !c.Present {
		return ""
	}
	return fmt.Sprintf("%-*s %12s", noteWidth, c.Label, journal.FormatAmount(c.Amount))
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
