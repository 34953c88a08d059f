package ledger

import (
	"errors"
	"testing"

	"github.com/abhisek/ledgerdrill/internal/journal"
)

func TestPostAndBalance(t *testing.T) {
	l := New()
	if err := l.Post("Bank", journal.Debit, 1000, "Q1"); err != nil {
		t.Fatalf("post debit: %v", err)
	}
	if err := l.Post("Bank", journal.Credit, 400, "Q2"); err != nil {
		t.Fatalf("post credit: %v", err)
	}

	side, amt := l.Lookup("Bank").Balance()
	if side != journal.Debit || amt != 600 {
		t.Errorf("Balance() = (%s, %d), want (DR, 600)", side, amt)
	}

	dr, cr := l.Lookup("Bank").Totals()
	if dr != 1000 || cr != 400 {
		t.Errorf("Totals() = (%d, %d), want (1000, 400)", dr, cr)
	}
}

func TestPostInvalidSide(t *testing.T) {
	l := New()
	err := l.Post("Bank", "XX", 100, "")
	var ise *journal.InvalidSideError
	if !errors.As(err, &ise) {
		t.Fatalf("err = %v, want *InvalidSideError", err)
	}
	if l.Lookup("Bank") != nil && len(l.Lookup("Bank").Debits)+len(l.Lookup("Bank").Credits) > 0 {
		t.Error("failed post must not record an entry")
	}
}

func TestPostNormalizesSideSpelling(t *testing.T) {
	l := New()
	if err := l.Post("Bank", " dr ", 100, ""); err != nil {
		t.Fatalf("post: %v", err)
	}
	if len(l.Lookup("Bank").Debits) != 1 {
		t.Error("lowercase dr should land on the debit side")
	}
}

func TestPostManyStopsOnFirstError(t *testing.T) {
	l := New()
	err := l.PostMany([]journal.Posting{
		{Account: "Bank", Side: journal.Debit, Amount: 100},
		{Account: "Sales", Side: "bogus", Amount: 100},
		{Account: "Capital", Side: journal.Credit, Amount: 100},
	})
	if err == nil {
		t.Fatal("expected error from bad side")
	}
	// No rollback: the first posting stays applied, the rest never ran.
	if l.Lookup("Bank") == nil || len(l.Lookup("Bank").Debits) != 1 {
		t.Error("first posting should remain applied")
	}
	if l.Lookup("Capital") != nil {
		t.Error("postings after the failure must not apply")
	}
}

func TestUsedAccountNamesSorted(t *testing.T) {
	l := New()
	for _, p := range []journal.Posting{
		{Account: "Sales", Side: journal.Credit, Amount: 100},
		{Account: "Bank", Side: journal.Debit, Amount: 100},
		{Account: " Capital ", Side: journal.Credit, Amount: 50},
		{Account: "Bank", Side: journal.Debit, Amount: 50},
	} {
		if err := l.Post(p.Account, p.Side, p.Amount, p.Note); err != nil {
			t.Fatalf("post: %v", err)
		}
	}

	got := l.UsedAccountNames()
	want := []string{"Bank", "Capital", "Sales"}
	if len(got) != len(want) {
		t.Fatalf("UsedAccountNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UsedAccountNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRenderAccountBalancesColumns(t *testing.T) {
	l := New()
	_ = l.Post("Bank", journal.Debit, 1000, "Q1")
	_ = l.Post("Bank", journal.Credit, 400, "Q2")

	rows := RenderAccount(l.Lookup("Bank"))

	// Debit balance of 600: Bal c/d goes on the credit side.
	var carried, total, brought *DisplayRow
	for i := range rows {
		switch rows[i].Kind {
		case RowCarriedDown:
			carried = &rows[i]
		case RowTotal:
			total = &rows[i]
		case RowBroughtDown:
			brought = &rows[i]
		}
	}

	if carried == nil || !carried.Credit.Present || carried.Credit.Amount != 600 {
		t.Fatalf("want Bal c/d 600 on the credit side, got %+v", carried)
	}
	if carried.Debit.Present {
		t.Error("Bal c/d row must leave the natural side blank")
	}
	if total == nil || total.Debit.Amount != 1000 || total.Credit.Amount != 1000 {
		t.Fatalf("total row = %+v, want both columns 1000", total)
	}
	if brought == nil || !brought.Debit.Present || brought.Debit.Amount != 600 {
		t.Fatalf("want Bal b/d 600 on the debit side, got %+v", brought)
	}
}

func TestRenderAccountTotalsAlwaysEqual(t *testing.T) {
	cases := [][]journal.Posting{
		{{Account: "Bank", Side: journal.Debit, Amount: 1000}},
		{{Account: "Bank", Side: journal.Credit, Amount: 250}},
		{
			{Account: "Bank", Side: journal.Debit, Amount: 700},
			{Account: "Bank", Side: journal.Credit, Amount: 700},
		},
		{
			{Account: "Bank", Side: journal.Debit, Amount: 1000},
			{Account: "Bank", Side: journal.Debit, Amount: 300},
			{Account: "Bank", Side: journal.Credit, Amount: 450},
		},
	}

	for _, postings := range cases {
		l := New()
		if err := l.PostMany(postings); err != nil {
			t.Fatalf("post: %v", err)
		}
		for _, row := range RenderAccount(l.Lookup("Bank")) {
			if row.Kind == RowTotal && row.Debit.Amount != row.Credit.Amount {
				t.Errorf("postings %v: total row %d != %d", postings, row.Debit.Amount, row.Credit.Amount)
			}
		}
	}
}

func TestRenderAccountPairsEntriesInOrder(t *testing.T) {
	l := New()
	_ = l.Post("Bank", journal.Debit, 100, "Q1")
	_ = l.Post("Bank", journal.Debit, 200, "Q2")
	_ = l.Post("Bank", journal.Credit, 50, "Q3")

	rows := RenderAccount(l.Lookup("Bank"))
	if rows[0].Debit.Amount != 100 || rows[0].Credit.Amount != 50 {
		t.Errorf("row 0 = %+v, want debit 100 / credit 50", rows[0].Row)
	}
	if rows[1].Debit.Amount != 200 || rows[1].Credit.Present {
		t.Errorf("row 1 = %+v, want debit 200 and a blank credit cell", rows[1].Row)
	}
}

func TestRenderAccountTruncatesNotes(t *testing.T) {
	l := New()
	_ = l.Post("Bank", journal.Debit, 100, "a very long narrative label")
	rows := RenderAccount(l.Lookup("Bank"))
	if got := rows[0].Debit.Label; len(got) > 10 {
		t.Errorf("label %q exceeds 10 characters", got)
	}
}

func TestTrialBalance(t *testing.T) {
	l := New()
	_ = l.Post("Bank", journal.Debit, 1000, "Q1")
	_ = l.Post("Bank", journal.Credit, 400, "Q2")
	_ = l.Post("Capital", journal.Credit, 600, "Q1")

	rows := TrialBalance(l)
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	if rows[0].Account != "Bank" || rows[0].Debit != 600 || rows[0].Credit != 0 {
		t.Errorf("Bank row = %+v, want debit 600", rows[0])
	}
	if rows[1].Account != "Capital" || rows[1].Credit != 600 || rows[1].Debit != 0 {
		t.Errorf("Capital row = %+v, want credit 600", rows[1])
	}

	total := rows[len(rows)-1]
	if !total.Total {
		t.Fatal("last row must be the totals row")
	}
	if total.Debit != total.Credit {
		t.Errorf("totals %d != %d; balanced postings must reconcile", total.Debit, total.Credit)
	}
}

func TestTrialBalanceSkipsFullyOffsetAccounts(t *testing.T) {
	l := New()
	_ = l.Post("Suspense", journal.Debit, 300, "Q1")
	_ = l.Post("Suspense", journal.Credit, 300, "Q2")

	rows := TrialBalance(l)
	// The account still appears (it has activity) but contributes nothing.
	if rows[0].Debit != 0 || rows[0].Credit != 0 {
		t.Errorf("offset account row = %+v, want zero in both columns", rows[0])
	}
	total := rows[len(rows)-1]
	if total.Debit != 0 || total.Credit != 0 {
		t.Errorf("totals = (%d, %d), want zeros", total.Debit, total.Credit)
	}
}

func TestFormatAllEmptyLedger(t *testing.T) {
	if got := FormatAll(New(), 18); got != "(No postings yet)" {
		t.Errorf("FormatAll(empty) = %q", got)
	}
}
