package accounts

import (
	"fmt"
	"strings"
	"testing"

	"github.com/abhisek/ledgerdrill/internal/journal"
	"github.com/abhisek/ledgerdrill/internal/ledger"
)

func TestAccountsScreen_Title(t *testing.T) {
	a := New(ledger.New(), 5)
	if a.Title() != "Ledger — Round 5" {
		t.Errorf("Title = %q", a.Title())
	}
}

func TestAccountsScreen_RendersUpToEighteenAccounts(t *testing.T) {
	l := ledger.New()
	for i := 0; i < 19; i++ {
		name := fmt.Sprintf("Account %02d", i)
		err := l.PostMany([]journal.Posting{
			journal.P(name, journal.Debit, 100, ""),
			journal.P("Zz offset", journal.Credit, 100, ""),
		})
		if err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
	}

	a := New(l, 1)
	text := strings.Join(a.lines, "\n")

	for i := 0; i < 18; i++ {
		heading := fmt.Sprintf("= Account %02d =", i)
		if !strings.Contains(text, heading) {
			t.Errorf("expected a T-account for %q", fmt.Sprintf("Account %02d", i))
		}
	}
	// The nineteenth account falls past the cap. It still shows in the
	// trial balance, so check the T-account heading specifically.
	if strings.Contains(text, "= Account 18 =") {
		t.Error("expected the view to cap T-accounts at eighteen")
	}
	if !strings.Contains(text, "Account 18") {
		t.Error("expected the capped account in the trial balance")
	}
}

func TestAccountsScreen_ScrollClampsToContent(t *testing.T) {
	l := ledger.New()
	if err := l.PostMany([]journal.Posting{
		journal.P("Bank", journal.Debit, 500, ""),
		journal.P("Sales", journal.Credit, 500, ""),
	}); err != nil {
		t.Fatalf("post: %v", err)
	}

	a := New(l, 1)
	a.scroll(-5)
	if a.offset != 0 {
		t.Errorf("offset = %d, want 0 after scrolling above the top", a.offset)
	}
	a.scroll(10000)
	if a.offset != len(a.lines)-1 {
		t.Errorf("offset = %d, want %d at the bottom", a.offset, len(a.lines)-1)
	}
}
