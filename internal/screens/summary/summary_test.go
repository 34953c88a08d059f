package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ledgerdrill/internal/drill"
	"github.com/abhisek/ledgerdrill/internal/journal"
	"github.com/abhisek/ledgerdrill/internal/ledger"
	"github.com/abhisek/ledgerdrill/internal/router"
)

func testSummary() drill.Summary {
	return drill.Summary{
		RoundNo:   2,
		SessionID: "test-session",
		Questions: 8,
		Score:     6,
		Duration:  4*time.Minute + 30*time.Second,
	}
}

func testLedger(t *testing.T) *ledger.Ledger {
	t.Helper()
	l := ledger.New()
	err := l.PostMany([]journal.Posting{
		journal.P("Bank", journal.Debit, 1000, "Q1"),
		journal.P("Capital", journal.Credit, 1000, "Q1"),
	})
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	return l
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary(), testLedger(t))
	if s.Title() != "Round Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Round Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary(), testLedger(t))
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Round 2 complete!") {
		t.Error("expected round headline in view")
	}
	if !strings.Contains(view, "75%") {
		t.Error("expected accuracy in view")
	}
}

func TestSummaryScreen_EnterGoesHome(t *testing.T) {
	s := New(testSummary(), testLedger(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter (pop back home)")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected a single pop back to home, got %T", cmd())
	}
}

func TestSummaryScreen_LedgerKeyPushesAccounts(t *testing.T) {
	s := New(testSummary(), testLedger(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	if cmd == nil {
		t.Error("expected a command on L (push accounts screen)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary(), testLedger(t))
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
}
