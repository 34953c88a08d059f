package cmd

import (
	"fmt"

	"github.com/abhisek/ledgerdrill/internal/journal"
	"github.com/abhisek/ledgerdrill/internal/ledger"
	"github.com/abhisek/ledgerdrill/internal/quiz"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print a round's questions and model entries (no database)",
	Long: `Print the scenarios a round would serve along with their model journal
entries. Rounds are deterministic, so this shows exactly what the drill
will ask. Useful for checking the question catalogs.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().Int("round", 1, "Round number")
	previewCmd.Flags().Int("count", 8, "Number of questions")
	previewCmd.Flags().Bool("ledger", false, "Also post the model entries and print the T-accounts and trial balance")
}

func runPreview(cmd *cobra.Command, args []string) error {
	roundNo, _ := cmd.Flags().GetInt("round")
	count, _ := cmd.Flags().GetInt("count")
	showLedger, _ := cmd.Flags().GetBool("ledger")

	if roundNo < 1 || roundNo > quiz.MaxRound {
		return fmt.Errorf("round must be between 1 and %d", quiz.MaxRound)
	}
	if count < 1 {
		return fmt.Errorf("count must be positive")
	}

	questions := quiz.BuildRound(roundNo, count)
	fmt.Printf("Round %d (%s tier), %d questions\n\n", roundNo, quiz.TierFor(roundNo), count)

	l := ledger.New()
	for i, q := range questions {
		fmt.Println(q.Prompt)
		fmt.Println(journal.Format(q.Expected))
		fmt.Println()

		if showLedger {
			tagged := journal.Tag(q.Expected, fmt.Sprintf("Q%d", i+1))
			if err := l.PostMany(tagged); err != nil {
				return fmt.Errorf("post question %d: %w", i+1, err)
			}
		}
	}

	if showLedger {
		fmt.Println(ledger.FormatAll(l, len(l.UsedAccountNames())))
		fmt.Println()
		fmt.Println(ledger.FormatTrialBalance(l))
	}
	return nil
}
