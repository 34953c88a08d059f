package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/ledgerdrill/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-round drill statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		stats, err := st.EventRepo().RoundStats(context.Background())
		if err != nil {
			return fmt.Errorf("load round stats: %w", err)
		}
		if len(stats) == 0 {
			fmt.Println("No rounds drilled yet.")
			return nil
		}

		fmt.Printf("%-7s %-11s %-9s %-9s %-10s %s\n",
			"Round", "Questions", "Correct", "Hints", "Attempts", "Accuracy")
		fmt.Println(strings.Repeat("─", 58))
		for _, s := range stats {
			fmt.Printf("%-7d %-11d %-9d %-9d %-10d %.0f%%\n",
				s.RoundNo, s.Questions, s.Correct, s.Hints, s.Attempts,
				s.Accuracy()*100)
		}
		return nil
	},
}
