package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/ledgerdrill/internal/app"
	"github.com/abhisek/ledgerdrill/internal/coach"
	"github.com/abhisek/ledgerdrill/internal/llm"
	"github.com/abhisek/ledgerdrill/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider misconfigured:", err)
		fmt.Fprintln(os.Stderr, "The coach will be unavailable.")
		provider = nil
	}

	return app.Run(app.Options{
		EventRepo: eventRepo,
		Coach:     coach.NewService(provider, coach.DefaultConfig()),
	})
}
