package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/runger/askline/internal/config"
	"github.com/runger/askline/internal/storage"
)

var (
	historyLimit int
	historyForm  string
)

var historyCmd = &cobra.Command{
	Use:   "history [session-prefix]",
	Short: "Show recorded questionnaire sessions",
	Long: `Show recorded questionnaire sessions.

Without arguments, lists the most recent sessions. With a session ID prefix,
shows that session's answers.

Examples:
  askline history                 # List last 20 sessions
  askline history --limit=50      # List last 50 sessions
  askline history --form=Survey   # List sessions of one questionnaire
  askline history 3f2a91          # Show one session's answers`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum number of sessions to list")
	historyCmd.Flags().StringVar(&historyForm, "form", "", "Filter by questionnaire title")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := storage.NewSQLiteStore(cfg.DatabasePath())
	if err != nil {
		fmt.Fprintf(cmd.OutOrStdout(), "No history available. Database not found at: %s\n", cfg.DatabasePath())
		return nil
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if len(args) > 0 {
		return showSession(ctx, cmd, store, args[0])
	}
	return listSessions(ctx, cmd, store)
}

func listSessions(ctx context.Context, cmd *cobra.Command, store storage.Store) error {
	sessions, err := store.QuerySessions(ctx, storage.SessionQuery{
		Limit:     historyLimit,
		FormTitle: historyForm,
	})
	if err != nil {
		return fmt.Errorf("failed to query sessions: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		return nil
	}

	for _, s := range sessions {
		started := time.UnixMilli(s.StartedAtUnixMs).Format("2006-01-02 15:04")
		title := s.FormTitle
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(out, "%s  %s  %s\n", s.SessionID[:8], started, title)
	}
	return nil
}

func showSession(ctx context.Context, cmd *cobra.Command, store storage.Store, prefix string) error {
	sess, err := store.GetSessionByPrefix(ctx, prefix)
	if err != nil {
		return fmt.Errorf("failed to look up session %q: %w", prefix, err)
	}

	answers, err := store.GetAnswers(ctx, sess.SessionID)
	if err != nil {
		return fmt.Errorf("failed to load answers: %w", err)
	}

	out := cmd.OutOrStdout()
	title := sess.FormTitle
	if title == "" {
		title = "(untitled)"
	}
	started := time.UnixMilli(sess.StartedAtUnixMs).Format("2006-01-02 15:04")
	fmt.Fprintf(out, "%s  %s  %s\n", sess.SessionID, started, title)
	for _, a := range answers {
		fmt.Fprintf(out, "  %s: %s\n", a.QuestionID, a.Value)
	}
	return nil
}
