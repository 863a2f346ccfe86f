package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/runger/askline"
	"github.com/runger/askline/internal/config"
	"github.com/runger/askline/internal/form"
	"github.com/runger/askline/internal/storage"
)

var runNoHistory bool

var runCmd = &cobra.Command{
	Use:   "run <form.yaml>",
	Short: "Run a questionnaire interactively",
	Long: `Run a questionnaire interactively.

Questions are asked one at a time on the console; invalid replies show the
reason and the question is asked again. When the last question is answered
the session is recorded in the local history database.

Examples:
  askline run onboarding.yaml
  askline run onboarding.yaml --no-history`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runNoHistory, "no-history", false, "Do not record the session")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	f, err := form.Load(args[0])
	if err != nil {
		return err
	}

	comm := askline.New(cmd.InOrStdin(), cmd.OutOrStdout(), askline.WithPrompt(cfg.Prompt))
	startedAt := time.Now().UnixMilli()

	answers, err := form.NewRunner(comm).Run(f)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	if f.Title != "" {
		fmt.Fprintf(out, "%s\n", f.Title)
	}
	for _, a := range answers {
		fmt.Fprintf(out, "  %s: %s\n", a.QuestionID, a.Value)
	}

	if runNoHistory || !cfg.History.Enabled {
		return nil
	}

	sessionID, err := recordSession(cfg, f.Title, startedAt, answers)
	if err != nil {
		return fmt.Errorf("failed to record session: %w", err)
	}
	fmt.Fprintf(out, "\nrecorded session %s\n", sessionID[:8])
	return nil
}

func recordSession(cfg *config.Config, title string, startedAt int64, answers []form.Answer) (string, error) {
	store, err := storage.NewSQLiteStore(cfg.DatabasePath())
	if err != nil {
		return "", err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sessionID := uuid.NewString()
	if err := store.CreateSession(ctx, &storage.Session{
		SessionID:       sessionID,
		FormTitle:       title,
		StartedAtUnixMs: startedAt,
	}); err != nil {
		return "", err
	}

	for i, a := range answers {
		if err := store.SaveAnswer(ctx, &storage.Answer{
			SessionID:  sessionID,
			Position:   i,
			QuestionID: a.QuestionID,
			Value:      a.Value,
		}); err != nil {
			return "", err
		}
	}

	if err := store.EndSession(ctx, sessionID, time.Now().UnixMilli()); err != nil {
		return "", err
	}
	return sessionID, nil
}
