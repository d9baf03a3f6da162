package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Leaderboard and score submission commands",
	}

	cmd.AddCommand(newScoresGetCmd())
	cmd.AddCommand(newScoresSubmitCmd())

	return cmd
}

func newScoresGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <puzzle-number>",
		Short: "Show the leaderboard for a puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("puzzle number must be an integer: %s", args[0])
			}

			var result Leaderboard

			if err := client.Get("/scores/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newScoresSubmitCmd() *cobra.Command {
	var message, file string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit a Wordle scorecard",
		Long: `Submit a Wordle scorecard message for scoring.

The message must be a shared Wordle result, e.g.:

  Wordle 900 3/6

  ⬛⬛🟨🟩⬛
  🟩🟩🟩🟨⬛
  🟩🟩🟩🟩🟩

Provide it inline with --message or from a file with --file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if message == "" && file == "" {
				return fmt.Errorf("one of --message or --file is required")
			}
			if message != "" && file != "" {
				return fmt.Errorf("--message and --file are mutually exclusive")
			}

			if file != "" {
				data, err := os.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read scorecard file: %w", err)
				}
				message = string(data)
			}

			req := map[string]string{"message": message}
			var result SubmitResult

			if err := client.Post("/scores", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&message, "message", "", "Scorecard message text")
	cmd.Flags().StringVar(&file, "file", "", "Path to a file containing the scorecard message")

	return cmd
}
