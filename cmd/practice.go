package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathai/internal/question"
	"github.com/abhisek/mathai/internal/ui"
)

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Start an interactive practice session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func init() {
	practiceCmd.Flags().Int("grade", 5, "Grade level (1-12)")
	practiceCmd.Flags().String("difficulty", "medium", "Difficulty: easy, medium, hard")
	practiceCmd.Flags().String("topic", "arithmetic", "Topic: algebra, geometry, percentages, arithmetic")

	// The bare root command runs a practice session too.
	rootCmd.Flags().AddFlagSet(practiceCmd.Flags())
}

// runPractice builds the service and launches the practice TUI.
func runPractice(cmd *cobra.Command) error {
	grade, _ := cmd.Flags().GetInt("grade")
	difficulty, _ := cmd.Flags().GetString("difficulty")
	topic, _ := cmd.Flags().GetString("topic")

	p := question.Params{
		Grade:      grade,
		Difficulty: question.Difficulty(difficulty),
		Topic:      question.Topic(topic),
	}
	if err := p.Validate(); err != nil {
		return err
	}

	// Logs stay out of the TUI's way.
	svc, closeStore, err := buildService(cmd, zap.NewNop())
	if err != nil {
		return fmt.Errorf("build service: %w", err)
	}
	defer closeStore()

	return ui.Run(svc, p)
}
