package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathai/internal/solution"
)

var solveCmd = &cobra.Command{
	Use:   "solve [question]",
	Short: "Solve a question and show the steps",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		explain, _ := cmd.Flags().GetBool("explain")
		text := strings.Join(args, " ")

		svc, closeStore, err := buildService(cmd, zap.NewNop())
		if err != nil {
			return err
		}
		defer closeStore()

		sol, source, err := svc.Solve(cmd.Context(), text, topic)
		if err != nil {
			return err
		}

		fmt.Printf("Answer: %s  (%s)\n\n", sol.Answer, source)
		if !explain {
			for _, step := range sol.Steps {
				fmt.Println(step)
			}
			return nil
		}
		for _, a := range solution.Annotate(sol.Steps, topic) {
			fmt.Println(a.Text)
			fmt.Printf("   why: %s\n", a.Why)
			fmt.Printf("   concept: %s\n", a.Concept)
			if a.Caution != "" {
				fmt.Printf("   watch out: %s\n", a.Caution)
			}
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().String("topic", "", "Topic hint: algebra, geometry, percentages, arithmetic")
	solveCmd.Flags().Bool("explain", false, "Annotate each step with the concept it uses")
}
