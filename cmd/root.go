package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathai/internal/llm"
	"github.com/abhisek/mathai/internal/question"
	"github.com/abhisek/mathai/internal/solution"
	"github.com/abhisek/mathai/internal/store"
	"github.com/abhisek/mathai/internal/tutor"
)

var rootCmd = &cobra.Command{
	Use:   "mathai",
	Short: "AI math tutor",
	Long:  "MathAI — practice math with generated questions, step-by-step solutions, graded answers, and progressive hints.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPractice(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHAI_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MATHAI_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// buildService opens the store and wires the tutor service. The LLM
// fallback is optional; without a configured provider the deterministic
// solver carries everything.
func buildService(cmd *cobra.Command, logger *zap.Logger) (*tutor.Service, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	var fallback *solution.Generator
	provider, err := llm.NewProviderFromEnv(cmd.Context(), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to the deterministic solver only.")
	} else {
		fallback = solution.New(provider, solution.DefaultConfig())
	}

	svc := tutor.New(st, question.New(), fallback, logger)
	return svc, func() { st.Close() }, nil
}
