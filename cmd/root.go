package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/nutriz/internal/config"
	"github.com/abhisek/nutriz/internal/grading"
	"github.com/abhisek/nutriz/internal/llm"
	"github.com/abhisek/nutriz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "nutriz",
	Short: "Nutrition and body composition practice",
	Long: "Nutriz generates nutrition and body-composition practice scenarios and grades\n" +
		"your answers with an LLM, falling back to exact reference values offline.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config.toml (default $XDG_CONFIG_HOME/nutriz/config.toml)")
	rootCmd.PersistentFlags().String("env-file", "", "Path to a .env file (default ./.env when present)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides NUTRIZ_DB env var)")

	rootCmd.AddCommand(scenarioCmd)
	rootCmd.AddCommand(gradeCmd)
	rootCmd.AddCommand(personalCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(gradesCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the configuration with --db taking precedence.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	envFile, _ := cmd.Flags().GetString("env-file")

	cfg, err := config.Load(config.Options{ConfigPath: path, EnvFile: envFile})
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return cfg, nil
}

// openStore opens the event store at the configured path, or the default
// XDG path.
func openStore(cfg config.Config) (*store.Store, error) {
	path := cfg.DBPath
	if path == "" {
		var err error
		if path, err = store.DefaultDBPath(); err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newGrader builds the grading service. Without a usable provider the
// service grades offline and model is empty.
func newGrader(ctx context.Context, cfg config.Config, repo store.EventRepo, logger *slog.Logger, warn io.Writer) (svc *grading.Service, model string) {
	opts := []grading.Option{grading.WithLogger(logger)}
	if repo != nil {
		opts = append(opts, grading.WithRecorder(repo))
	}

	var rec store.LLMRecorder
	if repo != nil {
		rec = repo
	}

	var provider llm.Provider
	if err := cfg.LLM.Validate(); err != nil {
		fmt.Fprintln(warn, "LLM provider not configured:", err)
		fmt.Fprintln(warn, "Answers will be checked against reference values only.")
	} else if p, err := llm.NewProvider(ctx, cfg.LLM, rec, logger); err != nil {
		fmt.Fprintln(warn, "LLM provider unavailable:", err)
		fmt.Fprintln(warn, "Answers will be checked against reference values only.")
	} else {
		provider = p
		model = p.ModelID()
	}
	return grading.NewService(provider, cfg.Grading, opts...), model
}
