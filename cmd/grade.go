package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/nutriz/internal/grading"
	"github.com/abhisek/nutriz/internal/scenario"
)

var gradeCmd = &cobra.Command{
	Use:   "grade <module>",
	Short: "Grade a submission for a scenario and print the result as JSON",
	Long: "Grade a submission against a scenario produced by `nutriz scenario`.\n" +
		"Either file may be \"-\" to read from stdin.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := scenario.ParseModule(args[0])
		if err != nil {
			return err
		}
		problemPath, _ := cmd.Flags().GetString("problem")
		subPath, _ := cmd.Flags().GetString("submission")
		if problemPath == "-" && subPath == "-" {
			return fmt.Errorf("only one of --problem and --submission can read stdin")
		}

		raw, err := readInput(cmd, problemPath)
		if err != nil {
			return fmt.Errorf("read problem: %w", err)
		}
		p, err := scenario.Decode(raw)
		if err != nil {
			return err
		}
		if p.Module != m {
			return fmt.Errorf("%w: %s problem graded as %s", grading.ErrModuleMismatch, p.Module, m)
		}

		raw, err = readInput(cmd, subPath)
		if err != nil {
			return fmt.Errorf("read submission: %w", err)
		}
		sub, err := grading.DecodeSubmission(m, raw)
		if err != nil {
			return err
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		logger := cfg.NewLogger(os.Stderr)
		grader, _ := newGrader(cmd.Context(), cfg, st.EventRepo(), logger, os.Stderr)

		res, err := grader.Grade(cmd.Context(), p, sub)
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func init() {
	gradeCmd.Flags().String("problem", "", "Scenario JSON file")
	gradeCmd.Flags().String("submission", "", "Submission JSON file")
	_ = gradeCmd.MarkFlagRequired("problem")
	_ = gradeCmd.MarkFlagRequired("submission")
}
