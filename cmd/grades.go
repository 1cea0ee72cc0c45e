package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/nutriz/internal/scenario"
	"github.com/abhisek/nutriz/internal/store"
)

var gradesCmd = &cobra.Command{
	Use:   "grades",
	Short: "List graded submissions and per-module averages",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		module, _ := cmd.Flags().GetString("module")
		if module != "" {
			m, err := scenario.ParseModule(module)
			if err != nil {
				return err
			}
			module = string(m)
		}

		return withRepo(cmd, func(repo store.EventRepo) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			stats, err := repo.GradeStatsByModule(ctx)
			if err != nil {
				return fmt.Errorf("query stats: %w", err)
			}
			if len(stats) == 0 {
				fmt.Fprintln(out, "No graded submissions yet.")
				return nil
			}

			t := newTable(out,
				column{title: "Module", width: 20},
				column{title: "Attempts", width: 8, right: true},
				column{title: "Correct", width: 8, right: true},
				column{title: "Avg", width: 6, right: true},
				column{title: "Offline", width: 8, right: true},
			)
			t.header()
			for _, s := range stats {
				t.row(s.Module, strconv.Itoa(s.Attempts), strconv.Itoa(s.Correct),
					strconv.FormatFloat(s.AvgScore, 'f', 1, 64), strconv.Itoa(s.Fallbacks))
			}

			grades, err := repo.QueryGrades(ctx, store.QueryOpts{Limit: limit, Filter: module})
			if err != nil {
				return fmt.Errorf("query grades: %w", err)
			}
			fmt.Fprintln(out)
			t = newTable(out,
				column{title: "Timestamp", width: 19},
				column{title: "Module", width: 20},
				column{title: "Score", width: 5, right: true},
				column{title: "OK", width: 2},
				column{title: "Graded by", width: 28},
			)
			t.header()
			for _, g := range grades {
				ok := "✓"
				if !g.IsCorrect {
					ok = "✗"
				}
				by := g.Model
				if g.Fallback {
					by = "offline (" + g.FallbackReason + ")"
				}
				t.row(g.Timestamp.Local().Format("2006-01-02 15:04:05"), g.Module, strconv.Itoa(g.Score), ok, by)
			}
			return nil
		})
	},
}

func init() {
	gradesCmd.Flags().IntP("limit", "n", 20, "Number of grades to show")
	gradesCmd.Flags().StringP("module", "m", "", "Only show one module")
}
