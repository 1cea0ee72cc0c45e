package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/nutriz/internal/llm"
	"github.com/abhisek/nutriz/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded grading requests",
}

// withRepo opens the configured store for a read-only inspection command.
func withRepo(cmd *cobra.Command, fn func(repo store.EventRepo) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s.EventRepo())
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		return withRepo(cmd, func(repo store.EventRepo) error {
			events, err := repo.QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit, Filter: purpose})
			if err != nil {
				return fmt.Errorf("query events: %w", err)
			}
			out := cmd.OutOrStdout()
			if len(events) == 0 {
				fmt.Fprintln(out, "No LLM events found.")
				return nil
			}

			t := newTable(out,
				column{title: "ID", width: 5, right: true},
				column{title: "Timestamp", width: 19},
				column{title: "Purpose", width: 24},
				column{title: "Model", width: 28},
				column{title: "In", width: 6, right: true},
				column{title: "Out", width: 6, right: true},
				column{title: "Ms", width: 7, right: true},
				column{title: "OK", width: 2},
			)
			t.header()
			for _, e := range events {
				ok := "✓"
				if !e.Success {
					ok = "✗"
				}
				t.row(
					strconv.Itoa(e.ID),
					e.Timestamp.Local().Format("2006-01-02 15:04:05"),
					e.Purpose,
					e.Model,
					strconv.Itoa(e.InputTokens),
					strconv.Itoa(e.OutputTokens),
					strconv.FormatInt(e.LatencyMs, 10),
					ok,
				)
			}
			return nil
		})
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View the full request and response of an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		return withRepo(cmd, func(repo store.EventRepo) error {
			e, err := repo.GetLLMEvent(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get event: %w", err)
			}
			if e == nil {
				return fmt.Errorf("event %d not found", id)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID:        %d\n", e.ID)
			fmt.Fprintf(out, "Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Provider:  %s\n", e.Provider)
			fmt.Fprintf(out, "Model:     %s\n", e.Model)
			fmt.Fprintf(out, "Purpose:   %s\n", e.Purpose)
			fmt.Fprintf(out, "Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
			fmt.Fprintf(out, "Latency:   %dms\n", e.LatencyMs)
			fmt.Fprintf(out, "Success:   %v\n", e.Success)
			if e.ErrorMessage != "" {
				fmt.Fprintf(out, "Error:     %s\n", e.ErrorMessage)
			}

			sep := strings.Repeat("─", 60)
			for _, part := range []struct{ name, body string }{
				{"REQUEST", e.RequestBody},
				{"RESPONSE", e.ResponseBody},
			} {
				body := part.body
				if body == "" {
					body = "(not captured)"
				}
				fmt.Fprintf(out, "\n%s\n%s\n%s\n%s\n", sep, part.name, sep, body)
			}
			return nil
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRepo(cmd, func(repo store.EventRepo) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			usage, err := repo.LLMUsageByPurpose(ctx)
			if err != nil {
				return fmt.Errorf("query usage: %w", err)
			}
			if len(usage) == 0 {
				fmt.Fprintln(out, "No LLM usage recorded yet.")
				return nil
			}

			fmt.Fprintln(out, "Usage by Purpose")
			t := newTable(out,
				column{title: "Purpose", width: 26},
				column{title: "Calls", width: 6, right: true},
				column{title: "Input", width: 10, right: true},
				column{title: "Output", width: 10, right: true},
				column{title: "Total", width: 10, right: true},
				column{title: "Avg Ms", width: 8, right: true},
			)
			t.header()
			var calls, in, outTok int
			for _, u := range usage {
				t.row(u.Purpose, strconv.Itoa(u.Calls), strconv.Itoa(u.InputTokens), strconv.Itoa(u.OutputTokens),
					strconv.Itoa(u.InputTokens+u.OutputTokens), strconv.FormatInt(u.AvgLatencyMs, 10))
				calls += u.Calls
				in += u.InputTokens
				outTok += u.OutputTokens
			}
			t.rule()
			t.row("TOTAL", strconv.Itoa(calls), strconv.Itoa(in), strconv.Itoa(outTok), strconv.Itoa(in+outTok))

			models, err := repo.LLMUsageByModel(ctx)
			if err != nil {
				return fmt.Errorf("query model usage: %w", err)
			}
			if len(models) == 0 {
				return nil
			}

			fmt.Fprintln(out, "\nEstimated Cost (USD)")
			t = newTable(out,
				column{title: "Model", width: 32},
				column{title: "Calls", width: 6, right: true},
				column{title: "Input", width: 10, right: true},
				column{title: "Output", width: 10, right: true},
				column{title: "Cost", width: 10, right: true},
			)
			t.header()
			var total float64
			var unknown []string
			for _, m := range models {
				cost := "?"
				if price := llm.LookupCost(m.Model); price != nil {
					c := price.Cost(m.InputTokens, m.OutputTokens)
					total += c
					cost = formatCost(c)
				} else {
					unknown = append(unknown, m.Model)
				}
				t.row(m.Model, strconv.Itoa(m.Calls), strconv.Itoa(m.InputTokens), strconv.Itoa(m.OutputTokens), cost)
			}
			t.rule()
			label := "TOTAL"
			if len(unknown) > 0 {
				label = "TOTAL (partial)"
			}
			t.row(label, "", "", "", formatCost(total))
			if len(unknown) > 0 {
				fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
			}
			return nil
		})
	},
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. grade-macronutrients)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
