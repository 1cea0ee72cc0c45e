package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/nutriz/internal/sampler"
	"github.com/abhisek/nutriz/internal/scenario"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario <module>",
	Short: "Generate a practice scenario as JSON",
	Long: "Generate a practice scenario for a module and print it as JSON.\n\n" +
		"Modules: " + moduleList(),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := scenario.ParseModule(args[0])
		if err != nil {
			return err
		}

		var s sampler.Sampler = sampler.New()
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetUint64("seed")
			s = sampler.NewSeeded(seed)
		}

		p, err := scenario.Generate(m, s)
		if err != nil {
			return err
		}
		return printJSON(p)
	},
}

func moduleList() string {
	var out string
	for i, info := range scenario.Modules() {
		if i > 0 {
			out += ", "
		}
		out += string(info.Module)
	}
	return out
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func init() {
	scenarioCmd.Flags().Uint64("seed", 0, "Seed for a reproducible scenario")
}
