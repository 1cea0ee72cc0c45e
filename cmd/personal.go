package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/grading"
	"github.com/abhisek/nutriz/internal/sampler"
	"github.com/abhisek/nutriz/internal/scenario"
)

var personalCmd = &cobra.Command{
	Use:   "personal",
	Short: "Work out your own BMR and TDEE, then have it graded",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !interactive() {
			return errors.New("personal needs a terminal for its forms")
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

		attrs, err := askAttributes()
		if err != nil {
			return err
		}
		p, err := scenario.NewPersonalEnergy(sampler.New(), attrs)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "\n%s, %d years, %s cm, %s kg\nActivity: %s (multiplier %s)\n\n",
			p.Gender(), p.Age(), fmtNum(p.Height()), fmtNum(p.Weight()),
			p.Energy.ActivityLevel, fmtNum(p.Energy.Multiplier))

		values, err := askAnswers(scenario.EnergyExpenditure)
		if err != nil {
			return err
		}
		sub, err := grading.FromValues(p.Module, p.ID, values)
		if err != nil {
			return err
		}

		grader, _ := newGrader(cmd.Context(), cfg, st.EventRepo(), cfg.NewLogger(os.Stderr), os.Stderr)
		fmt.Fprintln(out, "Grading...")
		res, err := grader.Grade(cmd.Context(), p, sub)
		if err != nil {
			return err
		}
		printResult(out, p.Module, res)
		return nil
	},
}

func askAttributes() (scenario.PersonalAttributes, error) {
	var gender, age, height, weight, level string
	gender = string(calc.Female)
	level = calc.ActivityLevels[1].Name

	levels := make([]huh.Option[string], 0, len(calc.ActivityLevels))
	for _, a := range calc.ActivityLevels {
		levels = append(levels, huh.NewOption(a.Label(), a.Name))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Gender").
				Options(huh.NewOption("Female", string(calc.Female)), huh.NewOption("Male", string(calc.Male))).
				Value(&gender),
			huh.NewInput().Title("Age (years)").Value(&age).Validate(positiveInt),
			huh.NewInput().Title("Height (cm)").Value(&height).Validate(positiveNumber),
			huh.NewInput().Title("Weight (kg)").Value(&weight).Validate(positiveNumber),
			huh.NewSelect[string]().Title("Activity level").Options(levels...).Value(&level),
		),
	)
	if err := form.Run(); err != nil {
		return scenario.PersonalAttributes{}, err
	}

	a := scenario.PersonalAttributes{Gender: calc.Gender(gender), Activity: level}
	a.AgeYears, _ = strconv.Atoi(strings.TrimSpace(age))
	a.HeightCm, _ = strconv.ParseFloat(strings.TrimSpace(height), 64)
	a.WeightKg, _ = strconv.ParseFloat(strings.TrimSpace(weight), 64)
	return a, nil
}

// askAnswers collects one value per submission field of m.
func askAnswers(m scenario.Module) (map[string]string, error) {
	fields, err := grading.Fields(m)
	if err != nil {
		return nil, err
	}
	values := make([]string, len(fields))
	group := make([]huh.Field, 0, len(fields))
	for i, f := range fields {
		title := f.Label
		if f.Unit != "" {
			title += " (" + f.Unit + ")"
		}
		if f.Text {
			group = append(group, huh.NewText().Title(title).Value(&values[i]).Validate(required))
			continue
		}
		group = append(group, huh.NewInput().Title(title).Value(&values[i]).Validate(number))
	}
	if err := huh.NewForm(huh.NewGroup(group...)).Run(); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(fields))
	for i, f := range fields {
		out[f.Key] = values[i]
	}
	return out, nil
}

func required(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

func number(s string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return errors.New("enter a number")
	}
	return nil
}

func positiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return errors.New("enter a positive number")
	}
	return nil
}

func positiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return errors.New("enter a whole number above zero")
	}
	return nil
}

func fmtNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// printResult writes an assessment in plain text.
func printResult(w io.Writer, m scenario.Module, res *grading.Result) {
	verdict := "Not quite"
	if res.IsCorrect {
		verdict = "Correct"
	}
	fmt.Fprintf(w, "\n%s (score %d/100)\n", verdict, res.Score)
	if res.Fallback {
		fmt.Fprintf(w, "Graded offline (%s): reference values only.\n", res.FallbackReason)
	}
	if res.Feedback != "" {
		fmt.Fprintf(w, "\nFeedback\n  %s\n", res.Feedback)
	}
	if res.ReasoningCritique != "" {
		fmt.Fprintf(w, "\nReasoning\n  %s\n", res.ReasoningCritique)
	}
	if entries := res.Corrections.Entries(m); len(entries) > 0 {
		fmt.Fprintln(w, "\nReference values")
		for _, c := range entries {
			fmt.Fprintf(w, "  %s\n", c)
		}
	}
}
