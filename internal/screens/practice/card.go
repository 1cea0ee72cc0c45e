package practice

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/nutriz/internal/catalog"
	"github.com/abhisek/nutriz/internal/scenario"
	"github.com/abhisek/nutriz/internal/ui/theme"
)

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// fact renders one "label  value" line of the problem card.
func fact(label, value string) string {
	return theme.Label.Render(fmt.Sprintf("%-22s", label)) + theme.Body.Render(value)
}

// describe renders the problem statement for the card.
func describe(p *scenario.Problem) string {
	var lines []string
	add := func(s ...string) { lines = append(lines, s...) }

	switch p.Module {
	case scenario.BodyComposition:
		add(fact("Weight", num(p.Weight())+" kg"),
			fact("Body fat", num(p.BodyFat())+" %"),
			"",
			"Calculate the client's body fat mass and fat-free mass.")

	case scenario.MuscleMass:
		add(fact("Gender", string(p.Gender())),
			fact("Weight", num(p.Weight())+" kg"),
			fact("Body fat", num(p.BodyFat())+" %"),
			"",
			"Estimate fat-free mass, skeletal muscle mass, and SMM as a % of total mass.")

	case scenario.TargetComposition:
		add(fact("Weight", num(p.Weight())+" kg"),
			fact("Body fat", num(p.BodyFat())+" %"),
			fact("Target body fat", num(p.TargetBodyFat())+" %"),
			"",
			"Holding fat-free mass constant, find the target body mass and the mass to lose.")

	case scenario.GoalSetting:
		if c := p.Persona; c != nil {
			add(fact("Client", c.Name+", "+c.Occupation),
				fact("Experience", string(c.Experience)),
				fact("Goal", c.Goal),
				fact("Lifestyle", c.Lifestyle),
				fact("Availability", c.Availability))
		}
		add(fact("Weight", num(p.Weight())+" kg"),
			fact("Body fat", num(p.BodyFat())+" %"),
			"",
			"Set realistic fat-loss and muscle-gain targets with rates, and write a SMART objective.")

	case scenario.EnergyExpenditure:
		if p.Energy != nil && p.Energy.Personal {
			add(theme.Hint.Render("Your own measurements"), "")
		}
		add(fact("Gender", string(p.Gender())),
			fact("Age", strconv.Itoa(p.Age())+" years"),
			fact("Height", num(p.Height())+" cm"),
			fact("Weight", num(p.Weight())+" kg"))
		if p.Energy != nil {
			add(fact("Activity", fmt.Sprintf("%s (×%s)", p.Energy.ActivityLevel, num(p.Energy.Multiplier))))
		}
		add("", "Calculate BMR with Mifflin-St Jeor, then TDEE with the activity multiplier.")

	case scenario.Macronutrients:
		if n := p.Nutrition; n != nil {
			add(fact("Client", n.ClientName),
				fact("Goal", n.Goal),
				"",
				theme.Subtitle.Render(n.GoalDescription),
				"",
				fact("TDEE", num(n.TDEE)+" kcal"),
				fact("Split", fmt.Sprintf("%d%% carbs · %d%% protein · %d%% fat", n.Split.Carbs, n.Split.Protein, n.Split.Fat)),
				"",
				"Convert the split into daily grams of each macronutrient.")
		}

	case scenario.FoodLabels:
		if l := p.Label; l != nil {
			add(theme.Title.Render(l.ProductName), "")
			add(nutritionTable(l.Nutrition)...)
			add("", lights(l.Ratings), "")
			add(fact("Ingredients", ""), theme.Subtitle.Render(l.Ingredients), "")
			add(theme.Warning.Render("Client asks: ") + theme.Body.Render(l.Question))
		}

	case scenario.CompositionChange:
		if c := p.Change; c != nil {
			add(fact("Initial", fmt.Sprintf("%s kg at %s %% body fat", num(c.Initial.Mass), num(c.Initial.BodyFat))),
				fact("Final", fmt.Sprintf("%s kg at %s %% body fat", num(c.Final.Mass), num(c.Final.BodyFat))),
				"",
				"Which statement describes the change in body composition?")
		}
	}
	return strings.Join(lines, "\n")
}

func nutritionTable(n catalog.NutritionFacts) []string {
	row := func(label string, v float64, unit string) string {
		return theme.Subtitle.Render(fmt.Sprintf("  %-16s", label)) + theme.Body.Render(fmt.Sprintf("%8s %s", num(v), unit))
	}
	return []string{
		theme.Label.Render("Per 100 g"),
		row("Energy", n.EnergyKcal, "kcal"),
		row("Fat", n.Fat, "g"),
		row("  of which saturates", n.Saturates, "g"),
		row("Carbohydrate", n.Carbs, "g"),
		row("  of which sugars", n.Sugars, "g"),
		row("Protein", n.Protein, "g"),
		row("Salt", n.Salt, "g"),
	}
}

func lights(ratings []catalog.Rating) string {
	parts := make([]string, 0, len(ratings))
	for _, r := range ratings {
		var c color.Color
		switch r.Light {
		case catalog.Green:
			c = theme.LightGreen
		case catalog.Amber:
			c = theme.LightAmber
		default:
			c = theme.LightRed
		}
		parts = append(parts, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0F172A")).
			Background(c).
			Padding(0, 1).
			Render(fmt.Sprintf("%s %sg", r.Nutrient, num(r.Value))))
	}
	return strings.Join(parts, " ")
}
