package grading

import (
	"bytes"
	"fmt"
	"strconv"
	"text/template"

	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/scenario"
)

const systemPrompt = `You are an expert Nutrition Professor marking practice exercises for trainee fitness professionals.

Rules:
- Work out the correct answer yourself before judging the learner.
- Judge the final numbers against your own within the stated tolerance, then judge the written working: correct steps, correct conversions, sound logic.
- Score from 0 to 100 on both accuracy and the quality of the working shown.
- If the learner made a mistake, say exactly where (for example "You forgot to convert 20% to 0.2").
- Keep feedback constructive and encouraging.
- Write all feedback using UK English spelling (analyse, practise, centre, fibre).
- Return only the JSON object described by the schema.`

var funcs = template.FuncMap{
	"num": formatNum,
	"val": func(v *float64) string {
		if v == nil {
			return "not given"
		}
		return formatNum(*v)
	},
	// span renders a timeline; nil means no projection exists at the rate given.
	"span": func(v *float64, unit string) string {
		if v == nil {
			return "undefined (rate is zero or missing)"
		}
		return formatNum(*v) + " " + unit
	},
	"kcal":  func(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) },
	"split": func(s calc.Split) string { return s.String() },
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var prompts = map[scenario.Module]*template.Template{
	scenario.BodyComposition: parse("body-composition", `A learner has answered a body composition calculation.

Problem:
- Total body mass: {{num .P.Weight}} kg
- Body fat: {{num .P.BodyFat}}%

Learner's answer:
- Body fat mass (BFM): {{val .S.BFM}} kg
- Fat-free mass (FFM): {{val .S.FFM}} kg
- Written working: "{{.S.Working}}"

Task:
1. Calculate BFM = mass × body fat decimal and FFM = mass − BFM.
2. Accept answers within ±{{num .Tol}} kg.
3. Check the working: was the percentage converted to a decimal correctly?`),

	scenario.MuscleMass: parse("muscle-mass", `A learner is estimating skeletal muscle mass (SMM) from fat-free mass (FFM).

Rules (average, non-athlete population):
- Men: SMM is 49% to 50% of FFM.
- Women: SMM is 41% to 45% of FFM.

Problem:
- Gender: {{.P.Gender}}
- Total body mass: {{num .P.Weight}} kg
- Body fat: {{num .P.BodyFat}}%

Learner's answer:
- FFM: {{val .S.FFM}} kg
- SMM: {{val .S.SMM}} kg
- SMM as % of total mass: {{val .S.SMMPercent}}%
- Written working: "{{.S.Working}}"

Task:
1. Calculate FFM, then the valid SMM range in kg for this gender, then the valid range for SMM as % of total mass.
2. The answer is correct when both SMM values fall inside their ranges (allow ±{{num .Tol}} for rounding).
3. Check the working used a percentage inside the correct band (0.50 for a man, 0.42 for a woman are fine).
4. Report the midpoint of each range as the correction.`),

	scenario.TargetComposition: parse("target-composition", `A learner is calculating the target body mass needed to reach a goal body fat percentage, holding fat-free mass (FFM) constant.

Problem:
- Current total mass: {{num .P.Weight}} kg
- Current body fat: {{num .P.BodyFat}}%
- Goal body fat: {{num .P.TargetBodyFat}}%

Method taught:
1. Current FFM = mass × (1 − current body fat decimal)
2. Target body mass = FFM / (1 − goal body fat decimal)
3. Mass loss required = current mass − target body mass

Learner's answer:
- Current FFM: {{val .S.CurrentFFM}} kg
- Target body mass: {{val .S.TargetBodyMass}} kg
- Mass loss required: {{val .S.MassLossRequired}} kg
- Written working: "{{.S.Working}}"

Task:
1. Perform the calculation yourself.
2. Accept answers within ±{{num .Tol}} kg.
3. If the learner went wrong, walk through the steps.`),

	scenario.GoalSetting: parse("goal-setting", `A learner is setting a SMART goal for a client from physiological data and lifestyle constraints.

Client profile:
- Name: {{.P.Persona.Name}}
- Age: {{.P.Age}} years
- Height: {{num .P.Height}} cm
- Experience: {{.P.Persona.Experience}}
- Current stats: {{num .P.Weight}} kg, {{num .P.BodyFat}}% body fat
- Occupation: {{.P.Persona.Occupation}}
- Lifestyle: {{.P.Persona.Lifestyle}}
- Training availability: {{.P.Persona.Availability}}
- Client's stated desire: "{{.P.Persona.Goal}}"

Learner's plan:
1. Current fat mass: {{val .S.CurrentFatMass}} kg
2. Fat loss: {{val .S.FatLossTarget}} kg at {{val .S.FatLossRate}} kg/week, estimated {{span .S.FatLossWeeks "weeks"}}
3. Muscle gain: {{val .S.MuscleGainTarget}} kg at {{val .S.MuscleGainRate}} kg/month, estimated {{span .S.MuscleGainMonths "months"}}
4. SMART objective: "{{.S.SmartGoal}}"

Marking guide:
1. Physiological accuracy: check the current fat mass.
2. Mathematical consistency: time = amount / rate.
3. Realism matters most:
   - Does the plan respect the client's lifestyle?
   - Older clients (40+) may need slower rates than 20-year-olds because of recovery.
   - Consider whether the client is already light or short, or tall and heavy.
   - For high-stress or low-availability clients the rate should be conservative (around 0.5 kg/week). Penalise rates above 0.8 kg/week for stressed or busy clients.
   - If the client wants something unrealistic, the learner must set a more realistic goal or explain the compromise.
4. SMART structure: does the objective include start point, action, target and time?
Give specific feedback on whether the chosen rate fits this client's lifestyle.`),

	scenario.EnergyExpenditure: parse("energy-expenditure", `A learner is calculating Basal Metabolic Rate (BMR) and Total Daily Energy Expenditure (TDEE).

Mifflin-St Jeor equation:
- Men: (10 × weight kg) + (6.25 × height cm) − (5 × age years) + 5
- Women: (10 × weight kg) + (6.25 × height cm) − (5 × age years) − 161

Client{{if .P.Energy.Personal}} (the learner's own details){{end}}:
- Gender: {{.P.Gender}}
- Weight: {{num .P.Weight}} kg
- Height: {{num .P.Height}} cm
- Age: {{.P.Age}} years
- Activity level: {{.P.Energy.ActivityLevel}} (multiplier {{num .P.Energy.Multiplier}})

Learner's answer:
- BMR: {{val .S.BMR}} kcal
- TDEE: {{val .S.TDEE}} kcal
- Written working: "{{.S.Working}}"

Task:
1. Calculate BMR with Mifflin-St Jeor and TDEE = BMR × activity multiplier.
2. Allow rounding differences of ±10–{{num .Tol}} kcal.
3. Check the working applied the right formula for the gender.`),

	scenario.Macronutrients: parse("macronutrients", `A learner is converting a client's TDEE and macronutrient split into daily gram targets.

Energy densities:
- Carbohydrate: 4 kcal per gram
- Protein: 4 kcal per gram
- Fat: 9 kcal per gram

Client:
- {{.P.Nutrition.ClientName}}
- TDEE: {{kcal .P.Nutrition.TDEE}} kcal
- Split: {{split .P.Nutrition.Split}}
- Goal: {{.P.Nutrition.Goal}} ({{.P.Nutrition.GoalDescription}})

Learner's answer:
- Carbohydrate: {{val .S.CarbsGrams}} g
- Protein: {{val .S.ProteinGrams}} g
- Fat: {{val .S.FatGrams}} g
- Written working: "{{.S.Working}}"

Task:
1. Grams = (TDEE × percentage) / energy density, for each nutrient.
2. Accept answers within ±{{num .Tol}} g.`),

	scenario.FoodLabels: parse("food-labels", `A learner is interpreting a food label under UK labelling rules to answer a client.

Product: {{.P.Label.ProductName}}
Nutrition per 100 g:
{{- with .P.Label.Nutrition}}
- Energy: {{num .EnergyKcal}} kcal
- Fat: {{num .Fat}} g (saturates {{num .Saturates}} g)
- Carbohydrate: {{num .Carbs}} g (sugars {{num .Sugars}} g)
- Protein: {{num .Protein}} g
- Salt: {{num .Salt}} g
{{- end}}
Traffic lights (UK front-of-pack, per 100 g):
{{- range .P.Label.Ratings}}
- {{.Nutrient}}: {{.Light}}
{{- end}}
Ingredients: "{{.P.Label.Ingredients}}"

Client's question: "{{.P.Label.Question}}"

Learner's response: "{{.S.Response}}"

Task:
1. Decide whether the product is high or low in fat, saturates, sugars and salt using the traffic-light thresholds, and whether it contains any allergen the question mentions.
2. Judge the response: did the learner read the label correctly, answer the question actually asked, and give safe, accurate advice?`),
}

func parse(name, body string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).Parse(body))
}

// promptData is what the module templates see.
type promptData struct {
	P   *scenario.Problem
	S   Submission
	Tol float64
}

// buildPrompt renders the user message for a problem and submission.
func buildPrompt(p *scenario.Problem, sub Submission) (string, error) {
	tmpl, ok := prompts[p.Module]
	if !ok {
		return "", fmt.Errorf("no grading prompt for %s", p.Module)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptData{P: p, S: sub, Tol: Tolerance(p.Module)}); err != nil {
		return "", fmt.Errorf("render %s prompt: %w", p.Module, err)
	}
	return buf.String(), nil
}
