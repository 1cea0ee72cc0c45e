package scenario

import (
	"fmt"
	"math"

	"github.com/abhisek/nutriz/internal/calc"
	"github.com/abhisek/nutriz/internal/catalog"
	"github.com/abhisek/nutriz/internal/sampler"
)

var (
	changeWeight  = catalog.Range{Min: 65, Max: 95}
	changeBodyFat = catalog.Range{Min: 20, Max: 35}

	recompDrop = catalog.Range{Min: 3, Max: 8}
	cutLoss    = catalog.Range{Min: 4, Max: 10}
	cutDrop    = catalog.Range{Min: 2, Max: 5}
	bulkGain   = catalog.Range{Min: 3, Max: 8}
)

var archetypes = []Archetype{Recomposition, Cut, Bulk}

// Option feedback shown after the learner answers.
const (
	feedbackCorrect   = "Correct! You accurately calculated the change in both Fat Mass and Fat-Free Mass."
	feedbackSwapped   = "Incorrect. It looks like you swapped the values for Fat Mass and Fat-Free Mass."
	feedbackFlipped   = "Incorrect. Check the direction of change (Gain vs Loss) for the Fat-Free Mass."
	feedbackAllFat    = "Incorrect. Weight change is rarely just one component. You need to calculate FM and FFM separately."
	feedbackAlternate = "Incorrect. Recalculate Fat Mass and Fat-Free Mass at both time points, then subtract initial from final."
)

// GenerateCompositionChange draws the initial weight and body fat, the
// archetype (one draw over thirds), the archetype's deltas, the option
// shuffle and finally the id.
func GenerateCompositionChange(s sampler.Sampler) *Problem {
	w := between(s, changeWeight)
	bf := between(s, changeBodyFat)
	arch := archetypes[s.Int(0, len(archetypes)-1)]

	fw, fbf := w, bf
	switch arch {
	case Recomposition:
		fbf = bf - between(s, recompDrop)
	case Cut:
		fw = w - between(s, cutLoss)
		fbf = bf - between(s, cutDrop)
	case Bulk:
		fw = w + between(s, bulkGain)
	}

	initial := calc.Measurement{Mass: float64(w), BodyFat: float64(bf)}
	final := calc.Measurement{Mass: float64(fw), BodyFat: float64(fbf)}
	options, breakdown := AnswerKey(initial, final)
	Shuffle(s, options)

	return &Problem{
		Module:     CompositionChange,
		Difficulty: catalog.Medium,
		Change: &ChangeContext{
			Initial:   initial,
			Final:     final,
			Archetype: arch,
			Options:   options,
			Breakdown: breakdown,
		},
		ID: newID(s),
	}
}

// AnswerKey derives the unshuffled options and the worked breakdown from
// the two measurements alone.
func AnswerKey(initial, final calc.Measurement) ([]Option, Breakdown) {
	ch := calc.AnalyzeChange(initial, final).Rounded()
	return BuildOptions(ch.DeltaFM, ch.DeltaFFM, final.Mass-initial.Mass), Breakdown{
		InitialFM:  ch.Initial.FatMass,
		InitialFFM: ch.Initial.FatFreeMass,
		FinalFM:    ch.Final.FatMass,
		FinalFFM:   ch.Final.FatFreeMass,
		DeltaFM:    ch.DeltaFM,
		DeltaFFM:   ch.DeltaFFM,
	}
}

const (
	fatMass     = "Fat Mass"
	fatFreeMass = "Fat-Free Mass"
)

// phrase renders one component's change, e.g. "lost 2.3kg of Fat Mass".
func phrase(component string, delta float64) string {
	dir := calc.DirectionOf(delta)
	if dir == calc.Maintained {
		return "maintained their " + component
	}
	return directed(component, dir, math.Abs(delta))
}

func directed(component string, dir calc.Direction, magnitude float64) string {
	return fmt.Sprintf("%s %.1fkg of %s", dir, magnitude, component)
}

func statement(fm, ffm string) string {
	return "The client " + fm + " and " + ffm + "."
}

// BuildOptions returns the four options for the given rounded deltas in
// a fixed order: correct, swapped, FFM direction flipped, all fat. Any
// distractor that collides with an earlier option is replaced with an
// alternate wrong statement so all four texts are distinct.
func BuildOptions(deltaFM, deltaFFM, deltaMass float64) []Option {
	correct := statement(phrase(fatMass, deltaFM), phrase(fatFreeMass, deltaFFM))
	swapped := statement(phrase(fatMass, deltaFFM), phrase(fatFreeMass, deltaFM))

	var flippedFFM string
	if dir := calc.DirectionOf(deltaFFM); dir == calc.Maintained {
		// No direction to flip; claim the FFM moved with the whole mass.
		mag := math.Abs(deltaMass)
		if mag < calc.MaintainedThreshold {
			mag = math.Abs(deltaFM)
		}
		flippedFFM = directed(fatFreeMass, calc.DirectionOf(deltaFM).Opposite(), mag)
	} else {
		flippedFFM = directed(fatFreeMass, dir.Opposite(), math.Abs(deltaFFM))
	}
	flipped := statement(phrase(fatMass, deltaFM), flippedFFM)

	var allFat string
	if calc.DirectionOf(deltaMass) == calc.Maintained {
		allFat = "The client's body weight did not change, so their Fat Mass did not change either."
	} else {
		allFat = fmt.Sprintf("The client %s %.1fkg of body weight, which consisted entirely of changes in Fat Mass.",
			calc.DirectionOf(deltaMass), math.Abs(deltaMass))
	}

	alternates := []string{
		statement(phrase(fatMass, -deltaFM), phrase(fatFreeMass, deltaFFM)),
		"The client maintained both their Fat Mass and their Fat-Free Mass.",
		statement(phrase(fatMass, -deltaFM), phrase(fatFreeMass, -deltaFFM)),
	}

	options := []Option{
		{Text: correct, Correct: true, Kind: KindCorrect, Feedback: feedbackCorrect},
		{Text: swapped, Kind: KindSwapped, Feedback: feedbackSwapped},
		{Text: flipped, Kind: KindFlipped, Feedback: feedbackFlipped},
		{Text: allFat, Kind: KindAllFat, Feedback: feedbackAllFat},
	}

	seen := map[string]bool{}
	for i := range options {
		if seen[options[i].Text] {
			for _, alt := range alternates {
				if !seen[alt] {
					options[i].Text = alt
					options[i].Kind = KindAlternate
					options[i].Feedback = feedbackAlternate
					break
				}
			}
		}
		seen[options[i].Text] = true
		options[i].ID = fmt.Sprintf("opt%d", i+1)
	}
	return options
}

// Shuffle permutes options in place with Fisher-Yates driven by s.
func Shuffle(s sampler.Sampler, options []Option) {
	for i := len(options) - 1; i > 0; i-- {
		j := s.Int(0, i)
		options[i], options[j] = options[j], options[i]
	}
}
