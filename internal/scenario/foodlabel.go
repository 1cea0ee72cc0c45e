package scenario

import (
	"github.com/abhisek/nutriz/internal/catalog"
	"github.com/abhisek/nutriz/internal/sampler"
)

// GenerateFoodLabel picks a product then one of its client questions.
func GenerateFoodLabel(s sampler.Sampler) *Problem {
	products := catalog.Products()
	p := products[sampler.Pick(s, len(products))]
	q := p.Questions[sampler.Pick(s, len(p.Questions))]
	return &Problem{
		Module:     FoodLabels,
		Difficulty: catalog.Medium,
		Label: &LabelContext{
			ProductName: p.Name,
			Nutrition:   p.Nutrition,
			Ingredients: p.Ingredients,
			Question:    q,
			Ratings:     p.Nutrition.Ratings(),
		},
		ID: newID(s),
	}
}
