package catalog

// NutritionFacts are the per-100 g values printed on a UK food label.
type NutritionFacts struct {
	EnergyKcal float64 `json:"energyKcal"`
	Fat        float64 `json:"fat"`
	Saturates  float64 `json:"saturates"`
	Carbs      float64 `json:"carbs"`
	Sugars     float64 `json:"sugars"`
	Protein    float64 `json:"protein"`
	Salt       float64 `json:"salt"`
}

// Product is a packaged food with the client questions it can prompt.
type Product struct {
	Name        string
	Nutrition   NutritionFacts
	Ingredients string
	Questions   []string
}

var products = []Product{
	{
		Name:        "Super-Crunch Granola",
		Nutrition:   NutritionFacts{EnergyKcal: 450, Fat: 18, Saturates: 4.5, Carbs: 65, Sugars: 22, Protein: 8, Salt: 0.05},
		Ingredients: "Oats (60%), Sugar, Vegetable Oil, Honey (4%), Dried Banana, Almonds, Natural Flavouring.",
		Questions: []string{
			"I'm trying to reduce my sugar intake. Is this a good breakfast option?",
			"Does this contain nuts? I have a mild allergy.",
			"Is this considered a low-fat food?",
		},
	},
	{
		Name:        "Creamy Tomato Soup",
		Nutrition:   NutritionFacts{EnergyKcal: 58, Fat: 3.5, Saturates: 0.4, Carbs: 5.2, Sugars: 3.8, Protein: 0.9, Salt: 0.7},
		Ingredients: "Water, Tomatoes (30%), Vegetable Oil, Sugar, Modified Cornflour, Salt, Dried Skimmed Milk, Spices.",
		Questions: []string{
			"I'm watching my salt intake for my blood pressure. Is this soup high in salt?",
			"I am vegan. Can I eat this soup?",
			"Is this a high protein meal?",
		},
	},
	{
		Name:        "Protein Power Bar",
		Nutrition:   NutritionFacts{EnergyKcal: 380, Fat: 14, Saturates: 9, Carbs: 35, Sugars: 28, Protein: 22, Salt: 0.3},
		Ingredients: "Milk Protein Blend, Milk Chocolate Coating (Sugar, Cocoa Butter, Whole Milk Powder), Caramel Layer, Palm Oil, Peanuts.",
		Questions: []string{
			"I want a low sugar snack. Is this suitable?",
			"Does this contain saturated fat?",
			"Is this gluten-free based on the ingredients?",
		},
	},
	{
		Name:        "Frozen Veggie Burger",
		Nutrition:   NutritionFacts{EnergyKcal: 180, Fat: 8, Saturates: 1.1, Carbs: 16, Sugars: 2, Protein: 12, Salt: 1.2},
		Ingredients: "Rehydrated Soya Protein (55%), Rapeseed Oil, Onion, Wheat Flour (Calcium Carbonate, Iron, Niacin, Thiamin), Salt, Yeast Extract.",
		Questions: []string{
			"I have Celiac disease (gluten intolerance). Is this safe?",
			"Is this high in saturated fat?",
			"What is the main ingredient in this burger?",
		},
	},
}

// Products returns a copy of the product catalog. Question slices are
// shared and must not be modified.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}
