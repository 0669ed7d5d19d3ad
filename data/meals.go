package data

// MealSuggestion is a budget-oriented meal from the static suggestion catalog.
type MealSuggestion struct {
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	Ingredients     []string           `json:"ingredients"`
	TimeMinutes     int                `json:"timeMinutes"`
	WhyGood         string             `json:"whyGood"`
	Cost            string             `json:"cost"`
	Nutrients       []string           `json:"nutrients"`
	NutrientAmounts map[string]float64 `json:"nutrientAmounts,omitempty"`
	Calories        float64            `json:"calories,omitempty"`
	CookingMethod   string             `json:"cookingMethod"`
}

var MealSuggestions = []MealSuggestion{
	{
		Name:            "Iron Boost Rice Bowl",
		Description:     "Quick, filling, and packed with iron",
		Ingredients:     []string{"Microwave rice ($1)", "Canned beans ($1)", "Lime or orange ($0.50)"},
		TimeMinutes:     5,
		WhyGood:         "Beans provide iron, citrus adds vitamin C to boost absorption",
		Cost:            "$2.50",
		Nutrients:       []string{"Iron", "Protein", "Vitamin C"},
		NutrientAmounts: map[string]float64{"Iron": 6, "Protein": 10, "Vitamin C": 30},
		Calories:        420,
		CookingMethod:   "microwave",
	},
	{
		Name:            "Greek Yogurt Parfait",
		Description:     "Calcium and protein powerhouse",
		Ingredients:     []string{"Greek yogurt ($1)", "Frozen berries ($2)", "Granola ($1)"},
		TimeMinutes:     2,
		WhyGood:         "High in calcium, protein, and antioxidants",
		Cost:            "$4",
		Nutrients:       []string{"Calcium", "Protein", "Vitamin C"},
		NutrientAmounts: map[string]float64{"Calcium": 200, "Protein": 15, "Vitamin C": 10},
		Calories:        300,
		CookingMethod:   "no-cook",
	},
	{
		Name:            "Egg Scramble with Spinach",
		Description:     "Quick protein and folate boost",
		Ingredients:     []string{"2 eggs ($0.33)", "Frozen spinach ($1)", "Whole wheat toast ($0.50)"},
		TimeMinutes:     10,
		WhyGood:         "Eggs provide choline and protein, spinach adds folate and iron",
		Cost:            "$1.83",
		Nutrients:       []string{"Protein", "Folate", "Iron", "Choline"},
		NutrientAmounts: map[string]float64{"Protein": 12, "Folate": 80, "Iron": 2, "Choline": 150},
		Calories:        260,
		CookingMethod:   "stovetop",
	},
	{
		Name:            "Lentil Soup",
		Description:     "Budget-friendly iron and protein",
		Ingredients:     []string{"Lentils ($1.50)", "Canned tomatoes ($1)", "Onion ($0.50)"},
		TimeMinutes:     15,
		WhyGood:         "Lentils are rich in iron, folate, and protein - perfect for pregnancy",
		Cost:            "$3",
		Nutrients:       []string{"Iron", "Folate", "Protein"},
		NutrientAmounts: map[string]float64{"Iron": 5, "Folate": 150, "Protein": 12},
		Calories:        220,
		CookingMethod:   "stovetop",
	},
	{
		Name:            "Canned Salmon Salad",
		Description:     "Omega-3 for baby's brain development",
		Ingredients:     []string{"Canned salmon ($3)", "Lettuce ($1)", "Lemon ($0.50)"},
		TimeMinutes:     5,
		WhyGood:         "Salmon provides DHA (omega-3) critical for brain development",
		Cost:            "$4.50",
		Nutrients:       []string{"DHA", "Protein", "Vitamin D"},
		NutrientAmounts: map[string]float64{"DHA": 250, "Protein": 20, "Vitamin D": 200},
		Calories:        360,
		CookingMethod:   "no-cook",
	},
	{
		Name:            "Oatmeal with Walnuts",
		Description:     "Fiber, iron, and omega-3",
		Ingredients:     []string{"Oatmeal ($0.50)", "Walnuts ($1)", "Banana ($0.30)"},
		TimeMinutes:     5,
		WhyGood:         "Iron-fortified oatmeal plus omega-3 from walnuts",
		Cost:            "$1.80",
		Nutrients:       []string{"Iron", "Fiber", "DHA"},
		NutrientAmounts: map[string]float64{"Iron": 4, "Fiber": 6, "DHA": 100},
		Calories:        320,
		CookingMethod:   "microwave",
	},
	{
		Name:            "Bean and Cheese Quesadilla",
		Description:     "Protein, calcium, and iron combo",
		Ingredients:     []string{"Tortilla ($0.25)", "Canned beans ($1)", "Cheese ($0.75)"},
		TimeMinutes:     8,
		WhyGood:         "Complete protein from beans and cheese, plus calcium",
		Cost:            "$2",
		Nutrients:       []string{"Protein", "Calcium", "Iron"},
		NutrientAmounts: map[string]float64{"Protein": 14, "Calcium": 200, "Iron": 3},
		Calories:        480,
		CookingMethod:   "microwave",
	},
}

// MealFilters narrows the suggestion catalog. Zero values match everything.
type MealFilters struct {
	CookingMethod string
	Nutrients     []string
}

// GetMealSuggestions filters the catalog and caps the result at five meals.
func GetMealSuggestions(filters MealFilters) []MealSuggestion {
	out := make([]MealSuggestion, 0, len(MealSuggestions))
	for _, m := range MealSuggestions {
		if filters.CookingMethod != "" && m.CookingMethod != filters.CookingMethod && m.CookingMethod != "any" {
			continue
		}
		if len(filters.Nutrients) > 0 && !containsAny(m.Nutrients, filters.Nutrients) {
			continue
		}
		out = append(out, m)
	}
	if len(out) > 5 {
		out = out[:5]
	}
	return out
}

func containsAny(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}
