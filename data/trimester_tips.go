package data

// TrimesterTip bundles the guidance shown on the trimester pages.
type TrimesterTip struct {
	Trimester    int      `json:"trimester"`
	Focus        string   `json:"focus"`
	Calories     string   `json:"calories"`
	KeyNutrients []string `json:"keyNutrients"`
	Tips         []string `json:"tips"`
	Avoid        []string `json:"avoid"`
}

var TrimesterTips = []TrimesterTip{
	{
		Trimester:    1,
		Focus:        "Folate and nausea management",
		Calories:     "No extra calories needed",
		KeyNutrients: []string{"Folate", "Iron", "Vitamin B6"},
		Tips: []string{
			"Eat crackers before getting out of bed to reduce morning sickness",
			"Cold foods reduce smell sensitivity - try smoothies, yogurt, cold sandwiches",
			"Small, frequent meals (6-8 per day) help with nausea",
			"Ginger tea or ginger candies can ease nausea",
			"Stay hydrated - sip water throughout the day",
			"Avoid strong smells - ask for help with cooking if needed",
		},
		Avoid: []string{
			"Raw fish and sushi",
			"Unpasteurized dairy",
			"Alcohol",
			"High-mercury fish",
		},
	},
	{
		Trimester:    2,
		Focus:        "Iron peaks and energy boost",
		Calories:     "+340 calories/day",
		KeyNutrients: []string{"Iron", "Calcium", "Protein", "DHA"},
		Tips: []string{
			"Add iron-rich foods: beans, lentils, spinach, fortified cereals",
			"Pair iron foods with vitamin C (oranges, bell peppers) for better absorption",
			"This is your energy peak - great time for light exercise",
			"Baby is growing fast - prioritize protein and calcium",
			"Drink plenty of water to prevent constipation",
			"Start taking prenatal vitamins if you haven't already",
		},
		Avoid: []string{
			"Raw or undercooked meats",
			"Unpasteurized cheeses",
			"Excessive caffeine (>200mg/day)",
			"High-mercury fish (shark, swordfish)",
		},
	},
	{
		Trimester:    3,
		Focus:        "Omega-3, calcium, and preparation",
		Calories:     "+450 calories/day",
		KeyNutrients: []string{"DHA (Omega-3)", "Calcium", "Magnesium", "Protein"},
		Tips: []string{
			"Omega-3 is critical now for baby's brain development - eat salmon, walnuts, chia seeds",
			"Calcium needs peak - aim for 3-4 servings of dairy or fortified alternatives",
			"Smaller, more frequent meals help with heartburn and digestion",
			"Stay hydrated to reduce swelling - aim for 8-10 cups water/day",
			"Light exercise helps with sleep and circulation",
			"Avoid lying flat on your back after 20 weeks",
			"Eat fiber-rich foods to prevent constipation",
		},
		Avoid: []string{
			"Large meals (causes heartburn)",
			"Spicy foods if you have heartburn",
			"Lying flat after eating",
			"Raw or undercooked foods",
		},
	},
}

// TipsForTrimester returns the tip sheet for trimester 1-3, or nil.
func TipsForTrimester(trimester int) *TrimesterTip {
	for i := range TrimesterTips {
		if TrimesterTips[i].Trimester == trimester {
			return &TrimesterTips[i]
		}
	}
	return nil
}
