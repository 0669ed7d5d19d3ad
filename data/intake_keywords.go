package data

// Keyword lists for the intake quality heuristic. These are product data,
// not logic: revise the lists here, never the scoring code.
var (
	HealthyKeywords = []string{
		"salmon", "tofu", "lentil", "dal", "bean", "beans",
		"vegetable", "vegetables", "spinach", "kale", "oatmeal",
		"avocado", "egg", "yogurt", "chickpea", "chana",
		"rice and peas", "rice",
	}

	UnhealthyKeywords = []string{
		"soda", "chips", "fried", "ice cream", "candy",
		"hot cheetos", "pizza",
	}
)
