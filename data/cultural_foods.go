package data

import "strings"

type CulturalFoodItem struct {
	Name                string   `json:"name"`
	Description         string   `json:"description"`
	Nutrients           []string `json:"nutrients"`
	SafeDuringPregnancy bool     `json:"safeDuringPregnancy"`
	Notes               string   `json:"notes,omitempty"`
	BudgetFriendly      bool     `json:"budgetFriendly"`
	Preparation         string   `json:"preparation"`
}

type CulturalFood struct {
	Culture string             `json:"culture"`
	Foods   []CulturalFoodItem `json:"foods"`
}

var CulturalFoods = []CulturalFood{
	{
		Culture: "Latin American",
		Foods: []CulturalFoodItem{
			{
				Name:                "Black Beans & Rice",
				Description:         "Traditional staple providing complete protein",
				Nutrients:           []string{"Iron", "Folate", "Protein", "Fiber"},
				SafeDuringPregnancy: true,
				Notes:               "Cook beans thoroughly. Avoid raw beans.",
				BudgetFriendly:      true,
				Preparation:         "Cook beans until soft, serve with rice and vegetables",
			},
			{
				Name:                "Plantains",
				Description:         "Rich in potassium and vitamin C",
				Nutrients:           []string{"Potassium", "Vitamin C", "Fiber"},
				SafeDuringPregnancy: true,
				Notes:               "Cook thoroughly - avoid raw plantains",
				BudgetFriendly:      true,
				Preparation:         "Fry or bake until soft and golden",
			},
			{
				Name:                "Avocado",
				Description:         "Healthy fats and folate",
				Nutrients:           []string{"Folate", "Healthy Fats", "Potassium"},
				SafeDuringPregnancy: true,
				BudgetFriendly:      true,
				Preparation:         "Eat fresh, add to salads or as a side",
			},
		},
	},
	{
		Culture: "East Asian (e.g. China, Japan, Korea)",
		Foods: []CulturalFoodItem{
			{
				Name:                "Tofu",
				Description:         "Plant-based protein and calcium source used across many East Asian cuisines",
				Nutrients:           []string{"Protein", "Calcium", "Iron"},
				SafeDuringPregnancy: true,
				Notes:               "Cook thoroughly. Avoid raw or unpasteurized tofu.",
				BudgetFriendly:      true,
				Preparation:         "Pan-fry, steam, or add to soups",
			},
			{
				Name:                "Steamed Rice",
				Description:         "Staple carbohydrate, easy to digest",
				Nutrients:           []string{"Carbohydrates", "B Vitamins"},
				SafeDuringPregnancy: true,
				BudgetFriendly:      true,
				Preparation:         "Steam or boil until soft",
			},
			{
				Name:                "Miso or Fermented Soups",
				Description:         "Fermented ingredients (miso, kimchi, etc.) can support gut health when prepared safely",
				Nutrients:           []string{"Probiotics", "B Vitamins"},
				SafeDuringPregnancy: true,
				Notes:               "Prefer pasteurized or cooked preparations; avoid unpasteurized products when unsure.",
				BudgetFriendly:      true,
				Preparation:         "Heat before eating to reduce risk from raw fermentation",
			},
		},
	},
	{
		Culture: "Southeast Asian (e.g. Thailand, Vietnam, Philippines)",
		Foods: []CulturalFoodItem{
			{
				Name:                "Rice and Noodle Dishes",
				Description:         "Staple dishes with vegetables and protein",
				Nutrients:           []string{"Carbohydrates", "B Vitamins", "Vegetable micronutrients"},
				SafeDuringPregnancy: true,
				BudgetFriendly:      true,
				Preparation:         "Cook rice/noodles with vegetables and cooked protein",
			},
			{
				Name:                "Cooked Fish & Seafood",
				Description:         "Good source of protein and omega-3s when cooked and low-mercury",
				Nutrients:           []string{"Protein", "Omega-3s", "Vitamin D"},
				SafeDuringPregnancy: true,
				Notes:               "Choose low-mercury fish and ensure fully cooked; avoid raw preparations.",
				BudgetFriendly:      false,
				Preparation:         "Grill, steam, or simmer until fully cooked",
			},
			{
				Name:                "Coconut in Cooking",
				Description:         "Used widely (milk, oil) in many islands and mainland cuisines—nutritious but not the only ingredient",
				Nutrients:           []string{"Healthy Fats", "Fiber"},
				SafeDuringPregnancy: true,
				Notes:               "Coconut is one ingredient among many; don't rely on a single food to represent a whole culture.",
				BudgetFriendly:      true,
				Preparation:         "Use coconut milk in curries, soups, or use fresh coconut in moderation",
			},
		},
	},
	{
		Culture: "South Asian (e.g. India, Pakistan, Bangladesh, Sri Lanka)",
		Foods: []CulturalFoodItem{
			{
				Name:                "Dal (Lentil Curry)",
				Description:         "Staple legume dish rich in protein and iron",
				Nutrients:           []string{"Protein", "Iron", "Folate", "Fiber"},
				SafeDuringPregnancy: true,
				Notes:               "Cook lentils until very soft",
				BudgetFriendly:      true,
				Preparation:         "Simmer lentils with spices, serve with rice or roti",
			},
			{
				Name:                "Chickpeas (Chana)",
				Description:         "Versatile plant protein used in many preparations",
				Nutrients:           []string{"Protein", "Iron", "Folate", "Fiber"},
				SafeDuringPregnancy: true,
				BudgetFriendly:      true,
				Preparation:         "Cook until soft, season with spices",
			},
			{
				Name:                "Yogurt (Dahi)",
				Description:         "Probiotics and calcium, commonly eaten or used in sauces",
				Nutrients:           []string{"Calcium", "Protein", "Probiotics"},
				SafeDuringPregnancy: true,
				Notes:               "Use pasteurized dairy products when possible",
				BudgetFriendly:      true,
				Preparation:         "Eat plain or as part of raita and chutneys",
			},
		},
	},
	{
		Culture: "African",
		Foods: []CulturalFoodItem{
			{
				Name:                "Lentils",
				Description:         "Excellent source of iron and protein",
				Nutrients:           []string{"Iron", "Protein", "Folate", "Fiber"},
				SafeDuringPregnancy: true,
				Notes:               "Cook until very soft",
				BudgetFriendly:      true,
				Preparation:         "Boil with spices, serve with rice or bread",
			},
			{
				Name:                "Collard Greens",
				Description:         "High in folate and calcium",
				Nutrients:           []string{"Folate", "Calcium", "Iron", "Vitamin K"},
				SafeDuringPregnancy: true,
				BudgetFriendly:      true,
				Preparation:         "Steam or boil until tender",
			},
			{
				Name:                "Sweet Potatoes",
				Description:         "Rich in beta-carotene and fiber",
				Nutrients:           []string{"Vitamin A", "Fiber", "Potassium"},
				SafeDuringPregnancy: true,
				BudgetFriendly:      true,
				Preparation:         "Bake, boil, or steam until soft",
			},
		},
	},
	{
		Culture: "Middle Eastern",
		Foods: []CulturalFoodItem{
			{
				Name:                "Hummus",
				Description:         "Chickpea-based dip, high in protein",
				Nutrients:           []string{"Protein", "Fiber", "Iron"},
				SafeDuringPregnancy: true,
				Notes:               "Ensure fresh, avoid if left out too long",
				BudgetFriendly:      true,
				Preparation:         "Blend chickpeas with tahini, lemon, and garlic",
			},
			{
				Name:                "Falafel",
				Description:         "Chickpea fritters, protein-rich",
				Nutrients:           []string{"Protein", "Iron", "Fiber"},
				SafeDuringPregnancy: true,
				Notes:               "Cook thoroughly - ensure fully cooked inside",
				BudgetFriendly:      true,
				Preparation:         "Deep fry or bake until golden and cooked through",
			},
			{
				Name:                "Lentil Soup",
				Description:         "Comforting, nutrient-dense soup",
				Nutrients:           []string{"Iron", "Protein", "Folate"},
				SafeDuringPregnancy: true,
				BudgetFriendly:      true,
				Preparation:         "Simmer lentils with vegetables and spices",
			},
		},
	},
	{
		Culture: "Caribbean",
		Foods: []CulturalFoodItem{
			{
				Name:                "Callaloo",
				Description:         "Leafy green high in iron and folate",
				Nutrients:           []string{"Iron", "Folate", "Calcium", "Vitamin A"},
				SafeDuringPregnancy: true,
				BudgetFriendly:      true,
				Preparation:         "Steam or sauté until tender",
			},
			{
				Name:                "Ackee",
				Description:         "Fruit high in healthy fats",
				Nutrients:           []string{"Healthy Fats", "Vitamin C"},
				SafeDuringPregnancy: true,
				Notes:               "Must be fully ripe and cooked - unripe ackee is toxic",
				BudgetFriendly:      true,
				Preparation:         "Cook thoroughly with saltfish or vegetables",
			},
			{
				Name:                "Rice and Peas",
				Description:         "Staple side dish made with rice and beans/peas, often cooked in coconut milk",
				Nutrients:           []string{"Carbohydrates", "Protein", "Fiber", "Healthy Fats (if coconut used)"},
				SafeDuringPregnancy: true,
				BudgetFriendly:      true,
				Preparation:         "Simmer rice with kidney beans/peas, coconut milk, and spices",
			},
			{
				Name:                "Jerk Chicken (or Jerk Tofu)",
				Description:         "Spiced, cooked protein rich in flavor—use lean cuts and fully cook",
				Nutrients:           []string{"Protein", "B Vitamins"},
				SafeDuringPregnancy: true,
				Notes:               "Ensure meat is fully cooked; choose less spicy options if needed",
				BudgetFriendly:      false,
				Preparation:         "Marinate and grill or bake until fully cooked",
			},
		},
	},
}

// CulturalFoodsByCulture matches a culture name by substring, case-insensitive.
func CulturalFoodsByCulture(culture string) *CulturalFood {
	q := strings.ToLower(culture)
	for i := range CulturalFoods {
		if strings.Contains(strings.ToLower(CulturalFoods[i].Culture), q) {
			return &CulturalFoods[i]
		}
	}
	return nil
}

func AllCultures() []string {
	out := make([]string, 0, len(CulturalFoods))
	for _, cf := range CulturalFoods {
		out = append(out, cf.Culture)
	}
	return out
}
