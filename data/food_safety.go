package data

import "strings"

// FoodSafetyItem is one entry from the pregnancy food safety guide.
type FoodSafetyItem struct {
	Name        string   `json:"name"`
	Category    string   `json:"category"` // "avoid" | "limit" | "safe"
	Safe        bool     `json:"safe"`
	RiskLevel   string   `json:"riskLevel"` // "high" | "medium" | "low" | "none"
	Why         string   `json:"why"`
	ServingSize string   `json:"servingSize,omitempty"`
	SaferSwaps  []string `json:"saferSwaps"`
	Sources     []string `json:"sources"`
}

var FoodSafetyDatabase = []FoodSafetyItem{
	{
		Name:       "Raw fish / Sushi",
		Category:   "avoid",
		Safe:       false,
		RiskLevel:  "high",
		Why:        "May contain parasites and bacteria (listeria) that can harm your baby",
		SaferSwaps: []string{"Cooked fish", "Canned salmon", "Cooked shrimp"},
		Sources:    []string{"ACOG", "CDC"},
	},
	{
		Name:       "Raw eggs",
		Category:   "avoid",
		Safe:       false,
		RiskLevel:  "high",
		Why:        "Risk of salmonella infection",
		SaferSwaps: []string{"Cooked eggs", "Pasteurized egg products"},
		Sources:    []string{"CDC", "FDA"},
	},
	{
		Name:       "Unpasteurized dairy",
		Category:   "avoid",
		Safe:       false,
		RiskLevel:  "high",
		Why:        "May contain listeria, which can cause miscarriage",
		SaferSwaps: []string{"Pasteurized milk", "Pasteurized cheese", "Greek yogurt"},
		Sources:    []string{"ACOG", "CDC"},
	},
	{
		Name:        "Deli meats",
		Category:    "avoid",
		Safe:        false,
		RiskLevel:   "high",
		Why:         "Risk of listeria unless heated to steaming hot",
		ServingSize: "Safe if heated to 165°F",
		SaferSwaps:  []string{"Heated deli meats", "Freshly cooked meats"},
		Sources:     []string{"ACOG", "CDC"},
	},
	{
		Name:        "Hot Cheetos",
		Category:    "limit",
		Safe:        true,
		RiskLevel:   "low",
		Why:         "High sodium can cause swelling, but safe in moderation",
		ServingSize: "1 small bag (1-2x/week max)",
		SaferSwaps:  []string{"Baked chips", "Carrots with hummus", "Popcorn"},
		Sources:     []string{"ACOG"},
	},
	{
		Name:        "Ice cream",
		Category:    "safe",
		Safe:        true,
		RiskLevel:   "low",
		Why:         "Safe if made with pasteurized ingredients",
		ServingSize: "1/2 cup serving",
		SaferSwaps:  []string{"Frozen yogurt with fruit", "Greek yogurt with berries"},
		Sources:     []string{"FDA"},
	},
	{
		Name:        "Caffeine",
		Category:    "limit",
		Safe:        true,
		RiskLevel:   "low",
		Why:         "High amounts may increase miscarriage risk",
		ServingSize: "<200 mg/day (1-2 cups coffee)",
		SaferSwaps:  []string{"Decaf coffee", "Herbal tea", "Water"},
		Sources:     []string{"ACOG", "WHO"},
	},
	{
		Name:        "Tuna",
		Category:    "limit",
		Safe:        true,
		RiskLevel:   "medium",
		Why:         "Contains mercury - limit to protect baby's nervous system",
		ServingSize: "1 serving/week (6 oz)",
		SaferSwaps:  []string{"Canned salmon", "Sardines", "Shrimp"},
		Sources:     []string{"FDA", "EPA"},
	},
	{
		Name:       "Kombucha",
		Category:   "avoid",
		Safe:       false,
		RiskLevel:  "medium",
		Why:        "Contains trace amounts of alcohol and unpasteurized bacteria",
		SaferSwaps: []string{"Sparkling water", "Herbal tea", "Water with lemon"},
		Sources:    []string{"ACOG"},
	},
	{
		Name:       "Soft cheeses (brie, feta)",
		Category:   "avoid",
		Safe:       false,
		RiskLevel:  "high",
		Why:        "May contain listeria if unpasteurized",
		SaferSwaps: []string{"Pasteurized soft cheeses", "Hard cheeses (cheddar, swiss)"},
		Sources:    []string{"ACOG", "CDC"},
	},
	{
		Name:       "Raw sprouts",
		Category:   "avoid",
		Safe:       false,
		RiskLevel:  "high",
		Why:        "High risk of salmonella and E. coli",
		SaferSwaps: []string{"Cooked sprouts", "Lettuce", "Spinach"},
		Sources:    []string{"CDC", "FDA"},
	},
	{
		Name:       "Alcohol",
		Category:   "avoid",
		Safe:       false,
		RiskLevel:  "high",
		Why:        "No safe amount during pregnancy - can cause birth defects",
		SaferSwaps: []string{"Sparkling water", "Mocktails", "Juice"},
		Sources:    []string{"ACOG", "CDC", "WHO"},
	},
}

// SearchFoodSafety returns the first entry whose name contains the query,
// case-insensitive, or nil when nothing matches.
func SearchFoodSafety(query string) *FoodSafetyItem {
	q := strings.ToLower(query)
	for i := range FoodSafetyDatabase {
		if strings.Contains(strings.ToLower(FoodSafetyDatabase[i].Name), q) {
			return &FoodSafetyDatabase[i]
		}
	}
	return nil
}
