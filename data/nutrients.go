package data

// Nutrient is one tracked pregnancy nutrient with its daily target.
type Nutrient struct {
	Name            string   `json:"name"`
	RDA             string   `json:"rda"`
	Target          float64  `json:"target"`
	Unit            string   `json:"unit"`
	Importance      string   `json:"importance"`
	BudgetSources   []string `json:"budgetSources"`
	DeficiencySigns []string `json:"deficiencySigns"`
}

var Nutrients = []Nutrient{
	{
		Name:            "Folate",
		RDA:             "600 mcg/day",
		Target:          600,
		Unit:            "mcg",
		Importance:      "Prevents neural tube defects, essential for DNA synthesis",
		BudgetSources:   []string{"Lentils ($1.50/lb)", "Spinach ($2/bag)", "Fortified cereals ($3/box)", "Black beans ($1/can)"},
		DeficiencySigns: []string{"Neural tube defects risk", "Anemia", "Fatigue"},
	},
	{
		Name:            "Iron",
		RDA:             "27 mg/day",
		Target:          27,
		Unit:            "mg",
		Importance:      "Prevents anemia, supports baby's growth and brain development",
		BudgetSources:   []string{"Canned beans ($1/can)", "Spinach ($2/bag)", "Lentils ($1.50/lb)", "Fortified oatmeal ($3/box)"},
		DeficiencySigns: []string{"Fatigue", "Pale skin", "Shortness of breath", "Dizziness"},
	},
	{
		Name:            "Calcium",
		RDA:             "1000 mg/day",
		Target:          1000,
		Unit:            "mg",
		Importance:      "Builds baby's bones and teeth, maintains your bone health",
		BudgetSources:   []string{"Milk ($3/gallon)", "Yogurt ($1/cup)", "Canned sardines ($2/can)", "Fortified tofu ($2/block)"},
		DeficiencySigns: []string{"Bone loss", "Muscle cramps", "Weak teeth"},
	},
	{
		Name:            "Vitamin D",
		RDA:             "600 IU/day",
		Target:          600,
		Unit:            "IU",
		Importance:      "Helps absorb calcium, supports immune system",
		BudgetSources:   []string{"Sunlight (free!)", "Fortified milk ($3/gallon)", "Eggs ($2/dozen)", "Canned salmon ($3/can)"},
		DeficiencySigns: []string{"Weak bones", "Low mood", "Fatigue"},
	},
	{
		Name:            "DHA (Omega-3)",
		RDA:             "200-300 mg/day",
		Target:          250,
		Unit:            "mg",
		Importance:      "Critical for baby's brain and eye development",
		BudgetSources:   []string{"Canned salmon ($3/can)", "Sardines ($2/can)", "Walnuts ($4/lb)", "Chia seeds ($5/bag)"},
		DeficiencySigns: []string{"Poor brain development", "Vision issues"},
	},
	{
		Name:            "Protein",
		RDA:             "71 g/day",
		Target:          71,
		Unit:            "g",
		Importance:      "Builds baby's tissues, muscles, and organs",
		BudgetSources:   []string{"Eggs ($2/dozen)", "Beans ($1/can)", "Lentils ($1.50/lb)", "Greek yogurt ($1/cup)"},
		DeficiencySigns: []string{"Slow growth", "Weakness", "Edema"},
	},
	{
		Name:            "Choline",
		RDA:             "450 mg/day",
		Target:          450,
		Unit:            "mg",
		Importance:      "Supports brain development and prevents birth defects",
		BudgetSources:   []string{"Eggs ($2/dozen)", "Chicken ($3/lb)", "Beans ($1/can)", "Broccoli ($2/bunch)"},
		DeficiencySigns: []string{"Neural tube defects risk", "Memory issues"},
	},
	{
		Name:            "Vitamin C",
		RDA:             "85 mg/day",
		Target:          85,
		Unit:            "mg",
		Importance:      "Helps absorb iron, supports immune system",
		BudgetSources:   []string{"Oranges ($3/bag)", "Bell peppers ($2/lb)", "Broccoli ($2/bunch)", "Tomatoes ($2/lb)"},
		DeficiencySigns: []string{"Poor iron absorption", "Weak immune system"},
	},
}
