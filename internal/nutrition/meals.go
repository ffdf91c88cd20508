package nutrition

// Meal is one entry of a daily meal template.
type Meal struct {
	Slot        string
	Name        string
	Calories    int
	Protein     int
	Ingredients []string
}

// Adjustment is a cost-saving hint for a diet type.
type Adjustment struct {
	Swap string
	Save string
}

const (
	DietVeg    = "Veg"
	DietEgg    = "Egg"
	DietNonVeg = "Non-veg"

	BudgetNormal  = "Normal"
	BudgetLowCost = "Low Cost"
)

var templates = map[string][]Meal{
	DietNonVeg: {
		{Slot: "Breakfast", Name: "Eggs & Toast", Calories: 500, Protein: 25, Ingredients: []string{"3 Eggs", "2 Brown Bread", "Butter"}},
		{Slot: "Lunch", Name: "Chicken Curry & Rice", Calories: 700, Protein: 40, Ingredients: []string{"Chicken Breast 150g", "Rice 1 cup", "Veg Salad"}},
		{Slot: "Snack", Name: "Protein Shake & Fruit", Calories: 250, Protein: 25, Ingredients: []string{"Whey Scoop", "Apple"}},
		{Slot: "Dinner", Name: "Fish/Chicken & Veggies", Calories: 500, Protein: 35, Ingredients: []string{"Fish/Chicken 150g", "Mixed Veggies", "1 Roti"}},
	},
	DietEgg: {
		{Slot: "Breakfast", Name: "Omelette & Oats", Calories: 500, Protein: 20, Ingredients: []string{"3 Eggs", "Oats 50g", "Milk"}},
		{Slot: "Lunch", Name: "Egg Curry & Roti", Calories: 650, Protein: 25, Ingredients: []string{"3 Boiled Eggs", "2 Roti", "Salad"}},
		{Slot: "Snack", Name: "Boiled Eggs & Nuts", Calories: 300, Protein: 18, Ingredients: []string{"3 Egg Whites", "Almonds"}},
		{Slot: "Dinner", Name: "Paneer/Egg Bhurji", Calories: 500, Protein: 25, Ingredients: []string{"Paneer/Eggs", "Veggies", "1 Roti"}},
	},
	DietVeg: {
		{Slot: "Breakfast", Name: "Paneer Sandwich / Sprouts", Calories: 450, Protein: 20, Ingredients: []string{"Paneer 100g", "Bread", "Sprouts"}},
		{Slot: "Lunch", Name: "Dal, Paneer & Rice", Calories: 700, Protein: 25, Ingredients: []string{"Dal 1 bowl", "Paneer 100g", "Rice"}},
		{Slot: "Snack", Name: "Greek Yogurt / Whey", Calories: 250, Protein: 25, Ingredients: []string{"Yogurt/Whey", "Berries"}},
		{Slot: "Dinner", Name: "Soya Chunks Stir Fry", Calories: 450, Protein: 30, Ingredients: []string{"Soya Chunks 50g", "Veggies", "Olive Oil"}},
	},
}

var lowCost = map[string]Adjustment{
	DietNonVeg: {Swap: "Chicken -> Eggs/Soya", Save: "Buy seasonal veg"},
	DietVeg:    {Swap: "Paneer -> Soya Chunks/Lentils", Save: "Bulk buy rice/dal"},
}

// DayMeals returns the meal template for dietType, falling back to Non-veg.
func DayMeals(dietType string) []Meal {
	meals, ok := templates[dietType]
	if !ok {
		meals = templates[DietNonVeg]
	}
	out := make([]Meal, len(meals))
	for i, m := range meals {
		m.Ingredients = append([]string(nil), m.Ingredients...)
		out[i] = m
	}
	return out
}

// LowCostAdjustment returns the saving hint when the budget asks for one.
func LowCostAdjustment(dietType, budget string) (Adjustment, bool) {
	if budget != BudgetLowCost {
		return Adjustment{}, false
	}
	adj, ok := lowCost[dietType]
	return adj, ok
}

// Totals sums calories and protein over meals.
func Totals(meals []Meal) (calories, protein int) {
	for _, m := range meals {
		calories += m.Calories
		protein += m.Protein
	}
	return calories, protein
}
