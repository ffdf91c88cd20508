package nutrition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fit-planner/internal/nutrition"
)

func TestDayMeals(t *testing.T) {
	meals := nutrition.DayMeals(nutrition.DietVeg)

	require.Len(t, meals, 4)
	assert.Equal(t, "Breakfast", meals[0].Slot)
	assert.Equal(t, "Soya Chunks Stir Fry", meals[3].Name)

	calories, protein := nutrition.Totals(meals)
	assert.Equal(t, 1850, calories)
	assert.Equal(t, 100, protein)
}

func TestDayMeals_UnknownFallsBack(t *testing.T) {
	assert.Equal(t, nutrition.DayMeals(nutrition.DietNonVeg), nutrition.DayMeals("Keto"))
}

func TestLowCostAdjustment(t *testing.T) {
	adj, ok := nutrition.LowCostAdjustment(nutrition.DietVeg, nutrition.BudgetLowCost)
	require.True(t, ok)
	assert.Equal(t, "Bulk buy rice/dal", adj.Save)

	_, ok = nutrition.LowCostAdjustment(nutrition.DietVeg, nutrition.BudgetNormal)
	assert.False(t, ok)

	_, ok = nutrition.LowCostAdjustment(nutrition.DietEgg, nutrition.BudgetLowCost)
	assert.False(t, ok)
}
