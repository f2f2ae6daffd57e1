package recipe

import (
	"cook-connect/internal/core/ingredient"
)

const (
	// 步驟未指定時間時的預設分鐘數
	defaultStepTime = 5

	customDishName     = "Custom Dish"
	customDishCalories = 220
	customDishStepTime = 10
)

// Assemble 解析選定（或最佳配對）的食譜成統一的響應形狀。
// 名稱查不到或未指定時退回最佳配對；仍無結果時合成最小的預設食譜。
func (c *Catalog) Assemble(selectedName string, userIngredients []string) AssembledRecipe {
	normalized := ingredient.Normalize(userIngredients)

	var r *Recipe
	if selectedName != "" {
		r = c.FindByName(selectedName)
	}
	if r == nil {
		r = c.FindBest(ingredient.NormalizeSet(userIngredients))
	}

	if r == nil {
		t := customDishStepTime
		r = &Recipe{
			Name:        customDishName,
			Ingredients: normalized,
			Calories:    customDishCalories,
			Difficulty:  "Easy",
			Steps:       []Step{NewStep("Cook everything well", &t)},
		}
	}

	// 只投影結構化步驟，缺少時間的補預設值
	steps := make([]AssembledStep, 0, len(r.Steps))
	totalTime := 0
	for _, s := range r.Steps {
		if !s.wellFormed {
			continue
		}
		t := defaultStepTime
		if s.Time != nil {
			t = *s.Time
		}
		steps = append(steps, AssembledStep{Description: s.Text, Time: t})
		totalTime += t
	}

	return AssembledRecipe{
		Name:        r.Name,
		Ingredients: r.Ingredients,
		Calories:    r.Calories,
		Difficulty:  r.Difficulty,
		Steps:       steps,
		TotalTime:   totalTime,
	}
}
