package memory

// Summary 記憶集合的彙總統計
type Summary struct {
	TotalCalories    int      `json:"totalCalories"`
	TotalRecipes     int      `json:"totalRecipes"`
	TopIngredient    string   `json:"topIngredient"`
	WeeklyCalories   [7]int   `json:"weeklyCalories"`
	IngredientLabels []string `json:"ingredientLabels"`
	IngredientCounts []int    `json:"ingredientCounts"`
}

// 無任何食材記錄時的哨兵值
const noIngredientSentinel = "-"

// Aggregate 將記憶序列折疊成彙總統計。
// 單筆記錄的壞資料只影響該筆：卡路里解析失敗計 0，
// 時間戳無法解析則跳過週別分桶但仍計入總數。
func Aggregate(memories []CookingMemory) Summary {
	summary := Summary{
		TopIngredient:    noIngredientSentinel,
		IngredientLabels: make([]string, 0),
		IngredientCounts: make([]int, 0),
	}
	summary.TotalRecipes = len(memories)

	counts := make(map[string]int)

	for _, mem := range memories {
		cal := ParseCaloriesOrDefault(mem.Calories)
		summary.TotalCalories += cal

		// 週別分桶：ISO 週序（週一=0）
		if mem.CookedAt != "" {
			if t, err := ParseCookedAt(mem.CookedAt); err == nil {
				weekday := (int(t.Weekday()) + 6) % 7
				summary.WeeklyCalories[weekday] += cal
			}
		}

		// 食材出現次數，標籤保留首次出現的順序
		for _, ing := range mem.Ingredients {
			if _, seen := counts[ing]; !seen {
				summary.IngredientLabels = append(summary.IngredientLabels, ing)
			}
			counts[ing]++
		}
	}

	best := 0
	for _, label := range summary.IngredientLabels {
		summary.IngredientCounts = append(summary.IngredientCounts, counts[label])
		// 同分時首次出現者勝出（嚴格大於）
		if counts[label] > best {
			best = counts[label]
			summary.TopIngredient = label
		}
	}

	return summary
}
