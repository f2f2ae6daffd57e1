package recipe

import (
	"sort"

	"cook-connect/internal/core/ingredient"
)

const (
	// 納入候選的最低配對比例
	minMatchRatio = 0.6
	// 允許缺少的食材上限
	maxMissing = 1
	// 未提供時間的食譜在排序時使用的哨兵值
	timeSentinel = 999
)

// FindBest 在資料庫中找出與使用者食材交集最大的食譜。
// 同分時保留資料庫順序中先出現者（嚴格大於才取代）；資料庫為空回傳 nil。
func (c *Catalog) FindBest(userSet map[string]struct{}) *Recipe {
	var best *Recipe
	bestScore := -1

	for i := range c.recipes {
		score := 0
		for _, name := range normalizedOrdered(c.recipes[i].Ingredients) {
			if _, ok := userSet[name]; ok {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = &c.recipes[i]
		}
	}

	return best
}

// FindAll 找出所有可行的食譜候選並依序排列。
// 輸入會再正規化一次（冪等，原始或已正規化的列表都安全）。
func (c *Catalog) FindAll(userIngredients []string) []MatchCandidate {
	userSet := ingredient.NormalizeSet(userIngredients)

	var matches []MatchCandidate
	for i := range c.recipes {
		recipeSet := normalizedOrdered(c.recipes[i].Ingredients)
		if len(recipeSet) == 0 {
			// 空食材的食譜直接跳過，避免除以零
			continue
		}

		common := 0
		missing := make([]string, 0)
		for _, name := range recipeSet {
			if _, ok := userSet[name]; ok {
				common++
			} else {
				missing = append(missing, name)
			}
		}

		matchRatio := float64(common) / float64(len(recipeSet))
		if matchRatio >= minMatchRatio && len(missing) <= maxMissing {
			matches = append(matches, MatchCandidate{
				Name:           c.recipes[i].Name,
				Preview:        c.recipes[i].Preview,
				Difficulty:     c.recipes[i].Difficulty,
				Time:           c.recipes[i].Time,
				Calories:       c.recipes[i].Calories,
				Missing:        missing,
				MissingCount:   len(missing),
				DifficultyRank: DifficultyRank(c.recipes[i].Difficulty),
			})
		}
	}

	// 穩定排序：同鍵時保留資料庫順序，輸出才有確定性
	sort.SliceStable(matches, func(a, b int) bool {
		ma, mb := matches[a], matches[b]
		if ma.MissingCount != mb.MissingCount {
			return ma.MissingCount < mb.MissingCount
		}
		if ma.DifficultyRank != mb.DifficultyRank {
			return ma.DifficultyRank < mb.DifficultyRank
		}
		return timeOrSentinel(ma.Time) < timeOrSentinel(mb.Time)
	})

	return matches
}

// FallbackDish 無任何候選時的保底食譜，呼叫端必須至少回傳一個建議
func FallbackDish() MatchCandidate {
	return MatchCandidate{
		Name:        "Quick Kitchen Stir Fry",
		Difficulty:  "Easy",
		Time:        15,
		Calories:    250,
		Missing:     []string{},
		AIGenerated: true,
	}
}

// timeOrSentinel 未提供時間時以哨兵值代替，讓時間不明的食譜排到同層最後
func timeOrSentinel(t int) int {
	if t == 0 {
		return timeSentinel
	}
	return t
}

// normalizedOrdered 正規化食材列表並去重，保留首次出現的順序。
// 配對只需要集合語意，但固定順序讓缺少清單的輸出可測試。
func normalizedOrdered(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		name := ingredient.Canonical(r)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
