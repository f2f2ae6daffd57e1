package memory

import (
	"strconv"
	"strings"
	"time"
)

// CookedAtLayout 烹飪時間的固定人類可讀格式（例：03 Feb 2026, 07:45 PM）
const CookedAtLayout = "02 Jan 2006, 03:04 PM"

// CookingMemory 一次完成烹飪的記錄，屬於單一登入階段
type CookingMemory struct {
	Name        string   `json:"name"`
	Calories    string   `json:"calories"`
	Ingredients []string `json:"ingredients"`
	Image       string   `json:"image"`
	Note        string   `json:"note"`
	CookedAt    string   `json:"cooked_at"`
}

// ParseCaloriesOrDefault 嘗試把卡路里字串轉成整數，失敗一律回傳 0。
// 靜默回退是刻意的恢復策略：壞資料不能讓統計失敗。
func ParseCaloriesOrDefault(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0
	}
	return n
}

// ParseCookedAt 解析固定格式的烹飪時間
func ParseCookedAt(raw string) (time.Time, error) {
	return time.Parse(CookedAtLayout, raw)
}

// FormatCookedAt 以固定格式輸出烹飪時間
func FormatCookedAt(t time.Time) string {
	return t.Format(CookedAtLayout)
}

// DeleteAt 刪除指定索引的記憶並回傳新列表。
// 索引以最新優先定址：index 0 刪除最新一筆，實際移除位置是 len-1-index。
// 超出範圍的索引不做任何事。
func DeleteAt(memories []CookingMemory, index int) []CookingMemory {
	if index < 0 || index >= len(memories) {
		return memories
	}
	pos := len(memories) - 1 - index
	out := make([]CookingMemory, 0, len(memories)-1)
	out = append(out, memories[:pos]...)
	out = append(out, memories[pos+1:]...)
	return out
}
