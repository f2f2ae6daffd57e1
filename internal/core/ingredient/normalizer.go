package ingredient

import (
	"strings"
)

// synonymTable 食材同義詞對照表，啟動後唯讀
var synonymTable = map[string]string{
	"bell pepper":      "capsicum",
	"green chilli":     "chilli",
	"red chilli":       "chilli",
	"scallion":         "onion",
	"spring onion":     "onion",
	"coriander leaves": "coriander",
	"cilantro":         "coriander",
	"eggplant":         "brinjal",
}

// Canonical 將單一食材名稱轉成標準形式：小寫、去空白、同義詞對照
func Canonical(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	if mapped, ok := synonymTable[name]; ok {
		return mapped
	}
	return name
}

// Normalize 將原始食材列表轉成標準名稱集合。
// 結果去除重複，順序不保證（下游只需要集合語意）。
func Normalize(raw []string) []string {
	set := NormalizeSet(raw)
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	return out
}

// NormalizeSet 將原始食材列表轉成標準名稱集合
func NormalizeSet(raw []string) map[string]struct{} {
	set := make(map[string]struct{}, len(raw))
	for _, r := range raw {
		set[Canonical(r)] = struct{}{}
	}
	return set
}
