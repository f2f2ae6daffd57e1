package recipe

import (
	"encoding/json"
)

// Recipe 食譜記錄，啟動時載入後唯讀
type Recipe struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Preview     string   `json:"preview"`
	Difficulty  string   `json:"difficulty"`
	Time        int      `json:"time"`
	Calories    int      `json:"calories"`
	Steps       []Step   `json:"steps"`
}

// Step 食譜步驟。time 缺少時在組裝階段補預設值
type Step struct {
	Text string `json:"text"`
	Time *int   `json:"time"`

	wellFormed bool
}

// UnmarshalJSON 寬鬆解析步驟：非物件形式的步驟標記為無效，之後會被丟棄
func (s *Step) UnmarshalJSON(data []byte) error {
	var obj struct {
		Text string `json:"text"`
		Time *int   `json:"time"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		*s = Step{}
		return nil
	}
	s.Text = obj.Text
	s.Time = obj.Time
	s.wellFormed = true
	return nil
}

// NewStep 建立結構化步驟（time 為 nil 表示未指定）
func NewStep(text string, time *int) Step {
	return Step{Text: text, Time: time, wellFormed: true}
}

// MatchCandidate 單次配對請求產生的候選食譜，不做持久化
type MatchCandidate struct {
	Name           string   `json:"name"`
	Preview        string   `json:"preview"`
	Difficulty     string   `json:"difficulty"`
	Time           int      `json:"time"`
	Calories       int      `json:"calories"`
	Missing        []string `json:"missing"`
	MissingCount   int      `json:"missing_count"`
	DifficultyRank int      `json:"difficulty_rank"`
	AIGenerated    bool     `json:"ai_generated,omitempty"`
}

// AssembledStep 組裝後的步驟，time 一定有值
type AssembledStep struct {
	Description string `json:"description"`
	Time        int    `json:"time"`
}

// AssembledRecipe 組裝後的完整食譜響應
type AssembledRecipe struct {
	Name        string          `json:"name"`
	Ingredients []string        `json:"ingredients"`
	Calories    int             `json:"calories"`
	Difficulty  string          `json:"difficulty"`
	Steps       []AssembledStep `json:"steps"`
	TotalTime   int             `json:"total_time"`
}

// DifficultyRank 難度序數編碼，未知難度排最後
func DifficultyRank(difficulty string) int {
	switch difficulty {
	case "Easy":
		return 0
	case "Medium":
		return 1
	case "Hard":
		return 2
	default:
		return 3
	}
}
