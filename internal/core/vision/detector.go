package vision

import (
	"context"
)

// Detector 食材辨識器。核心把它當成不透明的標籤產生器：
// 給一張圖片，回傳偵測到的原始食材字串（可能為空）。
type Detector interface {
	DetectIngredients(ctx context.Context, imageData []byte, filename string) ([]string, error)
}

// Disabled 未啟用辨識服務時的辨識器，一律回傳空列表
type Disabled struct{}

// DetectIngredients 回傳空列表
func (Disabled) DetectIngredients(ctx context.Context, imageData []byte, filename string) ([]string, error) {
	return []string{}, nil
}
