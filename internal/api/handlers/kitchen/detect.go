package kitchen

import (
	"io"
	"net/http"

	"cook-connect/internal/core/ingredient"
	"cook-connect/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DetectResponse 食材辨識響應
type DetectResponse struct {
	Ingredients []string `json:"ingredients"`
	Image       string   `json:"image,omitempty"`
}

// HandleDetectIngredients 處理食材辨識請求。
// 未附圖片不是錯誤：回傳空食材列表，讓前端走手動輸入流程。
func (h *Handler) HandleDetectIngredients(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusOK, DetectResponse{Ingredients: []string{}})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		common.LogError("讀取上傳圖片失敗", zap.Error(err))
		respondError(c, common.ErrInvalidRequest)
		return
	}

	// 保存圖片（含大小與格式驗證）
	imageURL, err := h.storage.Save(data, header.Filename)
	if err != nil {
		common.LogWarn("上傳圖片驗證失敗",
			zap.Error(err),
			zap.String("filename", header.Filename),
			zap.Int("size", len(data)),
		)
		respondError(c, err)
		return
	}

	labels, err := h.detector.DetectIngredients(c.Request.Context(), data, header.Filename)
	if err != nil {
		common.LogError("食材辨識服務失敗", zap.Error(err))
		respondError(c, common.ErrServiceUnavailable)
		return
	}

	// 辨識標籤轉成標準食材名稱，保留首次出現的順序
	seen := make(map[string]struct{}, len(labels))
	ingredients := make([]string, 0, len(labels))
	for _, label := range labels {
		name := ingredient.Canonical(label)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		ingredients = append(ingredients, name)
	}

	common.LogInfo("食材辨識請求完成",
		zap.Int("labels", len(labels)),
		zap.Int("ingredients", len(ingredients)),
	)

	c.JSON(http.StatusOK, DetectResponse{
		Ingredients: ingredients,
		Image:       imageURL,
	})
}
