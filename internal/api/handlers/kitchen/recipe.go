package kitchen

import (
	"net/http"

	"cook-connect/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GenerateRecipeRequest 食譜組裝請求
type GenerateRecipeRequest struct {
	Ingredients  []string `json:"ingredients"`
	SelectedDish string   `json:"selected_dish"`
}

// HandleGenerateRecipe 把選定（或最佳配對）的菜色組裝成完整食譜
func (h *Handler) HandleGenerateRecipe(c *gin.Context) {
	var req GenerateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("食譜組裝請求格式錯誤", zap.Error(err))
		respondError(c, common.ErrInvalidRequest)
		return
	}

	assembled := h.catalog.Assemble(req.SelectedDish, req.Ingredients)

	common.LogInfo("食譜組裝請求完成",
		zap.String("dish", assembled.Name),
		zap.Int("steps", len(assembled.Steps)),
		zap.Int("total_time", assembled.TotalTime),
	)

	c.JSON(http.StatusOK, assembled)
}
