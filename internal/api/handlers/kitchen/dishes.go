package kitchen

import (
	"net/http"

	"cook-connect/internal/core/recipe"
	"cook-connect/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DishOptionsRequest 菜色建議請求
type DishOptionsRequest struct {
	Ingredients []string `json:"ingredients"`
}

// DishOptionsResponse 菜色建議響應
type DishOptionsResponse struct {
	Count  int                     `json:"count"`
	Dishes []recipe.MatchCandidate `json:"dishes"`
}

// HandleDishOptions 依使用者的食材列出可做的菜色。
// 完全沒有候選時回傳保底食譜，響應永遠至少有一道菜。
func (h *Handler) HandleDishOptions(c *gin.Context) {
	var req DishOptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("菜色建議請求格式錯誤", zap.Error(err))
		respondError(c, common.ErrInvalidRequest)
		return
	}

	dishes := h.catalog.FindAll(req.Ingredients)
	if len(dishes) == 0 {
		dishes = []recipe.MatchCandidate{recipe.FallbackDish()}
	}

	common.LogInfo("菜色建議請求完成",
		zap.Int("ingredients", len(req.Ingredients)),
		zap.Int("dishes", len(dishes)),
	)

	c.JSON(http.StatusOK, DishOptionsResponse{
		Count:  len(dishes),
		Dishes: dishes,
	})
}
