package kitchen

import (
	"net/http"

	"cook-connect/internal/api/middleware"
	"cook-connect/internal/core/memory"
	"cook-connect/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// HandleAnalytics 把目前階段的記憶折疊成彙總統計
func (h *Handler) HandleAnalytics(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionToken)

	memories, err := h.memories.List(c.Request.Context(), sessionID)
	if err != nil {
		common.LogError("讀取記憶失敗", zap.Error(err))
		respondError(c, common.ErrStoreUnavailable)
		return
	}

	summary := memory.Aggregate(memories)

	common.LogInfo("統計請求完成",
		zap.Int("total_recipes", summary.TotalRecipes),
		zap.Int("total_calories", summary.TotalCalories),
	)

	c.JSON(http.StatusOK, summary)
}
