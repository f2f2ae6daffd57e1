package kitchen

import (
	"errors"
	"net/http"

	"cook-connect/internal/core/media"
	"cook-connect/internal/core/memory"
	"cook-connect/internal/core/recipe"
	"cook-connect/internal/core/vision"
	"cook-connect/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// Handler 廚房相關請求處理器：食材辨識、菜色建議、食譜組裝與烹飪記憶
type Handler struct {
	catalog  *recipe.Catalog
	detector vision.Detector
	memories memory.Store
	storage  *media.Storage
}

// NewHandler 建立廚房處理器
func NewHandler(catalog *recipe.Catalog, detector vision.Detector, memories memory.Store, storage *media.Storage) *Handler {
	return &Handler{
		catalog:  catalog,
		detector: detector,
		memories: memories,
		storage:  storage,
	}
}

// respondError 依錯誤類型回應，CustomError 使用其定義的狀態碼
func respondError(c *gin.Context, err error) {
	var customErr *common.CustomError
	if errors.As(err, &customErr) {
		c.JSON(customErr.Status, common.ErrorResponse{
			Code:    customErr.Code,
			Message: customErr.Message,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, common.ErrorResponse{
		Code:    common.ErrCodeInternalError,
		Message: common.ErrInternalError.Message,
	})
}
