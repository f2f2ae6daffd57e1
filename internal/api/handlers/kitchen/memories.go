package kitchen

import (
	"io"
	"net/http"
	"time"

	"cook-connect/internal/api/middleware"
	"cook-connect/internal/core/memory"
	"cook-connect/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MemoriesResponse 記憶列表響應，最新的記錄排在最前面
type MemoriesResponse struct {
	Count    int                    `json:"count"`
	Memories []memory.CookingMemory `json:"memories"`
}

// DeleteMemoryRequest 刪除記憶請求，index 以最新優先定址（0 = 最新一筆）
type DeleteMemoryRequest struct {
	Index *int `json:"index" binding:"required"`
}

// HandleListMemories 列出目前階段的烹飪記憶
func (h *Handler) HandleListMemories(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionToken)

	memories, err := h.memories.List(c.Request.Context(), sessionID)
	if err != nil {
		common.LogError("讀取記憶失敗", zap.Error(err))
		respondError(c, common.ErrStoreUnavailable)
		return
	}

	// 儲存順序是舊到新，展示順序反轉成最新優先，
	// 與刪除請求的 index 定址一致
	out := make([]memory.CookingMemory, 0, len(memories))
	for i := len(memories) - 1; i >= 0; i-- {
		out = append(out, memories[i])
	}

	c.JSON(http.StatusOK, MemoriesResponse{
		Count:    len(out),
		Memories: out,
	})
}

// HandleSaveMemory 保存一筆烹飪記憶。圖片是必填欄位，
// ingredients 欄位是 JSON 編碼的字串陣列。
func (h *Handler) HandleSaveMemory(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionToken)

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		respondError(c, common.ErrImageRequired)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		common.LogError("讀取上傳圖片失敗", zap.Error(err))
		respondError(c, common.ErrInvalidRequest)
		return
	}

	imageURL, err := h.storage.Save(data, header.Filename)
	if err != nil {
		common.LogWarn("記憶圖片驗證失敗",
			zap.Error(err),
			zap.String("filename", header.Filename),
		)
		respondError(c, err)
		return
	}

	// ingredients 以 JSON 字串傳遞
	ingredients := []string{}
	if raw := c.PostForm("ingredients"); raw != "" {
		if err := common.ParseJSON(raw, &ingredients); err != nil {
			common.LogWarn("記憶食材欄位解析失敗", zap.Error(err))
			respondError(c, common.ErrInvalidRequest)
			return
		}
	}

	mem := memory.CookingMemory{
		Name:        c.PostForm("name"),
		Calories:    c.PostForm("calories"),
		Ingredients: ingredients,
		Image:       imageURL,
		Note:        c.PostForm("note"),
		CookedAt:    memory.FormatCookedAt(time.Now()),
	}

	memories, err := h.memories.List(c.Request.Context(), sessionID)
	if err != nil {
		common.LogError("讀取記憶失敗", zap.Error(err))
		respondError(c, common.ErrStoreUnavailable)
		return
	}
	memories = append(memories, mem)

	if err := h.memories.Put(c.Request.Context(), sessionID, memories); err != nil {
		common.LogError("保存記憶失敗", zap.Error(err))
		respondError(c, common.ErrStoreUnavailable)
		return
	}

	common.LogInfo("烹飪記憶已保存",
		zap.String("dish", mem.Name),
		zap.Int("count", len(memories)),
	)

	c.JSON(http.StatusCreated, gin.H{
		"memory": mem,
		"count":  len(memories),
	})
}

// HandleDeleteMemory 刪除指定索引的記憶，超出範圍的索引不做任何事
func (h *Handler) HandleDeleteMemory(c *gin.Context) {
	sessionID := c.GetString(middleware.ContextSessionToken)

	var req DeleteMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("刪除記憶請求格式錯誤", zap.Error(err))
		respondError(c, common.ErrInvalidRequest)
		return
	}

	memories, err := h.memories.List(c.Request.Context(), sessionID)
	if err != nil {
		common.LogError("讀取記憶失敗", zap.Error(err))
		respondError(c, common.ErrStoreUnavailable)
		return
	}

	updated := memory.DeleteAt(memories, *req.Index)
	if err := h.memories.Put(c.Request.Context(), sessionID, updated); err != nil {
		common.LogError("保存記憶失敗", zap.Error(err))
		respondError(c, common.ErrStoreUnavailable)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(updated),
	})
}
