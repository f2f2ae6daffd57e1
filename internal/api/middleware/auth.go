package middleware

import (
	"net/http"
	"strings"

	"cook-connect/internal/core/account"
	"cook-connect/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// ContextSessionToken 階段 token 在 gin context 中的鍵
	ContextSessionToken = "session_token"
	// ContextUserID 使用者 ID 在 gin context 中的鍵
	ContextUserID = "user_id"
)

// sessionToken 從請求讀取階段 token（Authorization: Bearer 或 X-Session-Token）
func sessionToken(c *gin.Context) string {
	auth := c.GetHeader("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return strings.TrimSpace(c.GetHeader("X-Session-Token"))
}

// RequireSession 登入驗證中間件，未登入的請求一律 401
func RequireSession(accountService *account.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.ErrorResponse{
				Code:    common.ErrCodeUnauthorized,
				Message: common.ErrUnauthorized.Message,
			})
			return
		}

		userID, err := accountService.Resolve(c.Request.Context(), token)
		if err != nil {
			if err != account.ErrSessionNotFound {
				common.LogError("階段驗證失敗",
					zap.Error(err),
					zap.String("path", c.Request.URL.Path),
				)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.ErrorResponse{
				Code:    common.ErrCodeUnauthorized,
				Message: common.ErrUnauthorized.Message,
			})
			return
		}

		c.Set(ContextSessionToken, token)
		c.Set(ContextUserID, userID)
		c.Next()
	}
}
