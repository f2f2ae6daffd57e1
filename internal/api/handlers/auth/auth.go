package auth

import (
	"errors"
	"net/http"

	"cook-connect/internal/api/middleware"
	"cook-connect/internal/core/account"
	"cook-connect/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler 帳號相關請求處理器
type Handler struct {
	accounts *account.Service
}

// NewHandler 建立帳號處理器
func NewHandler(accounts *account.Service) *Handler {
	return &Handler{accounts: accounts}
}

// SignupRequest 註冊請求
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest 登入請求
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// userView 對外的使用者資訊，不含密碼雜湊
type userView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ProfilePic string `json:"profile_pic"`
	Diet       string `json:"diet"`
	Cuisines   string `json:"cuisines"`
}

func newUserView(u *account.User) userView {
	return userView{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		ProfilePic: u.ProfilePic,
		Diet:       u.Diet,
		Cuisines:   u.Cuisines,
	}
}

// HandleSignup 處理註冊請求
func (h *Handler) HandleSignup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("註冊請求格式錯誤", zap.Error(err))
		respondError(c, common.ErrInvalidRequest)
		return
	}

	user, err := h.accounts.Signup(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		common.LogWarn("註冊失敗",
			zap.Error(err),
			zap.String("email", req.Email),
		)
		respondError(c, err)
		return
	}

	common.LogInfo("新帳號已建立",
		zap.String("user_id", user.ID),
	)
	c.JSON(http.StatusCreated, gin.H{
		"user": newUserView(user),
	})
}

// HandleLogin 處理登入請求，成功時簽發階段 token
func (h *Handler) HandleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogWarn("登入請求格式錯誤", zap.Error(err))
		respondError(c, common.ErrInvalidRequest)
		return
	}

	token, user, err := h.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		common.LogWarn("登入失敗",
			zap.Error(err),
			zap.String("email", req.Email),
		)
		respondError(c, err)
		return
	}

	common.LogInfo("登入成功",
		zap.String("user_id", user.ID),
	)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  newUserView(user),
	})
}

// HandleLogout 撤銷目前的階段 token
func (h *Handler) HandleLogout(c *gin.Context) {
	token := c.GetString(middleware.ContextSessionToken)
	if err := h.accounts.Logout(c.Request.Context(), token); err != nil {
		common.LogError("登出失敗", zap.Error(err))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "logged_out",
	})
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
