package api

import (
	"context"
	"net/http"
	"time"

	authHandler "cook-connect/internal/api/handlers/auth"
	"cook-connect/internal/api/handlers/health"
	kitchenHandler "cook-connect/internal/api/handlers/kitchen"
	"cook-connect/internal/api/middleware"
	"cook-connect/internal/core/account"
	"cook-connect/internal/core/media"
	"cook-connect/internal/core/memory"
	"cook-connect/internal/core/recipe"
	"cook-connect/internal/core/vision"
	"cook-connect/internal/infrastructure/config"
	"cook-connect/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// 超時設置
	timeoutDuration = 60 * time.Second
)

// Dependencies 路由需要的服務集合，啟動時由 main 組裝
type Dependencies struct {
	Catalog  *recipe.Catalog
	Detector vision.Detector
	Accounts *account.Service
	Memories memory.Store
	Storage  *media.Storage
}

// SetupRouter 設置路由
func SetupRouter(cfg *config.Config, deps Dependencies) (*gin.Engine, error) {
	common.LogInfo("Starting router setup",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	// 設置 gin 模式
	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// 創建路由引擎
	router := gin.New()

	// 註冊基礎中間件
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New()) // 自動生成請求 ID

	// CORS 設置
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID", "X-Session-Token"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 請求體大小限制（圖片上傳上限再加一點 multipart 開銷）
	router.Use(middleware.BodySizeLimit(cfg.Upload.MaxSizeBytes + 1<<20))

	// 請求去重
	if cfg.DedupWindow > 0 {
		router.Use(middleware.Deduplication(cfg))
	}

	// 限流
	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 全局中間件：設置超時和共用物件
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("catalog", deps.Catalog)

		c.Next()

		// 檢查是否超時
		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("Request timeout",
				zap.String("path", c.Request.URL.Path),
				zap.String("request_id", requestid.Get(c)),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  "REQUEST_TIMEOUT",
			})
			c.Abort()
			return
		}
	})

	// 健康檢查路由
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// 上傳圖片靜態服務
	router.Static("/uploads", deps.Storage.Dir())

	// API 路由組
	api := router.Group("/api/v1")
	{
		accounts := authHandler.NewHandler(deps.Accounts)
		kitchen := kitchenHandler.NewHandler(deps.Catalog, deps.Detector, deps.Memories, deps.Storage)

		// 帳號相關路由
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/signup", accounts.HandleSignup)
			authGroup.POST("/login", accounts.HandleLogin)
			authGroup.POST("/logout", middleware.RequireSession(deps.Accounts), accounts.HandleLogout)
		}

		// 廚房相關路由，不需登入即可使用
		kitchenGroup := api.Group("/kitchen")
		{
			kitchenGroup.POST("/detect-ingredients", kitchen.HandleDetectIngredients)
			kitchenGroup.POST("/dish-options", kitchen.HandleDishOptions)
			kitchenGroup.POST("/generate-recipe", kitchen.HandleGenerateRecipe)
		}

		// 烹飪記憶與統計
		memoryGroup := api.Group("/memories", middleware.RequireSession(deps.Accounts))
		{
			memoryGroup.GET("", kitchen.HandleListMemories)
			memoryGroup.POST("", kitchen.HandleSaveMemory)
			memoryGroup.POST("/delete", kitchen.HandleDeleteMemory)
		}
		api.GET("/analytics", middleware.RequireSession(deps.Accounts), kitchen.HandleAnalytics)
	}

	common.LogInfo("Router setup completed successfully",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
		zap.Int("catalog_recipes", deps.Catalog.Len()),
		zap.Duration("timeout", timeoutDuration),
	)

	return router, nil
}
