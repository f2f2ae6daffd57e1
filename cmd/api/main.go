package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cook-connect/internal/api"
	"cook-connect/internal/core/account"
	"cook-connect/internal/core/media"
	"cook-connect/internal/core/memory"
	"cook-connect/internal/core/recipe"
	"cook-connect/internal/core/vision"
	"cook-connect/internal/infrastructure/config"
	"cook-connect/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// 載入 .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 載入設定
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 初始化 logger（需在載入 config 後）
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	// 使用 logger 記錄啟動信息
	common.LogInfo("載入設定",
		zap.String("catalog_path", cfg.Catalog.Path),
		zap.Bool("vision_enabled", cfg.Vision.Enabled),
		zap.Bool("redis_enabled", cfg.Session.RedisEnabled),
	)

	// 載入食譜資料庫
	catalog, err := recipe.LoadCatalog(cfg.Catalog.Path)
	if err != nil {
		common.LogFatal("Failed to load recipe catalog", zap.Error(err))
	}

	// 初始化記憶與帳號儲存
	memoryStore, err := memory.NewStore(cfg)
	if err != nil {
		common.LogFatal("Failed to initialize memory store", zap.Error(err))
	}
	userStore, sessionStore, err := account.NewStores(cfg)
	if err != nil {
		common.LogFatal("Failed to initialize account stores", zap.Error(err))
	}
	accountService := account.NewService(userStore, sessionStore)

	// 初始化食材辨識服務
	detector := vision.NewDetector(cfg)

	// 初始化上傳儲存
	storage, err := media.NewStorage(cfg.Upload.Dir, cfg.Upload.MaxSizeBytes)
	if err != nil {
		common.LogFatal("Failed to initialize upload storage", zap.Error(err))
	}

	// 設置路由
	router, err := api.SetupRouter(cfg, api.Dependencies{
		Catalog:  catalog,
		Detector: detector,
		Accounts: accountService,
		Memories: memoryStore,
		Storage:  storage,
	})
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}

	// 設置 HTTP 服務器
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// 啟動服務器
	go func() {
		common.LogInfo("啟動應用",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Bool("debug", cfg.App.Debug),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server",
				zap.Error(err),
			)
			os.Exit(1)
		}
	}()

	// 等待中斷信號
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	// 設置關閉超時
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown",
			zap.Error(err),
		)
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
