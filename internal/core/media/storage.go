package media

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	_ "image/gif"  // 支援 GIF
	_ "image/jpeg" // 支援 JPEG
	_ "image/png"  // 支援 PNG

	_ "golang.org/x/image/webp" // 支援 WebP

	"cook-connect/internal/pkg/common"

	"go.uber.org/zap"
)

// Storage 上傳圖片儲存
type Storage struct {
	dir          string
	maxSizeBytes int64
}

// NewStorage 建立上傳儲存並確保目錄存在
func NewStorage(dir string, maxSizeBytes int64) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Storage{
		dir:          dir,
		maxSizeBytes: maxSizeBytes,
	}, nil
}

// Dir 回傳上傳目錄
func (s *Storage) Dir() string {
	return s.dir
}

// Validate 驗證上傳內容：大小限制與圖片格式
func (s *Storage) Validate(data []byte) error {
	if int64(len(data)) > s.maxSizeBytes {
		return common.ErrInvalidImageSize
	}

	// 解碼圖片確認格式
	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return common.ErrInvalidImageFormat
	}
	if !isSupportedFormat(format) {
		return common.ErrInvalidImageFormat
	}
	return nil
}

// Save 驗證並保存上傳圖片，回傳可對外提供的 URL 路徑。
// 檔名加上時間戳前綴確保唯一。
func (s *Storage) Save(data []byte, originalName string) (string, error) {
	if err := s.Validate(data); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%s_%s",
		time.Now().Format("20060102150405"),
		common.SanitizeFilename(originalName),
	)
	path := filepath.Join(s.dir, filename)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save upload: %w", err)
	}

	common.LogInfo("上傳圖片已保存",
		zap.String("filename", filename),
		zap.Int("size", len(data)),
	)

	return "/uploads/" + filename, nil
}

// isSupportedFormat 檢查圖片格式是否支援
func isSupportedFormat(format string) bool {
	supportedFormats := map[string]bool{
		"jpeg": true,
		"jpg":  true,
		"png":  true,
		"gif":  true,
		"webp": true,
	}
	return supportedFormats[format]
}
