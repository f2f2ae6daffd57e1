package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"cook-connect/internal/infrastructure/config"
	"cook-connect/internal/pkg/common"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client 外部食材辨識服務的 HTTP 客戶端
type Client struct {
	config *config.Config
	client *resty.Client
}

// NewDetector 依設定建立辨識器，未啟用時回傳空辨識器
func NewDetector(cfg *config.Config) Detector {
	if !cfg.Vision.Enabled {
		common.LogInfo("食材辨識服務未啟用")
		return Disabled{}
	}
	return NewClient(cfg)
}

// NewClient 建立辨識服務客戶端
func NewClient(cfg *config.Config) *Client {
	client := resty.New().
		SetBaseURL(cfg.Vision.BaseURL).
		SetTimeout(cfg.Vision.Timeout)
	if cfg.Vision.APIKey != "" {
		client.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.Vision.APIKey))
	}

	return &Client{
		config: cfg,
		client: client,
	}
}

// detection 辨識服務回傳的單一偵測結果
type detection struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// DetectIngredients 把圖片送到辨識服務並回傳偵測到的食材標籤
func (c *Client) DetectIngredients(ctx context.Context, imageData []byte, filename string) ([]string, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetFileReader("image", filename, bytes.NewReader(imageData)).
		SetFormData(map[string]string{
			"confidence": fmt.Sprintf("%g", c.config.Vision.Confidence),
		}).
		Post("/detect")

	if err != nil {
		return nil, fmt.Errorf("failed to send request to vision service: %w", err)
	}

	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("vision service returned error: %s", resp.String())
	}

	// 解析回應
	var result struct {
		Detections []detection `json:"detections"`
	}
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("failed to parse vision response: %w", err)
	}

	labels := make([]string, 0, len(result.Detections))
	for _, d := range result.Detections {
		if d.Confidence < c.config.Vision.Confidence {
			continue
		}
		labels = append(labels, d.Label)
	}

	common.LogInfo("食材辨識完成",
		zap.Int("detections", len(result.Detections)),
		zap.Int("labels", len(labels)),
	)

	return labels, nil
}
