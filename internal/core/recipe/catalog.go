package recipe

import (
	"fmt"
	"os"
	"strings"

	"cook-connect/internal/pkg/common"

	"go.uber.org/zap"
)

// Catalog 不可變的食譜資料庫，啟動時載入一次
type Catalog struct {
	recipes []Recipe
}

// NewCatalog 以既有食譜建立資料庫
func NewCatalog(recipes []Recipe) *Catalog {
	return &Catalog{recipes: recipes}
}

// LoadCatalog 從 JSON 檔案載入食譜資料庫。
// 缺少的欄位以零值處理，不會讓載入失敗；整個檔案無法解析才回傳錯誤。
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open recipe catalog: %w", err)
	}
	defer f.Close()

	var recipes []Recipe
	if err := common.DecodeJSON(f, &recipes); err != nil {
		return nil, fmt.Errorf("failed to parse recipe catalog: %w", err)
	}

	common.LogInfo("食譜資料庫已載入",
		zap.String("path", path),
		zap.Int("count", len(recipes)),
	)

	return &Catalog{recipes: recipes}, nil
}

// Len 回傳食譜數量
func (c *Catalog) Len() int {
	return len(c.recipes)
}

// FindByName 以名稱查詢食譜，去除前後空白後不分大小寫精確比對
func (c *Catalog) FindByName(name string) *Recipe {
	target := strings.ToLower(strings.TrimSpace(name))
	for i := range c.recipes {
		if strings.ToLower(strings.TrimSpace(c.recipes[i].Name)) == target {
			return &c.recipes[i]
		}
	}
	return nil
}
