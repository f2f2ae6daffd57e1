package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"cook-connect/internal/infrastructure/config"
	"cook-connect/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Store 登入階段記憶儲存。核心只讀快照、寫回新列表，
// 不在這層做跨請求的併發控制（同一階段一次一個請求）。
type Store interface {
	List(ctx context.Context, sessionID string) ([]CookingMemory, error)
	Put(ctx context.Context, sessionID string, memories []CookingMemory) error
}

// NewStore 依設定建立記憶儲存，Redis 未啟用時退回行程內儲存
func NewStore(cfg *config.Config) (Store, error) {
	if !cfg.Session.RedisEnabled {
		common.LogInfo("記憶儲存使用行程內模式")
		return NewMemoryStore(), nil
	}
	return NewRedisStore(cfg)
}

// RedisStore 以 Redis 為後端的記憶儲存
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore 建立 Redis 記憶儲存並測試連接
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Session.RedisAddr,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("記憶儲存已連接 Redis",
		zap.String("addr", cfg.Session.RedisAddr),
		zap.Duration("ttl", cfg.Session.TTL),
	)

	return &RedisStore{
		client: client,
		ttl:    cfg.Session.TTL,
	}, nil
}

// List 讀取階段的記憶快照，不存在時回傳空列表
func (s *RedisStore) List(ctx context.Context, sessionID string) ([]CookingMemory, error) {
	data, err := s.client.Get(ctx, memoryKey(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return []CookingMemory{}, nil
		}
		return nil, fmt.Errorf("failed to get memories: %w", err)
	}

	var memories []CookingMemory
	if err := json.Unmarshal(data, &memories); err != nil {
		return nil, fmt.Errorf("failed to unmarshal memories: %w", err)
	}
	return memories, nil
}

// Put 寫回階段的記憶列表
func (s *RedisStore) Put(ctx context.Context, sessionID string, memories []CookingMemory) error {
	data, err := json.Marshal(memories)
	if err != nil {
		return fmt.Errorf("failed to marshal memories: %w", err)
	}

	if err := s.client.Set(ctx, memoryKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set memories: %w", err)
	}
	return nil
}

// Close 關閉 Redis 連接
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func memoryKey(sessionID string) string {
	return fmt.Sprintf("memories:%s", sessionID)
}

// MemoryStore 行程內記憶儲存，開發與測試用
type MemoryStore struct {
	mu    sync.RWMutex
	store map[string][]CookingMemory
}

// NewMemoryStore 建立行程內記憶儲存
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		store: make(map[string][]CookingMemory),
	}
}

// List 讀取階段的記憶快照
func (s *MemoryStore) List(ctx context.Context, sessionID string) ([]CookingMemory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	memories := s.store[sessionID]
	out := make([]CookingMemory, len(memories))
	copy(out, memories)
	return out, nil
}

// Put 寫回階段的記憶列表
func (s *MemoryStore) Put(ctx context.Context, sessionID string, memories []CookingMemory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]CookingMemory, len(memories))
	copy(stored, memories)
	s.store[sessionID] = stored
	return nil
}
