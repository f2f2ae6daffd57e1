package account

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"cook-connect/internal/infrastructure/config"
	"cook-connect/internal/pkg/common"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// UserStore 使用者帳號儲存，以信箱為鍵
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
}

// SessionStore 登入階段儲存，token 對應使用者 ID
type SessionStore interface {
	Create(ctx context.Context, token, userID string) error
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// ErrUserNotFound 查無使用者
var ErrUserNotFound = fmt.Errorf("user not found")

// ErrSessionNotFound 查無登入階段
var ErrSessionNotFound = fmt.Errorf("session not found")

// NewStores 依設定建立帳號與階段儲存，Redis 未啟用時退回行程內儲存
func NewStores(cfg *config.Config) (UserStore, SessionStore, error) {
	if !cfg.Session.RedisEnabled {
		common.LogInfo("帳號儲存使用行程內模式")
		return NewMemoryUserStore(), NewMemorySessionStore(cfg.Session.TTL), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Session.RedisAddr,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("帳號儲存已連接 Redis",
		zap.String("addr", cfg.Session.RedisAddr),
	)

	return &RedisUserStore{client: client},
		&RedisSessionStore{client: client, ttl: cfg.Session.TTL},
		nil
}

// RedisUserStore 以 Redis 為後端的帳號儲存
type RedisUserStore struct {
	client *redis.Client
}

// GetByEmail 依信箱讀取帳號
func (s *RedisUserStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	data, err := s.client.Get(ctx, userKey(email)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// Create 建立帳號，信箱已存在時回傳衝突錯誤
func (s *RedisUserStore) Create(ctx context.Context, user *User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	// SetNX：帳號永久保存，信箱重複視為衝突
	ok, err := s.client.SetNX(ctx, userKey(user.Email), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	if !ok {
		return common.ErrEmailExists
	}
	return nil
}

// RedisSessionStore 以 Redis 為後端的階段儲存
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// Create 建立登入階段
func (s *RedisSessionStore) Create(ctx context.Context, token, userID string) error {
	if err := s.client.Set(ctx, sessionKey(token), userID, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// Get 讀取登入階段對應的使用者 ID
func (s *RedisSessionStore) Get(ctx context.Context, token string) (string, error) {
	userID, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	return userID, nil
}

// Delete 刪除登入階段
func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func userKey(email string) string {
	return fmt.Sprintf("user:%s", strings.ToLower(strings.TrimSpace(email)))
}

func sessionKey(token string) string {
	return fmt.Sprintf("session:%s", token)
}

// MemoryUserStore 行程內帳號儲存
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]User
}

// NewMemoryUserStore 建立行程內帳號儲存
func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]User)}
}

// GetByEmail 依信箱讀取帳號
func (s *MemoryUserStore) GetByEmail(ctx context.Context, email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userKey(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// Create 建立帳號，信箱已存在時回傳衝突錯誤
func (s *MemoryUserStore) Create(ctx context.Context, user *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := userKey(user.Email)
	if _, ok := s.users[key]; ok {
		return common.ErrEmailExists
	}
	s.users[key] = *user
	return nil
}

// memorySession 行程內階段條目
type memorySession struct {
	userID    string
	expiresAt time.Time
}

// MemorySessionStore 行程內階段儲存
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
	ttl      time.Duration
}

// NewMemorySessionStore 建立行程內階段儲存
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]memorySession),
		ttl:      ttl,
	}
}

// Create 建立登入階段
func (s *MemorySessionStore) Create(ctx context.Context, token, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = memorySession{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Get 讀取登入階段對應的使用者 ID，過期視同不存在
func (s *MemorySessionStore) Get(ctx context.Context, token string) (string, error) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return "", ErrSessionNotFound
	}
	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return "", ErrSessionNotFound
	}
	return sess.userID, nil
}

// Delete 刪除登入階段
func (s *MemorySessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
