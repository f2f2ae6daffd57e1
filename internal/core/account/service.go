package account

import (
	"context"
	"strings"

	"cook-connect/internal/pkg/common"

	"golang.org/x/crypto/bcrypt"
)

// Service 帳號服務：註冊、登入、登出
type Service struct {
	users    UserStore
	sessions SessionStore
}

// NewService 建立帳號服務
func NewService(users UserStore, sessions SessionStore) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
	}
}

// Signup 建立新帳號，信箱重複時回傳 ErrEmailExists
func (s *Service) Signup(ctx context.Context, name, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || password == "" {
		return nil, common.ErrInvalidRequest
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           common.GenerateUUID(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		ProfilePic:   DefaultProfilePic,
		Diet:         DefaultDiet,
		Cuisines:     DefaultCuisines,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 驗證帳號並簽發階段 token
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if err == ErrUserNotFound {
			return "", nil, common.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, common.ErrInvalidCredentials
	}

	token := common.GenerateUUID()
	if err := s.sessions.Create(ctx, token, user.ID); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout 撤銷階段 token
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Resolve 驗證階段 token 並回傳使用者 ID
func (s *Service) Resolve(ctx context.Context, token string) (string, error) {
	return s.sessions.Get(ctx, token)
}
