package account

import (
	"context"
	"testing"
	"time"

	"cook-connect/internal/pkg/common"
)

func newTestService() *Service {
	return NewService(NewMemoryUserStore(), NewMemorySessionStore(time.Hour))
}

func TestSignup(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Asha", "Asha@Example.com", "secret123")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if user.ID == "" {
		t.Error("user ID not assigned")
	}
	if user.Email != "asha@example.com" {
		t.Errorf("Email = %q, want lowercased", user.Email)
	}
	if user.PasswordHash == "secret123" {
		t.Error("password stored in plain text")
	}
	if user.ProfilePic != DefaultProfilePic {
		t.Errorf("ProfilePic = %q, want default", user.ProfilePic)
	}
	if user.Diet != DefaultDiet || user.Cuisines != DefaultCuisines {
		t.Errorf("preferences = (%q, %q), want defaults", user.Diet, user.Cuisines)
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "Asha", "asha@example.com", "secret123"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	// 大小寫不同仍視為同一信箱
	_, err := svc.Signup(ctx, "Imposter", "ASHA@example.com", "other")
	if err != common.ErrEmailExists {
		t.Errorf("duplicate signup err = %v, want ErrEmailExists", err)
	}
}

func TestSignupMissingFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	tests := []struct {
		name            string
		username        string
		email, password string
	}{
		{"缺名稱", "", "a@b.com", "pw"},
		{"缺信箱", "Asha", "", "pw"},
		{"缺密碼", "Asha", "a@b.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Signup(ctx, tt.username, tt.email, tt.password); err != common.ErrInvalidRequest {
				t.Errorf("err = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestLoginAndResolve(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Signup(ctx, "Asha", "asha@example.com", "secret123")
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}

	token, loggedIn, err := svc.Login(ctx, "asha@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token == "" {
		t.Fatal("empty session token")
	}
	if loggedIn.ID != user.ID {
		t.Errorf("logged in user = %q, want %q", loggedIn.ID, user.ID)
	}

	userID, err := svc.Resolve(ctx, token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if userID != user.ID {
		t.Errorf("Resolve = %q, want %q", userID, user.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "Asha", "asha@example.com", "secret123"); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	if _, _, err := svc.Login(ctx, "asha@example.com", "wrong"); err != common.ErrInvalidCredentials {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService()

	// 查無帳號與密碼錯誤回傳同一個錯誤，不洩漏帳號是否存在
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "pw"); err != common.ErrInvalidCredentials {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogout(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "Asha", "asha@example.com", "secret123"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	token, _, err := svc.Login(ctx, "asha@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := svc.Logout(ctx, token); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, err := svc.Resolve(ctx, token); err != ErrSessionNotFound {
		t.Errorf("Resolve after logout = %v, want ErrSessionNotFound", err)
	}
}

func TestSessionExpiry(t *testing.T) {
	users := NewMemoryUserStore()
	sessions := NewMemorySessionStore(-time.Second)
	svc := NewService(users, sessions)
	ctx := context.Background()

	if _, err := svc.Signup(ctx, "Asha", "asha@example.com", "secret123"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	token, _, err := svc.Login(ctx, "asha@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// TTL 已過的階段視同不存在
	if _, err := svc.Resolve(ctx, token); err != ErrSessionNotFound {
		t.Errorf("Resolve expired session = %v, want ErrSessionNotFound", err)
	}
}
