package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cook-connect/internal/api/middleware"
	"cook-connect/internal/core/account"
	"cook-connect/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter() (*gin.Engine, *account.Service) {
	accounts := account.NewService(account.NewMemoryUserStore(), account.NewMemorySessionStore(time.Hour))
	h := NewHandler(accounts)

	router := gin.New()
	group := router.Group("/api/v1/auth")
	{
		group.POST("/signup", h.HandleSignup)
		group.POST("/login", h.HandleLogin)
		group.POST("/logout", middleware.RequireSession(accounts), h.HandleLogout)
	}
	return router, accounts
}

func post(router *gin.Engine, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSignupEndpoint(t *testing.T) {
	router, _ := testRouter()

	w := post(router, "/api/v1/auth/signup",
		`{"name":"Asha","email":"asha@example.com","password":"secret123"}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		User struct {
			ID         string `json:"id"`
			Email      string `json:"email"`
			ProfilePic string `json:"profile_pic"`
			Diet       string `json:"diet"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.User.ID == "" {
		t.Error("user ID missing")
	}
	if resp.User.ProfilePic != account.DefaultProfilePic || resp.User.Diet != account.DefaultDiet {
		t.Errorf("defaults not applied: %+v", resp.User)
	}
	// 響應不可外洩密碼雜湊
	if strings.Contains(w.Body.String(), "password") {
		t.Errorf("body leaks password material: %s", w.Body.String())
	}
}

func TestSignupDuplicateEndpoint(t *testing.T) {
	router, _ := testRouter()

	body := `{"name":"Asha","email":"asha@example.com","password":"secret123"}`
	if w := post(router, "/api/v1/auth/signup", body, nil); w.Code != http.StatusCreated {
		t.Fatalf("first signup: %d", w.Code)
	}

	w := post(router, "/api/v1/auth/signup", body, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "EMAIL_EXISTS") {
		t.Errorf("body = %s, want EMAIL_EXISTS", w.Body.String())
	}
}

func TestSignupMissingFieldsEndpoint(t *testing.T) {
	router, _ := testRouter()

	w := post(router, "/api/v1/auth/signup", `{"name":"Asha"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestLoginLogoutFlow(t *testing.T) {
	router, _ := testRouter()

	if w := post(router, "/api/v1/auth/signup",
		`{"name":"Asha","email":"asha@example.com","password":"secret123"}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("signup: %d", w.Code)
	}

	w := post(router, "/api/v1/auth/login",
		`{"email":"asha@example.com","password":"secret123"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("empty token")
	}

	headers := map[string]string{"Authorization": "Bearer " + resp.Token}
	if w := post(router, "/api/v1/auth/logout", "", headers); w.Code != http.StatusOK {
		t.Fatalf("logout: %d: %s", w.Code, w.Body.String())
	}

	// 登出後 token 失效
	if w := post(router, "/api/v1/auth/logout", "", headers); w.Code != http.StatusUnauthorized {
		t.Errorf("logout with revoked token: %d, want 401", w.Code)
	}
}

func TestLoginWrongPasswordEndpoint(t *testing.T) {
	router, _ := testRouter()

	if w := post(router, "/api/v1/auth/signup",
		`{"name":"Asha","email":"asha@example.com","password":"secret123"}`, nil); w.Code != http.StatusCreated {
		t.Fatalf("signup: %d", w.Code)
	}

	w := post(router, "/api/v1/auth/login",
		`{"email":"asha@example.com","password":"wrong"}`, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}

	// 錯誤響應使用統一的 code/message 形狀
	var resp common.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != "INVALID_CREDENTIALS" {
		t.Errorf("Code = %q, want INVALID_CREDENTIALS", resp.Code)
	}
	if resp.Message == "" {
		t.Error("Message must not be empty")
	}
}
