package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSessionToken(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name:    "Bearer token",
			headers: map[string]string{"Authorization": "Bearer abc-123"},
			want:    "abc-123",
		},
		{
			name:    "Bearer token 去空白",
			headers: map[string]string{"Authorization": "Bearer   abc-123  "},
			want:    "abc-123",
		},
		{
			name:    "X-Session-Token 後備",
			headers: map[string]string{"X-Session-Token": "xyz-789"},
			want:    "xyz-789",
		},
		{
			name: "Authorization 優先",
			headers: map[string]string{
				"Authorization":   "Bearer abc-123",
				"X-Session-Token": "xyz-789",
			},
			want: "abc-123",
		},
		{
			name:    "非 Bearer 形式忽略",
			headers: map[string]string{"Authorization": "Basic dXNlcjpwdw=="},
			want:    "",
		},
		{
			name:    "無標頭",
			headers: nil,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest("GET", "/", nil)
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}
			if got := sessionToken(c); got != tt.want {
				t.Errorf("sessionToken = %q, want %q", got, tt.want)
			}
		})
	}
}
