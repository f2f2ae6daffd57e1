package common

import (
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"正常檔名", "dinner.jpg", "dinner.jpg"},
		{"空白替換", "my dinner.jpg", "my_dinner.jpg"},
		{"路徑去除", "../../etc/passwd", "passwd"},
		{"特殊字元替換", "pic@#$.png", "pic___.png"},
		{"前後符號修剪", "...dots.jpg", "dots.jpg"},
		{"空字串", "", "upload"},
		{"全部無效字元", "###", "upload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.raw); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestGenerateUUID(t *testing.T) {
	a := GenerateUUID()
	b := GenerateUUID()

	if a == "" || b == "" {
		t.Fatal("empty UUID")
	}
	if a == b {
		t.Error("UUIDs must be unique")
	}
}
