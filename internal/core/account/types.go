package account

// User 使用者帳號
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	ProfilePic   string `json:"profile_pic"`
	Diet         string `json:"diet"`
	Cuisines     string `json:"cuisines"`
}

// 新帳號的預設偏好
const (
	DefaultProfilePic = "default.png"
	DefaultDiet       = "Veg 🌱"
	DefaultCuisines   = "Indian 🇮🇳"
)
