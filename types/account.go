package types

import "time"

// AccountHash 账号对外展示结构, 不含密码
type AccountHash struct {
	ID         uint64    `json:"id"`
	Username   string    `json:"username"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Consent    bool      `json:"consent"`
	IconURL    string    `json:"icon_url"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}
