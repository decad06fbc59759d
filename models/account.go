package models

import "time"

// Account 用户账号, username 全局唯一且创建后不可修改
type Account struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username   string    `gorm:"column:username;type:varchar(80);not null;uniqueIndex:uk_username" json:"username"`
	Name       string    `gorm:"column:name;type:varchar(120);not null;default:''" json:"name"`
	Email      string    `gorm:"column:email;type:varchar(120);not null;default:''" json:"email"`
	Password   string    `gorm:"column:password;type:varchar(120);not null;default:''" json:"-"`
	Consent    bool      `gorm:"column:consent;not null;default:false" json:"consent"`
	IconURL    string    `gorm:"column:icon_url;type:varchar(255);not null;default:''" json:"icon_url"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ModifiedAt time.Time `gorm:"column:modified_at;autoUpdateTime" json:"modified_at"`

	Notes     []Note     `gorm:"foreignKey:AccountID" json:"-"`
	Feedbacks []Feedback `gorm:"foreignKey:AccountID" json:"-"`
}

func NewAccount(username string) *Account {
	return &Account{Username: username}
}

func (Account) TableName() string {
	return "account"
}
