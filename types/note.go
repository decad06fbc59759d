package types

import (
	"time"
)

// NoteHash 笔记展示结构, Account/Context 在预加载后才会填充
type NoteHash struct {
	ID         uint64       `json:"id"`
	Kind       string       `json:"kind"`
	Content    string       `json:"content"`
	AccountID  uint64       `json:"account_id"`
	ContextID  uint64       `json:"context_id"`
	Latitude   float64      `json:"latitude"`
	Longitude  float64      `json:"longitude"`
	CreatedAt  time.Time    `json:"created_at"`
	ModifiedAt time.Time    `json:"modified_at"`
	Account    *AccountHash `json:"account,omitempty"`
	Context    *ContextHash `json:"context,omitempty"`
	Medias     []*MediaHash `json:"medias,omitempty"`
}

// CreateNoteRequest 表单: content, context, kind 必须出现, 允许为空串; nil 表示缺失
type CreateNoteRequest struct {
	Username  string
	Content   *string  `form:"content"`
	Context   *string  `form:"context"`
	Kind      *string  `form:"kind"`
	Latitude  *float64 `form:"latitude"`
	Longitude *float64 `form:"longitude"`
}
