package models

import (
	"time"
)

type Note struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Kind       string    `gorm:"column:kind;type:varchar(40);not null;default:''" json:"kind"`
	Content    string    `gorm:"column:content;type:text" json:"content"`
	AccountID  uint64    `gorm:"column:account_id;not null;index:idx_note_account" json:"account_id"`
	ContextID  uint64    `gorm:"column:context_id;not null;index:idx_note_context" json:"context_id"`
	Latitude   float64   `gorm:"column:latitude;not null;default:0" json:"latitude"`
	Longitude  float64   `gorm:"column:longitude;not null;default:0" json:"longitude"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index:idx_note_created_at" json:"created_at"`
	ModifiedAt time.Time `gorm:"column:modified_at;autoUpdateTime" json:"modified_at"`

	Account *Account `gorm:"foreignKey:AccountID" json:"-"`
	Context *Context `gorm:"foreignKey:ContextID" json:"-"`
	Medias  []Media  `gorm:"foreignKey:NoteID" json:"-"`
}

func NewNote(accountID, contextID uint64, kind, content string) *Note {
	return &Note{
		AccountID: accountID,
		ContextID: contextID,
		Kind:      kind,
		Content:   content,
	}
}

func (Note) TableName() string {
	return "note"
}
