package models

import "time"

// DefaultMediaLink 客户端未给出链接时的占位
const DefaultMediaLink = "unknown"

type Media struct {
	ID        uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Kind      string    `gorm:"column:kind;type:varchar(40);not null;default:''" json:"kind"`
	Title     string    `gorm:"column:title;type:varchar(255);not null;default:''" json:"title"`
	Link      string    `gorm:"column:link;type:varchar(512);not null;default:''" json:"link"`
	NoteID    uint64    `gorm:"column:note_id;not null;index:idx_media_note" json:"note_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func NewMedia(noteID uint64, kind, title, link string) *Media {
	return &Media{NoteID: noteID, Kind: kind, Title: title, Link: link}
}

func (Media) TableName() string {
	return "media"
}
