package types

import "time"

type MediaHash struct {
	ID        uint64    `json:"id"`
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	NoteID    uint64    `json:"note_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateMediaRequest JSON body, note_id 可以是数字也可以是字符串
type CreateMediaRequest struct {
	Kind   string
	Title  string
	NoteID uint64
	Link   string
}
