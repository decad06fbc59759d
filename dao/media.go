package dao

import (
	"NatureNet/models"
	"context"

	"gorm.io/gorm"
)

type MediaDAO struct {
	Repo[models.Media]
}

func NewMediaDAO(db *gorm.DB) *MediaDAO {
	return &MediaDAO{Repo: NewRepo[models.Media](db)}
}

func (d *MediaDAO) FindByNoteID(ctx context.Context, noteID uint64) ([]*models.Media, error) {
	return d.Repo.FindAllWhere(ctx, "note_id = ?", noteID)
}
