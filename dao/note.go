package dao

import (
	"NatureNet/models"
	"context"

	"gorm.io/gorm"
)

// 单条笔记查询时一并带出的关联
var notePreloads = []string{"Account", "Context", "Medias"}

type NoteDAO struct {
	Repo[models.Note]
}

func NewNoteDAO(db *gorm.DB) *NoteDAO {
	return &NoteDAO{Repo: NewRepo[models.Note](db)}
}

// GetByID 带作者、场景和媒体
func (d *NoteDAO) GetByID(ctx context.Context, id uint64) (*models.Note, error) {
	return d.Repo.FindById(ctx, id, notePreloads...)
}

// FindByAccountID 根据作者查询笔记列表
func (d *NoteDAO) FindByAccountID(ctx context.Context, accountID uint64) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Preload("Medias").
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&notes).Error
	return notes, err
}

// FindByContextID 根据场景查询笔记列表
func (d *NoteDAO) FindByContextID(ctx context.Context, contextID uint64) ([]*models.Note, error) {
	var notes []*models.Note
	err := d.Db.WithContext(ctx).
		Preload("Account").
		Preload("Medias").
		Where("context_id = ?", contextID).
		Order("id ASC").
		Find(&notes).Error
	return notes, err
}
