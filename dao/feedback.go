package dao

import (
	"NatureNet/models"
	"context"

	"gorm.io/gorm"
)

type FeedbackDAO struct {
	Repo[models.Feedback]
}

func NewFeedbackDAO(db *gorm.DB) *FeedbackDAO {
	return &FeedbackDAO{Repo: NewRepo[models.Feedback](db)}
}

// GetByID 带作者
func (d *FeedbackDAO) GetByID(ctx context.Context, id uint64) (*models.Feedback, error) {
	return d.Repo.FindById(ctx, id, "Account")
}

// FindByTarget 取挂在 (table_name, row_id) 上的全部反馈
func (d *FeedbackDAO) FindByTarget(ctx context.Context, target models.Target) ([]*models.Feedback, error) {
	var items []*models.Feedback
	err := d.Db.WithContext(ctx).
		Preload("Account").
		Where("table_name = ? AND row_id = ?", string(target.Kind), target.ID).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (d *FeedbackDAO) FindByAccountID(ctx context.Context, accountID uint64) ([]*models.Feedback, error) {
	return d.Repo.FindAllWhere(ctx, "account_id = ?", accountID)
}
