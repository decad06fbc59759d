package dao

import (
	"NatureNet/models"
	"context"

	"gorm.io/gorm"
)

type ContextDAO struct {
	Repo[models.Context]
}

func NewContextDAO(db *gorm.DB) *ContextDAO {
	return &ContextDAO{Repo: NewRepo[models.Context](db)}
}

// FindByName 场景按名字解析, 同名时取最早创建的
func (d *ContextDAO) FindByName(ctx context.Context, name string) (*models.Context, error) {
	return d.Repo.FindByWhere(ctx, "name = ?", name)
}

func (d *ContextDAO) FindByKind(ctx context.Context, kind string) ([]*models.Context, error) {
	return d.Repo.FindAllWhere(ctx, "kind = ?", kind)
}

func (d *ContextDAO) FindBySiteID(ctx context.Context, siteID uint64) ([]*models.Context, error) {
	return d.Repo.FindAllWhere(ctx, "site_id = ?", siteID)
}
