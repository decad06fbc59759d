package dao

import (
	"NatureNet/models"
	"context"

	"gorm.io/gorm"
)

type SiteDAO struct {
	Repo[models.Site]
}

func NewSiteDAO(db *gorm.DB) *SiteDAO {
	return &SiteDAO{Repo: NewRepo[models.Site](db)}
}

func (d *SiteDAO) FindByName(ctx context.Context, name string) (*models.Site, error) {
	return d.Repo.FindByWhere(ctx, "name = ?", name)
}
