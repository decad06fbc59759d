package dao

import (
	"NatureNet/models"
	"context"

	"gorm.io/gorm"
)

type AccountDAO struct {
	Repo[models.Account]
}

func NewAccountDAO(db *gorm.DB) *AccountDAO {
	return &AccountDAO{Repo: NewRepo[models.Account](db)}
}

// FindByUsername 用户名查询
func (d *AccountDAO) FindByUsername(ctx context.Context, username string) (*models.Account, error) {
	return d.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否已被占用
func (d *AccountDAO) IsUsernameExist(ctx context.Context, username string) (bool, error) {
	return d.Repo.IsExist(ctx, "username = ?", username)
}
