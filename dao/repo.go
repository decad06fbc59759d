package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用单表操作, 各 DAO 内嵌使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.Db.WithContext(ctx).Model(new(T))
}

// Create 插入一行, 主键由数据库分配后回填
func (r *Repo[T]) Create(ctx context.Context, row *T) error {
	return r.Db.WithContext(ctx).Create(row).Error
}

// FindById 未找到时返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindById(ctx context.Context, id uint64, preloads ...string) (*T, error) {
	var row T
	q := r.Db.WithContext(ctx)
	for _, p := range preloads {
		q = q.Preload(p)
	}
	if err := q.First(&row, id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// FindByWhere 按条件取第一条, 未找到时返回 gorm.ErrRecordNotFound
func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var row T
	err := r.Db.WithContext(ctx).Where(where, args...).Order("id ASC").First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *Repo[T]) FindAll(ctx context.Context) ([]*T, error) {
	var items []*T
	err := r.Db.WithContext(ctx).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *Repo[T]) FindAllWhere(ctx context.Context, where string, args ...any) ([]*T, error) {
	var items []*T
	err := r.Db.WithContext(ctx).Where(where, args...).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repo[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.Model(ctx).Count(&count).Error
	return count, err
}
