package service

import (
	"NatureNet/dao"
	"NatureNet/models"
	"context"
)

var _ IContextService = (*ContextService)(nil)

type IContextService interface {
	Get(ctx context.Context, id uint64) (*models.Context, error)
	Notes(ctx context.Context, id uint64) ([]*models.Note, error)
	ListByKind(ctx context.Context, kind string) ([]*models.Context, error)
}

type ContextService struct {
	ContextDAO *dao.ContextDAO
	NoteDAO    *dao.NoteDAO
}

func (s *ContextService) Get(ctx context.Context, id uint64) (*models.Context, error) {
	c, err := s.ContextDAO.FindById(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Context %d is not found", id)
	}
	return c, nil
}

func (s *ContextService) Notes(ctx context.Context, id uint64) ([]*models.Note, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	notes, err := s.NoteDAO.FindByContextID(ctx, c.ID)
	if err != nil {
		return nil, storeFailure(err)
	}
	return notes, nil
}

// ListByKind 按类型筛选场景, 如 Activity / Landmark
func (s *ContextService) ListByKind(ctx context.Context, kind string) ([]*models.Context, error) {
	items, err := s.ContextDAO.FindByKind(ctx, kind)
	if err != nil {
		return nil, storeFailure(err)
	}
	return items, nil
}
