package service

import (
	"NatureNet/dao"
	"NatureNet/models"
	"context"
)

var _ ISiteService = (*SiteService)(nil)

type ISiteService interface {
	List(ctx context.Context) ([]*models.Site, error)
	Get(ctx context.Context, id uint64) (*models.Site, error)
	Contexts(ctx context.Context, id uint64) ([]*models.Context, error)
}

type SiteService struct {
	SiteDAO    *dao.SiteDAO
	ContextDAO *dao.ContextDAO
}

func (s *SiteService) List(ctx context.Context) ([]*models.Site, error) {
	items, err := s.SiteDAO.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}
	return items, nil
}

func (s *SiteService) Get(ctx context.Context, id uint64) (*models.Site, error) {
	site, err := s.SiteDAO.FindById(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Site %d is not found", id)
	}
	return site, nil
}

func (s *SiteService) Contexts(ctx context.Context, id uint64) ([]*models.Context, error) {
	site, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	items, err := s.ContextDAO.FindBySiteID(ctx, site.ID)
	if err != nil {
		return nil, storeFailure(err)
	}
	return items, nil
}
