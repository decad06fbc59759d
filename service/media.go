package service

import (
	"NatureNet/dao"
	"NatureNet/models"
	"NatureNet/types"
	"context"
)

var _ IMediaService = (*MediaService)(nil)

type IMediaService interface {
	Create(ctx context.Context, req *types.CreateMediaRequest) (*models.Media, error)
}

type MediaService struct {
	MediaDAO *dao.MediaDAO
	NoteDAO  *dao.NoteDAO
}

// Create 父笔记存在时才创建媒体
func (s *MediaService) Create(ctx context.Context, req *types.CreateMediaRequest) (*models.Media, error) {
	if req.Kind == "" || req.Title == "" || req.NoteID == 0 {
		return nil, newError(ErrMissingParameters, "some parameters are missing")
	}

	note, err := s.NoteDAO.FindById(ctx, req.NoteID)
	if err != nil {
		return nil, lookupErr(err, "Note %d is not found", req.NoteID)
	}

	link := req.Link
	if link == "" {
		link = models.DefaultMediaLink
	}
	media := models.NewMedia(note.ID, req.Kind, req.Title, link)
	if err := s.MediaDAO.Create(ctx, media); err != nil {
		return nil, storeFailure(err)
	}
	return media, nil
}
