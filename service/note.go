package service

import (
	"NatureNet/dao"
	"NatureNet/models"
	"NatureNet/pkg/log"
	"NatureNet/types"
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ INoteService = (*NoteService)(nil)

type INoteService interface {
	Get(ctx context.Context, id uint64) (*models.Note, error)
	Create(ctx context.Context, req *types.CreateNoteRequest) (*models.Note, error)
}

type NoteService struct {
	NoteDAO    *dao.NoteDAO
	AccountDAO *dao.AccountDAO
	ContextDAO *dao.ContextDAO
}

func (s *NoteService) Get(ctx context.Context, id uint64) (*models.Note, error) {
	note, err := s.NoteDAO.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Note %d is not found", id)
	}
	return note, nil
}

// Create 创建笔记; 作者或场景解析不到时与缺参数同样处理
func (s *NoteService) Create(ctx context.Context, req *types.CreateNoteRequest) (*models.Note, error) {
	if req.Username == "" || req.Content == nil || req.Context == nil || req.Kind == nil {
		return nil, newError(ErrMissingParameters, "some parameters are missing")
	}

	account, err := s.AccountDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, unresolved(err)
	}
	noteCtx, err := s.ContextDAO.FindByName(ctx, *req.Context)
	if err != nil {
		return nil, unresolved(err)
	}

	note := models.NewNote(account.ID, noteCtx.ID, *req.Kind, *req.Content)
	if req.Latitude != nil {
		note.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		note.Longitude = *req.Longitude
	}
	if err := s.NoteDAO.Create(ctx, note); err != nil {
		return nil, storeFailure(err)
	}
	note.Account = account
	note.Context = noteCtx

	log.L.Info("note created",
		zap.Uint64("id", note.ID),
		zap.String("username", account.Username),
		zap.String("context", noteCtx.Name),
	)
	return note, nil
}

func unresolved(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newError(ErrMissingParameters, "some parameters are missing")
	}
	return storeFailure(err)
}
