package service

import (
	"NatureNet/dao"
	"NatureNet/models"
	"NatureNet/pkg/log"
	"context"
	"fmt"

	"go.uber.org/zap"
)

var _ IFeedbackService = (*FeedbackService)(nil)

type IFeedbackService interface {
	Get(ctx context.Context, id uint64) (*models.Feedback, error)
	ListForTarget(ctx context.Context, target models.Target) ([]*models.Feedback, error)
	AddComment(ctx context.Context, target models.Target, username string, content *string) (*models.Feedback, error)
}

type FeedbackService struct {
	FeedbackDAO *dao.FeedbackDAO
	AccountDAO  *dao.AccountDAO
	NoteDAO     *dao.NoteDAO
	MediaDAO    *dao.MediaDAO
}

// targetLookup 检查 (table_name, row_id) 指向的行是否存在
type targetLookup func(ctx context.Context, id uint64) error

func (s *FeedbackService) lookups() map[models.TargetKind]targetLookup {
	return map[models.TargetKind]targetLookup{
		models.TargetNote: func(ctx context.Context, id uint64) error {
			_, err := s.NoteDAO.FindById(ctx, id)
			return err
		},
		models.TargetMedia: func(ctx context.Context, id uint64) error {
			_, err := s.MediaDAO.FindById(ctx, id)
			return err
		},
	}
}

// resolve 校验多态目标存在
func (s *FeedbackService) resolve(ctx context.Context, target models.Target) error {
	lookup, ok := s.lookups()[target.Kind]
	if !ok {
		return newError(ErrNotFound, "unknown feedback target %q", target.Kind)
	}
	if err := lookup(ctx, target.ID); err != nil {
		return lookupErr(err, "%s %d is not found", target.Kind, target.ID)
	}
	return nil
}

func (s *FeedbackService) Get(ctx context.Context, id uint64) (*models.Feedback, error) {
	f, err := s.FeedbackDAO.GetByID(ctx, id)
	if err != nil {
		return nil, lookupErr(err, "Feedback %d is not found", id)
	}
	return f, nil
}

// ListForTarget 只返回 table_name 与 row_id 都匹配的反馈
func (s *FeedbackService) ListForTarget(ctx context.Context, target models.Target) ([]*models.Feedback, error) {
	if err := s.resolve(ctx, target); err != nil {
		return nil, err
	}
	items, err := s.FeedbackDAO.FindByTarget(ctx, target)
	if err != nil {
		return nil, storeFailure(err)
	}
	return items, nil
}

// AddComment 给笔记或媒体添加评论, content 为 nil 表示表单里没有该字段, 空串照常保存
func (s *FeedbackService) AddComment(ctx context.Context, target models.Target, username string, content *string) (*models.Feedback, error) {
	if content == nil {
		return nil, newError(ErrMissingParameters, "some parameters are missing")
	}
	if err := s.resolve(ctx, target); err != nil {
		return nil, err
	}
	account, err := s.AccountDAO.FindByUsername(ctx, username)
	if err != nil {
		return nil, lookupErr(err, "Account %s is not found", username)
	}

	feedback := models.NewFeedback(account.ID, models.FeedbackComment, *content, target)
	if err := s.FeedbackDAO.Create(ctx, feedback); err != nil {
		return nil, storeFailure(fmt.Errorf("create feedback on %s %d: %w", target.Kind, target.ID, err))
	}
	feedback.Account = account

	log.L.Info("feedback created",
		zap.Uint64("id", feedback.ID),
		zap.String("table_name", target.Kind.String()),
		zap.Uint64("row_id", target.ID),
	)
	return feedback, nil
}
