package service

import (
	"NatureNet/dao"
	"NatureNet/models"
	"NatureNet/pkg/log"
	"context"

	"go.uber.org/zap"
)

var _ IAccountService = (*AccountService)(nil)

type IAccountService interface {
	Count(ctx context.Context) (int64, error)
	Create(ctx context.Context, username string) (*models.Account, error)
	Get(ctx context.Context, username string) (*models.Account, error)
	List(ctx context.Context) ([]*models.Account, error)
	Notes(ctx context.Context, username string) ([]*models.Note, error)
	Feedbacks(ctx context.Context, username string) ([]*models.Feedback, error)
}

type AccountService struct {
	AccountDAO  *dao.AccountDAO
	NoteDAO     *dao.NoteDAO
	FeedbackDAO *dao.FeedbackDAO
}

func (s *AccountService) Count(ctx context.Context) (int64, error) {
	n, err := s.AccountDAO.Count(ctx)
	if err != nil {
		return 0, storeFailure(err)
	}
	return n, nil
}

// Create 创建账号, 用户名已存在时返回 ErrDuplicateUsername
func (s *AccountService) Create(ctx context.Context, username string) (*models.Account, error) {
	if username == "" {
		return nil, newError(ErrMissingParameters, "Username is not specified")
	}

	exist, err := s.AccountDAO.IsUsernameExist(ctx, username)
	if err != nil {
		return nil, storeFailure(err)
	}
	if exist {
		return nil, newError(ErrDuplicateUsername, "Username %s is already taken", username)
	}

	account := models.NewAccount(username)
	if err := s.AccountDAO.Create(ctx, account); err != nil {
		// 并发创建时由唯一索引兜底
		if again, _ := s.AccountDAO.IsUsernameExist(ctx, username); again {
			return nil, newError(ErrDuplicateUsername, "Username %s is already taken", username)
		}
		return nil, storeFailure(err)
	}

	log.L.Info("account created", zap.Uint64("id", account.ID), zap.String("username", username))
	return account, nil
}

func (s *AccountService) Get(ctx context.Context, username string) (*models.Account, error) {
	account, err := s.AccountDAO.FindByUsername(ctx, username)
	if err != nil {
		return nil, lookupErr(err, "Account %s is not found", username)
	}
	return account, nil
}

func (s *AccountService) List(ctx context.Context) ([]*models.Account, error) {
	items, err := s.AccountDAO.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}
	return items, nil
}

// Notes 账号下的全部笔记
func (s *AccountService) Notes(ctx context.Context, username string) ([]*models.Note, error) {
	account, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	notes, err := s.NoteDAO.FindByAccountID(ctx, account.ID)
	if err != nil {
		return nil, storeFailure(err)
	}
	return notes, nil
}

// Feedbacks 账号发表的全部反馈
func (s *AccountService) Feedbacks(ctx context.Context, username string) ([]*models.Feedback, error) {
	account, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	items, err := s.FeedbackDAO.FindByAccountID(ctx, account.ID)
	if err != nil {
		return nil, storeFailure(err)
	}
	return items, nil
}
