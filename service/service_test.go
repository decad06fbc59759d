package service

import (
	"NatureNet/dao"
	"NatureNet/internal/testutil"
	"testing"

	"gorm.io/gorm"
)

type services struct {
	db       *gorm.DB
	account  *AccountService
	note     *NoteService
	media    *MediaService
	context  *ContextService
	site     *SiteService
	feedback *FeedbackService
}

func strPtr(s string) *string {
	return &s
}

func newServices(t *testing.T) *services {
	db := testutil.NewDB(t)
	accounts := dao.NewAccountDAO(db)
	notes := dao.NewNoteDAO(db)
	contexts := dao.NewContextDAO(db)
	medias := dao.NewMediaDAO(db)
	feedbacks := dao.NewFeedbackDAO(db)
	sites := dao.NewSiteDAO(db)

	return &services{
		db:       db,
		account:  &AccountService{AccountDAO: accounts, NoteDAO: notes, FeedbackDAO: feedbacks},
		note:     &NoteService{NoteDAO: notes, AccountDAO: accounts, ContextDAO: contexts},
		media:    &MediaService{MediaDAO: medias, NoteDAO: notes},
		context:  &ContextService{ContextDAO: contexts, NoteDAO: notes},
		site:     &SiteService{SiteDAO: sites, ContextDAO: contexts},
		feedback: &FeedbackService{FeedbackDAO: feedbacks, AccountDAO: accounts, NoteDAO: notes, MediaDAO: medias},
	}
}
