// Package testutil 测试用的内存数据库与造数工具
package testutil

import (
	"NatureNet/models"
	"NatureNet/pkg/database"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB 每个测试独立的内存 sqlite, 已建表
func NewDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func CreateAccount(t testing.TB, db *gorm.DB, username string) *models.Account {
	t.Helper()
	a := models.NewAccount(username)
	require.NoError(t, db.Create(a).Error)
	return a
}

func CreateSite(t testing.TB, db *gorm.DB, name string) *models.Site {
	t.Helper()
	s := models.NewSite(name, name+" site")
	require.NoError(t, db.Create(s).Error)
	return s
}

func CreateContext(t testing.TB, db *gorm.DB, kind, name string) *models.Context {
	t.Helper()
	c := models.NewContext(kind, name, name, "")
	require.NoError(t, db.Create(c).Error)
	return c
}

func CreateNote(t testing.TB, db *gorm.DB, account *models.Account, ctx *models.Context, content string) *models.Note {
	t.Helper()
	n := models.NewNote(account.ID, ctx.ID, "Observation", content)
	require.NoError(t, db.Create(n).Error)
	return n
}

func CreateMedia(t testing.TB, db *gorm.DB, note *models.Note, title string) *models.Media {
	t.Helper()
	m := models.NewMedia(note.ID, "Photo", title, models.DefaultMediaLink)
	require.NoError(t, db.Create(m).Error)
	return m
}

func CreateFeedback(t testing.TB, db *gorm.DB, account *models.Account, target models.Target, content string) *models.Feedback {
	t.Helper()
	f := models.NewFeedback(account.ID, models.FeedbackComment, content, target)
	require.NoError(t, db.Create(f).Error)
	return f
}
