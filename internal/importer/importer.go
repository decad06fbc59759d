// Package importer 从 xlsx 工作簿批量导入站点、账号、场景、笔记和反馈.
//
// 每个工作表的 A1 存放行数, 数据从第 2 行开始.
package importer

import (
	"NatureNet/dao"
	"NatureNet/models"
	"NatureNet/pkg/log"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	SheetSite     = "Site"
	SheetAccount  = "Account"
	SheetContext  = "Context"
	SheetNote     = "Note"
	SheetFeedback = "Feedback"

	// DefaultUsername deployment 模式下唯一的账号
	DefaultUsername = "default"
)

var (
	// 账号的 created_at 从该日起逐行加一天
	accountEpoch = time.Date(2014, 3, 1, 0, 0, 0, 0, time.UTC)
	// 笔记缺少 created_at 时使用
	defaultNoteTime = time.Unix(1396325280, 0).UTC()
)

type Stats struct {
	Sites     int `json:"sites"`
	Accounts  int `json:"accounts"`
	Contexts  int `json:"contexts"`
	Notes     int `json:"notes"`
	Medias    int `json:"medias"`
	Feedbacks int `json:"feedbacks"`
}

type Importer struct {
	DB *gorm.DB
	// Deployment 只导入 Site 和 Context, 账号只建 default
	Deployment bool
}

// RunFile 打开工作簿并导入
func (im *Importer) RunFile(ctx context.Context, path string) (*Stats, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()
	return im.Run(ctx, f)
}

// Run 在一个事务中完成全部导入, 任何一行失败整体回滚
func (im *Importer) Run(ctx context.Context, f *excelize.File) (*Stats, error) {
	stats := &Stats{}
	err := im.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		w := &worker{
			ctx:       ctx,
			book:      f,
			stats:     stats,
			sites:     dao.NewSiteDAO(tx),
			accounts:  dao.NewAccountDAO(tx),
			contexts:  dao.NewContextDAO(tx),
			notes:     dao.NewNoteDAO(tx),
			medias:    dao.NewMediaDAO(tx),
			feedbacks: dao.NewFeedbackDAO(tx),
		}
		if err := w.importSites(); err != nil {
			return err
		}
		if im.Deployment {
			if err := w.createDefaultAccount(); err != nil {
				return err
			}
		} else if err := w.importAccounts(); err != nil {
			return err
		}
		if err := w.importContexts(); err != nil {
			return err
		}
		if im.Deployment {
			return nil
		}
		if err := w.importNotes(); err != nil {
			return err
		}
		return w.importFeedbacks()
	})
	if err != nil {
		return nil, err
	}

	log.L.Info("import finished", zap.Any("stats", stats))
	return stats, nil
}

type worker struct {
	ctx   context.Context
	book  *excelize.File
	stats *Stats

	sites     *dao.SiteDAO
	accounts  *dao.AccountDAO
	contexts  *dao.ContextDAO
	notes     *dao.NoteDAO
	medias    *dao.MediaDAO
	feedbacks *dao.FeedbackDAO
}

// rows 依次回调第 2 ~ n+1 行, n 取自 A1
func (w *worker) rows(sheet string, fn func(r row) error) error {
	raw, err := w.book.GetCellValue(sheet, "A1")
	if err != nil {
		return fmt.Errorf("sheet %s: %w", sheet, err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("sheet %s: A1 must hold the row count, got %q", sheet, raw)
	}
	for i := 2; i < 2+n; i++ {
		if err := fn(row{book: w.book, sheet: sheet, index: i}); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, i, err)
		}
	}
	return nil
}

func (w *worker) importSites() error {
	return w.rows(SheetSite, func(r row) error {
		site := models.NewSite(r.str("B"), r.str("C"))
		site.ImageURL = r.str("D")
		if err := w.sites.Create(w.ctx, site); err != nil {
			return err
		}
		w.stats.Sites++
		log.L.Debug("create site", zap.String("name", site.Name))
		return nil
	})
}

func (w *worker) importAccounts() error {
	created := accountEpoch
	return w.rows(SheetAccount, func(r row) error {
		created = created.AddDate(0, 0, 1)
		if r.str("A") == "" {
			return nil
		}

		account := models.NewAccount(r.str("B"))
		account.Name = r.str("C")
		account.Email = r.str("D")
		account.Consent = r.flag("F")
		account.IconURL = r.str("G")
		account.CreatedAt = created
		account.ModifiedAt = created
		if password := r.str("E"); password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			account.Password = string(hash)
		}

		if err := w.accounts.Create(w.ctx, account); err != nil {
			return err
		}
		w.stats.Accounts++
		return nil
	})
}

func (w *worker) createDefaultAccount() error {
	account := models.NewAccount(DefaultUsername)
	account.CreatedAt = accountEpoch.AddDate(0, 0, 1)
	account.ModifiedAt = account.CreatedAt
	if err := w.accounts.Create(w.ctx, account); err != nil {
		return err
	}
	w.stats.Accounts++
	return nil
}

func (w *worker) importContexts() error {
	return w.rows(SheetContext, func(r row) error {
		if r.str("A") == "" {
			return nil
		}
		c := models.NewContext(r.str("B"), r.str("C"), r.str("D"), r.str("E"))

		if siteName := r.str("F"); siteName != "" {
			site, err := w.sites.FindByName(w.ctx, siteName)
			if err != nil {
				return fmt.Errorf("site %q: %w", siteName, err)
			}
			c.SiteID = &site.ID
		}

		if c.Kind == models.ContextLandmark {
			lat, err := r.float("G")
			if err != nil {
				return err
			}
			lng, err := r.float("H")
			if err != nil {
				return err
			}
			if err := c.SetLocation(lat, lng); err != nil {
				return err
			}
		}

		if err := w.contexts.Create(w.ctx, c); err != nil {
			return err
		}
		w.stats.Contexts++
		return nil
	})
}

func (w *worker) importNotes() error {
	return w.rows(SheetNote, func(r row) error {
		if r.str("A") == "" {
			return nil
		}
		username, contextName := r.str("B"), r.str("C")
		account, err := w.accounts.FindByUsername(w.ctx, username)
		if err != nil {
			return fmt.Errorf("account %q: %w", username, err)
		}
		noteCtx, err := w.contexts.FindByName(w.ctx, contextName)
		if err != nil {
			return fmt.Errorf("context %q: %w", contextName, err)
		}

		note := models.NewNote(account.ID, noteCtx.ID, r.str("D"), r.str("E"))
		if note.Latitude, err = r.optFloat("I"); err != nil {
			return err
		}
		if note.Longitude, err = r.optFloat("J"); err != nil {
			return err
		}
		created := defaultNoteTime
		if ts := r.str("K"); ts != "" {
			sec, err := strconv.ParseFloat(ts, 64)
			if err != nil {
				return fmt.Errorf("created_at %q: %w", ts, err)
			}
			created = time.Unix(int64(sec), 0).UTC()
		}
		note.CreatedAt = created
		note.ModifiedAt = created

		if err := w.notes.Create(w.ctx, note); err != nil {
			return err
		}
		w.stats.Notes++

		if kind := r.str("F"); kind != "" {
			link := r.str("H")
			if link == "" {
				link = models.DefaultMediaLink
			}
			media := models.NewMedia(note.ID, kind, r.str("G"), link)
			media.CreatedAt = created
			if err := w.medias.Create(w.ctx, media); err != nil {
				return err
			}
			w.stats.Medias++
		}
		return nil
	})
}

func (w *worker) importFeedbacks() error {
	return w.rows(SheetFeedback, func(r row) error {
		if r.str("A") == "" {
			return nil
		}
		kind := models.TargetKind(r.str("B"))
		if !kind.Valid() {
			return fmt.Errorf("table_name %q is not one of %v", kind, models.TargetKinds)
		}
		rowID, err := strconv.ParseUint(r.str("C"), 10, 64)
		if err != nil {
			return fmt.Errorf("row_id %q: %w", r.str("C"), err)
		}
		username := r.str("F")
		account, err := w.accounts.FindByUsername(w.ctx, username)
		if err != nil {
			return fmt.Errorf("account %q: %w", username, err)
		}

		target := models.Target{Kind: kind, ID: rowID}
		if err := w.checkTarget(target); err != nil {
			return err
		}
		feedback := models.NewFeedback(account.ID, r.str("D"), r.str("E"), target)
		if err := w.feedbacks.Create(w.ctx, feedback); err != nil {
			return err
		}
		w.stats.Feedbacks++
		return nil
	})
}

func (w *worker) checkTarget(target models.Target) error {
	var err error
	switch target.Kind {
	case models.TargetNote:
		_, err = w.notes.FindById(w.ctx, target.ID)
	case models.TargetMedia:
		_, err = w.medias.FindById(w.ctx, target.ID)
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %d does not exist", target.Kind, target.ID)
	}
	return err
}

type row struct {
	book  *excelize.File
	sheet string
	index int
}

func (r row) str(col string) string {
	v, _ := r.book.GetCellValue(r.sheet, col+strconv.Itoa(r.index))
	return strings.TrimSpace(v)
}

func (r row) flag(col string) bool {
	b, _ := strconv.ParseBool(r.str(col))
	return b
}

func (r row) float(col string) (float64, error) {
	v, err := strconv.ParseFloat(r.str(col), 64)
	if err != nil {
		return 0, fmt.Errorf("column %s: %w", col, err)
	}
	return v, nil
}

func (r row) optFloat(col string) (float64, error) {
	if r.str(col) == "" {
		return 0, nil
	}
	return r.float(col)
}
