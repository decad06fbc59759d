package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const FeedbackComment = "Comment"

// TargetKind 反馈挂载的对象类型, 与 table_name 列一一对应
type TargetKind string

const (
	TargetNote  TargetKind = "Note"
	TargetMedia TargetKind = "Media"
)

// TargetKinds 全部可挂载类型
var TargetKinds = []TargetKind{TargetNote, TargetMedia}

func (k TargetKind) Valid() bool {
	switch k {
	case TargetNote, TargetMedia:
		return true
	}
	return false
}

func (k TargetKind) String() string {
	return string(k)
}

func (k TargetKind) Value() (driver.Value, error) {
	return string(k), nil
}

func (k *TargetKind) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*k = TargetKind(v)
	case []byte:
		*k = TargetKind(v)
	case nil:
		*k = ""
	default:
		return fmt.Errorf("unsupported table_name type %T", src)
	}
	return nil
}

// Target 多态引用 (table_name, row_id), 不走外键
type Target struct {
	Kind TargetKind
	ID   uint64
}

// Feedback 评论等反馈, 通过 (table_name, row_id) 挂在 Note 或 Media 上
type Feedback struct {
	ID         uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Kind       string     `gorm:"column:kind;type:varchar(40);not null;default:''" json:"kind"`
	Content    string     `gorm:"column:content;type:text" json:"content"`
	AccountID  uint64     `gorm:"column:account_id;not null;index:idx_feedback_account" json:"account_id"`
	TargetKind TargetKind `gorm:"column:table_name;type:varchar(40);not null;index:idx_feedback_target,priority:1" json:"table_name"`
	RowID      uint64     `gorm:"column:row_id;not null;index:idx_feedback_target,priority:2" json:"row_id"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	ModifiedAt time.Time  `gorm:"column:modified_at;autoUpdateTime" json:"modified_at"`

	Account *Account `gorm:"foreignKey:AccountID" json:"-"`
}

func NewFeedback(accountID uint64, kind, content string, target Target) *Feedback {
	return &Feedback{
		AccountID:  accountID,
		Kind:       kind,
		Content:    content,
		TargetKind: target.Kind,
		RowID:      target.ID,
	}
}

func (f *Feedback) Target() Target {
	return Target{Kind: f.TargetKind, ID: f.RowID}
}

func (Feedback) TableName() string {
	return "feedback"
}

// All 迁移用的全部表
func All() []any {
	return []any{&Site{}, &Account{}, &Context{}, &Note{}, &Media{}, &Feedback{}}
}
