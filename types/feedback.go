package types

import "time"

type FeedbackHash struct {
	ID         uint64       `json:"id"`
	Kind       string       `json:"kind"`
	Content    string       `json:"content"`
	AccountID  uint64       `json:"account_id"`
	TableName  string       `json:"table_name"`
	RowID      uint64       `json:"row_id"`
	CreatedAt  time.Time    `json:"created_at"`
	ModifiedAt time.Time    `json:"modified_at"`
	Account    *AccountHash `json:"account,omitempty"`
}
