package utils

import (
	"NatureNet/models"
	"NatureNet/types"
	"encoding/json"
)

func AccountToHash(a *models.Account) *types.AccountHash {
	if a == nil {
		return nil
	}
	return &types.AccountHash{
		ID:         a.ID,
		Username:   a.Username,
		Name:       a.Name,
		Email:      a.Email,
		Consent:    a.Consent,
		IconURL:    a.IconURL,
		CreatedAt:  a.CreatedAt,
		ModifiedAt: a.ModifiedAt,
	}
}

func SiteToHash(s *models.Site) *types.SiteHash {
	if s == nil {
		return nil
	}
	return &types.SiteHash{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		ImageURL:    s.ImageURL,
	}
}

func ContextToHash(c *models.Context) *types.ContextHash {
	if c == nil {
		return nil
	}
	h := &types.ContextHash{
		ID:          c.ID,
		Kind:        c.Kind,
		Name:        c.Name,
		Title:       c.Title,
		Description: c.Description,
		SiteID:      c.SiteID,
	}
	if len(c.Extras) > 0 && json.Valid(c.Extras) {
		h.Extras = json.RawMessage(c.Extras)
	}
	return h
}

func NoteToHash(n *models.Note) *types.NoteHash {
	if n == nil {
		return nil
	}
	h := &types.NoteHash{
		ID:         n.ID,
		Kind:       n.Kind,
		Content:    n.Content,
		AccountID:  n.AccountID,
		ContextID:  n.ContextID,
		Latitude:   n.Latitude,
		Longitude:  n.Longitude,
		CreatedAt:  n.CreatedAt,
		ModifiedAt: n.ModifiedAt,
		Account:    AccountToHash(n.Account),
		Context:    ContextToHash(n.Context),
	}
	for i := range n.Medias {
		h.Medias = append(h.Medias, MediaToHash(&n.Medias[i]))
	}
	return h
}

func MediaToHash(m *models.Media) *types.MediaHash {
	if m == nil {
		return nil
	}
	return &types.MediaHash{
		ID:        m.ID,
		Kind:      m.Kind,
		Title:     m.Title,
		Link:      m.Link,
		NoteID:    m.NoteID,
		CreatedAt: m.CreatedAt,
	}
}

func FeedbackToHash(f *models.Feedback) *types.FeedbackHash {
	if f == nil {
		return nil
	}
	return &types.FeedbackHash{
		ID:         f.ID,
		Kind:       f.Kind,
		Content:    f.Content,
		AccountID:  f.AccountID,
		TableName:  f.TargetKind.String(),
		RowID:      f.RowID,
		CreatedAt:  f.CreatedAt,
		ModifiedAt: f.ModifiedAt,
		Account:    AccountToHash(f.Account),
	}
}

// MapSlice 批量转换, 结果永不为 nil 以便序列化成 []
func MapSlice[T any, R any](items []*T, fn func(*T) *R) []*R {
	out := make([]*R, 0, len(items))
	for _, it := range items {
		out = append(out, fn(it))
	}
	return out
}
