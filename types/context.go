package types

import "encoding/json"

type ContextHash struct {
	ID          uint64          `json:"id"`
	Kind        string          `json:"kind"`
	Name        string          `json:"name"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Extras      json.RawMessage `json:"extras,omitempty"`
	SiteID      *uint64         `json:"site_id"`
}
