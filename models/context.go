package models

import (
	"encoding/json"
	"errors"

	"gorm.io/datatypes"
)

const (
	ContextActivity = "Activity"
	ContextLandmark = "Landmark"
)

var ErrNotLandmark = errors.New("only Landmark contexts carry coordinates")

// Context 笔记所处的场景, extras 的结构由 kind 决定
type Context struct {
	ID          uint64         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Kind        string         `gorm:"column:kind;type:varchar(40);not null;index:idx_context_kind" json:"kind"`
	Name        string         `gorm:"column:name;type:varchar(80);not null;index:idx_context_name" json:"name"`
	Title       string         `gorm:"column:title;type:varchar(255);not null;default:''" json:"title"`
	Description string         `gorm:"column:description;type:text" json:"description"`
	Extras      datatypes.JSON `gorm:"column:extras" json:"extras,omitempty"`
	SiteID      *uint64        `gorm:"column:site_id;index:idx_context_site" json:"site_id"`

	Site  *Site  `gorm:"foreignKey:SiteID" json:"-"`
	Notes []Note `gorm:"foreignKey:ContextID" json:"-"`
}

// LandmarkExtras Landmark 类型的 extras
type LandmarkExtras struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewContext(kind, name, title, description string) *Context {
	return &Context{Kind: kind, Name: name, Title: title, Description: description}
}

func (Context) TableName() string {
	return "context"
}

// SetLocation 写入经纬度, 非 Landmark 返回 ErrNotLandmark
func (c *Context) SetLocation(lat, lng float64) error {
	if c.Kind != ContextLandmark {
		return ErrNotLandmark
	}
	b, err := json.Marshal(LandmarkExtras{Latitude: lat, Longitude: lng})
	if err != nil {
		return err
	}
	c.Extras = datatypes.JSON(b)
	return nil
}

// Location 读取 Landmark 的经纬度
func (c *Context) Location() (LandmarkExtras, bool) {
	var loc LandmarkExtras
	if c.Kind != ContextLandmark || len(c.Extras) == 0 {
		return loc, false
	}
	if err := json.Unmarshal(c.Extras, &loc); err != nil {
		return loc, false
	}
	return loc, true
}
