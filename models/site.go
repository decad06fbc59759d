package models

type Site struct {
	ID          uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"column:name;type:varchar(80);not null;index:idx_site_name" json:"name"`
	Description string `gorm:"column:description;type:text" json:"description"`
	ImageURL    string `gorm:"column:image_url;type:varchar(255);not null;default:''" json:"image_url"`

	Contexts []Context `gorm:"foreignKey:SiteID" json:"-"`
}

func NewSite(name, description string) *Site {
	return &Site{Name: name, Description: description}
}

func (Site) TableName() string {
	return "site"
}
