package models

// Service - услуга студии на публичном сайте
type Service struct {
	BaseModel
	Title        string `gorm:"size:100;not null" json:"title"`
	Slug         string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Subtitle     string `gorm:"size:200" json:"subtitle"`
	Description  string `gorm:"size:2000;not null" json:"description"`
	Technologies string `gorm:"size:500" json:"technologies"` // через запятую
	DisplayOrder int    `gorm:"default:0" json:"display_order"`
	IsPublished  bool   `gorm:"default:true" json:"is_published"`
}
