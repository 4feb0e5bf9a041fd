package models

// HomePageHero - контент hero-блока главной страницы.
// Запись одна, администратор ее перезаписывает (upsert).
type HomePageHero struct {
	BaseModel
	Headline    string `gorm:"size:200;not null" json:"headline"`
	Subheadline string `gorm:"size:500" json:"subheadline"`
	CTAText     string `gorm:"size:100" json:"cta_text"`
	CTALink     string `gorm:"size:200" json:"cta_link"`
	ImageURL    string `gorm:"size:300" json:"image_url"`
}
