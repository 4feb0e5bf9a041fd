package models

// Review - отзыв клиента о завершенном проекте.
// Публично видны только отзывы со статусом approved.
type Review struct {
	BaseModel
	ClientID   string       `gorm:"type:uuid;not null;index" json:"client_id"`
	Client     *User        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	ProjectID  string       `gorm:"type:uuid;not null;index" json:"project_id"`
	Project    *Project     `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Rating     int          `gorm:"not null" json:"rating"`
	ReviewText string       `gorm:"size:1000;not null" json:"review_text"`
	Status     ReviewStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
}
