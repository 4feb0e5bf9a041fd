package models

// Contact - сообщение с публичной формы обратной связи
type Contact struct {
	BaseModel
	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Subject string `gorm:"size:200" json:"subject"`
	Message string `gorm:"size:2000;not null" json:"message"`
	IsRead  bool   `gorm:"default:false;index" json:"is_read"`
}
