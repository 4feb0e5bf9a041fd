package models

import "time"

// User - аккаунт пользователя.
// PasswordHash никогда не сериализуется наружу (json:"-") и не
// обновляется через общий путь обновления профиля - только через
// операции смены пароля в AuthService.
type User struct {
	BaseModel
	Name         string   `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Photo        string   `gorm:"default:'default.jpg'" json:"photo"`
	Role         UserRole `gorm:"type:varchar(20);default:'user';index" json:"role"`

	// Статус аккаунта. Неактивные аккаунты исключаются из выборок
	// по умолчанию.
	IsActive   bool `gorm:"default:true;index" json:"is_active"`
	IsVerified bool `gorm:"default:false" json:"is_verified"`

	// Поля верификации email: заполнены только пока верификация ожидается
	VerificationCode    string     `json:"-"`
	VerificationExpires *time.Time `json:"-"`

	// Поля сброса пароля: хранится только SHA-256 дайджест сырого токена
	PasswordResetToken   string     `json:"-"`
	PasswordResetExpires *time.Time `json:"-"`

	PasswordChangedAt *time.Time `json:"-"`
}

// HasPendingVerification сообщает, ожидается ли верификация email
func (u *User) HasPendingVerification() bool {
	return u.VerificationCode != "" && u.VerificationExpires != nil
}
