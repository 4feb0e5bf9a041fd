package auth

import "errors"

// Роли аккаунтов
const (
	RoleAdmin = "admin"
	RoleTeam  = "team"
	RoleUser  = "user"
)

// ValidateRole проверяет валидность роли
func ValidateRole(role string) error {
	switch role {
	case RoleAdmin, RoleTeam, RoleUser:
		return nil
	default:
		return errors.New("invalid role")
	}
}

// IsAdmin проверяет, является ли роль администраторской
func IsAdmin(role string) bool {
	return role == RoleAdmin
}
