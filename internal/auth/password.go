package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrEmptyPassword = errors.New("password must not be empty")

// Hasher - однонаправленное хеширование паролей (bcrypt).
// Стоимость фиксируется при создании и не меняется на лету;
// для проверки bcrypt извлекает ее из самого дайджеста.
type Hasher struct {
	cost int
}

// NewHasher создает хешер с указанной стоимостью bcrypt.
// Значения вне допустимого диапазона приводятся к стоимости 12.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = 12
	}
	return &Hasher{cost: cost}
}

// Hash создает bcrypt хеш пароля. Хешируется только свежеустановленный
// пароль - повторное хеширование уже сохраненного дайджеста исключено
// тем, что единственные вызовы идут из операций смены пароля.
func (h *Hasher) Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	return string(bytes), err
}

// Verify проверяет пароль против хеша.
// На пустом пароле или пустом хеше всегда false, без ошибок.
func (h *Hasher) Verify(password, digest string) bool {
	if password == "" || digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
