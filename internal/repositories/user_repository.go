package repositories

import (
	"errors"
	"strings"
	"time"

	"devstudio_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrEmailTaken        = errors.New("email already taken")
	ErrNameTaken         = errors.New("name already taken")
	ErrResetTokenInvalid = errors.New("reset token not found or expired")
)

// UserRepository - хранилище аккаунтов. Неактивные аккаунты исключены
// из всех выборок по умолчанию. Пароль и поля токенов меняются только
// через выделенные методы - общего "сохранить все поля" пути нет.
type UserRepository interface {
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	UpdateProfile(userID, name, photo string) error
	SetRole(userID, role string) error
	Delete(userID string) error
	FindAll(limit, offset int) ([]models.User, error)
	CountAll() (int64, error)

	// Верификация email
	SetVerification(userID, code string, expires time.Time) error
	MarkVerified(userID string) error

	// Сброс и смена пароля
	SetPassword(userID, passwordHash string, changedAt time.Time) error
	SetResetToken(userID, digest string, expires time.Time) error
	// ConsumeResetToken атомарно находит аккаунт по дайджесту с живым
	// сроком, ставит новый хеш и очищает поля сброса. Один UPDATE -
	// два конкурентных потребления одного токена невозможны.
	ConsumeResetToken(digest, newPasswordHash string, now time.Time) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) active() *gorm.DB {
	return r.db.Where("is_active = ?", true)
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.active().First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.active().First(&user, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	user.Email = strings.ToLower(user.Email)

	// Предварительная проверка - только ради дружелюбной ошибки.
	// Источник истины - уникальный индекс в БД.
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrEmailTaken
	}
	if err := r.db.Model(&models.User{}).Where("name = ?", user.Name).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrNameTaken
	}

	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateProfile(userID, name, photo string) error {
	updates := map[string]interface{}{}
	if name != "" {
		updates["name"] = name
	}
	if photo != "" {
		updates["photo"] = photo
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.Model(&models.User{}).
		Where("id = ? AND is_active = ?", userID, true).
		Updates(updates)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrNameTaken
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetRole(userID, role string) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND is_active = ?", userID, true).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) Delete(userID string) error {
	result := r.db.Delete(&models.User{}, "id = ?", userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) FindAll(limit, offset int) ([]models.User, error) {
	var users []models.User
	err := r.active().Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, err
}

func (r *UserRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *UserRepositoryImpl) SetVerification(userID, code string, expires time.Time) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND is_active = ?", userID, true).
		Updates(map[string]interface{}{
			"verification_code":    code,
			"verification_expires": expires,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) MarkVerified(userID string) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND is_active = ?", userID, true).
		Updates(map[string]interface{}{
			"is_verified":          true,
			"verification_code":    "",
			"verification_expires": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetPassword(userID, passwordHash string, changedAt time.Time) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND is_active = ?", userID, true).
		Updates(map[string]interface{}{
			"password_hash":       passwordHash,
			"password_changed_at": changedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetResetToken(userID, digest string, expires time.Time) error {
	result := r.db.Model(&models.User{}).
		Where("id = ? AND is_active = ?", userID, true).
		Updates(map[string]interface{}{
			"password_reset_token":   digest,
			"password_reset_expires": expires,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) ConsumeResetToken(digest, newPasswordHash string, now time.Time) error {
	if digest == "" {
		return ErrResetTokenInvalid
	}

	result := r.db.Model(&models.User{}).
		Where("password_reset_token = ? AND password_reset_expires > ? AND is_active = ?", digest, now, true).
		Updates(map[string]interface{}{
			"password_hash":          newPasswordHash,
			"password_reset_token":   "",
			"password_reset_expires": nil,
			"password_changed_at":    now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResetTokenInvalid
	}
	return nil
}
