package repositories

import (
	"testing"
	"time"

	"devstudio_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUser(name, email string) *models.User {
	return &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: "$2a$10$fakefakefakefakefakefake",
		Role:         models.UserRoleUser,
		IsActive:     true,
	}
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := newTestUser("Alice", "Alice@Test.com")
	require.NoError(t, repo.Create(user))
	assert.NotEmpty(t, user.ID, "BeforeCreate должен назначить uuid")

	// Email нормализуется к нижнему регистру при создании
	found, err := repo.FindByEmail("alice@test.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "alice@test.com", found.Email)

	byID, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", byID.Name)
}

func TestUserRepository_DuplicateEmailAndName(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(newTestUser("Alice", "alice@test.com")))

	// Тот же email, другое имя
	err := repo.Create(newTestUser("Bob", "alice@test.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)

	// То же имя, другой email
	err = repo.Create(newTestUser("Alice", "other@test.com"))
	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestUserRepository_InactiveExcluded(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user := newTestUser("Alice", "alice@test.com")
	require.NoError(t, repo.Create(user))

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	_, err := repo.FindByID(user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.FindByEmail("alice@test.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := newTestUser("Alice", "alice@test.com")
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.Delete(user.ID))

	// Повторное удаление неотличимо от удаления несуществующего
	assert.ErrorIs(t, repo.Delete(user.ID), ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete("no-such-id"), ErrUserNotFound)
}

func TestUserRepository_Verification(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := newTestUser("Alice", "alice@test.com")
	require.NoError(t, repo.Create(user))

	expires := time.Now().Add(10 * time.Minute)
	require.NoError(t, repo.SetVerification(user.ID, "123456", expires))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "123456", found.VerificationCode)
	assert.True(t, found.HasPendingVerification())

	require.NoError(t, repo.MarkVerified(user.ID))

	found, err = repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.True(t, found.IsVerified)
	assert.Empty(t, found.VerificationCode)
	assert.Nil(t, found.VerificationExpires)
}

func TestUserRepository_ConsumeResetToken(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := newTestUser("Alice", "alice@test.com")
	require.NoError(t, repo.Create(user))

	now := time.Now()
	require.NoError(t, repo.SetResetToken(user.ID, "digest-abc", now.Add(10*time.Minute)))

	// Первое потребление устанавливает новый хеш и чистит поля сброса
	require.NoError(t, repo.ConsumeResetToken("digest-abc", "new-hash", now))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", found.PasswordHash)
	assert.Empty(t, found.PasswordResetToken)
	assert.Nil(t, found.PasswordResetExpires)
	assert.NotNil(t, found.PasswordChangedAt)

	// Повторное потребление того же токена - отказ
	assert.ErrorIs(t, repo.ConsumeResetToken("digest-abc", "another-hash", now), ErrResetTokenInvalid)
}

func TestUserRepository_ConsumeResetToken_Expired(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := newTestUser("Alice", "alice@test.com")
	require.NoError(t, repo.Create(user))

	expires := time.Now().Add(10 * time.Minute)
	require.NoError(t, repo.SetResetToken(user.ID, "digest-abc", expires))

	// Ровно на границе окна и после нее токен мертв
	err := repo.ConsumeResetToken("digest-abc", "new-hash", expires)
	assert.ErrorIs(t, err, ErrResetTokenInvalid)
	err = repo.ConsumeResetToken("digest-abc", "new-hash", expires.Add(time.Minute))
	assert.ErrorIs(t, err, ErrResetTokenInvalid)

	// И пароль остался прежним
	found, findErr := repo.FindByID(user.ID)
	require.NoError(t, findErr)
	assert.Equal(t, "$2a$10$fakefakefakefakefakefake", found.PasswordHash)
}

func TestUserRepository_UpdateProfileCannotTouchPassword(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	user := newTestUser("Alice", "alice@test.com")
	require.NoError(t, repo.Create(user))

	require.NoError(t, repo.UpdateProfile(user.ID, "Alice Cooper", "new.jpg"))

	found, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice Cooper", found.Name)
	assert.Equal(t, "new.jpg", found.Photo)
	// Путь обновления профиля структурно не достает до пароля
	assert.Equal(t, "$2a$10$fakefakefakefakefakefake", found.PasswordHash)
}

func TestUserRepository_FindAllPaginated(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	require.NoError(t, repo.Create(newTestUser("User A", "a@test.com")))
	require.NoError(t, repo.Create(newTestUser("User B", "b@test.com")))
	require.NoError(t, repo.Create(newTestUser("User C", "c@test.com")))

	users, err := repo.FindAll(2, 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	total, err := repo.CountAll()
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
}
