package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"devstudio_backend/internal/services/dto"
	"devstudio_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerRequest(name, email string) *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:            name,
		Email:           email,
		Password:        "super_password123",
		PasswordConfirm: "super_password123",
	}
}

func TestRegister_Success(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	user, err := fx.service.Register(ctx, registerRequest("Alice", "Alice@Test.com"))
	require.NoError(t, err)

	assert.Equal(t, "alice@test.com", user.Email, "Email нормализуется к нижнему регистру")
	assert.False(t, user.IsVerified)
	assert.EqualValues(t, "user", user.Role)

	// Код ушел на почту и записан в БД
	code := fx.emails.lastVerificationCode()
	assert.Len(t, code, 6)

	stored, err := fx.userRepo.FindByEmail("alice@test.com")
	require.NoError(t, err)
	assert.Equal(t, code, stored.VerificationCode)
	assert.NotEqual(t, "super_password123", stored.PasswordHash)
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, registerRequest("Alice", "alice@test.com"))
	require.NoError(t, err)

	_, err = fx.service.Register(ctx, registerRequest("Bob", "alice@test.com"))
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestRegister_DuplicateNameConflict(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, registerRequest("Alice", "alice@test.com"))
	require.NoError(t, err)

	// То же имя, другой email - тоже конфликт
	_, err = fx.service.Register(ctx, registerRequest("Alice", "other@test.com"))
	assert.ErrorIs(t, err, apperrors.ErrNameAlreadyExists)
}

func TestRegister_EmailFailureDoesNotFailRegistration(t *testing.T) {
	fx := newAuthFixture(t)
	fx.emails.failNext = errors.New("smtp down")

	_, err := fx.service.Register(context.Background(), registerRequest("Alice", "alice@test.com"))
	assert.NoError(t, err)

	_, err = fx.userRepo.FindByEmail("alice@test.com")
	assert.NoError(t, err)
}

func TestVerifyEmail(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, registerRequest("Alice", "alice@test.com"))
	require.NoError(t, err)
	code := fx.emails.lastVerificationCode()

	// Чужой код - отказ
	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	err = fx.service.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "alice@test.com", Code: wrong})
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpired)

	// Верный код - успех
	err = fx.service.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "alice@test.com", Code: code})
	require.NoError(t, err)

	stored, err := fx.userRepo.FindByEmail("alice@test.com")
	require.NoError(t, err)
	assert.True(t, stored.IsVerified)
	assert.Empty(t, stored.VerificationCode)

	// Повторная верификация - отдельная ошибка
	err = fx.service.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "alice@test.com", Code: code})
	assert.ErrorIs(t, err, apperrors.ErrAlreadyVerified)
}

func TestVerifyEmail_ExpiredCode(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	base := time.Now()
	fx.service.WithNow(func() time.Time { return base })

	_, err := fx.service.Register(ctx, registerRequest("Alice", "alice@test.com"))
	require.NoError(t, err)
	code := fx.emails.lastVerificationCode()

	// После окна код мертв
	fx.service.WithNow(func() time.Time { return base.Add(10*time.Minute + time.Second) })
	err = fx.service.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "alice@test.com", Code: code})
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpired)

	// Ровно на границе окна код уже мертв
	fx.service.WithNow(func() time.Time { return base.Add(10 * time.Minute) })
	err = fx.service.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "alice@test.com", Code: code})
	assert.ErrorIs(t, err, apperrors.ErrInvalidOrExpired)

	// За миллисекунду до границы код еще жив
	fx.service.WithNow(func() time.Time { return base.Add(10*time.Minute - time.Millisecond) })
	err = fx.service.VerifyEmail(ctx, &dto.VerifyEmailRequest{Email: "alice@test.com", Code: code})
	assert.NoError(t, err)
}

func TestVerifyEmail_UnknownEmail(t *testing.T) {
	fx := newAuthFixture(t)

	err := fx.service.VerifyEmail(context.Background(), &dto.VerifyEmailRequest{Email: "ghost@test.com", Code: "123456"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestLogin(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, registerRequest("Alice", "alice@test.com"))
	require.NoError(t, err)

	// Неверифицированный аккаунт входит успешно
	resp, err := fx.service.Login(ctx, &dto.LoginRequest{Email: "alice@test.com", Password: "super_password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.NotEqual(t, resp.AccessToken, resp.RefreshToken)
	assert.Equal(t, "alice@test.com", resp.User.Email)
}

func TestLogin_InvalidCredentialsIndistinguishable(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, registerRequest("Alice", "alice@test.com"))
	require.NoError(t, err)

	// Неверный пароль и несуществующий email дают буквально одну ошибку
	_, errWrongPassword := fx.service.Login(ctx, &dto.LoginRequest{Email: "alice@test.com", Password: "wrong"})
	_, errNoUser := fx.service.Login(ctx, &dto.LoginRequest{Email: "ghost@test.com", Password: "super_password123"})

	assert.ErrorIs(t, errWrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, errNoUser, apperrors.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errNoUser.Error())
}

func TestRefreshToken(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, registerRequest("Alice", "alice@test.com"))
	require.NoError(t, err)
	login, err := fx.service.Login(ctx, &dto.LoginRequest{Email: "alice@test.com", Password: "super_password123"})
	require.NoError(t, err)

	resp, err := fx.service.RefreshToken(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	// Access токен не работает как refresh
	_, err = fx.service.RefreshToken(ctx, login.AccessToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

	// Токен удаленного аккаунта мертв
	require.NoError(t, fx.service.DeleteAccount(ctx, login.User.ID))
	_, err = fx.service.RefreshToken(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestPasswordResetFlow(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, registerRequest("Alice", "alice@test.com"))
	require.NoError(t, err)

	require.NoError(t, fx.service.RequestPasswordReset(ctx, "alice@test.com"))

	resetURL := fx.emails.lastResetURL()
	require.NotEmpty(t, resetURL)
	parts := strings.Split(resetURL, "/")
	rawToken := parts[len(parts)-1]

	// Несовпадающие пароли - отказ, токен остается живым
	err = fx.service.ResetPassword(ctx, rawToken, &dto.ResetPasswordRequest{
		Password:        "new_password456",
		PasswordConfirm: "different_password",
	})
	assert.ErrorIs(t, err, apperrors.ErrPasswordMismatch)

	// В БД лежит не сырой токен, а его дайджест
	stored, err := fx.userRepo.FindByEmail("alice@test.com")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.PasswordResetToken)
	assert.NotEqual(t, rawToken, stored.PasswordResetToken)

	err = fx.service.ResetPassword(ctx, rawToken, &dto.ResetPasswordRequest{
		Password:        "new_password456",
		PasswordConfirm: "new_password456",
	})
	require.NoError(t, err)

	// Старый пароль больше не работает, новый - работает
	_, err = fx.service.Login(ctx, &dto.LoginRequest{Email: "alice@test.com", Password: "super_password123"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	_, err = fx.service.Login(ctx, &dto.LoginRequest{Email: "alice@test.com", Password: "new_password456"})
	assert.NoError(t, err)

	// Повторное использование токена - отказ
	err = fx.service.ResetPassword(ctx, rawToken, &dto.ResetPasswordRequest{
		Password:        "third_password789",
		PasswordConfirm: "third_password789",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}

func TestPasswordReset_ExpiredToken(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	base := time.Now()
	fx.service.WithNow(func() time.Time { return base })

	_, err := fx.service.Register(ctx, registerRequest("Alice", "alice@test.com"))
	require.NoError(t, err)
	require.NoError(t, fx.service.RequestPasswordReset(ctx, "alice@test.com"))

	resetURL := fx.emails.lastResetURL()
	parts := strings.Split(resetURL, "/")
	rawToken := parts[len(parts)-1]

	fx.service.WithNow(func() time.Time { return base.Add(10*time.Minute + time.Second) })
	err = fx.service.ResetPassword(ctx, rawToken, &dto.ResetPasswordRequest{
		Password:        "new_password456",
		PasswordConfirm: "new_password456",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidResetToken)
}

func TestPasswordReset_UnknownEmail(t *testing.T) {
	fx := newAuthFixture(t)

	err := fx.service.RequestPasswordReset(context.Background(), "ghost@test.com")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestPasswordReset_EmailFailureRollsBackToken(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	_, err := fx.service.Register(ctx, registerRequest("Alice", "alice@test.com"))
	require.NoError(t, err)

	fx.emails.failNext = errors.New("smtp down")
	err = fx.service.RequestPasswordReset(ctx, "alice@test.com")
	assert.Error(t, err)

	stored, findErr := fx.userRepo.FindByEmail("alice@test.com")
	require.NoError(t, findErr)
	assert.Empty(t, stored.PasswordResetToken, "Токен откатывается, если письмо не ушло")
}

func TestChangePassword(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	user, err := fx.service.Register(ctx, registerRequest("Alice", "alice@test.com"))
	require.NoError(t, err)

	// Неверный текущий пароль
	_, err = fx.service.ChangePassword(ctx, user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "wrong",
		NewPassword:     "new_password456",
		PasswordConfirm: "new_password456",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidOldPassword)

	// Верный текущий пароль
	resp, err := fx.service.ChangePassword(ctx, user.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "super_password123",
		NewPassword:     "new_password456",
		PasswordConfirm: "new_password456",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = fx.service.Login(ctx, &dto.LoginRequest{Email: "alice@test.com", Password: "new_password456"})
	assert.NoError(t, err)
}

func TestDeleteAccount(t *testing.T) {
	fx := newAuthFixture(t)
	ctx := context.Background()

	user, err := fx.service.Register(ctx, registerRequest("Alice", "alice@test.com"))
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteAccount(ctx, user.ID))

	// Повторное удаление и удаление несуществующего - одна и та же ошибка
	assert.ErrorIs(t, fx.service.DeleteAccount(ctx, user.ID), apperrors.ErrUserNotFound)
	assert.ErrorIs(t, fx.service.DeleteAccount(ctx, "no-such-id"), apperrors.ErrUserNotFound)
}
