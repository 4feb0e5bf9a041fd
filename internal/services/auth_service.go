package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"devstudio_backend/internal/auth"
	"devstudio_backend/internal/email"
	"devstudio_backend/internal/logger"
	"devstudio_backend/internal/models"
	"devstudio_backend/internal/repositories"
	"devstudio_backend/internal/services/dto"
	"devstudio_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserDTO, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error)
	RequestPasswordReset(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, rawToken string, req *dto.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) (*dto.AuthResponse, error)
	DeleteAccount(ctx context.Context, userID string) error
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	hasher        *auth.Hasher
	tokens        *auth.TokenCodec
	emailProvider email.Provider
	publicURL     string

	// Источник времени подменяется в тестах для проверки границ
	// окон действия кода верификации и токена сброса.
	now func() time.Time
}

func NewAuthService(
	userRepo repositories.UserRepository,
	hasher *auth.Hasher,
	tokens *auth.TokenCodec,
	emailProvider email.Provider,
	publicURL string,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		hasher:        hasher,
		tokens:        tokens,
		emailProvider: emailProvider,
		publicURL:     strings.TrimRight(publicURL, "/"),
		now:           time.Now,
	}
}

// WithNow подменяет источник времени (для тестов)
func (s *AuthServiceImpl) WithNow(now func() time.Time) *AuthServiceImpl {
	s.now = now
	return s
}

// Register - регистрация нового аккаунта. Аккаунт создается
// неверифицированным, с ролью user; код подтверждения уходит на почту.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserDTO, error) {
	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	code, err := auth.GenerateVerificationCode()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	expires := s.now().Add(auth.VerificationTTL)

	user := &models.User{
		Name:                req.Name,
		Email:               strings.ToLower(req.Email),
		PasswordHash:        passwordHash,
		Role:                models.UserRoleUser,
		IsActive:            true,
		IsVerified:          false,
		VerificationCode:    code,
		VerificationExpires: &expires,
	}

	if err := s.userRepo.Create(user); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrEmailTaken),
			apperrors.Is(err, repositories.ErrUserAlreadyExists):
			return nil, apperrors.ErrEmailAlreadyExists
		case apperrors.Is(err, repositories.ErrNameTaken):
			return nil, apperrors.ErrNameAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	// Отказ доставки письма регистрацию не отменяет: код можно
	// запросить заново, а аккаунт уже создан.
	if err := s.emailProvider.SendVerificationCode(ctx, user.Email, user.Name, code); err != nil {
		logger.CtxWithError(ctx, "failed to send verification email", err, "email", user.Email)
	}

	logger.CtxInfo(ctx, "user registered", "user_id", user.ID, "email", user.Email)

	result := dto.NewUserDTO(user)
	return &result, nil
}

// VerifyEmail - подтверждение email шестизначным кодом.
// Чужой и просроченный код неразличимы для вызывающего,
// несуществующий аккаунт - отдельная ошибка.
func (s *AuthServiceImpl) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	if user.IsVerified {
		return apperrors.ErrAlreadyVerified
	}

	if !user.HasPendingVerification() ||
		user.VerificationCode != req.Code ||
		!s.now().Before(*user.VerificationExpires) {
		return apperrors.ErrInvalidOrExpired
	}

	if err := s.userRepo.MarkVerified(user.ID); err != nil {
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "email verified", "user_id", user.ID)
	return nil
}

// Login - аутентификация по email и паролю. Неверифицированный аккаунт
// входит успешно: запрет действует на защищенных маршрутах, не здесь.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	response, err := s.issueTokens(user)
	if err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "user logged in", "user_id", user.ID)
	return response, nil
}

// RefreshToken - обмен refresh токена на новую пару токенов
func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	userID, err := s.tokens.Verify(refreshToken, auth.TokenRefresh)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		// Аккаунт удален или деактивирован после выпуска токена
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(user)
}

// RequestPasswordReset - выпуск токена сброса пароля. В БД сохраняется
// только дайджест, сырой токен уходит в ссылке на почту.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	raw, digest, err := auth.GenerateResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}

	expires := s.now().Add(auth.ResetTokenTTL)
	if err := s.userRepo.SetResetToken(user.ID, digest, expires); err != nil {
		return apperrors.InternalError(err)
	}

	resetURL := fmt.Sprintf("%s/api/v1/users/reset-password/%s", s.publicURL, raw)
	if err := s.emailProvider.SendPasswordReset(ctx, user.Email, user.Name, resetURL); err != nil {
		// Письмо не ушло - токен бесполезен, откатываем, чтобы не
		// оставлять висящее окно сброса.
		if clearErr := s.userRepo.SetResetToken(user.ID, "", s.now()); clearErr != nil {
			logger.CtxWithError(ctx, "failed to clear reset token after send failure", clearErr, "user_id", user.ID)
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password reset requested", "user_id", user.ID)
	return nil
}

// ResetPassword - установка нового пароля по токену из письма.
// Токен потребляется атомарно: второй вызов с тем же токеном получает
// ту же ошибку, что и токен несуществующий.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, rawToken string, req *dto.ResetPasswordRequest) error {
	// Токен трогаем только при совпадающих паролях
	if req.Password != req.PasswordConfirm {
		return apperrors.ErrPasswordMismatch
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	digest := auth.HashResetToken(rawToken)
	if err := s.userRepo.ConsumeResetToken(digest, passwordHash, s.now()); err != nil {
		if apperrors.Is(err, repositories.ErrResetTokenInvalid) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "password reset completed")
	return nil
}

// ChangePassword - смена пароля залогиненным пользователем.
// После смены выпускается новая пара токенов.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.hasher.Verify(req.CurrentPassword, user.PasswordHash) {
		return nil, apperrors.ErrInvalidOldPassword
	}

	passwordHash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.SetPassword(user.ID, passwordHash, s.now()); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.emailProvider.SendPasswordChanged(ctx, user.Email, user.Name); err != nil {
		logger.CtxWithError(ctx, "failed to send password-changed notice", err, "user_id", user.ID)
	}

	logger.CtxInfo(ctx, "password changed", "user_id", user.ID)
	return s.issueTokens(user)
}

// DeleteAccount - удаление аккаунта. Повторное удаление того же id
// возвращает ту же ошибку, что и удаление несуществующего.
func (s *AuthServiceImpl) DeleteAccount(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(userID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "account deleted", "user_id", userID)
	return nil
}

func (s *AuthServiceImpl) issueTokens(user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := s.tokens.Sign(user.ID, auth.TokenAccess)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.tokens.Sign(user.ID, auth.TokenRefresh)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserDTO(user),
	}, nil
}
