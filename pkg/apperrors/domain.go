package apperrors

import "net/http"

// Доменные ошибки приложения. Каждая операция сервисов либо возвращает
// результат, либо ровно одну из этих ошибок - частичных успехов нет.

// --- auth ---

var (
	// ErrInvalidCredentials - единая ошибка для "нет такого пользователя"
	// и "неверный пароль", чтобы не раскрывать существование email.
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)

	ErrEmailAlreadyExists = New(CodeAlreadyExists, "auth", "Email already exists", http.StatusConflict)
	ErrNameAlreadyExists  = New(CodeAlreadyExists, "auth", "Name already exists", http.StatusConflict)

	ErrUserNotFound     = New(CodeNotFound, "auth", "User not found", http.StatusNotFound)
	ErrAlreadyVerified  = New(CodeInvalidOperation, "auth", "Email is already verified", http.StatusBadRequest)
	ErrInvalidOrExpired = New(CodeInvalidToken, "auth", "Verification code is invalid or expired", http.StatusBadRequest)

	ErrInvalidResetToken  = New(CodeInvalidToken, "auth", "Password reset token is invalid or expired", http.StatusBadRequest)
	ErrPasswordMismatch   = New(CodeValidationFailed, "auth", "Passwords do not match", http.StatusBadRequest)
	ErrInvalidOldPassword = New(CodeInvalidCredentials, "auth", "Current password is incorrect", http.StatusUnauthorized)

	ErrInvalidToken    = New(CodeInvalidToken, "auth", "Invalid token", http.StatusUnauthorized)
	ErrUserNotVerified = New(CodeNotVerified, "auth", "User not verified", http.StatusForbidden)
)

// --- projects ---

var (
	ErrProjectNotFound      = New(CodeNotFound, "project", "Project not found", http.StatusNotFound)
	ErrProjectNotCompleted  = New(CodeInvalidStatus, "project", "You can only review completed projects", http.StatusBadRequest)
	ErrNotProjectOwner      = New(CodeForbidden, "project", "You can only access your own projects", http.StatusForbidden)
	ErrInvalidProjectStatus = New(CodeInvalidStatus, "project", "Invalid project status transition", http.StatusBadRequest)
)

// --- reviews ---

var (
	ErrReviewNotFound  = New(CodeNotFound, "review", "Review not found", http.StatusNotFound)
	ErrAlreadyReviewed = New(CodeAlreadyExists, "review", "You have already reviewed this project", http.StatusConflict)
)

// --- services / team / contacts / home ---

var (
	ErrServiceNotFound    = New(CodeNotFound, "service", "Service not found", http.StatusNotFound)
	ErrSlugAlreadyExists  = New(CodeAlreadyExists, "service", "Slug already exists", http.StatusConflict)
	ErrTeamMemberNotFound = New(CodeNotFound, "team", "Team member not found", http.StatusNotFound)
	ErrContactNotFound    = New(CodeNotFound, "contact", "Contact message not found", http.StatusNotFound)
	ErrHomePageNotFound   = New(CodeNotFound, "home", "Home page content not found", http.StatusNotFound)
)
