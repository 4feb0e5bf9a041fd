package middleware

import (
	"strings"

	"devstudio_backend/internal/auth"
	"devstudio_backend/internal/logger"
	"devstudio_backend/internal/models"
	"devstudio_backend/internal/repositories"
	"devstudio_backend/pkg/apperrors"
	"devstudio_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// Имя cookie с access токеном. Должно совпадать с тем, что ставит
// AuthHandler при входе.
const AccessTokenCookie = "accessToken"

// AuthGate - проверка личности на защищенных маршрутах.
// Токен берется сначала из заголовка Authorization, затем из cookie.
// Аккаунт перечитывается из БД на каждый запрос: токен удаленного или
// деактивированного аккаунта недействителен немедленно.
type AuthGate struct {
	tokens   *auth.TokenCodec
	userRepo repositories.UserRepository
}

func NewAuthGate(tokens *auth.TokenCodec, userRepo repositories.UserRepository) *AuthGate {
	return &AuthGate{tokens: tokens, userRepo: userRepo}
}

// Authenticate - middleware аутентификации. Неверифицированный аккаунт
// аутентифицируется, но получает 403: вход разрешен, защищенные
// операции - нет.
func (g *AuthGate) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractToken(c)
		if tokenStr == "" {
			abortWith(c, apperrors.NewUnauthorizedError("Authorization token missing"))
			return
		}

		userID, err := g.tokens.Verify(tokenStr, auth.TokenAccess)
		if err != nil {
			abortWith(c, apperrors.ErrInvalidToken)
			return
		}

		user, err := g.userRepo.FindByID(userID)
		if err != nil {
			// Аккаунт исчез после выпуска токена - токен мертв
			abortWith(c, apperrors.ErrInvalidToken)
			return
		}

		if !user.IsVerified {
			abortWith(c, apperrors.ErrUserNotVerified)
			return
		}

		c.Set(contextkeys.UserIDKey, user.ID)
		c.Set(contextkeys.UserRoleKey, string(user.Role))
		c.Set(contextkeys.IsVerifiedKey, user.IsVerified)

		ctx := logger.WithUserID(c.Request.Context(), user.ID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles - ограничение маршрута перечисленными ролями.
// Без личности в контексте - 401, с личностью вне списка - 403.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := make(map[models.UserRole]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get(contextkeys.UserRoleKey)
		if !exists {
			abortWith(c, apperrors.NewUnauthorizedError("User not authenticated"))
			return
		}

		roleStr, ok := roleVal.(string)
		if !ok || !roleSet[models.UserRole(roleStr)] {
			abortWith(c, apperrors.NewForbiddenError("Insufficient permissions"))
			return
		}

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	apperrors.HandleError(c, err)
	c.Abort()
}
