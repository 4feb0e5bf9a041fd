package contextkeys

// Кастомный тип, чтобы избежать коллизий при работе с context.Context
type contextKey string

// RequestIDContextKey - ключ request_id в context.Context
const RequestIDContextKey = contextKey("request_id")

// Ключи gin.Context, под которыми Authentication Gate сохраняет
// аутентифицированную личность. Хеш пароля сюда не попадает никогда.
const (
	UserIDKey     = "userID"
	UserRoleKey   = "role"
	IsVerifiedKey = "isVerified"
)
