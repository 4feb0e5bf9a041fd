package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken - единственная ошибка валидации bearer токена.
// Просроченный, подделанный и битый токен неразличимы для вызывающего.
var ErrInvalidToken = errors.New("invalid token")

// TokenKind - семейство bearer токена
type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// Окно действия одноразовых токенов (код верификации, сброс пароля)
const (
	VerificationTTL = 10 * time.Minute
	ResetTokenTTL   = 10 * time.Minute
)

// Claims - полезная нагрузка bearer токена. Несем только id аккаунта.
type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// TokenCodec подписывает и проверяет bearer токены двух семейств
// с независимыми секретами и сроками действия.
type TokenCodec struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// NewTokenCodec создает кодек токенов. TTL access токена - минуты,
// refresh токена - дни (см. config).
func NewTokenCodec(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenCodec {
	return &TokenCodec{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

// WithNow подменяет источник времени (для тестов)
func (c *TokenCodec) WithNow(now func() time.Time) *TokenCodec {
	c.now = now
	return c
}

// Sign выпускает подписанный токен указанного семейства
func (c *TokenCodec) Sign(userID string, kind TokenKind) (string, error) {
	secret, ttl, err := c.family(kind)
	if err != nil {
		return "", err
	}

	now := c.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Verify проверяет токен и возвращает id аккаунта.
// Любая причина отказа (подпись, срок, формат) сворачивается
// в ErrInvalidToken - деталь наружу не выходит.
func (c *TokenCodec) Verify(tokenStr string, kind TokenKind) (string, error) {
	secret, _, err := c.family(kind)
	if err != nil {
		return "", err
	}

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}

func (c *TokenCodec) family(kind TokenKind) ([]byte, time.Duration, error) {
	switch kind {
	case TokenAccess:
		return c.accessSecret, c.accessTTL, nil
	case TokenRefresh:
		return c.refreshSecret, c.refreshTTL, nil
	default:
		return nil, 0, fmt.Errorf("unknown token kind: %s", kind)
	}
}

// GenerateVerificationCode возвращает 6-значный цифровой код
// из криптографического источника случайности.
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// GenerateResetToken возвращает сырой токен сброса пароля и его
// SHA-256 дайджест. Персистится только дайджест, сырое значение
// уходит пользователю в ссылке и нигде не сохраняется.
func GenerateResetToken() (raw string, digest string, err error) {
	buf := make([]byte, 20)
	if _, err = rand.Read(buf); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(buf)
	return raw, HashResetToken(raw), nil
}

// HashResetToken считает дайджест сырого токена сброса - тем же
// способом, каким он был посчитан при генерации.
func HashResetToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
