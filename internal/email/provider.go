package email

import "context"

// Provider отправляет письма жизненного цикла аккаунта. Отказ доставки
// не должен проваливать вызвавшую операцию - вызывающая сторона логирует
// ошибку и продолжает.
type Provider interface {
	SendVerificationCode(ctx context.Context, to, name, code string) error
	SendPasswordReset(ctx context.Context, to, name, resetURL string) error
	SendPasswordChanged(ctx context.Context, to, name string) error
}
