package email

import (
	"context"

	"devstudio_backend/internal/logger"
)

// NoopProvider используется в dev-окружении без SMTP: письма не
// отправляются, содержимое пишется в лог.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) SendVerificationCode(ctx context.Context, to, name, code string) error {
	logger.CtxInfo(ctx, "email disabled, verification code not sent", "to", to, "code", code)
	return nil
}

func (p *NoopProvider) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	logger.CtxInfo(ctx, "email disabled, reset link not sent", "to", to, "reset_url", resetURL)
	return nil
}

func (p *NoopProvider) SendPasswordChanged(ctx context.Context, to, name string) error {
	logger.CtxInfo(ctx, "email disabled, password-changed notice not sent", "to", to)
	return nil
}
