package email

import (
	"context"

	"gopkg.in/gomail.v2"
)

// SMTPConfig - реквизиты SMTP-сервера.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

// SMTPProvider отправляет письма через обычный SMTP (gomail).
type SMTPProvider struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (p *SMTPProvider) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.From, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendVerificationCode(ctx context.Context, to, name, code string) error {
	body, err := renderVerification(name, code)
	if err != nil {
		return err
	}
	return p.send(ctx, to, "Подтверждение email", body)
}

func (p *SMTPProvider) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	body, err := renderPasswordReset(name, resetURL)
	if err != nil {
		return err
	}
	return p.send(ctx, to, "Сброс пароля", body)
}

func (p *SMTPProvider) SendPasswordChanged(ctx context.Context, to, name string) error {
	body, err := renderPasswordChanged(name)
	if err != nil {
		return err
	}
	return p.send(ctx, to, "Пароль изменен", body)
}
