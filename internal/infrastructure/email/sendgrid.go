package email

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.uber.org/zap"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/pkg/logger"
)

// SendGridSender delivers transactional email through SendGrid
type SendGridSender struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

// NewSendGridSender creates a new SendGrid sender
func NewSendGridSender(apiKey, fromName, fromEmail string) *SendGridSender {
	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

// SendVerificationCode emails the one-time payment confirmation code
func (s *SendGridSender) SendVerificationCode(ctx context.Context, toEmail, code string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", toEmail)
	subject := "Your payment confirmation code"
	plain := fmt.Sprintf("Your confirmation code is %s. It expires in 10 minutes.", code)
	html := fmt.Sprintf(
		"<p>Your confirmation code is <strong>%s</strong>.</p><p>It expires in 10 minutes. If you did not request it, ignore this message.</p>",
		code,
	)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		logger.Error(ctx, "sendgrid request failed", zap.Error(err))
		return domainerrors.ErrEmailDeliveryFailed
	}
	if resp.StatusCode >= 400 {
		logger.Error(ctx, "sendgrid rejected message", zap.Int("status", resp.StatusCode))
		return domainerrors.ErrEmailDeliveryFailed
	}
	return nil
}
