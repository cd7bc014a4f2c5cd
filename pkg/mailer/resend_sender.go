package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"
)

type resendSender struct {
	client *resend.Client
}

// NewResendSender creates a Resend-backed sender.
// The API key may be empty; callers gate dispatch on Config.Missing before
// any send, so construction never needs to fail.
func NewResendSender(apiKey string) Sender {
	return &resendSender{client: resend.NewClient(apiKey)}
}

func (s *resendSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.BodyHTML,
	})
	if err != nil {
		return Receipt{}, classifySendError(err)
	}
	return Receipt{ProviderID: sent.Id}, nil
}
