package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

type postmarkSender struct {
	client *postmark.Client
}

// NewPostmarkSender creates a Postmark-backed sender. Like the Resend
// sender it accepts incomplete credentials; completeness is checked by the
// caller before any dispatch.
func NewPostmarkSender(serverToken, accountToken string) Sender {
	return &postmarkSender{client: postmark.NewClient(serverToken, accountToken)}
}

func (s *postmarkSender) Send(ctx context.Context, msg Message) (Receipt, error) {
	if err := msg.Validate(); err != nil {
		return Receipt{}, err
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     msg.From,
		To:       msg.To,
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		HTMLBody: msg.BodyHTML,
	})
	if err != nil {
		return Receipt{}, classifySendError(err)
	}
	// Postmark reports rejections in-band with a 200 response.
	if resp.ErrorCode > 0 {
		return Receipt{}, errors.Join(
			ErrProviderRejected,
			fmt.Errorf("postmark error %d: %s", resp.ErrorCode, resp.Message),
		)
	}
	return Receipt{ProviderID: resp.MessageID}, nil
}
