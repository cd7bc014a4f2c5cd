package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// Message is a single outbound email.
type Message struct {
	From     string // sender identity, either a bare address or "Name <addr>"
	To       string
	Subject  string
	BodyHTML string
	ReplyTo  string // optional
}

// Receipt reports provider acceptance of a message.
type Receipt struct {
	ProviderID string // provider-assigned message id, may be empty
}

// Sender delivers one message through a transactional email provider.
//
// Implementations classify every failure as either ErrProviderRejected or
// ErrProviderUnreachable so callers can treat in-band provider errors and
// transport errors uniformly. Senders never retry; retry policy belongs to
// the provider or an external queue, not here.
type Sender interface {
	Send(ctx context.Context, msg Message) (Receipt, error)
}

// Validate reports whether the message carries everything a provider needs.
func (m Message) Validate() error {
	if m.From == "" {
		return fmt.Errorf("%w: From is required", ErrInvalidMessage)
	}
	if m.To == "" {
		return fmt.Errorf("%w: To is required", ErrInvalidMessage)
	}
	if m.Subject == "" {
		return fmt.Errorf("%w: Subject is required", ErrInvalidMessage)
	}
	if m.BodyHTML == "" {
		return fmt.Errorf("%w: BodyHTML is required", ErrInvalidMessage)
	}
	return nil
}

// classifySendError collapses the two ways a send can fail into the
// package's sentinel classes: transport-level failures (the provider was
// never reached, or the context ran out) become ErrProviderUnreachable,
// everything else is a rejection the provider answered with.
func classifySendError(err error) error {
	var netErr *url.Error
	switch {
	case errors.As(err, &netErr),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled):
		return errors.Join(ErrProviderUnreachable, err)
	default:
		return errors.Join(ErrProviderRejected, err)
	}
}
