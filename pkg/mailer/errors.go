package mailer

import "errors"

var (
	// ErrInvalidConfig indicates the provider selection or credentials are unusable.
	ErrInvalidConfig = errors.New("invalid mailer configuration")

	// ErrInvalidMessage indicates the message is missing a field every provider requires.
	ErrInvalidMessage = errors.New("invalid message")

	// ErrProviderRejected indicates the provider answered with a structured rejection.
	ErrProviderRejected = errors.New("provider rejected message")

	// ErrProviderUnreachable indicates the provider could not be reached at all.
	ErrProviderUnreachable = errors.New("provider unreachable")
)
