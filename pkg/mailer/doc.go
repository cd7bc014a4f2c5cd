// Package mailer is a provider-agnostic client for transactional email.
//
// The package is built around the Sender interface so providers can be
// swapped without touching application code. Three implementations ship:
//
//   - Resend (the default), via the official resend-go client
//   - Postmark, via mrz1836/postmark
//   - DevSender, which writes messages to disk for local development
//
// New selects an implementation from an env-tagged Config:
//
//	var cfg mailer.Config
//	config.MustLoad(&cfg)
//
//	sender, err := mailer.New(cfg)
//	if err != nil {
//	    // unknown provider name
//	}
//
//	receipt, err := sender.Send(ctx, mailer.Message{
//	    From:     "Team <team@example.com>",
//	    To:       "ops@example.com",
//	    Subject:  "New signup",
//	    BodyHTML: "<p>...</p>",
//	})
//
// # Failure classes
//
// Every failed send surfaces as one of two sentinel errors, checkable with
// errors.Is: ErrProviderRejected when the provider answered with a
// structured rejection (whether in-band or as an HTTP error), and
// ErrProviderUnreachable when the provider was never reached. Callers that
// must distinguish "the provider said no" from "the network ate it" branch
// on these; callers that don't can treat both as a failed send.
//
// Senders never retry. A send is attempted at most once per call, and retry
// policy is left to the provider or an external queue so a slow provider
// cannot multiply request latency.
package mailer
