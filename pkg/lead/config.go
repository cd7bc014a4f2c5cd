package lead

import "github.com/dmitrymomot/leadcapture/pkg/mailer"

// Config holds everything the submission service needs. Resolved once at
// startup and treated as read-only afterwards.
//
// NOTIFY_TO_EMAIL and the provider credentials are not marked required so
// that an incompletely configured server still starts; Missing is checked
// on every submission before any provider call.
type Config struct {
	Mail mailer.Config

	// NotifyTo receives the operator notification for every lead.
	NotifyTo string `env:"NOTIFY_TO_EMAIL"`
	// From is the sender identity for both outbound messages.
	From string `env:"SENDER_EMAIL" envDefault:"Launch Notify <onboarding@resend.dev>"`
	// AutoReply toggles the courtesy thank-you message to the submitter.
	AutoReply bool `env:"AUTO_REPLY_ENABLED" envDefault:"true"`
}

// Missing returns the unset environment variables without which no dispatch
// may be attempted.
func (c Config) Missing() []string {
	fields := c.Mail.Missing()
	if c.NotifyTo == "" {
		fields = append(fields, "NOTIFY_TO_EMAIL")
	}
	return fields
}
